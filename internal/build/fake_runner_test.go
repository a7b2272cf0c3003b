package build

import (
	"context"
	"strings"
)

// recordingRunner records every argv line and returns err for the calls
// selected by fail.
type recordingRunner struct {
	calls  []string
	fail   func(argv string) bool
	err    error
	onCall func(argv string)
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	argv := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, argv)
	if r.onCall != nil {
		r.onCall(argv)
	}
	if r.fail != nil && r.fail(argv) {
		return r.err
	}
	return nil
}

func failEqual(want string) func(string) bool {
	return func(argv string) bool { return argv == want }
}

func failPrefix(prefix string) func(string) bool {
	return func(argv string) bool { return strings.HasPrefix(argv, prefix) }
}
