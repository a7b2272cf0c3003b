package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const PackageExt = ".mojopkg"

// Settings are resolved once at startup and handed to the orchestrator.
type Settings struct {
	Package       string
	ScratchDir    string
	Tool          string
	BuildCacheDir string
}

// DefaultScratchDir is $HOME/tmp.
func DefaultScratchDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "hearth")
	}
	return filepath.Join(home, "tmp")
}

// Scratch is a freshly packaged build directory. Release must be called on
// every path once Acquire succeeds.
type Scratch struct {
	Dir      string
	Artifact string
	log      *slog.Logger
	released bool
}

// Acquire recreates dir from scratch and packages pkg into it. If packaging
// fails the directory is removed before returning.
func Acquire(ctx context.Context, dir, pkg string, tool *Tool, log *slog.Logger) (*Scratch, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Scratch{
		Dir:      dir,
		Artifact: filepath.Join(dir, pkg+PackageExt),
		log:      log,
	}
	if _, err := s.remove(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	log.Debug("packaging", "package", pkg, "artifact", s.Artifact)
	if err := tool.Package(ctx, pkg, s.Artifact); err != nil {
		if rerr := s.Release(); rerr != nil {
			log.Warn("scratch cleanup failed", "dir", dir, "error", rerr)
		}
		return nil, fmt.Errorf("package %s: %w", pkg, err)
	}
	return s, nil
}

// Release removes the directory. It is safe to call more than once.
func (s *Scratch) Release() error {
	if s.released {
		return nil
	}
	s.released = true
	removed, err := s.remove()
	if err != nil {
		return err
	}
	if removed {
		s.log.Info("Temporary build directory removed.", "dir", s.Dir)
	}
	return nil
}

// remove deletes the directory and reports whether there was one.
func (s *Scratch) remove() (bool, error) {
	if _, err := os.Lstat(s.Dir); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	s.log.Debug("removing scratch dir", "dir", s.Dir)
	if err := os.RemoveAll(s.Dir); err != nil {
		return false, fmt.Errorf("remove scratch dir: %w", err)
	}
	return true, nil
}
