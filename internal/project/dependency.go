package project

import "strings"

// FormatDependency turns a pixi version spec into a conda requirement:
// ">=1.2" becomes "name >= 1.2", "<2" becomes "name < 2" and a bare
// version is pinned with "==". Wildcard or empty specs leave the name alone.
func FormatDependency(name, version string) string {
	version = strings.TrimSpace(version)
	if version == "" || version == "*" {
		return name
	}

	op, rest := "==", version
	if version[0] == '<' || version[0] == '>' {
		if len(version) > 1 && version[1] == '=' {
			op, rest = version[:2], version[2:]
		} else {
			op, rest = version[:1], version[1:]
		}
	}
	return name + " " + op + " " + rest
}
