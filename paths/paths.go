// Package paths is the one legitimate process-global in this module: a
// path resolver for the application's per-user resource directory (ROM
// search paths, the on-disk trace log, a mounted disk's write-back copy).
// Everything else threads a RuntimeConfig explicitly; this package exists
// because nearly every component that touches the filesystem needs to
// agree on the same root, and passing it down through every constructor
// buys nothing over a resolver that is initialised exactly once at
// startup before any component looks up a file.
package paths

import (
	"os"
	"path/filepath"
)

const dotDir = ".apple2core"

// Abs returns the absolute, cleaned form of path, expanding a leading "~"
// to the user's home directory.
func Abs(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// ResourcePath joins a sub-directory and filename onto the application's
// dot-directory, without resolving it to an absolute path. It is kept
// separate from a home-dir-resolving variant so that it is trivially
// testable: ResourcePath("roms/iie", "main.rom") is always
// ".apple2core/roms/iie/main.rom", regardless of the user running the
// test.
func ResourcePath(subdir, filename string) (string, error) {
	p := dotDir
	if subdir != "" {
		p = filepath.Join(p, subdir)
	}
	if filename != "" {
		p = filepath.Join(p, filename)
	}
	return p, nil
}

// ResourcePathAbs is ResourcePath resolved against the user's home
// directory - the form every real caller other than the test suite uses.
func ResourcePathAbs(subdir, filename string) (string, error) {
	rel, err := ResourcePath(subdir, filename)
	if err != nil {
		return "", err
	}
	return Abs(filepath.Join("~", rel))
}

// EnsureResourcePathAbs is ResourcePathAbs but also creates the directory
// component if it does not already exist.
func EnsureResourcePathAbs(subdir string) (string, error) {
	p, err := ResourcePathAbs(subdir, "")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(p, 0o755); err != nil {
		return "", err
	}
	return p, nil
}
