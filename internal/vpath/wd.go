package vpath

import (
	"fmt"
	"os"
)

// WorkingDir reads and changes a current directory. The process working
// directory is global state; callers using OSWorkingDir from several
// goroutines must serialize ChangePath themselves.
type WorkingDir interface {
	Getwd() (string, error)
	Chdir(dir string) error
}

// OSWorkingDir is the process working directory.
type OSWorkingDir struct{}

// Getwd returns os.Getwd.
func (OSWorkingDir) Getwd() (string, error) { return os.Getwd() }

// Chdir calls os.Chdir.
func (OSWorkingDir) Chdir(dir string) error { return os.Chdir(dir) }

// CurrentPath returns the current directory of wd. A nil wd means the
// process working directory.
func CurrentPath(wd WorkingDir) (Path, error) {
	if wd == nil {
		wd = OSWorkingDir{}
	}
	dir, err := wd.Getwd()
	if err != nil {
		return Path{}, fmt.Errorf("failed to read working directory: %w", err)
	}
	return Parse(dir)
}

// ChangePath resolves target against the current directory, changes into
// it and returns the directory as reported afterwards. The result can
// differ from the lexical resolution when the OS canonicalizes the
// directory (symlinks, for instance).
func ChangePath(wd WorkingDir, target Path) (Path, error) {
	if wd == nil {
		wd = OSWorkingDir{}
	}
	cwd, err := CurrentPath(wd)
	if err != nil {
		return Path{}, err
	}
	next, err := Simplify(cwd, target)
	if err != nil {
		return Path{}, err
	}
	if err := wd.Chdir(next.String()); err != nil {
		return Path{}, fmt.Errorf("failed to change directory to %s: %w", next, err)
	}
	return CurrentPath(wd)
}
