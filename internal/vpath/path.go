// Package vpath implements lexical, filesystem-like paths used by the asset
// pipeline to resolve references between data files.
//
// A Path is a value: every operation returns a new Path and leaves its
// inputs untouched. Nothing in this file touches the filesystem; see wd.go
// for the working-directory helpers.
package vpath

import (
	"errors"
	"strings"
)

// Delimiter separates path segments.
const Delimiter = "/"

const (
	current = "."
	parent  = ".."
)

var (
	// ErrEmptyPath is returned when decomposing an empty string.
	ErrEmptyPath = errors.New("vpath: empty path")
	// ErrAboveRoot is returned when a ".." would climb above an absolute
	// root or past an empty base.
	ErrAboveRoot = errors.New("vpath: path ascends above root")
	// ErrInvalidPath is returned when an operation receives an invalid Path.
	ErrInvalidPath = errors.New("vpath: invalid path")
)

// Path is an ordered list of segments plus a relative/absolute flag.
// The zero value is invalid.
type Path struct {
	segments []string
	relative bool
	valid    bool
}

// Decompose splits raw into its lexically resolved segments.
// "." and empty segments are dropped and ".." consumes the segment before
// it. A leading ".." run is kept for relative paths; for absolute paths it
// fails with ErrAboveRoot.
func Decompose(raw string) (segments []string, relative bool, err error) {
	if raw == "" {
		return nil, false, ErrEmptyPath
	}

	segments = strings.Split(raw, Delimiter)
	relative = segments[0] != ""
	if !relative {
		segments = segments[1:]
	}

	cursor := 0
	for cursor < len(segments) {
		switch segments[cursor] {
		case current, "":
			segments = append(segments[:cursor], segments[cursor+1:]...)
		case parent:
			if cursor > 0 && segments[cursor-1] != parent {
				segments = append(segments[:cursor-1], segments[cursor+1:]...)
				cursor--
				continue
			}
			if cursor == 0 && !relative {
				return nil, false, ErrAboveRoot
			}
			cursor++
		default:
			cursor++
		}
	}

	return segments, relative, nil
}

// Parse decomposes raw into a Path. On error the returned Path is invalid.
func Parse(raw string) (Path, error) {
	segments, relative, err := Decompose(raw)
	if err != nil {
		return Path{}, err
	}
	return Path{segments: segments, relative: relative, valid: true}, nil
}

// MustParse is like Parse but panics on error. Intended for constants and
// tests.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// IsValid reports whether p came from a successful operation.
func (p Path) IsValid() bool { return p.valid }

// IsRelative reports whether p is relative.
func (p Path) IsRelative() bool { return p.valid && p.relative }

// IsAbsolute reports whether p is absolute.
func (p Path) IsAbsolute() bool { return p.valid && !p.relative }

// ComponentCount returns the number of segments.
func (p Path) ComponentCount() int { return len(p.segments) }

// Component returns the i-th segment, or "" when out of range.
func (p Path) Component(i int) string {
	if i < 0 || i >= len(p.segments) {
		return ""
	}
	return p.segments[i]
}

// Components returns a copy of the segments.
func (p Path) Components() []string {
	return append([]string(nil), p.segments...)
}

// Base returns the last segment, or "" for an empty path.
func (p Path) Base() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Equal reports whether p and other render to the same path.
func (p Path) Equal(other Path) bool {
	if p.valid != other.valid || p.relative != other.relative {
		return false
	}
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// Containing returns the parent of p. The parent of "." is "..", and the
// root has no parent.
func (p Path) Containing() (Path, error) {
	if !p.valid {
		return Path{}, ErrInvalidPath
	}

	out := p.clone()
	switch {
	case len(out.segments) > 0 && out.Base() != parent:
		out.segments = out.segments[:len(out.segments)-1]
	case out.relative:
		out.segments = append(out.segments, parent)
	default:
		return Path{}, ErrAboveRoot
	}
	return out, nil
}

// Join simplifies the relative path formed by elem against p.
func (p Path) Join(elem ...string) (Path, error) {
	if len(elem) == 0 {
		return Simplify(p, Path{relative: true, valid: true})
	}
	rel, err := Parse(strings.Join(elem, Delimiter))
	if err != nil {
		return Path{}, err
	}
	if !rel.relative {
		rel.relative = true
	}
	return Simplify(p, rel)
}

// String renders p. Relative paths always start with "." or "..", absolute
// paths with "/". An invalid path renders as "".
func (p Path) String() string {
	if !p.valid {
		return ""
	}

	var b strings.Builder
	rest := p.segments
	if p.relative {
		if len(rest) > 0 && rest[0] == parent {
			b.WriteString(parent)
			rest = rest[1:]
		} else {
			b.WriteString(current)
		}
	} else if len(rest) == 0 {
		return Delimiter
	}

	for _, seg := range rest {
		b.WriteString(Delimiter)
		b.WriteString(seg)
	}
	return b.String()
}

// Simplify lexically resolves rel against base. An absolute rel is returned
// as is.
func Simplify(base, rel Path) (Path, error) {
	if !base.valid || !rel.valid {
		return Path{}, ErrInvalidPath
	}
	if !rel.relative {
		return rel.clone(), nil
	}

	out := base.clone()
	for _, seg := range rel.segments {
		switch seg {
		case current:
		case parent:
			if len(out.segments) == 0 {
				return Path{}, ErrAboveRoot
			}
			if out.Base() == parent {
				out.segments = append(out.segments, parent)
				continue
			}
			out.segments = out.segments[:len(out.segments)-1]
		default:
			out.segments = append(out.segments, seg)
		}
	}
	return out, nil
}

// Relative returns the shortest relative path leading from src to dest.
// wd resolves a relative src when dest is absolute; a nil wd uses the
// process working directory.
func Relative(src, dest Path, wd WorkingDir) (Path, error) {
	if !src.valid || !dest.valid {
		return Path{}, ErrInvalidPath
	}

	if src.relative {
		if dest.relative {
			return Simplify(src, dest)
		}
		cwd, err := CurrentPath(wd)
		if err != nil {
			return Path{}, err
		}
		abs, err := Simplify(cwd, src)
		if err != nil {
			return Path{}, err
		}
		return Relative(abs, dest, wd)
	}

	if dest.relative {
		resolved, err := Simplify(src, dest)
		if err != nil {
			return Path{}, err
		}
		dest = resolved
	}

	shared := 0
	for shared < len(src.segments) && shared < len(dest.segments) &&
		src.segments[shared] == dest.segments[shared] {
		shared++
	}

	up := len(src.segments) - shared
	segments := make([]string, 0, up+len(dest.segments)-shared)
	for i := 0; i < up; i++ {
		segments = append(segments, parent)
	}
	segments = append(segments, dest.segments[shared:]...)

	return Path{segments: segments, relative: true, valid: true}, nil
}

func (p Path) clone() Path {
	return Path{
		segments: append([]string(nil), p.segments...),
		relative: p.relative,
		valid:    p.valid,
	}
}
