package vpath

import "fmt"

// ResolveSibling resolves ref, a path written inside the file at from,
// against the directory containing that file. Absolute refs are returned
// simplified.
func ResolveSibling(from, ref string) (string, error) {
	file, err := Parse(from)
	if err != nil {
		return "", fmt.Errorf("invalid referencing path %q: %w", from, err)
	}
	target, err := Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	dir, err := file.Containing()
	if err != nil {
		return "", fmt.Errorf("no directory for %q: %w", from, err)
	}
	resolved, err := Simplify(dir, target)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %q from %q: %w", ref, from, err)
	}
	return resolved.String(), nil
}
