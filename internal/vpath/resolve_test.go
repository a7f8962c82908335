package vpath

import (
	"errors"
	"testing"
)

func TestResolveSibling(t *testing.T) {
	tests := []struct {
		from, ref string
		want      string
	}{
		{"data/maps/bay.json", "../tilesets/terrain.json", "./data/tilesets/terrain.json"},
		{"/srv/data/maps/bay.json", "../tilesets/terrain.json", "/srv/data/tilesets/terrain.json"},
		{"data/tilesets/terrain.json", "terrain.png", "./data/tilesets/terrain.png"},
		{"data/maps/bay.json", "/opt/art/terrain.json", "/opt/art/terrain.json"},
	}

	for _, tt := range tests {
		got, err := ResolveSibling(tt.from, tt.ref)
		if err != nil {
			t.Errorf("ResolveSibling(%q, %q): unexpected error %v", tt.from, tt.ref, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveSibling(%q, %q): expected %q, got %q", tt.from, tt.ref, tt.want, got)
		}
	}
}

func TestResolveSiblingErrors(t *testing.T) {
	if _, err := ResolveSibling("", "a"); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Expected ErrEmptyPath, got %v", err)
	}
	if _, err := ResolveSibling("/a.json", "../../b"); !errors.Is(err, ErrAboveRoot) {
		t.Errorf("Expected ErrAboveRoot, got %v", err)
	}
	// The directory of a bare relative file name is ".", which has nothing
	// left to pop.
	if _, err := ResolveSibling("bay.json", "../shared/terrain.json"); !errors.Is(err, ErrAboveRoot) {
		t.Errorf("Expected ErrAboveRoot, got %v", err)
	}
}
