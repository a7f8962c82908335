package mapscanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MapEntry represents a discoverable map in the data directory
type MapEntry struct {
	Name string // Display name (file name without extension)
	Path string // Path to the map file
}

// ScanDataDirectory scans dataPath/maps for map files.
// Returns a list of MapEntry objects sorted by name.
func ScanDataDirectory(dataPath string) ([]MapEntry, error) {
	mapsPath := filepath.Join(dataPath, "maps")
	entries, err := os.ReadDir(mapsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		// Skip directories
		if entry.IsDir() {
			continue
		}

		// Skip hidden files
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if strings.HasSuffix(strings.ToLower(name), ".json") {
			maps = append(maps, MapEntry{
				Name: strings.TrimSuffix(name, filepath.Ext(name)),
				Path: filepath.Join(mapsPath, name),
			})
		}
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Name < maps[j].Name })
	return maps, nil
}
