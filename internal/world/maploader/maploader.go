package maploader

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/rtsclient/internal/asset"
	"chosenoffset.com/rtsclient/internal/geom"
	"chosenoffset.com/rtsclient/internal/render"
	"chosenoffset.com/rtsclient/internal/vpath"
	"chosenoffset.com/rtsclient/internal/world/tileset"
)

// Terrain codes used in the terrain rows of a map file.
var terrainNames = map[byte]string{
	'G': "grass",
	'D': "dirt",
	'F': "forest",
	'W': "water",
	'R': "rock",
}

// PlacedAsset is an asset entry in a map file.
type PlacedAsset struct {
	Type   string `json:"type"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Player int    `json:"player"`
}

// MapData represents the loaded map configuration
type MapData struct {
	Name        string        `json:"name"`
	Width       int           `json:"width"`     // In tiles
	Height      int           `json:"height"`    // In tiles
	TileSize    int           `json:"tile_size"` // Rendered tile size in pixels
	TilesetPath string        `json:"tileset"`   // Relative to the map file
	Terrain     []string      `json:"terrain"`   // One row per y, one terrain code per x
	Assets      []PlacedAsset `json:"assets"`
}

// Map represents a loaded map with its tileset and starting assets
type Map struct {
	Data    *MapData
	Tileset *tileset.Tileset // nil when the map names none
	Assets  *asset.List
}

// Parse validates map data and places its assets.
func Parse(data []byte) (*Map, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}

	assets := asset.NewList()
	for i, pa := range mapData.Assets {
		typ, ok := asset.TypeFromName(pa.Type)
		if !ok || typ == asset.TypeNone {
			return nil, fmt.Errorf("asset %d: unknown type %q", i, pa.Type)
		}
		assets.Add(asset.New(typ, pa.Player, geom.TilePosition{X: pa.X, Y: pa.Y}))
	}

	return &Map{Data: &mapData, Assets: assets}, nil
}

// LoadMap loads a map from a JSON file and its tileset. The tileset path
// is resolved against the directory of mapPath.
func LoadMap(mapPath string, loader render.ResourceLoader) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	gameMap, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mapPath, err)
	}

	if gameMap.Data.TilesetPath == "" {
		return gameMap, nil
	}

	tilesetPath, err := vpath.ResolveSibling(mapPath, gameMap.Data.TilesetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tileset for %s: %w", mapPath, err)
	}
	ts, err := tileset.Load(tilesetPath, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load tileset %s: %w", tilesetPath, err)
	}
	gameMap.Tileset = ts

	return gameMap, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if data.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", data.TileSize)
	}

	if len(data.Terrain) != data.Height {
		return fmt.Errorf("terrain height mismatch: expected %d, got %d", data.Height, len(data.Terrain))
	}

	for y, row := range data.Terrain {
		if len(row) != data.Width {
			return fmt.Errorf("terrain width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
		for x := 0; x < len(row); x++ {
			if _, ok := terrainNames[row[x]]; !ok {
				return fmt.Errorf("unknown terrain code %q at (%d, %d)", row[x], x, y)
			}
		}
	}

	for i, pa := range data.Assets {
		if pa.X < 0 || pa.X >= data.Width || pa.Y < 0 || pa.Y >= data.Height {
			return fmt.Errorf("asset %d out of bounds: (%d, %d)", i, pa.X, pa.Y)
		}
	}

	return nil
}

// GetTerrainAt returns the terrain name at the given grid coordinates
func (m *Map) GetTerrainAt(x, y int) (string, error) {
	if x < 0 || x >= m.Data.Width || y < 0 || y >= m.Data.Height {
		return "", fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}
	return terrainNames[m.Data.Terrain[y][x]], nil
}

// IsPassable returns whether ground units can cross the tile. Tiles the
// tileset does not describe fall back to the terrain name.
func (m *Map) IsPassable(x, y int) bool {
	name, err := m.GetTerrainAt(x, y)
	if err != nil {
		return false
	}
	if m.Tileset != nil {
		if tile, ok := m.Tileset.GetTile(name); ok {
			return tile.GetTilePropertyBool("passable", true)
		}
	}
	return name != "water" && name != "rock" && name != "forest"
}

// DetailedMapWidth returns the map width in pixels.
func (m *Map) DetailedMapWidth() int {
	return m.Data.Width * m.Data.TileSize
}

// DetailedMapHeight returns the map height in pixels.
func (m *Map) DetailedMapHeight() int {
	return m.Data.Height * m.Data.TileSize
}
