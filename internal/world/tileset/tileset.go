package tileset

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"

	"chosenoffset.com/rtsclient/internal/render"
	"chosenoffset.com/rtsclient/internal/vpath"
)

// TileDefinition defines a single tile within a tileset
type TileDefinition struct {
	Name       string                 `json:"name"`       // Terrain name (e.g., "grass", "water")
	AtlasX     int                    `json:"atlas_x"`    // X position in atlas (in tiles)
	AtlasY     int                    `json:"atlas_y"`    // Y position in atlas (in tiles)
	Properties map[string]interface{} `json:"properties"` // Custom properties (color, passable, ...)
}

// Config defines the JSON configuration for a tileset
type Config struct {
	Name       string           `json:"name"`
	ImagePath  string           `json:"image_path"` // Relative to the config file; optional
	TileWidth  int              `json:"tile_width"`
	TileHeight int              `json:"tile_height"`
	Tiles      []TileDefinition `json:"tiles"`
}

// Tileset is a loaded tileset. Image is nil for color-only tilesets.
type Tileset struct {
	Config      *Config
	Image       render.Image
	TilesByName map[string]*TileDefinition
}

// Parse validates a tileset configuration and builds the name lookup.
func Parse(data []byte) (*Tileset, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tileset config: %w", err)
	}

	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}

	tilesByName := make(map[string]*TileDefinition)
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		if tile.Name != "" {
			tilesByName[tile.Name] = tile
		}
	}

	return &Tileset{Config: &config, TilesByName: tilesByName}, nil
}

// Load reads a tileset configuration and, when it names one, its image.
// The image path is resolved against the directory of configPath.
func Load(configPath string, loader render.ResourceLoader) (*Tileset, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tileset config %s: %w", configPath, err)
	}

	ts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	if ts.Config.ImagePath == "" || loader == nil {
		return ts, nil
	}

	imagePath, err := vpath.ResolveSibling(configPath, ts.Config.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tileset image: %w", err)
	}
	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tileset image %s: %w", imagePath, err)
	}
	ts.Image = img

	return ts, nil
}

// GetTile returns a tile definition by name
func (ts *Tileset) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := ts.TilesByName[name]
	return tile, ok
}

// GetTileSubImage returns the sub-image for a specific tile, or nil for
// color-only tilesets.
func (ts *Tileset) GetTileSubImage(tile *TileDefinition) render.Image {
	if ts.Image == nil {
		return nil
	}
	x := tile.AtlasX * ts.Config.TileWidth
	y := tile.AtlasY * ts.Config.TileHeight

	rect := image.Rect(x, y, x+ts.Config.TileWidth, y+ts.Config.TileHeight)
	return ts.Image.SubImage(rect)
}

// GetTileProperty retrieves a property from a tile definition
func (td *TileDefinition) GetTileProperty(key string) (interface{}, bool) {
	if td.Properties == nil {
		return nil, false
	}
	val, ok := td.Properties[key]
	return val, ok
}

// GetTilePropertyBool retrieves a boolean property
func (td *TileDefinition) GetTilePropertyBool(key string, defaultVal bool) bool {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if boolVal, ok := val.(bool); ok {
		return boolVal
	}
	return defaultVal
}

// GetTilePropertyString retrieves a string property
func (td *TileDefinition) GetTilePropertyString(key string, defaultVal string) string {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if strVal, ok := val.(string); ok {
		return strVal
	}
	return defaultVal
}

// Color returns the "color" property ("#rrggbb") or defaultVal.
func (td *TileDefinition) Color(defaultVal color.RGBA) color.RGBA {
	hex := strings.TrimPrefix(td.GetTilePropertyString("color", ""), "#")
	if len(hex) != 6 {
		return defaultVal
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return defaultVal
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
