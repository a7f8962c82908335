// Package placeholders draws a flat terrain atlas and writes the tileset
// configuration that points at it.
package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"chosenoffset.com/rtsclient/internal/world/tileset"
)

// TileSize is the standard size for placeholder tiles
const TileSize = 32

// terrainTile describes one generated terrain tile.
type terrainTile struct {
	name     string
	base     color.RGBA
	pattern  string
	passable bool
}

var terrainTiles = []terrainTile{
	{"grass", color.RGBA{60, 140, 40, 255}, "dots", true},
	{"dirt", color.RGBA{140, 110, 60, 255}, "dots", true},
	{"forest", color.RGBA{20, 80, 30, 255}, "cross", false},
	{"water", color.RGBA{30, 60, 160, 255}, "diagonal", false},
	{"rock", color.RGBA{90, 90, 90, 255}, "grid", false},
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreatePatternedTile creates a tile with a simple pattern
func CreatePatternedTile(baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(baseColor)

	switch pattern {
	case "grid":
		for i := 0; i < TileSize; i += 8 {
			for x := 0; x < TileSize; x++ {
				img.Set(x, i, patternColor)
				img.Set(i, x, patternColor)
			}
		}
	case "dots":
		quarter := TileSize / 4
		threeQuarter := 3 * TileSize / 4
		dots := []image.Point{{quarter, quarter}, {threeQuarter, quarter}, {quarter, threeQuarter}, {threeQuarter, threeQuarter}}
		for _, p := range dots {
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					img.Set(p.X+dx, p.Y+dy, patternColor)
				}
			}
		}
	case "cross":
		mid := TileSize / 2
		for i := 2; i < TileSize-2; i++ {
			img.Set(mid, i, patternColor)
			img.Set(i, mid, patternColor)
		}
	case "diagonal":
		for i := 0; i < TileSize; i++ {
			img.Set(i, i, patternColor)
			img.Set(i, TileSize-1-i, patternColor)
		}
	}

	return img
}

// CreateAtlas creates a sprite atlas from multiple tiles
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	rows := (len(tiles) + columns - 1) / columns
	atlas := image.NewRGBA(image.Rect(0, 0, columns*TileSize, rows*TileSize))

	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := (i % columns) * TileSize
		y := (i / columns) * TileSize
		draw.Draw(atlas, image.Rect(x, y, x+TileSize, y+TileSize), tile, image.Point{}, draw.Src)
	}

	return atlas
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// TerrainTileset builds the terrain atlas and its configuration. Tiles sit
// in a single row in terrainTiles order.
func TerrainTileset(imageName string) (*image.RGBA, *tileset.Config) {
	config := &tileset.Config{
		Name:       "terrain",
		ImagePath:  imageName,
		TileWidth:  TileSize,
		TileHeight: TileSize,
	}

	tiles := make([]*image.RGBA, 0, len(terrainTiles))
	for i, t := range terrainTiles {
		tiles = append(tiles, CreatePatternedTile(t.base, Darken(t.base, 0.7), t.pattern))
		config.Tiles = append(config.Tiles, tileset.TileDefinition{
			Name:   t.name,
			AtlasX: i,
			AtlasY: 0,
			Properties: map[string]interface{}{
				"color":    fmt.Sprintf("#%02x%02x%02x", t.base.R, t.base.G, t.base.B),
				"passable": t.passable,
			},
		})
	}

	return CreateAtlas(tiles, len(tiles)), config
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateAndSave writes terrain.png and terrain.json into dir.
func GenerateAndSave(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	atlas, config := TerrainTileset("terrain.png")
	if err := SavePNG(atlas, filepath.Join(dir, "terrain.png")); err != nil {
		return fmt.Errorf("failed to save terrain atlas: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tileset config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "terrain.json"), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to save tileset config: %w", err)
	}

	return nil
}
