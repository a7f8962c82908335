package layers

import (
	"image/color"

	"chosenoffset.com/rtsclient/internal/asset"
	"chosenoffset.com/rtsclient/internal/geom"
	"chosenoffset.com/rtsclient/internal/render"
)

// Visibility of a tile to the local player.
type Visibility uint8

const (
	Unseen Visibility = iota
	Seen              // explored earlier, not currently in sight
	Visible
)

var (
	unseenColor = color.RGBA{0, 0, 0, 255}
	seenColor   = color.RGBA{0, 0, 0, 128}
)

// FogRenderer tracks what the local player has explored and darkens the
// rest.
type FogRenderer struct {
	width, height int
	tileSize      int
	tiles         []Visibility
	renderer      render.Renderer
}

// NewFogRenderer creates a fully unexplored fog layer.
func NewFogRenderer(width, height, tileSize int, r render.Renderer) *FogRenderer {
	return &FogRenderer{
		width:    width,
		height:   height,
		tileSize: tileSize,
		tiles:    make([]Visibility, width*height),
		renderer: r,
	}
}

// At returns the visibility of a tile. Tiles off the map are unseen.
func (f *FogRenderer) At(x, y int) Visibility {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Unseen
	}
	return f.tiles[y*f.width+x]
}

// Update downgrades visible tiles to seen, then reveals a square of
// radius sight around every asset owned by player.
func (f *FogRenderer) Update(assets []*asset.Asset, player, sight int) {
	for i, v := range f.tiles {
		if v == Visible {
			f.tiles[i] = Seen
		}
	}
	for _, a := range assets {
		if a.Player != player {
			continue
		}
		size := a.Type.Size()
		for y := a.Tile.Y - sight; y < a.Tile.Y+size+sight; y++ {
			for x := a.Tile.X - sight; x < a.Tile.X+size+sight; x++ {
				if x < 0 || x >= f.width || y < 0 || y >= f.height {
					continue
				}
				f.tiles[y*f.width+x] = Visible
			}
		}
	}
}

// DrawMap darkens unseen and out-of-sight tiles inside rect.
func (f *FogRenderer) DrawMap(surface render.Image, rect geom.Rect) {
	first, last := tileSpan(rect, f.tileSize)
	size := float32(f.tileSize)

	for y := first.Y; y <= last.Y; y++ {
		for x := first.X; x <= last.X; x++ {
			var clr color.RGBA
			switch f.At(x, y) {
			case Visible:
				continue
			case Seen:
				clr = seenColor
			default:
				clr = unseenColor
			}
			f.renderer.FillRect(surface, float32(x*f.tileSize-rect.X), float32(y*f.tileSize-rect.Y), size, size, clr)
		}
	}
}
