// Package layers holds the concrete map, asset and fog renderers the
// viewport compositor draws with.
package layers

import (
	"image/color"

	"chosenoffset.com/rtsclient/internal/geom"
	"chosenoffset.com/rtsclient/internal/render"
	"chosenoffset.com/rtsclient/internal/viewport"
	"chosenoffset.com/rtsclient/internal/world/maploader"
)

var terrainColors = map[string]color.RGBA{
	"grass":  {60, 140, 40, 255},
	"dirt":   {140, 110, 60, 255},
	"forest": {20, 80, 30, 255},
	"water":  {30, 60, 160, 255},
	"rock":   {90, 90, 90, 255},
}

// Type-surface colors. The type surface lets the host pick what lies
// under the cursor without walking the asset list.
var (
	typePassable   = color.RGBA{0, 0, 1, 255}
	typeImpassable = color.RGBA{0, 0, 2, 255}
)

// MapRenderer draws the terrain of a loaded map.
type MapRenderer struct {
	gameMap  *maploader.Map
	renderer render.Renderer
}

// NewMapRenderer creates a terrain layer for gameMap.
func NewMapRenderer(gameMap *maploader.Map, r render.Renderer) *MapRenderer {
	return &MapRenderer{gameMap: gameMap, renderer: r}
}

// DetailedMapWidth returns the map width in pixels.
func (m *MapRenderer) DetailedMapWidth() int { return m.gameMap.DetailedMapWidth() }

// DetailedMapHeight returns the map height in pixels.
func (m *MapRenderer) DetailedMapHeight() int { return m.gameMap.DetailedMapHeight() }

// TileSize returns the rendered tile size in pixels.
func (m *MapRenderer) TileSize() int { return m.gameMap.Data.TileSize }

// DrawMap draws every tile intersecting rect. Terrain is drawn from the
// tileset image when one is loaded, otherwise as flat colors.
func (m *MapRenderer) DrawMap(surface, typeSurface render.Image, rect geom.Rect, _ viewport.AssetRenderer) {
	tileSize := m.TileSize()
	first, last := tileSpan(rect, tileSize)

	for y := first.Y; y <= last.Y; y++ {
		for x := first.X; x <= last.X; x++ {
			name, err := m.gameMap.GetTerrainAt(x, y)
			if err != nil {
				continue
			}

			screenX := float32(x*tileSize - rect.X)
			screenY := float32(y*tileSize - rect.Y)
			size := float32(tileSize)

			if !m.drawTile(surface, name, float64(screenX), float64(screenY)) {
				m.renderer.FillRect(surface, screenX, screenY, size, size, m.terrainColor(name))
			}

			typeColor := typeImpassable
			if m.gameMap.IsPassable(x, y) {
				typeColor = typePassable
			}
			m.renderer.FillRect(typeSurface, screenX, screenY, size, size, typeColor)
		}
	}
}

func (m *MapRenderer) drawTile(surface render.Image, name string, x, y float64) bool {
	ts := m.gameMap.Tileset
	if ts == nil || ts.Image == nil {
		return false
	}
	tile, ok := ts.GetTile(name)
	if !ok {
		return false
	}

	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Scale(float64(m.TileSize())/float64(ts.Config.TileWidth), float64(m.TileSize())/float64(ts.Config.TileHeight))
	opts.GeoM.Translate(x, y)
	surface.DrawImage(ts.GetTileSubImage(tile), opts)
	return true
}

func (m *MapRenderer) terrainColor(name string) color.RGBA {
	fallback := terrainColors[name]
	if ts := m.gameMap.Tileset; ts != nil {
		if tile, ok := ts.GetTile(name); ok {
			return tile.Color(fallback)
		}
	}
	return fallback
}

// tileSpan returns the first and last tiles intersecting rect.
func tileSpan(rect geom.Rect, tileSize int) (first, last geom.TilePosition) {
	first = geom.PixelToTile(geom.PixelPosition{X: rect.X, Y: rect.Y}, tileSize)
	last = geom.PixelToTile(geom.PixelPosition{X: rect.Right() - 1, Y: rect.Bottom() - 1}, tileSize)
	return first, last
}
