package layers

import (
	"image/color"

	"chosenoffset.com/rtsclient/internal/asset"
	"chosenoffset.com/rtsclient/internal/geom"
	"chosenoffset.com/rtsclient/internal/render"
)

var playerColors = []color.RGBA{
	{200, 200, 200, 255}, // neutral
	{40, 80, 200, 255},
	{200, 40, 40, 255},
	{40, 160, 60, 255},
	{200, 160, 40, 255},
}

var (
	selectionColor    = color.RGBA{0, 255, 0, 255}
	placeValidColor   = color.RGBA{0, 255, 0, 96}
	placeBlockedColor = color.RGBA{255, 0, 0, 96}
)

// Terrain answers whether a tile can be built on.
type Terrain interface {
	IsPassable(x, y int) bool
}

// AssetRenderer draws assets, selection markers and placement previews.
type AssetRenderer struct {
	assets   *asset.List
	terrain  Terrain
	tileSize int
	renderer render.Renderer
}

// NewAssetRenderer creates an asset layer over assets.
func NewAssetRenderer(assets *asset.List, terrain Terrain, tileSize int, r render.Renderer) *AssetRenderer {
	return &AssetRenderer{assets: assets, terrain: terrain, tileSize: tileSize, renderer: r}
}

// DrawSelections outlines the selected assets inside rect. The drag
// rectangle is shown only while no placement is in progress.
func (a *AssetRenderer) DrawSelections(surface render.Image, rect geom.Rect, selection []*asset.Asset, selectRect geom.Rect, placing bool) {
	for _, sel := range selection {
		bounds := sel.Bounds(a.tileSize)
		if !bounds.Intersects(rect) {
			continue
		}
		a.strokeRect(surface, rect, bounds, selectionColor)
	}

	if !placing && !selectRect.Empty() && selectRect.Intersects(rect) {
		a.strokeRect(surface, rect, selectRect, selectionColor)
	}
}

// DrawAssets fills each visible asset footprint with its player color and
// writes its type and owner into typeSurface.
func (a *AssetRenderer) DrawAssets(surface, typeSurface render.Image, rect geom.Rect) {
	for _, as := range a.assets.InRect(rect, a.tileSize) {
		bounds := as.Bounds(a.tileSize)
		x, y := float32(bounds.X-rect.X), float32(bounds.Y-rect.Y)
		w, h := float32(bounds.Width), float32(bounds.Height)

		if as.Type.IsStructure() {
			a.renderer.FillRect(surface, x+1, y+1, w-2, h-2, playerColor(as.Player))
		} else {
			a.renderer.FillCircle(surface, x+w/2, y+h/2, w/2-2, playerColor(as.Player))
		}
		a.renderer.FillRect(typeSurface, x, y, w, h, TypeColor(as.Type, as.Player))
	}
}

// DrawOverlays labels the visible structures.
func (a *AssetRenderer) DrawOverlays(surface render.Image, rect geom.Rect) {
	for _, as := range a.assets.InRect(rect, a.tileSize) {
		if !as.Type.IsStructure() {
			continue
		}
		bounds := as.Bounds(a.tileSize)
		a.renderer.DrawText(surface, as.Type.String(), bounds.X-rect.X+4, bounds.Y-rect.Y+4, color.White, 1.0)
	}
}

// DrawPlacement previews typ with its footprint centered on the tile at
// pos. The preview is green when every tile is passable and free (the
// builder itself does not count) and red otherwise.
func (a *AssetRenderer) DrawPlacement(surface render.Image, rect geom.Rect, pos geom.PixelPosition, typ asset.Type, builder *asset.Asset) {
	size := typ.Size()
	center := geom.PixelToTile(pos, a.tileSize)
	origin := geom.TilePosition{X: center.X - (size-1)/2, Y: center.Y - (size-1)/2}

	footprint := geom.NewRect(origin.X*a.tileSize, origin.Y*a.tileSize, size*a.tileSize, size*a.tileSize)
	if !footprint.Intersects(rect) {
		return
	}

	clr := placeValidColor
	if !a.CanPlace(origin, size, builder) {
		clr = placeBlockedColor
	}
	a.renderer.FillRect(surface, float32(footprint.X-rect.X), float32(footprint.Y-rect.Y),
		float32(footprint.Width), float32(footprint.Height), clr)
}

// CanPlace reports whether a size x size footprint at origin is buildable.
func (a *AssetRenderer) CanPlace(origin geom.TilePosition, size int, builder *asset.Asset) bool {
	for y := origin.Y; y < origin.Y+size; y++ {
		for x := origin.X; x < origin.X+size; x++ {
			if a.terrain != nil && !a.terrain.IsPassable(x, y) {
				return false
			}
			if occupant, ok := a.assets.At(geom.TilePosition{X: x, Y: y}); ok && occupant != builder {
				return false
			}
		}
	}
	return true
}

func (a *AssetRenderer) strokeRect(surface render.Image, view, r geom.Rect, clr color.Color) {
	a.renderer.StrokeRect(surface, float32(r.X-view.X), float32(r.Y-view.Y),
		float32(r.Width), float32(r.Height), 1, clr)
}

// TypeColor encodes an asset type and owner for the type surface.
func TypeColor(t asset.Type, player int) color.RGBA {
	return color.RGBA{R: uint8(t), G: uint8(player), B: 0, A: 255}
}

func playerColor(player int) color.RGBA {
	if player < 0 || player >= len(playerColors) {
		return playerColors[0]
	}
	return playerColors[player]
}
