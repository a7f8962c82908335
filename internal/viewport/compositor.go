package viewport

import (
	"chosenoffset.com/rtsclient/internal/asset"
	"chosenoffset.com/rtsclient/internal/geom"
	"chosenoffset.com/rtsclient/internal/render"
)

// MapProvider draws terrain and knows the detailed map size.
type MapProvider interface {
	Extent
	TileSize() int
	DrawMap(surface, typeSurface render.Image, rect geom.Rect, assets AssetRenderer)
}

// AssetRenderer draws units, structures and their decorations.
type AssetRenderer interface {
	DrawSelections(surface render.Image, rect geom.Rect, selection []*asset.Asset, selectRect geom.Rect, placing bool)
	DrawAssets(surface, typeSurface render.Image, rect geom.Rect)
	DrawOverlays(surface render.Image, rect geom.Rect)
	DrawPlacement(surface render.Image, rect geom.Rect, pos geom.PixelPosition, typ asset.Type, builder *asset.Asset)
}

// FogRenderer draws the fog of war.
type FogRenderer interface {
	DrawMap(surface render.Image, rect geom.Rect)
}

// Compositor draws one frame of the visible window, layer by layer.
type Compositor struct {
	camera *Camera
	world  MapProvider
	assets AssetRenderer
	fog    FogRenderer
}

// NewCompositor creates a compositor and a camera bound to world.
func NewCompositor(world MapProvider, assets AssetRenderer, fog FogRenderer) *Compositor {
	return &Compositor{
		camera: NewCamera(world),
		world:  world,
		assets: assets,
		fog:    fog,
	}
}

// Camera returns the camera driven by the compositor.
func (c *Compositor) Camera() *Camera {
	return c.camera
}

// DrawFrame draws terrain, selections, assets, overlays, placement previews
// and fog, in that order, each restricted to the visible window.
//
// selection is borrowed; its first entry, if any, is the builder the
// placement previews are anchored on. Previews are drawn only when
// capability places a structure.
func (c *Compositor) DrawFrame(buildTiles []geom.TilePosition, surface, typeSurface render.Image,
	selection []*asset.Asset, selectRect geom.Rect, capability asset.Capability) {
	c.camera.Resize(surface.Size())
	rect := c.camera.Visible()

	placeType := asset.PlacementType(capability)
	placing := placeType != asset.TypeNone

	c.world.DrawMap(surface, typeSurface, rect, c.assets)
	c.assets.DrawSelections(surface, rect, selection, selectRect, placing)
	c.assets.DrawAssets(surface, typeSurface, rect)
	c.assets.DrawOverlays(surface, rect)

	if placing {
		var builder *asset.Asset
		if len(selection) > 0 {
			builder = selection[0]
		}
		tileSize := c.world.TileSize()
		for _, tile := range buildTiles {
			c.assets.DrawPlacement(surface, rect, geom.TileToPixel(tile, tileSize), placeType, builder)
		}
	}

	c.fog.DrawMap(surface, rect)
}
