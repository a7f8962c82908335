// Package viewport owns the scroll window over the detailed map and the
// per-frame composition of the map, asset and fog layers inside it.
package viewport

import "chosenoffset.com/rtsclient/internal/geom"

// Extent reports the size of the detailed (pixel-scale) map.
type Extent interface {
	DetailedMapWidth() int
	DetailedMapHeight() int
}

// Camera tracks the top-left corner of the visible window in detailed-map
// coordinates and the size of the last surface it was drawn to.
//
// After every mutation 0 <= x and x+lastWidth <= map width, unless the
// surface is wider than the map; then x is mapWidth-lastWidth, which is
// negative. The same holds for y.
type Camera struct {
	extent Extent

	x, y       int
	lastWidth  int
	lastHeight int
}

// NewCamera creates a camera at the map origin.
func NewCamera(extent Extent) *Camera {
	return &Camera{extent: extent}
}

// X returns the horizontal offset.
func (c *Camera) X() int { return c.x }

// Y returns the vertical offset.
func (c *Camera) Y() int { return c.y }

// Width returns the last known surface width.
func (c *Camera) Width() int { return c.lastWidth }

// Height returns the last known surface height.
func (c *Camera) Height() int { return c.lastHeight }

// SetX moves the window horizontally and returns the clamped offset.
func (c *Camera) SetX(x int) int {
	c.x = clampOffset(x, c.lastWidth, c.extent.DetailedMapWidth())
	return c.x
}

// SetY moves the window vertically and returns the clamped offset.
func (c *Camera) SetY(y int) int {
	c.y = clampOffset(y, c.lastHeight, c.extent.DetailedMapHeight())
	return c.y
}

// clampOffset keeps [offset, offset+view) inside [0, limit). The far edge
// wins over the origin when view is larger than limit.
func clampOffset(offset, view, limit int) int {
	if offset < 0 {
		offset = 0
	}
	if offset+view >= limit {
		offset = limit - view
	}
	return offset
}

// Resize records a new surface size and reclamps both offsets against it.
func (c *Camera) Resize(width, height int) {
	c.lastWidth = width
	c.lastHeight = height
	c.SetX(c.x)
	c.SetY(c.y)
}

// CenterOn puts p in the middle of the window, as far as the map allows.
func (c *Camera) CenterOn(p geom.PixelPosition) {
	c.SetX(p.X - c.lastWidth/2)
	c.SetY(p.Y - c.lastHeight/2)
}

// PanNorth scrolls up. Only the origin is enforced.
func (c *Camera) PanNorth(amount int) {
	c.y -= amount
	if c.y < 0 {
		c.y = 0
	}
}

// PanSouth scrolls down with full clamping.
func (c *Camera) PanSouth(amount int) {
	c.SetY(c.y + amount)
}

// PanEast scrolls right with full clamping.
func (c *Camera) PanEast(amount int) {
	c.SetX(c.x + amount)
}

// PanWest scrolls left. Only the origin is enforced.
func (c *Camera) PanWest(amount int) {
	c.x -= amount
	if c.x < 0 {
		c.x = 0
	}
}

// Visible returns the window currently shown.
func (c *Camera) Visible() geom.Rect {
	return geom.NewRect(c.x, c.y, c.lastWidth, c.lastHeight)
}

// DetailedPosition converts a point on the surface into detailed-map
// coordinates.
func (c *Camera) DetailedPosition(screen geom.PixelPosition) geom.PixelPosition {
	return geom.PixelPosition{X: screen.X + c.x, Y: screen.Y + c.y}
}
