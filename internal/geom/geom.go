// Package geom holds the integer coordinate types shared by the camera,
// the compositor and the rendering layers.
package geom

// Rect is a region of the detailed (pixel-scale) map.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns a rectangle, flooring negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p PixelPosition) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// PixelPosition is a point in detailed-map (pixel) space.
type PixelPosition struct {
	X, Y int
}

// TilePosition is a point in tile space.
type TilePosition struct {
	X, Y int
}

// TileToPixel returns the pixel at the center of tile.
func TileToPixel(tile TilePosition, tileSize int) PixelPosition {
	return PixelPosition{
		X: tile.X*tileSize + tileSize/2,
		Y: tile.Y*tileSize + tileSize/2,
	}
}

// PixelToTile returns the tile containing p.
func PixelToTile(p PixelPosition, tileSize int) TilePosition {
	if tileSize <= 0 {
		return TilePosition{}
	}
	return TilePosition{X: floorDiv(p.X, tileSize), Y: floorDiv(p.Y, tileSize)}
}

// ToScreen translates p into the coordinate space of the visible window.
func (p PixelPosition) ToScreen(visible Rect) PixelPosition {
	return PixelPosition{X: p.X - visible.X, Y: p.Y - visible.Y}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
