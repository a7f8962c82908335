package asset

import (
	"github.com/google/uuid"

	"chosenoffset.com/rtsclient/internal/geom"
)

// ID is a stable handle for an asset.
type ID = uuid.UUID

// Asset is a unit or structure placed on the map.
type Asset struct {
	ID     ID
	Type   Type
	Player int
	Tile   geom.TilePosition // top-left tile of the footprint
}

// New creates an asset with a fresh ID.
func New(t Type, player int, tile geom.TilePosition) *Asset {
	return &Asset{
		ID:     uuid.New(),
		Type:   t,
		Player: player,
		Tile:   tile,
	}
}

// Bounds returns the pixel footprint of the asset.
func (a *Asset) Bounds(tileSize int) geom.Rect {
	size := a.Type.Size() * tileSize
	return geom.NewRect(a.Tile.X*tileSize, a.Tile.Y*tileSize, size, size)
}

// Occupies reports whether tile lies inside the asset footprint.
func (a *Asset) Occupies(tile geom.TilePosition) bool {
	size := a.Type.Size()
	return tile.X >= a.Tile.X && tile.X < a.Tile.X+size &&
		tile.Y >= a.Tile.Y && tile.Y < a.Tile.Y+size
}

// List holds every asset of a session. It owns the assets; selections
// elsewhere only borrow pointers into it.
type List struct {
	assets []*Asset
	byID   map[ID]*Asset
}

// NewList creates an empty asset list.
func NewList() *List {
	return &List{byID: make(map[ID]*Asset)}
}

// Add registers an asset.
func (l *List) Add(a *Asset) {
	l.assets = append(l.assets, a)
	l.byID[a.ID] = a
}

// Remove drops the asset with the given ID.
func (l *List) Remove(id ID) {
	if _, ok := l.byID[id]; !ok {
		return
	}
	delete(l.byID, id)
	for i, a := range l.assets {
		if a.ID == id {
			l.assets = append(l.assets[:i], l.assets[i+1:]...)
			break
		}
	}
}

// Get looks an asset up by ID.
func (l *List) Get(id ID) (*Asset, bool) {
	a, ok := l.byID[id]
	return a, ok
}

// All returns the assets in insertion order. The slice must not be
// modified.
func (l *List) All() []*Asset {
	return l.assets
}

// At returns the topmost asset occupying tile.
func (l *List) At(tile geom.TilePosition) (*Asset, bool) {
	for i := len(l.assets) - 1; i >= 0; i-- {
		if l.assets[i].Occupies(tile) {
			return l.assets[i], true
		}
	}
	return nil, false
}

// InRect returns the assets whose footprint intersects r.
func (l *List) InRect(r geom.Rect, tileSize int) []*Asset {
	var out []*Asset
	for _, a := range l.assets {
		if a.Bounds(tileSize).Intersects(r) {
			out = append(out, a)
		}
	}
	return out
}
