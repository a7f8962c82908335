package geom

import "testing"

func TestTileToPixel(t *testing.T) {
	p := TileToPixel(TilePosition{X: 2, Y: 3}, 32)
	if p.X != 80 || p.Y != 112 {
		t.Errorf("Expected (80, 112), got (%d, %d)", p.X, p.Y)
	}
}

func TestPixelToTile(t *testing.T) {
	tests := []struct {
		p    PixelPosition
		want TilePosition
	}{
		{PixelPosition{0, 0}, TilePosition{0, 0}},
		{PixelPosition{31, 32}, TilePosition{0, 1}},
		{PixelPosition{-1, -33}, TilePosition{-1, -2}},
	}
	for _, tt := range tests {
		if got := PixelToTile(tt.p, 32); got != tt.want {
			t.Errorf("PixelToTile(%v): expected %v, got %v", tt.p, tt.want, got)
		}
	}
}

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 100, -5)
	if r.Height != 0 || !r.Empty() {
		t.Errorf("Expected negative height to floor to an empty rect, got %+v", r)
	}

	r = NewRect(10, 20, 100, 50)
	if r.Right() != 110 || r.Bottom() != 70 {
		t.Errorf("Unexpected edges %d, %d", r.Right(), r.Bottom())
	}
	if !r.Contains(PixelPosition{10, 20}) || r.Contains(PixelPosition{110, 20}) {
		t.Error("Contains should include the top-left edge and exclude the right edge")
	}
	if !r.Intersects(NewRect(100, 60, 20, 20)) || r.Intersects(NewRect(110, 20, 5, 5)) {
		t.Error("Unexpected intersection result")
	}
}
