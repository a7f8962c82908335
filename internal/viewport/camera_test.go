package viewport

import (
	"testing"

	"chosenoffset.com/rtsclient/internal/geom"
)

type fixedExtent struct {
	width, height int
}

func (e fixedExtent) DetailedMapWidth() int  { return e.width }
func (e fixedExtent) DetailedMapHeight() int { return e.height }

func newTestCamera(mapW, mapH, viewW, viewH int) *Camera {
	c := NewCamera(fixedExtent{mapW, mapH})
	c.Resize(viewW, viewH)
	return c
}

func TestSetXStaysInsideMap(t *testing.T) {
	for _, mapW := range []int{0, 1, 100, 640, 2048} {
		for _, viewW := range []int{0, 1, 50, 100, 640} {
			if viewW > mapW {
				continue
			}
			c := newTestCamera(mapW, 480, viewW, 100)
			for _, x := range []int{-1 << 20, -500, -1, 0, 1, 37, mapW - viewW - 1, mapW - viewW, mapW, 1 << 20} {
				got := c.SetX(x)
				if got < 0 || got+viewW > mapW {
					t.Errorf("map %d view %d: SetX(%d) = %d escapes the map", mapW, viewW, x, got)
				}
				if got != c.X() {
					t.Errorf("SetX returned %d but X() is %d", got, c.X())
				}
			}
		}
	}
}

func TestSetXKeepsInRangeValue(t *testing.T) {
	c := newTestCamera(1000, 1000, 200, 100)
	if got := c.SetX(300); got != 300 {
		t.Errorf("Expected 300, got %d", got)
	}
	if got := c.SetX(900); got != 800 {
		t.Errorf("Expected right edge clamp to 800, got %d", got)
	}
	if got := c.SetX(-20); got != 0 {
		t.Errorf("Expected left edge clamp to 0, got %d", got)
	}
}

func TestSetXViewportWiderThanMap(t *testing.T) {
	c := newTestCamera(300, 200, 400, 250)

	for _, x := range []int{-100, 0, 50, 1000} {
		if got := c.SetX(x); got != -100 {
			t.Errorf("SetX(%d): expected map width minus view width (-100), got %d", x, got)
		}
	}
	if got := c.SetY(10); got != -50 {
		t.Errorf("SetY(10): expected -50, got %d", got)
	}
}

func TestSetYSymmetric(t *testing.T) {
	c := newTestCamera(100, 1000, 50, 300)
	if got := c.SetY(750); got != 700 {
		t.Errorf("Expected 700, got %d", got)
	}
	if got := c.SetY(-1); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestCenterOnMatchesSetters(t *testing.T) {
	points := []geom.PixelPosition{
		{X: 0, Y: 0}, {X: 500, Y: 500}, {X: 999, Y: 1}, {X: -7, Y: 2000}, {X: 333, Y: 777},
	}
	for _, p := range points {
		a := newTestCamera(1000, 1000, 201, 99)
		b := newTestCamera(1000, 1000, 201, 99)

		a.CenterOn(p)
		wantX := b.SetX(p.X - 201/2)
		wantY := b.SetY(p.Y - 99/2)

		if a.X() != wantX || a.Y() != wantY {
			t.Errorf("CenterOn(%v): expected (%d, %d), got (%d, %d)", p, wantX, wantY, a.X(), a.Y())
		}
	}
}

func TestPanEastThenWestReturns(t *testing.T) {
	c := newTestCamera(1000, 1000, 200, 200)
	c.SetX(300)

	c.PanEast(50)
	if c.X() != 350 {
		t.Fatalf("Expected 350 after PanEast, got %d", c.X())
	}
	c.PanWest(50)
	if c.X() != 300 {
		t.Errorf("Expected to return to 300, got %d", c.X())
	}
}

func TestPanAtBoundaries(t *testing.T) {
	c := newTestCamera(1000, 1000, 200, 200)

	c.PanWest(40)
	if c.X() != 0 {
		t.Errorf("PanWest at origin: expected 0, got %d", c.X())
	}
	c.PanNorth(40)
	if c.Y() != 0 {
		t.Errorf("PanNorth at origin: expected 0, got %d", c.Y())
	}

	c.SetX(790)
	c.PanEast(50)
	if c.X() != 800 {
		t.Errorf("PanEast near edge: expected clamp to 800, got %d", c.X())
	}
	c.PanWest(50)
	if c.X() != 750 {
		t.Errorf("PanWest after clamp: expected 750 (not the pre-pan 790), got %d", c.X())
	}
}

func TestPanNorthWestSkipFarEdge(t *testing.T) {
	// A viewport wider than the map sits at a negative offset. North/West
	// pans only enforce the origin, South/East pans clamp both edges.
	c := newTestCamera(100, 100, 150, 150)
	if c.X() != -50 || c.Y() != -50 {
		t.Fatalf("Expected (-50, -50), got (%d, %d)", c.X(), c.Y())
	}

	c.PanWest(10)
	c.PanNorth(10)
	if c.X() != 0 || c.Y() != 0 {
		t.Errorf("Expected North/West pans to floor at 0, got (%d, %d)", c.X(), c.Y())
	}

	c.PanEast(10)
	c.PanSouth(10)
	if c.X() != -50 || c.Y() != -50 {
		t.Errorf("Expected South/East pans to reclamp to (-50, -50), got (%d, %d)", c.X(), c.Y())
	}
}

func TestPanSouthClamps(t *testing.T) {
	c := newTestCamera(500, 500, 100, 100)
	c.PanSouth(10000)
	if c.Y() != 400 {
		t.Errorf("Expected 400, got %d", c.Y())
	}
	c.PanNorth(50)
	if c.Y() != 350 {
		t.Errorf("Expected 350, got %d", c.Y())
	}
}

func TestResizeReclamps(t *testing.T) {
	c := newTestCamera(1000, 1000, 200, 200)
	c.SetX(800)
	c.SetY(800)

	c.Resize(400, 300)
	if c.X() != 600 || c.Y() != 700 {
		t.Errorf("Expected (600, 700) after growing the view, got (%d, %d)", c.X(), c.Y())
	}

	r := c.Visible()
	if r != geom.NewRect(600, 700, 400, 300) {
		t.Errorf("Unexpected visible rect %+v", r)
	}
}

func TestDetailedPosition(t *testing.T) {
	c := newTestCamera(1000, 1000, 200, 200)
	c.SetX(120)
	c.SetY(40)

	got := c.DetailedPosition(geom.PixelPosition{X: 10, Y: 20})
	if got.X != 130 || got.Y != 60 {
		t.Errorf("Expected (130, 60), got (%d, %d)", got.X, got.Y)
	}
}
