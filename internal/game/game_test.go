package game

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"chosenoffset.com/rtsclient/internal/asset"
	"chosenoffset.com/rtsclient/internal/geom"
	"chosenoffset.com/rtsclient/internal/render"
	"chosenoffset.com/rtsclient/internal/world/maploader"
)

type testImage struct {
	w, h     int
	disposed bool
}

func (i *testImage) Bounds() image.Rectangle                          { return image.Rect(0, 0, i.w, i.h) }
func (i *testImage) Size() (int, int)                                 { return i.w, i.h }
func (i *testImage) SubImage(r image.Rectangle) render.Image          { return i }
func (i *testImage) Fill(color.Color)                                 {}
func (i *testImage) Clear()                                           {}
func (i *testImage) DrawImage(render.Image, *render.DrawImageOptions) {}
func (i *testImage) Dispose()                                         { i.disposed = true }

type testRenderer struct {
	images int
	texts  []string
}

func (r *testRenderer) NewImage(width, height int) render.Image {
	r.images++
	return &testImage{w: width, h: height}
}

func (r *testRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {}

func (r *testRenderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
}

func (r *testRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {}

func (r *testRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.texts = append(r.texts, text)
}

func (r *testRenderer) MeasureText(text string, scale float64) (int, int) { return len(text) * 6, 13 }

// testInput holds the state reported for the next Update.
type testInput struct {
	pressed      map[render.Key]bool
	justPressed  map[render.Key]bool
	mouseDown    bool
	mouseClicked map[render.MouseButton]bool
	x, y         int
}

func newTestInput() *testInput {
	return &testInput{
		pressed:      make(map[render.Key]bool),
		justPressed:  make(map[render.Key]bool),
		mouseClicked: make(map[render.MouseButton]bool),
	}
}

func (in *testInput) IsKeyPressed(key render.Key) bool     { return in.pressed[key] }
func (in *testInput) IsKeyJustPressed(key render.Key) bool { return in.justPressed[key] }
func (in *testInput) GetCursorPosition() (int, int)        { return in.x, in.y }

func (in *testInput) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && in.mouseDown
}

func (in *testInput) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return in.mouseClicked[button]
}

// tap reports key as just pressed for a single Update.
func (in *testInput) tap(t *testing.T, g *Game, key render.Key) {
	t.Helper()
	in.justPressed[key] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	delete(in.justPressed, key)
}

// 10x10 tiles of 32 pixels: a 320x320 detailed map.
func testMapJSON() string {
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = `"` + strings.Repeat("G", 10) + `"`
	}
	return `{
		"name": "test",
		"width": 10,
		"height": 10,
		"tile_size": 32,
		"terrain": [` + strings.Join(rows, ",") + `],
		"assets": [
			{"type": "Peasant", "x": 5, "y": 5, "player": 1},
			{"type": "Farm", "x": 6, "y": 6, "player": 1},
			{"type": "Footman", "x": 7, "y": 5, "player": 2}
		]
	}`
}

func newTestGame(t *testing.T) (*Game, *testInput, *testRenderer) {
	t.Helper()
	m, err := maploader.Parse([]byte(testMapJSON()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	in := newTestInput()
	r := &testRenderer{}
	g := New(m, r, in, Options{
		ScreenWidth:  160,
		ScreenHeight: 160,
		PanStep:      16,
		LocalPlayer:  1,
		SightRadius:  2,
	}, nil)
	return g, in, r
}

func TestNewCentersOnOwnedAsset(t *testing.T) {
	g, _, _ := newTestGame(t)

	// Peasant center is (176, 176); half the window is 80.
	if g.Camera().X() != 96 || g.Camera().Y() != 96 {
		t.Errorf("Expected camera at (96, 96), got (%d, %d)", g.Camera().X(), g.Camera().Y())
	}
}

func TestArrowKeysPanCamera(t *testing.T) {
	g, in, _ := newTestGame(t)

	in.pressed[render.KeyRight] = true
	in.pressed[render.KeyUp] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.Camera().X() != 112 || g.Camera().Y() != 80 {
		t.Errorf("Expected camera at (112, 80), got (%d, %d)", g.Camera().X(), g.Camera().Y())
	}

	// Holding right runs into the far edge at 320-160.
	in.pressed[render.KeyUp] = false
	for i := 0; i < 10; i++ {
		g.Update()
	}
	if g.Camera().X() != 160 {
		t.Errorf("Expected camera clamped at x=160, got %d", g.Camera().X())
	}
}

func TestClickSelectsAssetUnderCursor(t *testing.T) {
	g, in, _ := newTestGame(t)

	// Screen (70, 70) is detailed (166, 166), tile (5, 5).
	in.x, in.y = 70, 70
	in.mouseDown = true
	g.Update()
	in.mouseDown = false
	g.Update()

	if len(g.Selection) != 1 || g.Selection[0].Type != asset.TypePeasant {
		t.Fatalf("Expected the peasant selected, got %v", g.Selection)
	}
	if !g.SelectRect.Empty() {
		t.Errorf("Expected drag rectangle cleared, got %+v", g.SelectRect)
	}
}

func TestDragSelectsOwnAssetsOnly(t *testing.T) {
	g, in, _ := newTestGame(t)

	in.mouseDown = true
	g.Update()
	in.x, in.y = 150, 150
	g.Update()
	if g.SelectRect != geom.NewRect(96, 96, 150, 150) {
		t.Errorf("Unexpected drag rectangle %+v", g.SelectRect)
	}

	in.mouseDown = false
	g.Update()

	if len(g.Selection) != 2 {
		t.Fatalf("Expected peasant and farm selected, got %d assets", len(g.Selection))
	}
	for _, a := range g.Selection {
		if a.Player != 1 {
			t.Errorf("Selected an enemy %s", a.Type)
		}
	}
}

func TestBuildRequiresPeasant(t *testing.T) {
	g, in, _ := newTestGame(t)

	in.tap(t, g, render.KeyB)

	if g.Capability != asset.CapabilityNone {
		t.Errorf("Expected no capability without a peasant, got %d", g.Capability)
	}
	if len(g.Messages) != 1 {
		t.Errorf("Expected a hint message, got %v", g.Messages)
	}
}

func TestPlacementFollowsCursor(t *testing.T) {
	g, in, _ := newTestGame(t)
	peasant := g.GameMap.Assets.All()[0]
	g.Selection = []*asset.Asset{peasant}

	in.x, in.y = 10, 40
	in.tap(t, g, render.KeyB)

	if g.Capability != asset.CapabilityBuildFarm {
		t.Fatalf("Expected farm placement, got %d", g.Capability)
	}
	want := geom.TilePosition{X: 3, Y: 4}
	if len(g.BuildTiles) != 1 || g.BuildTiles[0] != want {
		t.Errorf("Expected build tile %v, got %v", want, g.BuildTiles)
	}

	in.tap(t, g, render.KeyEscape)
	if g.Capability != asset.CapabilityNone || g.BuildTiles != nil {
		t.Errorf("Expected placement cancelled, got %d %v", g.Capability, g.BuildTiles)
	}
}

func TestRightClickCancelsPlacement(t *testing.T) {
	g, in, _ := newTestGame(t)
	g.Selection = []*asset.Asset{g.GameMap.Assets.All()[0]}
	in.tap(t, g, render.KeyH)

	in.mouseClicked[render.MouseButtonRight] = true
	g.Update()

	if g.Capability != asset.CapabilityNone {
		t.Errorf("Expected right click to cancel, got %d", g.Capability)
	}
}

func TestCenterOnSelection(t *testing.T) {
	g, in, _ := newTestGame(t)
	g.Camera().SetX(0)
	g.Camera().SetY(0)
	g.Selection = []*asset.Asset{g.GameMap.Assets.All()[1]}

	in.tap(t, g, render.KeyC)

	// Farm anchor tile (6, 6) has center (208, 208).
	if g.Camera().X() != 128 || g.Camera().Y() != 128 {
		t.Errorf("Expected camera at (128, 128), got (%d, %d)", g.Camera().X(), g.Camera().Y())
	}
}

func TestMessagesExpire(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.ShowMessage("hello")

	for i := 0; i < 200; i++ {
		g.Update()
	}
	if len(g.Messages) != 0 {
		t.Errorf("Expected messages to expire, got %v", g.Messages)
	}
}

func TestDrawKeepsTypeTextureInSync(t *testing.T) {
	g, _, r := newTestGame(t)

	g.Draw(&testImage{w: 160, h: 160})
	g.Draw(&testImage{w: 160, h: 160})
	if r.images != 1 {
		t.Errorf("Expected one type texture, got %d", r.images)
	}
	first := g.TypeTexture.(*testImage)

	g.Draw(&testImage{w: 200, h: 120})
	if r.images != 2 || !first.disposed {
		t.Errorf("Expected the type texture to be replaced on resize")
	}
	if g.Camera().Width() != 200 || g.Camera().Height() != 120 {
		t.Errorf("Expected camera resized to 200x120, got %dx%d", g.Camera().Width(), g.Camera().Height())
	}
	if len(r.texts) == 0 || !strings.HasPrefix(r.texts[len(r.texts)-1], "view ") {
		t.Errorf("Expected a status line, got %v", r.texts)
	}
}
