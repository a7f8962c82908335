package game

import (
	"log"

	"chosenoffset.com/rtsclient/internal/asset"
	"chosenoffset.com/rtsclient/internal/debuglog"
	"chosenoffset.com/rtsclient/internal/geom"
	"chosenoffset.com/rtsclient/internal/render"
	"chosenoffset.com/rtsclient/internal/render/layers"
	"chosenoffset.com/rtsclient/internal/viewport"
	"chosenoffset.com/rtsclient/internal/world/maploader"
)

// Options configures a Game.
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	PanStep      int // Pixels scrolled per tick while an arrow key is held
	LocalPlayer  int
	SightRadius  int // In tiles
}

// Game holds all client state for one session.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	GameMap      *maploader.Map
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Debug        *debuglog.Logger

	// Viewport and its layers
	Compositor  *viewport.Compositor
	AssetLayer  *layers.AssetRenderer
	FogLayer    *layers.FogRenderer
	TypeTexture render.Image

	// Selection state handed to the compositor every frame
	Selection  []*asset.Asset
	SelectRect geom.Rect
	Capability asset.Capability
	BuildTiles []geom.TilePosition

	PanStep     int
	LocalPlayer int
	SightRadius int

	// UI state
	Messages []Message
	drag     dragState

	// Debug
	FrameCount int
}

// New creates a game over a loaded map. debug may be nil.
func New(gameMap *maploader.Map, r render.Renderer, input render.InputManager, opts Options, debug *debuglog.Logger) *Game {
	tileSize := gameMap.Data.TileSize
	mapLayer := layers.NewMapRenderer(gameMap, r)
	assetLayer := layers.NewAssetRenderer(gameMap.Assets, gameMap, tileSize, r)
	fogLayer := layers.NewFogRenderer(gameMap.Data.Width, gameMap.Data.Height, tileSize, r)

	g := &Game{
		ScreenWidth:  opts.ScreenWidth,
		ScreenHeight: opts.ScreenHeight,
		GameMap:      gameMap,
		Renderer:     r,
		InputMgr:     input,
		Debug:        debug,
		Compositor:   viewport.NewCompositor(mapLayer, assetLayer, fogLayer),
		AssetLayer:   assetLayer,
		FogLayer:     fogLayer,
		PanStep:      opts.PanStep,
		LocalPlayer:  opts.LocalPlayer,
		SightRadius:  opts.SightRadius,
	}

	g.Camera().Resize(opts.ScreenWidth, opts.ScreenHeight)
	g.FogLayer.Update(gameMap.Assets.All(), g.LocalPlayer, g.SightRadius)
	if home := g.firstOwned(); home != nil {
		g.Camera().CenterOn(geom.TileToPixel(home.Tile, tileSize))
	}

	return g
}

// Camera returns the viewport camera.
func (g *Game) Camera() *viewport.Camera {
	return g.Compositor.Camera()
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	g.updateMessages(dt)

	g.updateScroll()
	g.updateCommands()
	g.updatePointer()

	g.FogLayer.Update(g.GameMap.Assets.All(), g.LocalPlayer, g.SightRadius)
	return nil
}

// Layout follows the window size; the camera picks it up on the next
// frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ScreenWidth = outsideWidth
	g.ScreenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) updateScroll() {
	cam := g.Camera()
	if g.InputMgr.IsKeyPressed(render.KeyUp) {
		cam.PanNorth(g.PanStep)
	}
	if g.InputMgr.IsKeyPressed(render.KeyDown) {
		cam.PanSouth(g.PanStep)
	}
	if g.InputMgr.IsKeyPressed(render.KeyLeft) {
		cam.PanWest(g.PanStep)
	}
	if g.InputMgr.IsKeyPressed(render.KeyRight) {
		cam.PanEast(g.PanStep)
	}
}

func (g *Game) updateCommands() {
	if g.InputMgr.IsKeyJustPressed(render.KeyB) {
		g.activate(asset.CapabilityBuildFarm)
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		g.activate(asset.CapabilityBuildTownHall)
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.cancelPlacement()
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyC) && len(g.Selection) > 0 {
		g.Camera().CenterOn(geom.TileToPixel(g.Selection[0].Tile, g.GameMap.Data.TileSize))
	}
}

// activate switches to a build capability when a peasant is selected.
func (g *Game) activate(c asset.Capability) {
	if len(g.Selection) == 0 || g.Selection[0].Type != asset.TypePeasant {
		g.ShowMessage("Select a peasant to build")
		return
	}
	g.Capability = c
	g.Debug.Printf(2, "capability %d active, placing %s", c, asset.PlacementType(c))
}

func (g *Game) cancelPlacement() {
	g.Capability = asset.CapabilityNone
	g.BuildTiles = nil
}

func (g *Game) updatePointer() {
	sx, sy := g.InputMgr.GetCursorPosition()
	pos := g.Camera().DetailedPosition(geom.PixelPosition{X: sx, Y: sy})
	tile := geom.PixelToTile(pos, g.GameMap.Data.TileSize)

	if placeType := asset.PlacementType(g.Capability); placeType != asset.TypeNone {
		g.BuildTiles = []geom.TilePosition{tile}
		if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonRight) {
			g.cancelPlacement()
		} else if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
			g.ShowMessage(placeType.String() + " placement requested")
			g.cancelPlacement()
		}
		return
	}

	pressed := g.InputMgr.IsMouseButtonPressed(render.MouseButtonLeft)
	switch {
	case pressed && !g.drag.active:
		g.drag = dragState{active: true, startX: pos.X, startY: pos.Y}
		g.SelectRect = geom.Rect{}
	case pressed:
		g.SelectRect = spanRect(g.drag.startX, g.drag.startY, pos.X, pos.Y)
	case g.drag.active:
		g.drag.active = false
		g.finishSelection(tile)
	}
}

func (g *Game) finishSelection(tile geom.TilePosition) {
	tileSize := g.GameMap.Data.TileSize
	var picked []*asset.Asset

	if g.SelectRect.Width < tileSize/2 && g.SelectRect.Height < tileSize/2 {
		if a, ok := g.GameMap.Assets.At(tile); ok {
			picked = append(picked, a)
		}
	} else {
		for _, a := range g.GameMap.Assets.InRect(g.SelectRect, tileSize) {
			if a.Player == g.LocalPlayer {
				picked = append(picked, a)
			}
		}
	}

	g.Selection = picked
	g.SelectRect = geom.Rect{}
	g.Debug.Printf(2, "selected %d assets", len(picked))
}

func (g *Game) firstOwned() *asset.Asset {
	for _, a := range g.GameMap.Assets.All() {
		if a.Player == g.LocalPlayer {
			return a
		}
	}
	return nil
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})

	log.Printf("Message: %s", text)
}

func spanRect(x0, y0, x1, y1 int) geom.Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return geom.NewRect(x0, y0, x1-x0, y1-y0)
}
