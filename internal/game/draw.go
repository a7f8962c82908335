package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/rtsclient/internal/asset"
	"chosenoffset.com/rtsclient/internal/render"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()

	// Ensure the type texture exists and matches the screen
	if g.TypeTexture == nil || needsResize(g.TypeTexture, w, h) {
		if g.TypeTexture != nil {
			g.TypeTexture.Dispose()
		}
		g.TypeTexture = g.Renderer.NewImage(w, h)
	}

	screen.Clear()
	g.TypeTexture.Clear()
	g.Compositor.DrawFrame(g.BuildTiles, screen, g.TypeTexture, g.Selection, g.SelectRect, g.Capability)

	g.FrameCount++
	if g.FrameCount <= 5 {
		cam := g.Camera()
		g.Debug.Printf(3, "frame %d: view %+v", g.FrameCount, cam.Visible())
	}

	g.drawUI(screen)
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}

func (g *Game) drawUI(screen render.Image) {
	// Draw on-screen messages
	y := 50
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 20, y, color.RGBA{255, 255, 255, alpha}, 1.0)
		y += 20
	}

	g.Renderer.DrawText(screen, g.statusLine(), 8, 8, color.White, 1.0)
}

func (g *Game) statusLine() string {
	cam := g.Camera()
	status := fmt.Sprintf("view %d,%d  selected %d", cam.X(), cam.Y(), len(g.Selection))
	if t := asset.PlacementType(g.Capability); t != asset.TypeNone {
		status += "  placing " + t.String()
	}
	return status
}
