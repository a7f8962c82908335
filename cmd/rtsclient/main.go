package main

import (
	"log"

	"chosenoffset.com/rtsclient/internal/config"
	"chosenoffset.com/rtsclient/internal/debuglog"
	"chosenoffset.com/rtsclient/internal/game"
	ebitenrender "chosenoffset.com/rtsclient/internal/render/ebiten"
	"chosenoffset.com/rtsclient/internal/world/maploader"
	"chosenoffset.com/rtsclient/internal/world/mapscanner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debug, err := debuglog.Open(cfg.DebugLog, cfg.DebugLevel)
	if err != nil {
		log.Fatalf("Failed to open debug log: %v", err)
	}
	defer debug.Close()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	mapPath := cfg.MapPath
	if mapPath == "" {
		log.Println("Scanning data directory for available maps...")
		maps, err := mapscanner.ScanDataDirectory(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to scan data directory: %v", err)
		}
		if len(maps) == 0 {
			log.Fatalf("No maps found in %s/maps", cfg.DataDir)
		}
		mapPath = maps[0].Path
	}

	gameMap, err := maploader.LoadMap(mapPath, loader)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	debug.Printf(1, "loaded map %q (%dx%d tiles)", gameMap.Data.Name, gameMap.Data.Width, gameMap.Data.Height)

	g := game.New(gameMap, renderer, inputMgr, game.Options{
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
		PanStep:      cfg.PanStep,
		LocalPlayer:  cfg.Player,
		SightRadius:  cfg.SightRadius,
	}, debug)

	// Set up the window
	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("RTS - " + gameMap.Data.Name)
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
