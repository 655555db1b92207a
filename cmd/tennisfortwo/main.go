package main

import (
	"flag"
	"log"

	"chosenoffset.com/tennisfortwo/internal/game"
	ebitenrender "chosenoffset.com/tennisfortwo/internal/render/ebiten"
	"chosenoffset.com/tennisfortwo/internal/simulation"
)

func main() {
	configPath := flag.String("config", "tennis.json", "path to the simulation config (defaults are used if missing)")
	scale := flag.Float64("scale", 1.0, "window scale factor")
	debug := flag.Bool("debug", false, "show ball state overlay")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Loaded config from %s", *configPath)

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer(16)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := game.NewGame(cfg, renderer, inputMgr, game.SystemClock{})
	if err != nil {
		log.Fatalf("Failed to set up match: %v", err)
	}
	g.Debug = *debug
	manager := game.NewManager(g)

	// Set up the window
	engine.SetWindowSize(int(float64(g.ScreenWidth)*(*scale)), int(float64(g.ScreenHeight)*(*scale)))
	engine.SetWindowTitle("Tennis For Two")
	engine.SetWindowResizable(true)
	engine.SetTPS(100)

	log.Println("Starting game...")
	if err := engine.RunGame(manager); err != nil {
		log.Fatal(err)
	}
}
