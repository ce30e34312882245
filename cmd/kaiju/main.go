package main

import (
	"log"

	"chosenoffset.com/kaiju/internal/app"
	"chosenoffset.com/kaiju/internal/config"
	ebitenrender "chosenoffset.com/kaiju/internal/render/ebiten"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	backend := app.Backend{
		Renderer: ebitenrender.NewRenderer(),
		Input:    ebitenrender.NewInputManager(),
		Loader:   ebitenrender.NewResourceLoader(),
	}
	engine := ebitenrender.NewEngine()

	kaiju := app.New(cfg, backend, cfg.Window.Width, cfg.Window.Height)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting game...")
	if err := kaiju.Run(engine); err != nil {
		log.Fatal(err)
	}
}
