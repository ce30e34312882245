// Command kaiju-term plays the game inside a terminal using half-block cells.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"chosenoffset.com/kaiju/internal/app"
	"chosenoffset.com/kaiju/internal/config"
	"chosenoffset.com/kaiju/internal/render/raster"
	"chosenoffset.com/kaiju/internal/render/terminal"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "kaiju-term must be run in a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Logging to the terminal would corrupt the screen
	logFile, err := os.Create("kaiju-term.log")
	if err != nil {
		log.Fatalf("Failed to create log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	engine := terminal.NewEngine(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	width, height := engine.LogicalSize()

	backend := app.Backend{
		Renderer: raster.NewRenderer(),
		Input:    engine.Input(),
		Loader:   raster.NewLoader(),
	}
	kaiju := app.New(cfg, backend, width, height)
	engine.SetWindowTitle(cfg.Window.Title)

	runErr := kaiju.Run(engine)
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
