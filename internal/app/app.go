// Package app assembles a playable game from the config and a render
// backend. Both the desktop and terminal binaries start here.
package app

import (
	"log"

	"chosenoffset.com/kaiju/internal/assets"
	"chosenoffset.com/kaiju/internal/audio"
	"chosenoffset.com/kaiju/internal/config"
	"chosenoffset.com/kaiju/internal/game"
	"chosenoffset.com/kaiju/internal/placeholders"
	"chosenoffset.com/kaiju/internal/render"
	"chosenoffset.com/kaiju/internal/ui/hud"
)

// Backend bundles the render implementations the game runs on
type Backend struct {
	Renderer render.Renderer
	Input    render.InputManager
	Loader   render.ResourceLoader
}

// App is a wired game ready to hand to an engine
type App struct {
	Manager *game.Manager
	HUD     *hud.HUD
	Sounds  *audio.SoundManager // nil when audio is disabled
}

// New builds the game for the given logical canvas size. Missing assets
// fall back to generated ones and audio failures leave the game silent.
func New(cfg *config.Config, backend Backend, width, height int) *App {
	manifest, err := assets.ScanDirectory(cfg.Assets.Directory, cfg.Assets)
	if err != nil {
		log.Printf("Warning: %v", err)
		manifest = &assets.Manifest{Clips: map[audio.Clip]string{}}
	}
	if missing := manifest.Missing(cfg.Assets); len(missing) > 0 {
		log.Printf("Assets not found in %q, using built-in: %v", cfg.Assets.Directory, missing)
	}

	overlay := hud.New(&hud.Config{
		Position:     cfg.HUD.Position,
		Opacity:      cfg.HUD.Opacity,
		HitThreshold: game.HitThreshold,
		RoarDuration: game.RoarDuration,
	}, width, height)

	a := &App{HUD: overlay}
	opts := []game.Option{game.WithScoreboard(overlay)}
	if sounds := newSounds(cfg.Audio, manifest); sounds != nil {
		a.Sounds = sounds
		opts = append(opts, game.WithSoundBoard(sounds))
	}

	a.Manager = game.NewManager(backend.Renderer, backend.Input, width, height, opts...)
	a.Manager.SetOverlay(overlay)
	a.Manager.SetSprite(loadSprite(backend.Loader, manifest.Sprite))
	return a
}

// Run hands the game to engine and releases the audio device once the
// loop ends, whatever the outcome.
func (a *App) Run(engine render.Engine) error {
	defer a.Close()
	return engine.RunGame(a.Manager)
}

// Close releases the audio device
func (a *App) Close() {
	if a.Sounds != nil {
		a.Sounds.Cleanup()
	}
}

func loadSprite(loader render.ResourceLoader, path string) render.Image {
	if path != "" {
		img, err := loader.LoadImage(path)
		if err == nil {
			log.Printf("Loaded sprite %s", path)
			return img
		}
		log.Printf("Warning: %v (using built-in sprite)", err)
	}
	return loader.FromImage(placeholders.GenerateSprite())
}

func newSounds(cfg config.AudioConfig, manifest *assets.Manifest) *audio.SoundManager {
	if !cfg.Enabled {
		log.Println("Audio disabled")
		return nil
	}

	sounds := audio.NewSoundManager(cfg.SampleRate, cfg.Volume)
	sounds.LoadClips(manifest.Clips)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Warning: %v (continuing without sound)", err)
	}
	return sounds
}
