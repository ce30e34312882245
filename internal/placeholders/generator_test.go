package placeholders

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/kaiju/internal/assets"
	"chosenoffset.com/kaiju/internal/audio"
	"chosenoffset.com/kaiju/internal/config"
	"chosenoffset.com/kaiju/internal/game"
)

func TestSpriteMatchesHitBox(t *testing.T) {
	if SpriteWidth != game.ActorWidth || SpriteHeight != game.ActorHeight {
		t.Errorf("Expected sprite %dx%d, got %dx%d", game.ActorWidth, game.ActorHeight, SpriteWidth, SpriteHeight)
	}
}

func TestGenerateSprite(t *testing.T) {
	img := GenerateSprite()

	if b := img.Bounds(); b.Dx() != SpriteWidth || b.Dy() != SpriteHeight {
		t.Fatalf("Expected %dx%d, got %v", SpriteWidth, SpriteHeight, b)
	}
	if a := img.RGBAAt(2, 2).A; a != 0 {
		t.Errorf("Expected transparent corner, got alpha %d", a)
	}
	if got := img.RGBAAt(450, 170); got != ColorPalette.Body {
		t.Errorf("Expected body colour inside the torso, got %v", got)
	}
	if got := img.RGBAAt(int(eyeCenter.x), int(eyeCenter.y)); got != ColorPalette.Eye {
		t.Errorf("Expected eye colour, got %v", got)
	}
}

func TestDarkenLighten(t *testing.T) {
	c := ColorPalette.Body
	if d := Darken(c, 0.5); d.G != c.G/2 || d.A != c.A {
		t.Errorf("Expected halved green, got %v", d)
	}
	if l := Lighten(c, 1); l.R != 255 || l.G != 255 || l.B != 255 {
		t.Errorf("Expected white, got %v", l)
	}
}

func TestGenerateAndSave(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Assets.Directory = filepath.Join(t.TempDir(), "assets")
	cfg.Audio.SampleRate = 22050

	if err := GenerateAndSave(cfg); err != nil {
		t.Fatalf("GenerateAndSave: %v", err)
	}

	m, err := assets.ScanDirectory(cfg.Assets.Directory, cfg.Assets)
	if err != nil {
		t.Fatalf("ScanDirectory: %v", err)
	}
	if missing := m.Missing(cfg.Assets); len(missing) != 0 {
		t.Fatalf("Expected all assets generated, missing %v", missing)
	}

	f, err := os.Open(m.Sprite)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	pngCfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("Expected a valid PNG: %v", err)
	}
	if pngCfg.Width != SpriteWidth || pngCfg.Height != SpriteHeight {
		t.Errorf("Expected %dx%d PNG, got %dx%d", SpriteWidth, SpriteHeight, pngCfg.Width, pngCfg.Height)
	}

	sm := audio.NewSoundManager(22050, 1)
	sm.LoadClips(m.Clips)
	for _, c := range []audio.Clip{audio.ClipFire, audio.ClipHit, audio.ClipExplosion} {
		if !sm.HasClip(c) {
			t.Errorf("Expected %s clip to decode", c)
		}
	}
}
