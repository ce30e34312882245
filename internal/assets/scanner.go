// Package assets locates the optional sprite and sound files.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/kaiju/internal/audio"
	"chosenoffset.com/kaiju/internal/config"
)

// Manifest lists the asset files found. Empty paths mean the file is absent
// and the built-in fallback is used.
type Manifest struct {
	Dir    string
	Sprite string
	Clips  map[audio.Clip]string
}

// Missing returns the configured names that were not found
func (m *Manifest) Missing(names config.AssetsConfig) []string {
	var missing []string
	if m.Sprite == "" {
		missing = append(missing, names.Sprite)
	}
	for _, c := range []audio.Clip{audio.ClipFire, audio.ClipHit, audio.ClipExplosion} {
		if m.Clips[c] == "" {
			missing = append(missing, clipName(names, c))
		}
	}
	return missing
}

// ScanDirectory looks for the configured files in dir. File names match
// case-insensitively. A missing directory yields an empty manifest.
func ScanDirectory(dir string, names config.AssetsConfig) (*Manifest, error) {
	manifest := &Manifest{Dir: dir, Clips: make(map[audio.Clip]string)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return manifest, nil
		}
		return nil, fmt.Errorf("failed to read assets directory: %w", err)
	}

	files := make(map[string]string, len(entries))
	for _, entry := range entries {
		// Skip directories
		if entry.IsDir() {
			continue
		}
		files[strings.ToLower(entry.Name())] = filepath.Join(dir, entry.Name())
	}

	manifest.Sprite = lookup(files, names.Sprite, ".png")
	for _, c := range []audio.Clip{audio.ClipFire, audio.ClipHit, audio.ClipExplosion} {
		if path := lookup(files, clipName(names, c), ".wav"); path != "" {
			manifest.Clips[c] = path
		}
	}
	return manifest, nil
}

func lookup(files map[string]string, name, ext string) string {
	name = strings.ToLower(name)
	if name == "" || !strings.HasSuffix(name, ext) {
		return ""
	}
	return files[name]
}

func clipName(names config.AssetsConfig, c audio.Clip) string {
	switch c {
	case audio.ClipFire:
		return names.Fire
	case audio.ClipHit:
		return names.Hit
	default:
		return names.Explosion
	}
}
