package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quarternotes/stagecraft/config"
	"github.com/quarternotes/stagecraft/levels"
	"github.com/quarternotes/stagecraft/prefabs"
	"github.com/quarternotes/stagecraft/scene"
)

func main() {
	levelFlag := flag.String("level", "", "level to open: a path, or a name resolved in the levels directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	lvl, savePath := openLevel(cfg, *levelFlag)

	pal, err := prefabs.LoadPalette(cfg.PrefabsDir)
	if err != nil {
		log.Fatalf("Load palette: %v", err)
	}

	var watcher *prefabs.Watcher
	if cfg.WatchPrefabs {
		w, err := prefabs.NewWatcher(cfg.PrefabsDir)
		if err != nil {
			log.Printf("Prefab watching disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	editor := NewEditor(cfg, lvl, savePath, pal, watcher)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Stagecraft")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}

// openLevel resolves the -level argument: disk first, then the embedded
// set, then a fresh level under that name. The returned path is where
// Ctrl+S will write.
func openLevel(cfg *config.Config, name string) (*scene.Level, string) {
	if name == "" {
		return scene.NewLevel("untitled"), ""
	}
	path := name
	if filepath.Dir(path) == "." && filepath.Ext(path) == "" {
		path = filepath.Join(cfg.LevelsDir, name+".json")
	}
	lvl, err := levels.Load(path)
	if err == nil {
		return lvl, path
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Open %s: %v", path, err)
	}
	base := filepath.Base(path)
	if lvl, err := levels.LoadEmbedded(base); err == nil {
		log.Printf("Opened embedded level %s", base)
		return lvl, path
	}
	log.Printf("Level %s not found; starting fresh", name)
	return scene.NewLevel(strings.TrimSuffix(base, ".json")), path
}
