package main

import (
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/quarternotes/stagecraft/levels"
)

// normalizeSavePath keeps saves inside the levels directory whatever
// the user typed, defaulting the extension.
func (g *Editor) normalizeSavePath(name string) string {
	base := filepath.Base(name)
	if filepath.Ext(base) == "" {
		base += ".json"
	}
	return filepath.Join(g.cfg.LevelsDir, base)
}

func (g *Editor) onFileSubmit(string) {
	g.saveLevel()
}

func (g *Editor) saveLevel() {
	name := strings.TrimSpace(g.fileName.GetText())
	if name == "" {
		log.Println("No filename specified in File field; save aborted")
		return
	}
	path := g.normalizeSavePath(name)
	if err := levels.Save(path, g.session.Level); err != nil {
		var verr *levels.ValidationError
		if errors.As(err, &verr) {
			log.Printf("Save blocked: %v", verr)
		} else {
			log.Printf("Save failed: %v", err)
		}
		return
	}
	g.savePath = path
	g.session.MarkSaved()
	g.layersDirty = false
	g.lastAutosave = time.Now()
	log.Printf("Saved level: %s", path)
}

// maybeAutosave saves on the configured interval, but only when there
// are unsaved edits and a filename to save under.
func (g *Editor) maybeAutosave() {
	if g.autosaveEvery <= 0 || time.Since(g.lastAutosave) < g.autosaveEvery {
		return
	}
	g.lastAutosave = time.Now()
	if !g.dirty() {
		return
	}
	if strings.TrimSpace(g.fileName.GetText()) == "" {
		log.Println("Autosave skipped: no filename set")
		return
	}
	g.saveLevel()
}
