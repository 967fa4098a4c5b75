package levels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quarternotes/stagecraft/scene"
)

// ValidationError blocks a save and carries a message fit for the
// status bar.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "level invalid: " + e.Reason
}

// Validate checks the rules a level must satisfy before it may be
// written to disk.
func Validate(lvl *scene.Level) error {
	if lvl == nil {
		return &ValidationError{Reason: "no level loaded"}
	}
	switch n := lvl.CountPlayerStarts(); {
	case n == 0:
		return &ValidationError{Reason: "missing a player start"}
	case n > 1:
		return &ValidationError{Reason: fmt.Sprintf("%d player starts, expected exactly one", n)}
	}
	return nil
}

// Save validates the level and writes it as indented JSON, creating the
// target directory if needed.
func Save(path string, lvl *scene.Level) error {
	if err := Validate(lvl); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("save level: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save level: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lvl); err != nil {
		return fmt.Errorf("save level: %w", err)
	}
	return nil
}

// Load reads a level file and repairs whatever external editing broke:
// nodes are normalized, the layer list and settings get defaults.
func Load(path string) (*scene.Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return decode(b)
}

func decode(b []byte) (*scene.Level, error) {
	var lvl scene.Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	normalize(&lvl)
	return &lvl, nil
}

func normalize(lvl *scene.Level) {
	kept := lvl.Objects[:0]
	for _, n := range lvl.Objects {
		if n == nil {
			continue
		}
		n.Normalize()
		kept = append(kept, n)
	}
	lvl.Objects = kept

	if len(lvl.Layers) == 0 {
		lvl.Layers = []scene.Layer{{ID: scene.DefaultLayerID, Name: "Main", Visible: true}}
	}
	if lvl.Settings.GridSize <= 0 {
		lvl.Settings.GridSize = 32
	}
}
