package prefabs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Palette is the ordered set of placeable objects offered by the
// editor.
type Palette struct {
	Entries []Spec
}

// ByName returns the entry with the given name.
func (p Palette) ByName(name string) (Spec, bool) {
	for _, e := range p.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Spec{}, false
}

// LoadPalette builds the palette from the embedded defaults plus every
// yaml file in dir. A disk entry with the same name as an embedded one
// replaces it. A missing or empty dir leaves just the defaults; a
// malformed file fails the whole load so a typo never silently drops
// entries.
func LoadPalette(dir string) (Palette, error) {
	byName := make(map[string]Spec)
	var order []string

	add := func(s Spec) {
		if s.Name == "" {
			return
		}
		if _, ok := byName[s.Name]; !ok {
			order = append(order, s.Name)
		}
		byName[s.Name] = s
	}

	names, err := fs.Glob(PrefabsFS, "*.yaml")
	if err != nil {
		return Palette{}, fmt.Errorf("prefabs: embedded glob: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		data, err := PrefabsFS.ReadFile(name)
		if err != nil {
			return Palette{}, fmt.Errorf("prefabs: read embedded %s: %w", name, err)
		}
		s, err := ParseSpec(data)
		if err != nil {
			return Palette{}, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
		}
		add(s)
	}

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return Palette{}, fmt.Errorf("prefabs: read dir %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !isSpecFile(e.Name()) {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				return Palette{}, fmt.Errorf("prefabs: read %s: %w", e.Name(), err)
			}
			s, err := ParseSpec(data)
			if err != nil {
				return Palette{}, fmt.Errorf("prefabs: unmarshal %s: %w", e.Name(), err)
			}
			add(s)
		}
	}

	p := Palette{Entries: make([]Spec, 0, len(order))}
	sort.Strings(order)
	for _, name := range order {
		p.Entries = append(p.Entries, byName[name])
	}
	return p, nil
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
