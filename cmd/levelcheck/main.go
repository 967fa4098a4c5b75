package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quarternotes/stagecraft/assets"
	"github.com/quarternotes/stagecraft/levels"
	"github.com/quarternotes/stagecraft/scene"
)

// levelcheck loads and validates level files so a broken hand edit or
// merge shows up before the editor or a game build trips over it.
// Arguments are files or directories; directories are scanned for
// *.json. With no arguments the levels directory is checked.
func main() {
	assetsDir := flag.String("assets", "assets", "assets directory to resolve image references against")
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"levels"}
	}

	known := knownImages(*assetsDir)

	bad := 0
	for _, arg := range args {
		for _, path := range expand(arg) {
			lvl, err := levels.Load(path)
			if err == nil {
				err = levels.Validate(lvl)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				bad++
				continue
			}
			for _, img := range missingImages(lvl, known) {
				fmt.Fprintf(os.Stderr, "%s: warning: image %s not found under %s\n", path, img, *assetsDir)
			}
			fmt.Printf("%s: ok (%d nodes, %d layers)\n", path, countNodes(lvl), len(lvl.Layers))
		}
	}
	if bad > 0 {
		os.Exit(1)
	}
}

func expand(arg string) []string {
	info, err := os.Stat(arg)
	if err != nil || !info.IsDir() {
		return []string{arg}
	}
	matches, err := filepath.Glob(filepath.Join(arg, "*.json"))
	if err != nil {
		return nil
	}
	return matches
}

func countNodes(lvl *scene.Level) int {
	count := 0
	lvl.Walk(func(n, parent *scene.Node) bool {
		count++
		return true
	})
	return count
}

// knownImages returns the set of PNGs under the assets directory, or
// nil when the directory cannot be read, which disables the check.
func knownImages(dir string) map[string]bool {
	paths, err := assets.ListImages(dir)
	if err != nil {
		return nil
	}
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return set
}

func missingImages(lvl *scene.Level, known map[string]bool) []string {
	if known == nil {
		return nil
	}
	seen := make(map[string]bool)
	var missing []string
	lvl.Walk(func(n, parent *scene.Node) bool {
		if n.Image != "" && !known[n.Image] && !seen[n.Image] {
			seen[n.Image] = true
			missing = append(missing, n.Image)
		}
		return true
	})
	return missing
}
