package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/quarternotes/stagecraft/scene"
)

//go:embed *.json
var LevelsFS embed.FS

// LoadEmbedded reads one of the levels shipped with the binary, applying
// the same normalization as Load.
func LoadEmbedded(name string) (*scene.Level, error) {
	b, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read embedded level: %w", err)
	}
	return decode(b)
}
