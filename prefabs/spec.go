package prefabs

import (
	"gopkg.in/yaml.v3"

	"github.com/quarternotes/stagecraft/scene"
)

// Spec is one palette entry: a placeable object definition.
type Spec struct {
	Name    string  `yaml:"name"`
	Type    string  `yaml:"type"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Image   string  `yaml:"image"`
	LayerID string  `yaml:"layer_id"`
	Locked  bool    `yaml:"locked"`
}

// ParseSpec decodes one palette entry from yaml.
func ParseSpec(data []byte) (Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// BuildNode turns the entry into a fresh scene node ready for stamping.
// Missing extents fall back to the standard placeholder size; a
// player_start entry builds the reserved spawn marker.
func (s Spec) BuildNode() *scene.Node {
	if scene.NodeType(s.Type) == scene.TypePlayerStart {
		return scene.NewPlayerStart(0, 0)
	}
	w, h := s.Width, s.Height
	if w <= 0 {
		w = scene.FallbackSize
	}
	if h <= 0 {
		h = scene.FallbackSize
	}
	t := scene.NodeType(s.Type)
	if t == "" {
		t = scene.TypeRect
	}
	n := scene.NewLeaf(t, 0, 0, w, h)
	n.Name = s.Name
	n.Image = s.Image
	n.LayerID = s.LayerID
	n.Locked = s.Locked
	return n
}
