package prefabs

import "embed"

// PrefabsFS holds the palette entries shipped with the binary. Disk
// files in the configured prefabs directory override them by name.
//
//go:embed *.yaml
var PrefabsFS embed.FS
