// Package loader reads and writes keybinding configuration files.
//
// TOML is the primary on-disk format; JSON is supported for hosts that
// persist settings programmatically. A missing file is not an error:
// loaders return an empty configuration so defaults apply unchanged.
package loader

import (
	"path/filepath"
	"strings"

	"github.com/dshills/keybind/internal/config"
)

// Load reads a configuration file, choosing the format by extension
// (.toml or .json).
func Load(path string) (config.File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	default:
		return LoadTOML(path)
	}
}
