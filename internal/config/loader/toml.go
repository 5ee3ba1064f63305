package loader

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keybind/internal/config"
)

// LoadTOML reads a TOML configuration file:
//
//	[bindings."core:undo"]
//	keys = "ctrl+z"
//	command = "core:undo"
func LoadTOML(path string) (config.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Empty(), nil
		}
		return config.File{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return ParseTOML(data)
}

// ParseTOML parses TOML configuration bytes.
func ParseTOML(data []byte) (config.File, error) {
	f := config.Empty()
	if err := toml.Unmarshal(data, &f); err != nil {
		return config.File{}, fmt.Errorf("parsing config: %w", err)
	}
	if f.Bindings == nil {
		f.Bindings = make(map[string]config.Entry)
	}
	if err := f.Validate(); err != nil {
		return config.File{}, err
	}
	return f, nil
}
