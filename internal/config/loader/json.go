package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/keybind/internal/config"
)

// LoadJSON reads a JSON configuration file:
//
//	{"bindings": {"core:undo": {"keys": "ctrl+z", "command": "core:undo"}}}
func LoadJSON(path string) (config.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Empty(), nil
		}
		return config.File{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return ParseJSON(data)
}

// ParseJSON parses JSON configuration bytes.
func ParseJSON(data []byte) (config.File, error) {
	if !gjson.ValidBytes(data) {
		return config.File{}, fmt.Errorf("parsing config: invalid JSON")
	}

	f := config.Empty()
	gjson.GetBytes(data, "bindings").ForEach(func(key, value gjson.Result) bool {
		f.Bindings[key.String()] = config.Entry{
			Keys:    value.Get("keys").String(),
			Command: value.Get("command").String(),
		}
		return true
	})

	if err := f.Validate(); err != nil {
		return config.File{}, err
	}
	return f, nil
}

// SetJSON rewrites a single binding in JSON configuration bytes,
// creating the bindings object as needed.
func SetJSON(data []byte, id string, e config.Entry) ([]byte, error) {
	path := bindingPath(id)

	out, err := sjson.SetBytes(data, path+".keys", e.Keys)
	if err != nil {
		return nil, fmt.Errorf("setting binding %q: %w", id, err)
	}
	out, err = sjson.SetBytes(out, path+".command", e.Command)
	if err != nil {
		return nil, fmt.Errorf("setting binding %q: %w", id, err)
	}
	return out, nil
}

// DeleteJSON removes a single binding from JSON configuration bytes.
func DeleteJSON(data []byte, id string) ([]byte, error) {
	out, err := sjson.DeleteBytes(data, bindingPath(id))
	if err != nil {
		return nil, fmt.Errorf("deleting binding %q: %w", id, err)
	}
	return out, nil
}

// bindingPath builds the gjson/sjson path for a binding id, escaping
// path metacharacters so ids are treated literally.
func bindingPath(id string) string {
	esc := strings.NewReplacer(`.`, `\.`, `*`, `\*`, `?`, `\?`).Replace(id)
	return "bindings." + esc
}
