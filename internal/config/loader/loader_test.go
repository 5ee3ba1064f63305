package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/keybind/internal/config"
)

func TestParseTOML(t *testing.T) {
	data := []byte(`
[bindings."core:undo"]
keys = "ctrl+z"
command = "core:undo"

[bindings."app:save"]
keys = "⌘+s, ctrl+s"
command = "app:save"
`)

	f, err := ParseTOML(data)
	if err != nil {
		t.Fatalf("ParseTOML() error = %v", err)
	}

	if len(f.Bindings) != 2 {
		t.Fatalf("bindings = %d, want 2", len(f.Bindings))
	}
	if e := f.Bindings["core:undo"]; e.Keys != "ctrl+z" || e.Command != "core:undo" {
		t.Errorf("core:undo = %+v", e)
	}
	if e := f.Bindings["app:save"]; e.Keys != "⌘+s, ctrl+s" {
		t.Errorf("app:save keys = %q", e.Keys)
	}
}

func TestParseTOMLInvalid(t *testing.T) {
	if _, err := ParseTOML([]byte(`bindings = "nope`)); err == nil {
		t.Error("ParseTOML() error = nil for malformed TOML")
	}

	// Well-formed but incomplete entries fail validation.
	if _, err := ParseTOML([]byte("[bindings.x]\nkeys = \"ctrl+x\"\n")); err == nil {
		t.Error("ParseTOML() error = nil for entry without command")
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"bindings": {
			"core:undo": {"keys": "ctrl+z", "command": "core:undo"},
			"core:copy": {"keys": "⌘+c, ctrl+c", "command": "core:copy"}
		}
	}`)

	f, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if len(f.Bindings) != 2 {
		t.Fatalf("bindings = %d, want 2", len(f.Bindings))
	}
	if e := f.Bindings["core:copy"]; e.Keys != "⌘+c, ctrl+c" || e.Command != "core:copy" {
		t.Errorf("core:copy = %+v", e)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	if _, err := ParseJSON([]byte(`{`)); err == nil {
		t.Error("ParseJSON() error = nil for malformed JSON")
	}
}

func TestSetAndDeleteJSON(t *testing.T) {
	data := []byte(`{}`)

	out, err := SetJSON(data, "core:undo", config.Entry{Keys: "ctrl+u", Command: "core:undo"})
	if err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}

	if got := gjson.GetBytes(out, `bindings.core:undo.keys`).String(); got != "ctrl+u" {
		t.Errorf("written keys = %q, want ctrl+u", got)
	}

	// Round-trips through the parser.
	f, err := ParseJSON(out)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if f.Bindings["core:undo"].Keys != "ctrl+u" {
		t.Errorf("parsed keys = %q, want ctrl+u", f.Bindings["core:undo"].Keys)
	}

	out, err = DeleteJSON(out, "core:undo")
	if err != nil {
		t.Fatalf("DeleteJSON() error = %v", err)
	}
	f, err = ParseJSON(out)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if len(f.Bindings) != 0 {
		t.Errorf("bindings after delete = %d, want 0", len(f.Bindings))
	}
}

func TestLoadMissingFile(t *testing.T) {
	for _, name := range []string{"missing.toml", "missing.json"} {
		f, err := Load(filepath.Join(t.TempDir(), name))
		if err != nil {
			t.Errorf("Load(%s) error = %v, want nil", name, err)
		}
		if len(f.Bindings) != 0 {
			t.Errorf("Load(%s) bindings = %d, want 0", name, len(f.Bindings))
		}
	}
}

func TestLoadChoosesFormat(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "keybind.toml")
	if err := os.WriteFile(tomlPath, []byte("[bindings.\"a\"]\nkeys = \"ctrl+a\"\ncommand = \"a\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	jsonPath := filepath.Join(dir, "keybind.json")
	if err := os.WriteFile(jsonPath, []byte(`{"bindings":{"b":{"keys":"ctrl+b","command":"b"}}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load(toml) error = %v", err)
	}
	if _, ok := f.Bindings["a"]; !ok {
		t.Error("TOML binding not loaded")
	}

	f, err = Load(jsonPath)
	if err != nil {
		t.Fatalf("Load(json) error = %v", err)
	}
	if _, ok := f.Bindings["b"]; !ok {
		t.Error("JSON binding not loaded")
	}
}
