package event

import "testing"

func TestTopicSegments(t *testing.T) {
	tests := []struct {
		topic Topic
		want  int
	}{
		{"", 0},
		{"keymap", 1},
		{"keymap:add", 2},
		{"keymap:emit:core:undo", 4},
	}

	for _, tt := range tests {
		if got := len(tt.topic.Segments()); got != tt.want {
			t.Errorf("Segments(%q) count = %d, want %d", tt.topic, got, tt.want)
		}
	}
}

func TestTopicChild(t *testing.T) {
	got := Topic("keymap:emit").Child("core:undo")
	if got != "keymap:emit:core:undo" {
		t.Errorf("Child() = %q, want %q", got, "keymap:emit:core:undo")
	}

	if got := Topic("").Child("keymap"); got != "keymap" {
		t.Errorf("Child() on empty = %q, want %q", got, "keymap")
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern Topic
		topic   Topic
		want    bool
	}{
		{"exact", "keymap:add", "keymap:add", true},
		{"exact mismatch", "keymap:add", "keymap:remove", false},
		{"single wildcard", "keymap:*", "keymap:add", true},
		{"single wildcard too deep", "keymap:*", "keymap:emit:core:undo", false},
		{"multi wildcard", "keymap:**", "keymap:emit:core:undo", true},
		{"multi wildcard zero segments", "keymap:**", "keymap:add", true},
		{"multi wildcard wrong root", "keymap:**", "config:changed", false},
		{"pattern longer than topic", "keymap:emit:*", "keymap:add", false},
		{"topic longer than pattern", "keymap:emit", "keymap:emit:core:undo", false},
		{"emit per-id channel", "keymap:emit:core:undo", "keymap:emit:core:undo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.pattern, tt.topic); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.topic, got, tt.want)
			}
		})
	}
}

func TestIsPattern(t *testing.T) {
	if Topic("keymap:add").IsPattern() {
		t.Error("keymap:add should not be a pattern")
	}
	if !Topic("keymap:*").IsPattern() {
		t.Error("keymap:* should be a pattern")
	}
	if !Topic("keymap:**").IsPattern() {
		t.Error("keymap:** should be a pattern")
	}
}
