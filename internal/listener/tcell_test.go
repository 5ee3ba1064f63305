package listener

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestChordFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{
			name: "plain rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone),
			want: "j",
		},
		{
			name: "ctrl letter with modifier flag",
			ev:   tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl),
			want: "ctrl+z",
		},
		{
			name: "ctrl letter without modifier flag",
			ev:   tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModNone),
			want: "ctrl+z",
		},
		{
			name: "ctrl shift rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModCtrl|tcell.ModShift),
			want: "ctrl+shift+z",
		},
		{
			name: "meta rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModMeta),
			want: "meta+c",
		},
		{
			name: "enter keeps its own name",
			ev:   tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			want: "enter",
		},
		{
			name: "escape",
			ev:   tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone),
			want: "esc",
		},
		{
			name: "function key",
			ev:   tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
			want: "f5",
		},
		{
			name: "arrow key",
			ev:   tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
			want: "up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChordFromEvent(tt.ev); got != tt.want {
				t.Errorf("ChordFromEvent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChordFromEventMatchesEngineNormalization(t *testing.T) {
	// A chord produced from a terminal event must reach a binding
	// registered with the human-written form.
	eng := NewEngine()
	fired := 0
	eng.Bind("⌘+c, ctrl+c", func(ev Event, m Match) error {
		fired++
		return nil
	})

	pressed := ChordFromEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModMeta))
	if err := eng.Dispatch(nil, pressed); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}
