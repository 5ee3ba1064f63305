package listener

import (
	"context"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ChordFromEvent renders a tcell key event as a chord string in the
// engine's canonical token form, e.g. "ctrl+shift+z" or "meta+c".
func ChordFromEvent(ev *tcell.EventKey) string {
	name := keyName(ev)

	mod := ev.Modifiers()
	parts := make([]string, 0, 5)
	if mod&tcell.ModCtrl != 0 || isCtrlKey(ev.Key()) {
		parts = append(parts, "ctrl")
	}
	if mod&tcell.ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if mod&tcell.ModShift != 0 {
		parts = append(parts, "shift")
	}
	if mod&tcell.ModMeta != 0 {
		parts = append(parts, "meta")
	}
	parts = append(parts, name)

	return strings.Join(parts, "+")
}

// isCtrlKey reports whether the key code is a control-letter code. Some
// terminals deliver these without setting ModCtrl.
func isCtrlKey(k tcell.Key) bool {
	switch k {
	case tcell.KeyEnter, tcell.KeyTab, tcell.KeyBackspace, tcell.KeyEsc:
		// Control codes with dedicated meanings keep their own names.
		return false
	}
	return k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ
}

// keyName returns the canonical token for the pressed key.
func keyName(ev *tcell.EventKey) string {
	k := ev.Key()

	switch k {
	case tcell.KeyRune:
		return strings.ToLower(string(ev.Rune()))
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyEsc:
		return "esc"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyInsert:
		return "insert"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return string(rune('a' + k - tcell.KeyCtrlA))
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF64 {
		return "f" + strconv.Itoa(int(k-tcell.KeyF1)+1)
	}

	return strings.ToLower(ev.Name())
}

// Pump polls events from a tcell screen and dispatches key events into
// the engine until the context is done or the screen is finalized.
// Dispatch errors (failing handlers) are reported through onErr when it
// is non-nil; they do not stop the pump.
func Pump(ctx context.Context, screen tcell.Screen, eng *Engine, onErr func(error)) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			if err := eng.Dispatch(tev, ChordFromEvent(tev)); err != nil && onErr != nil {
				onErr(err)
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			return
		}
	}
}
