// Package main is a terminal demo for the keybind registry: it seeds
// the default bindings, wires undo/redo/copy/paste commands to a toy
// editor, and shows every keymap notification as keys are pressed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/internal/app"
	"github.com/dshills/keybind/internal/event"
	"github.com/dshills/keybind/internal/keymap"
	"github.com/dshills/keybind/internal/listener"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var showVersion bool
	flag.StringVar(&configPath, "config", "", "Path to keybind.toml or keybind.json")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("keybind", version)
		return 0
	}

	ed := &editor{text: "the quick brown fox"}

	application, err := app.New(app.Options{
		ConfigPath: configPath,
		Editor:     ed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	registerCommands(application, ed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	var lastEvent string
	if _, err := application.Bus().On("keymap:**", func(topic event.Topic, args ...any) {
		lastEvent = string(topic)
		draw(screen, ed, lastEvent)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := application.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Quit on ctrl+q, alongside the seeded defaults.
	if _, err := application.Keymap().Add("app:quit", "ctrl+q", keymap.Callback(func(keymap.Editor) error {
		return screen.PostEvent(tcell.NewEventInterrupt(nil))
	})); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	draw(screen, ed, "ready")
	listener.Pump(ctx, screen, application.Engine(), func(err error) {
		lastEvent = err.Error()
		draw(screen, ed, lastEvent)
	})

	return 0
}

// editor is the toy host editor handle: a line of text with a clipboard
// and undo history.
type editor struct {
	text      string
	clipboard string
	history   []string
	redo      []string
}

func (e *editor) apply(text string) {
	e.history = append(e.history, e.text)
	e.redo = nil
	e.text = text
}

func registerCommands(a *app.App, ed *editor) {
	a.Commands().RegisterFunc("core:undo", func(any) error {
		if len(ed.history) == 0 {
			return nil
		}
		ed.redo = append(ed.redo, ed.text)
		ed.text = ed.history[len(ed.history)-1]
		ed.history = ed.history[:len(ed.history)-1]
		return nil
	})
	a.Commands().RegisterFunc("core:redo", func(any) error {
		if len(ed.redo) == 0 {
			return nil
		}
		ed.history = append(ed.history, ed.text)
		ed.text = ed.redo[len(ed.redo)-1]
		ed.redo = ed.redo[:len(ed.redo)-1]
		return nil
	})
	a.Commands().RegisterFunc("core:copy", func(any) error {
		ed.clipboard = ed.text
		return nil
	})
	a.Commands().RegisterFunc("core:paste", func(any) error {
		ed.apply(ed.text + ed.clipboard)
		return nil
	})
}

func draw(screen tcell.Screen, ed *editor, status string) {
	screen.Clear()
	style := tcell.StyleDefault

	lines := []string{
		"keybind demo - ctrl+q quits",
		"",
		"text:      " + ed.text,
		"clipboard: " + ed.clipboard,
		"",
		"last event: " + status,
	}
	for y, line := range lines {
		for x, r := range line {
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
