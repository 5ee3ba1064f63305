package keymap

import "fmt"

// Editor is the opaque host editor handle passed to every fired handler.
type Editor = any

// Runner is a run-capable handler object.
type Runner interface {
	Run(ed Editor) error
}

// Func is a directly callable handler.
type Func func(ed Editor) error

// CommandResolver resolves command ids to runnable commands. Lookup
// happens at fire time, never at registration time.
type CommandResolver interface {
	Get(id string) (Runner, bool)
}

type handlerKind uint8

const (
	kindNone handlerKind = iota
	kindCommand
	kindFunc
	kindRunner
)

// Handler is the polymorphic handler value of a binding: a command
// reference, a callback function, or a run-capable object.
type Handler struct {
	kind    handlerKind
	command string
	fn      Func
	runner  Runner
}

// Command returns a handler that resolves the command id in the command
// registry when the binding fires.
func Command(id string) Handler {
	return Handler{kind: kindCommand, command: id}
}

// Callback returns a handler that invokes the function directly.
func Callback(fn Func) Handler {
	if fn == nil {
		return Handler{}
	}
	return Handler{kind: kindFunc, fn: fn}
}

// Runnable returns a handler that invokes the object's Run capability.
func Runnable(r Runner) Handler {
	if r == nil {
		return Handler{}
	}
	return Handler{kind: kindRunner, runner: r}
}

// NewHandler coerces a dynamic handler value: a command-id string, a
// func(Editor) error, or a run-capable object.
func NewHandler(v any) (Handler, error) {
	switch hv := v.(type) {
	case Handler:
		return hv, nil
	case string:
		if hv == "" {
			return Handler{}, ErrNilHandler
		}
		return Command(hv), nil
	case func(Editor) error:
		return Callback(hv), nil
	case Func:
		return Callback(hv), nil
	case Runner:
		return Runnable(hv), nil
	}
	return Handler{}, fmt.Errorf("unsupported handler type %T", v)
}

// IsZero reports whether the handler carries no variant.
func (h Handler) IsZero() bool {
	return h.kind == kindNone
}

// CommandID returns the referenced command id for command handlers.
func (h Handler) CommandID() (string, bool) {
	if h.kind != kindCommand {
		return "", false
	}
	return h.command, true
}

// String describes the handler variant for diagnostics.
func (h Handler) String() string {
	switch h.kind {
	case kindCommand:
		return "command(" + h.command + ")"
	case kindFunc:
		return "callback"
	case kindRunner:
		return "runnable"
	}
	return "none"
}

// Invoke resolves and runs the handler. Command references are looked
// up in the resolver here, at the call site, preserving the
// register-before-command-exists ordering guarantee.
func (h Handler) Invoke(ed Editor, cmds CommandResolver) error {
	switch h.kind {
	case kindCommand:
		if cmds == nil {
			return fmt.Errorf("command %q: %w", h.command, ErrCommandNotFound)
		}
		run, ok := cmds.Get(h.command)
		if !ok {
			return fmt.Errorf("command %q: %w", h.command, ErrCommandNotFound)
		}
		return run.Run(ed)
	case kindFunc:
		return h.fn(ed)
	case kindRunner:
		return h.runner.Run(ed)
	}
	return ErrNilHandler
}
