package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/keybind/internal/event"
	"github.com/dshills/keybind/internal/listener"
)

// Bus topics published by the registry.
const (
	// TopicAdd is triggered after a binding is installed. Payload: *Binding.
	TopicAdd event.Topic = "keymap:add"

	// TopicRemove is triggered after a binding is removed. Payload: *Binding.
	TopicRemove event.Topic = "keymap:remove"

	// TopicEmit is triggered on every binding fire.
	// Payload: id string, matched shortcut string, raw event.
	// The same payload also goes out on the per-id channel
	// "keymap:emit:<id>".
	TopicEmit event.Topic = "keymap:emit"
)

// Notifier is the event bus boundary used for lifecycle and fire
// notifications. Fire-and-forget.
type Notifier interface {
	Trigger(topic event.Topic, args ...any)
}

// Default describes one seed binding installed by Load.
type Default struct {
	Keys    string
	Handler Handler
}

// Config wires the registry to its collaborators. All references are
// non-owning; none are constructed here.
type Config struct {
	// Binder is the chord listening engine.
	Binder listener.Binder

	// Commands resolves string handlers at fire time.
	Commands CommandResolver

	// Bus receives lifecycle and fire notifications.
	Bus Notifier

	// Editor is the opaque handle passed to fired handlers.
	Editor Editor

	// Defaults merge over the built-in default bindings, the caller
	// winning per id. Load installs the merged result.
	Defaults map[string]Default
}

// Registry owns the id-to-binding map and mediates all add, remove and
// lookup operations. It is the sole caller of the listener engine's
// bind and unbind primitives.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]*Binding
	defaults map[string]Default

	binder   listener.Binder
	commands CommandResolver
	bus      Notifier
	editor   Editor
}

// New creates a registry wired to its collaborators. Construction is
// side-effect free: nothing touches the listener engine until Load or
// Add is called.
func New(cfg Config) *Registry {
	defaults := DefaultBindings()
	for id, d := range cfg.Defaults {
		defaults[id] = d
	}

	return &Registry{
		bindings: make(map[string]*Binding),
		defaults: defaults,
		binder:   cfg.Binder,
		commands: cfg.Commands,
		bus:      cfg.Bus,
		editor:   cfg.Editor,
	}
}

// Load installs every configured default binding via Add, in sorted-id
// order.
func (r *Registry) Load() error {
	ids := make([]string, 0, len(r.defaults))
	for id := range r.defaults {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		d := r.defaults[id]
		if _, err := r.Add(id, d.Keys, d.Handler); err != nil {
			return fmt.Errorf("loading default binding %q: %w", id, err)
		}
	}
	return nil
}

// Add installs a binding, superseding any existing binding with the
// same id (the old binding is fully removed first, including its engine
// subscription). The chord string registers with the listener engine
// together with a dispatch callback, and "keymap:add" is triggered with
// the new binding.
func (r *Registry) Add(id, keys string, h Handler) (*Binding, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if keys == "" {
		return nil, fmt.Errorf("binding %q: %w", id, ErrEmptyKeys)
	}
	if h.IsZero() {
		return nil, fmt.Errorf("binding %q: %w", id, ErrNilHandler)
	}

	r.Remove(id)

	b := &Binding{ID: id, Keys: keys, Handler: h}

	r.mu.Lock()
	r.bindings[id] = b
	r.mu.Unlock()

	if r.binder != nil {
		r.binder.Bind(keys, r.dispatchFunc(id))
	}
	if r.bus != nil {
		r.bus.Trigger(TopicAdd, b)
	}
	return b, nil
}

// dispatchFunc builds the engine callback for a binding id. Only the id
// is captured; the live binding and its handler are re-read at fire
// time, so a superseded binding never fires through a stale closure.
func (r *Registry) dispatchFunc(id string) listener.Callback {
	return func(ev listener.Event, m listener.Match) error {
		r.mu.RLock()
		b, ok := r.bindings[id]
		r.mu.RUnlock()
		if !ok {
			return nil
		}

		if err := b.Handler.Invoke(r.editor, r.commands); err != nil {
			return fmt.Errorf("keymap %q: %w", id, err)
		}

		if r.bus != nil {
			r.bus.Trigger(TopicEmit, id, m.Shortcut, ev)
			r.bus.Trigger(TopicEmit.Child(id), id, m.Shortcut, ev)
		}
		return nil
	}
}

// Get returns the binding registered under an id. Pure lookup.
func (r *Registry) Get(id string) (*Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[id]
	return b, ok
}

// GetAll returns the live internal mapping. Callers must treat it as
// read-only.
func (r *Registry) GetAll() map[string]*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bindings
}

// Remove deletes a binding, unbinds its chord string from the listener
// engine and triggers "keymap:remove" with the removed binding. Unknown
// ids are a no-op.
func (r *Registry) Remove(id string) (*Binding, bool) {
	r.mu.Lock()
	b, ok := r.bindings[id]
	if ok {
		delete(r.bindings, id)
	}
	r.mu.Unlock()

	if !ok {
		return nil, false
	}

	// Unbind is keyed by the stored chord string, covering every
	// alternative the engine registered for it.
	if r.binder != nil {
		r.binder.Unbind(b.Keys)
	}
	if r.bus != nil {
		r.bus.Trigger(TopicRemove, b)
	}
	return b, true
}

// Count returns the number of active bindings.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}
