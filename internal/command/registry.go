package command

import (
	"sort"
	"sync"
)

// Command is a runnable editor operation. The editor handle is opaque
// to this package; it is passed through from the host.
type Command interface {
	Run(ed any) error
}

// Func is a function adapter for the Command interface.
type Func func(ed any) error

// Run implements Command.
func (f Func) Run(ed any) error {
	if f == nil {
		return nil
	}
	return f(ed)
}

// Registry manages command registration by exact command id.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command under an id, replacing any existing command
// with the same id. Nil commands and empty ids are ignored.
func (r *Registry) Register(id string, cmd Command) {
	if id == "" || cmd == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[id] = cmd
}

// RegisterFunc adds a function command under an id.
func (r *Registry) RegisterFunc(id string, fn Func) {
	r.Register(id, fn)
}

// Unregister removes a command by id.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, id)
}

// Get returns the command registered under an id.
func (r *Registry) Get(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[id]
	return cmd, ok
}

// Has returns true if a command is registered for the id.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.commands[id]
	return ok
}

// List returns all registered command ids, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.commands))
	for id := range r.commands {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Clear removes all registered commands.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = make(map[string]Command)
}
