// Package commands provides command registration and dispatch for kvshell.
// It manages a global registry of command verbs and turns raw command lines
// into responses.
package commands

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"kvshell/internal/store"
	"kvshell/pkg/kvtypes"
)

// Command defines the interface that all kvshell command verbs implement.
type Command interface {
	Name() string
	ParseMode() kvtypes.ParseMode
	Description() string
	Usage() string
	HelpInfo() kvtypes.HelpInfo
	Execute(env *Env, args kvtypes.CommandArgs) (kvtypes.Response, error)
}

// Env is what a command may act on: the session's store, the history
// recorded so far, and the registry the command was found in.
type Env struct {
	Store    *store.Store
	History  []string
	Registry *Registry
}

// Registry manages command registration and lookup.
// It provides thread-safe registration and retrieval of commands by name.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry. Returns an error if the command
// name is empty or if a command with the same name is already registered.
func (r *Registry) Register(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Name() == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	if _, exists := r.commands[cmd.Name()]; exists {
		return fmt.Errorf("command %s already registered", cmd.Name())
	}

	r.commands[cmd.Name()] = cmd
	return nil
}

// Unregister removes a command from the registry by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, name)
}

// Get retrieves a command by name. Verbs are matched case-sensitively.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetAll returns all registered commands sorted by name.
func (r *Registry) GetAll() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		all = append(all, cmd)
	}
	slices.SortFunc(all, func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return all
}

// IsValidCommand checks if a command exists in the registry.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// GlobalRegistry is the registry the builtin commands register with.
var GlobalRegistry = NewRegistry()
