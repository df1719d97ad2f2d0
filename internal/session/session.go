// Package session ties a store, its command history and the command registry
// together. It is the entry point both the interactive shell and batch mode
// feed lines into.
package session

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"kvshell/internal/commands"
	// Register the builtin commands with the global registry.
	_ "kvshell/internal/commands/builtin"
	"kvshell/internal/logger"
	"kvshell/internal/store"
	"kvshell/pkg/kvtypes"
)

// Session is one interactive or batch run. It owns its store and history and
// is not safe for concurrent use.
type Session struct {
	ID string

	env  *commands.Env
	done bool
}

// Option configures a Session.
type Option func(*Session)

// WithStore makes the session work on st instead of an empty store.
func WithStore(st *store.Store) Option {
	return func(s *Session) {
		s.env.Store = st
	}
}

// Deterministic gives the session a sequential ID so that test output is
// stable across runs.
func Deterministic() Option {
	return func(s *Session) {
		s.ID = deterministicID()
	}
}

var idCounter atomic.Uint64

// deterministicID returns UUID-shaped IDs 00000001-0000-4000-8000-000000000001,
// 00000002-..., and so on.
func deterministicID() string {
	n := idCounter.Add(1)
	return fmt.Sprintf("%08d-0000-4000-8000-%012d", n, n)
}

// New creates a session with an empty store and a random ID.
func New(opts ...Option) *Session {
	s := &Session{
		ID: uuid.New().String(),
		env: &commands.Env{
			Store:    store.New(),
			Registry: commands.GlobalRegistry,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	logger.Debug("Session created", "session", s.ID)
	return s
}

// Execute runs one command line. Non-blank lines are recorded in the history
// before the command runs, so history lists itself.
func (s *Session) Execute(line string) kvtypes.Response {
	if strings.TrimSpace(line) == "" {
		return kvtypes.Info("")
	}

	s.env.History = append(s.env.History, strings.TrimSpace(line))
	resp := s.env.Registry.Dispatch(s.env, line)
	if resp.Exit {
		s.done = true
		logger.Debug("Session finished", "session", s.ID, "commands", len(s.env.History))
	}
	return resp
}

// Apply runs line and returns only the response text.
func (s *Session) Apply(line string) string {
	return s.Execute(line).Text
}

// History returns a copy of the recorded command lines.
func (s *Session) History() []string {
	return append([]string(nil), s.env.History...)
}

// Done reports whether exit has been executed.
func (s *Session) Done() bool {
	return s.done
}

// Store returns the session's store.
func (s *Session) Store() *store.Store {
	return s.env.Store
}

// Apply runs a single command line against st without any history and
// returns the response text.
func Apply(st *store.Store, line string) string {
	env := &commands.Env{Store: st, Registry: commands.GlobalRegistry}
	return commands.GlobalRegistry.Dispatch(env, line).Text
}
