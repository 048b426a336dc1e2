package scope

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scope is a validity window for borrowed data. It is alive from Enter until
// End and is safe for concurrent use.
type Scope struct {
	id     string
	name   string
	ended  atomic.Bool
	logger *zap.Logger
}

// Option configures a Scope at Enter time.
type Option func(*Scope)

// WithName attaches a human-readable name, used in logs and panic messages.
func WithName(name string) Option {
	return func(s *Scope) { s.name = name }
}

// WithLogger routes scope lifecycle and violation events to the given logger.
// Without it the scope is silent.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scope) { s.logger = logger }
}

// Enter opens a new scope and returns it together with its teardown function.
// The teardown should be deferred by the code that owns the borrowed data; it
// is idempotent.
func Enter(opts ...Option) (*Scope, func()) {
	s := &Scope{
		id:     uuid.NewString(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Debug("scope entered", s.fields()...)
	return s, s.End
}

// With runs fn inside a fresh scope and ends the scope afterwards, even if fn
// panics.
func With(fn func(*Scope), opts ...Option) {
	s, end := Enter(opts...)
	defer end()
	fn(s)
}

// ID returns the unique identity of the scope.
func (s *Scope) ID() string { return s.id }

// Name returns the name given via WithName, or "".
func (s *Scope) Name() string { return s.name }

// Alive reports whether the scope has not ended. A nil scope is never alive.
func (s *Scope) Alive() bool {
	return s != nil && !s.ended.Load()
}

// End closes the scope. Every holder bound to it becomes invalid; further
// calls are no-ops.
func (s *Scope) End() {
	if !s.ended.CompareAndSwap(false, true) {
		return
	}
	s.logger.Debug("scope ended", s.fields()...)
}

// Check asserts that the scope is still alive. It panics otherwise: a value
// used past its scope is a programming error at the lending site, not a
// recoverable condition.
func (s *Scope) Check() {
	if s == nil {
		panic("scope: check on nil scope")
	}
	if s.ended.Load() {
		s.logger.Error("scoped value used after end of scope", s.fields()...)
		panic(fmt.Sprintf("scope: %s used after End", s.describe()))
	}
}

func (s *Scope) describe() string {
	if s.name != "" {
		return fmt.Sprintf("%s (%s)", s.name, s.id)
	}
	return s.id
}

func (s *Scope) fields() []zap.Field {
	fields := []zap.Field{zap.String("scope_id", s.id)}
	if s.name != "" {
		fields = append(fields, zap.String("scope_name", s.name))
	}
	return fields
}
