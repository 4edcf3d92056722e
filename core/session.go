package core

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the tracer instance for this package's diagnostic
// output, keyed 'dparse.core' the same dotted-name way gorgo's own
// packages select their tracer (see terex/fp/fp.go's tracer() helper).
func tracer() tracing.Trace {
	return tracing.Select("dparse.core")
}

// Session holds the memo tables for a single parse (§5: "memo tables
// ... grow-only within a parse" and "callers should create them per
// parse"). A Session is not safe for concurrent use — the algorithm it
// backs is single-threaded by design (§5).
type Session[T Symbol] struct {
	derivMemo  map[string]Parser[T]
	compactMemo map[string]Parser[T]
	compacting map[string]bool // recursion guard for Compact, §4.3

	traceLevel tracing.TraceLevel
}

// SessionOption configures a Session at construction time.
type SessionOption[T Symbol] func(*Session[T])

// WithTraceLevel sets the tracing verbosity that NewSession applies to
// the package tracer ("dparse.core"). The level is package-wide, so it
// also affects every other Session in use.
func WithTraceLevel[T Symbol](level tracing.TraceLevel) SessionOption[T] {
	return func(s *Session[T]) {
		s.traceLevel = level
	}
}

// NewSession creates an empty Session ready to drive one parse.
func NewSession[T Symbol](opts ...SessionOption[T]) *Session[T] {
	s := &Session[T]{
		derivMemo:   make(map[string]Parser[T]),
		compactMemo: make(map[string]Parser[T]),
		compacting:  make(map[string]bool),
		traceLevel:  tracing.LevelError,
	}
	for _, opt := range opts {
		opt(s)
	}
	tracer().SetTraceLevel(s.traceLevel)
	return s
}

// Reset clears all memo tables, letting a Session be reused for a
// fresh parse against the same grammar without reallocating it.
func (s *Session[T]) Reset() {
	s.derivMemo = make(map[string]Parser[T])
	s.compactMemo = make(map[string]Parser[T])
	s.compacting = make(map[string]bool)
}
