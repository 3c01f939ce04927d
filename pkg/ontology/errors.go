package ontology

import (
	"errors"
	"fmt"
)

// Construction errors abort Build; no partial graph is returned.
var (
	ErrDanglingParent   = errors.New("parent concept is not defined")
	ErrCycle            = errors.New("concept hierarchy contains a cycle")
	ErrMalformedEntry   = errors.New("malformed record")
	ErrDuplicateConcept = errors.New("concept defined more than once")
)

// Errors reported by the comparison helpers (Subsumes, LCS, Similarity).
var (
	ErrConceptNotFound = errors.New("concept not found")
	ErrOperandType     = errors.New("unsupported operand type")
)

// BuildError describes why a build failed.
type BuildError struct {
	Op     string // build phase, e.g. "validate", "link", "depth"
	Entity string // "concept" or "lexicon"
	Name   string // record name, if known
	Index  int    // record position in its input slice, -1 if not applicable
	Cause  error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	switch {
	case e.Name != "":
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Name, e.Cause)
	case e.Index >= 0:
		return fmt.Sprintf("%s %s #%d: %v", e.Op, e.Entity, e.Index, e.Cause)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// errorBuilder assembles BuildErrors fluently.
type errorBuilder struct {
	err BuildError
}

func newBuildError(op string) *errorBuilder {
	return &errorBuilder{err: BuildError{Op: op, Index: -1}}
}

func (b *errorBuilder) concept(name string) *errorBuilder {
	b.err.Entity = "concept"
	b.err.Name = name
	return b
}

func (b *errorBuilder) record(entity string, index int) *errorBuilder {
	b.err.Entity = entity
	b.err.Index = index
	return b
}

func (b *errorBuilder) cause(err error) *errorBuilder {
	b.err.Cause = err
	return b
}

// causef wraps a sentinel with detail so errors.Is still matches it.
func (b *errorBuilder) causef(sentinel error, format string, args ...any) *errorBuilder {
	b.err.Cause = fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
	return b
}

func (b *errorBuilder) Err() error {
	return &b.err
}

// IsConstructionError reports whether err aborted a build.
func IsConstructionError(err error) bool {
	var be *BuildError
	return errors.As(err, &be)
}

// IsNotFound reports whether err is a resolution miss from a comparison helper.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrConceptNotFound)
}
