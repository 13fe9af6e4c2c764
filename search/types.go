package search

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for search execution.
var (
	// ErrFrontierEmpty is returned by Frontier.Remove when no live entry remains.
	ErrFrontierEmpty = errors.New("search: frontier is empty")

	// ErrInvalidAction is wrapped by Problem.Result implementations when the
	// action was not produced by Actions for the given state.
	ErrInvalidAction = errors.New("search: action not applicable to state")

	// ErrNilProblem is returned if a nil Problem is passed to the driver.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilFrontier is returned if a nil Frontier is passed to the driver.
	ErrNilFrontier = errors.New("search: frontier is nil")

	// ErrFrontierInUse is returned when the driver receives a non-empty frontier.
	ErrFrontierInUse = errors.New("search: frontier must be empty before a search")

	// ErrUnknownStrategy is returned for an unrecognized Strategy value or name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrExpansionLimit is returned when WithMaxExpansions bounds the search.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Outcome is the terminal state of a search.
type Outcome int

const (
	// Exhausted means the frontier emptied without reaching a goal.
	Exhausted Outcome = iota
	// Solved means a goal node was removed from the frontier.
	Solved
)

// String returns a lower-case label for o.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Event is a read-only snapshot of a Node handed to hooks.
// State holds the Problem state as an untyped value.
type Event struct {
	ID        NodeID
	Parent    NodeID
	State     any
	Depth     int
	PathCost  float64
	Heuristic float64
	Total     float64
}

// Option configures the driver via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the driver's logger, bound and observer hooks.
type Options struct {
	// Logger receives Debug records at search start and end.
	Logger *slog.Logger

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many states have been expanded. Zero means no bound.
	MaxExpansions int

	// OnExpand is called after a node fails the goal test, before its
	// successors are generated. A non-nil error aborts the search.
	OnExpand func(ev Event) error

	// OnEnqueue is called whenever a node is added to the frontier.
	OnEnqueue func(ev Event)

	// OnReplace is called when a pending node is superseded by a cheaper one.
	OnReplace func(old, replacement Event)

	err error
}

// DefaultOptions returns Options with a discard logger, no expansion bound
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.DiscardHandler),
		MaxExpansions: 0,
		OnExpand:      func(Event) error { return nil },
		OnEnqueue:     func(Event) {},
		OnReplace:     func(Event, Event) {},
	}
}

// WithLogger routes the driver's Debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  stop with ErrExpansionLimit after n expansions
//	n == 0: explicit no bound
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run on every expansion; returning an
// error from it stops the search.
func WithOnExpand(fn func(ev Event) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run on every frontier insertion.
func WithOnEnqueue(fn func(ev Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnReplace registers a callback run when a pending node is replaced.
func WithOnReplace(fn func(old, replacement Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReplace = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Outcome: Solved or Exhausted.
//   - Solution: the goal node (zero value unless Solved).
//   - Path: states from the initial state to the goal, len == Solution.Depth()+1.
//   - Actions: transitions along Path, len == len(Path)-1.
//   - PathCost: accumulated g of the goal node.
//   - Expanded: number of states whose successors were generated.
//   - Generated: number of child nodes built.
//   - MaxFrontier: peak count of live frontier entries.
type Result[S comparable, A any] struct {
	Outcome     Outcome
	Solution    Node[S, A]
	Path        []S
	Actions     []A
	PathCost    float64
	Expanded    int
	Generated   int
	MaxFrontier int
}

// Found reports whether the search reached a goal.
func (r Result[S, A]) Found() bool {
	return r.Outcome == Solved
}
