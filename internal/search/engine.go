package search

import (
	"sync"
	"time"
)

// Result is the outcome of one filtering pass. Searched is false while the
// query is blank, which tells "not searched yet" apart from "no matches".
type Result[T any] struct {
	Query    string
	Items    []T
	Searched bool
}

// Engine filters a held collection after the query has been quiet for the
// debounce window. onResult runs on the timer goroutine (or the caller's,
// for Flush and SetCollection).
type Engine[T Searchable] struct {
	mu          sync.Mutex
	deb         *Debouncer
	items       []T
	appliedNorm string
	pendingNorm string
	closed      bool
	result      Result[T]
	onResult    func(Result[T])
}

// NewEngine creates an engine with the given window. onResult may be nil.
func NewEngine[T Searchable](window time.Duration, onResult func(Result[T]), opts ...Option) *Engine[T] {
	return &Engine[T]{
		deb:      NewDebouncer(window, opts...),
		onResult: onResult,
		result:   Result[T]{Items: []T{}},
	}
}

// SetCollection replaces the collection wholesale. The last applied query is
// re-run against it at once so the result stays a subset of the new data.
func (e *Engine[T]) SetCollection(items []T) {
	e.mu.Lock()
	e.items = items
	if !e.result.Searched {
		e.mu.Unlock()
		return
	}
	res := e.applyLocked(e.result.Query)
	cb := e.onResult
	e.mu.Unlock()
	if cb != nil {
		cb(res)
	}
}

// OnQueryChange schedules a filtering pass for query. A query that
// normalizes to the pending one leaves the running window alone; one that
// normalizes to the last applied query cancels any pending pass instead of
// scheduling a redundant one. Calls after Cancel are ignored.
func (e *Engine[T]) OnQueryChange(query string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	norm := Normalize(query)
	if norm == e.appliedNorm {
		e.deb.Cancel()
		e.pendingNorm = ""
		return
	}
	if norm == e.pendingNorm && e.deb.Pending() {
		return
	}
	e.pendingNorm = norm
	e.deb.Schedule(func() { e.run(query) })
}

func (e *Engine[T]) run(query string) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.pendingNorm = ""
	res := e.applyLocked(query)
	cb := e.onResult
	e.mu.Unlock()
	if cb != nil {
		cb(res)
	}
}

func (e *Engine[T]) applyLocked(query string) Result[T] {
	norm := Normalize(query)
	e.result = Result[T]{
		Query:    query,
		Items:    Filter(e.items, query),
		Searched: norm != "",
	}
	e.appliedNorm = norm
	return e.result
}

// Result returns the last applied result.
func (e *Engine[T]) Result() Result[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Pending reports whether a filtering pass is waiting to run.
func (e *Engine[T]) Pending() bool { return e.deb.Pending() }

// Flush runs a pending pass now.
func (e *Engine[T]) Flush() bool { return e.deb.Flush() }

// Cancel drops any pending pass and shuts the engine: a pass already
// claimed by the timer does not filter or report. Owners must call it on
// teardown.
func (e *Engine[T]) Cancel() {
	e.mu.Lock()
	e.closed = true
	e.pendingNorm = ""
	e.mu.Unlock()
	e.deb.Cancel()
}
