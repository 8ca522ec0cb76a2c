package paging

import "sync"

// Ticket identifies one page request made through a View.
type Ticket struct {
	Page int
	seq  uint64
}

// View holds the page a consumer currently displays and discards responses
// that no longer match it. Page loads may complete in any order; only the
// newest request for the desired page is committed.
type View[T any] struct {
	mu      sync.Mutex
	want    int
	seq     uint64
	page    int
	items   []T
	version uint64
}

// Snapshot is the displayed state of a View. Version changes on every
// Commit or Update and is zero until the first commit.
type Snapshot[T any] struct {
	Page    int
	Items   []T
	Version uint64
}

// NewView creates an empty view.
func NewView[T any]() *View[T] {
	return &View[T]{}
}

// Want records page as the desired page and returns the ticket the
// response must present to Commit.
func (v *View[T]) Want(page int) Ticket {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	v.want = page
	return Ticket{Page: page, seq: v.seq}
}

// Desired returns the page most recently asked for.
func (v *View[T]) Desired() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.want
}

// Current reports whether t is still the newest request.
func (v *View[T]) Current(t Ticket) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return t.seq == v.seq
}

// Commit replaces the displayed items if t is still current. It reports
// whether the items were applied.
func (v *View[T]) Commit(t Ticket, items []T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if t.seq != v.seq {
		return false
	}
	v.page = t.Page
	v.items = items
	v.version++
	return true
}

// Fail reports whether an error for t should be shown. The displayed items
// are never touched by a failed load.
func (v *View[T]) Fail(t Ticket, err error) bool {
	if err == nil {
		return false
	}
	return v.Current(t)
}

// Snapshot returns the displayed state.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot[T]{Page: v.page, Items: v.items, Version: v.version}
}

// Update replaces the displayed items after a local reconciliation that
// started from the snapshot with the given version. It refuses when another
// commit happened in between, so a slow vote cannot overwrite a newer page.
func (v *View[T]) Update(version uint64, items []T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if version == 0 || version != v.version {
		return false
	}
	v.items = items
	v.version++
	return true
}
