package reconcile

import (
	"context"
	"fmt"
	"sync"

	"ev-newsroom/internal/model"
)

// ViewCounter is the session-scoped store of client-side view counts.
type ViewCounter interface {
	Increment(ctx context.Context, id int) (int64, error)
	Count(ctx context.Context, id int) (int64, error)
	Counts(ctx context.Context) (map[int]int64, error)
	Reset(ctx context.Context) error
}

// BookmarkSet is the session-scoped store of client-side bookmark flags.
type BookmarkSet interface {
	Toggle(ctx context.Context, id int) (bool, error)
	IsBookmarked(ctx context.Context, id int) (bool, error)
	All(ctx context.Context) (map[int]bool, error)
	Reset(ctx context.Context) error
}

// MemoryViews keeps view counts in process memory.
type MemoryViews struct {
	mu     sync.Mutex
	counts map[int]int64
}

func NewMemoryViews() *MemoryViews {
	return &MemoryViews{counts: map[int]int64{}}
}

func (m *MemoryViews) Increment(_ context.Context, id int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = ApplyViewIncrement(m.counts, id)
	return m.counts[id], nil
}

func (m *MemoryViews) Count(_ context.Context, id int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[id], nil
}

// Counts returns the current map. Callers must not modify it.
func (m *MemoryViews) Counts(_ context.Context) (map[int]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts, nil
}

func (m *MemoryViews) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = map[int]int64{}
	return nil
}

// MemoryBookmarks keeps bookmark flags in process memory.
type MemoryBookmarks struct {
	mu  sync.Mutex
	ids map[int]bool
}

func NewMemoryBookmarks() *MemoryBookmarks {
	return &MemoryBookmarks{ids: map[int]bool{}}
}

func (m *MemoryBookmarks) Toggle(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ids[id] {
		delete(m.ids, id)
		return false, nil
	}
	m.ids[id] = true
	return true, nil
}

func (m *MemoryBookmarks) IsBookmarked(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids[id], nil
}

func (m *MemoryBookmarks) All(_ context.Context) (map[int]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[int]bool, len(m.ids))
	for k, v := range m.ids {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryBookmarks) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids = map[int]bool{}
	return nil
}

// Overlay carries the session's client-only state onto fetched items.
type Overlay struct {
	Views     ViewCounter
	Bookmarks BookmarkSet
}

// Apply copies bookmark flags and view counts onto items whose overlay
// differs, leaving the rest of the collection shared with the input.
func (o Overlay) Apply(ctx context.Context, items []*model.NewsItem) ([]*model.NewsItem, error) {
	var counts map[int]int64
	var marks map[int]bool
	var err error
	if o.Views != nil {
		if counts, err = o.Views.Counts(ctx); err != nil {
			return items, err
		}
	}
	if o.Bookmarks != nil {
		if marks, err = o.Bookmarks.All(ctx); err != nil {
			return items, err
		}
	}
	out := items
	copied := false
	for i, it := range items {
		if it == nil {
			continue
		}
		views, marked := counts[it.ID], marks[it.ID]
		if it.Views == views && it.IsBookmarked == marked {
			continue
		}
		if !copied {
			out = make([]*model.NewsItem, len(items))
			copy(out, items)
			copied = true
		}
		updated := *it
		updated.Views = views
		updated.IsBookmarked = marked
		out[i] = &updated
	}
	return out, nil
}

// ToggleBookmark flips the stored flag and mirrors the stored state onto
// the matching item.
func (o Overlay) ToggleBookmark(ctx context.Context, items []*model.NewsItem, id int) ([]*model.NewsItem, error) {
	idx := indexOf(items, id)
	if idx < 0 {
		return items, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	marked, err := o.Bookmarks.Toggle(ctx, id)
	if err != nil {
		return items, err
	}
	return replaceAt(items, idx, func(it *model.NewsItem) { it.IsBookmarked = marked }), nil
}

// RecordView increments the stored counter and reflects it on the item.
func (o Overlay) RecordView(ctx context.Context, items []*model.NewsItem, id int) ([]*model.NewsItem, error) {
	idx := indexOf(items, id)
	if idx < 0 {
		return items, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	n, err := o.Views.Increment(ctx, id)
	if err != nil {
		return items, err
	}
	return replaceAt(items, idx, func(it *model.NewsItem) { it.Views = n }), nil
}
