// Package reconcile merges vote, bookmark and view updates into a held news
// collection by item ID. Collections are copy-on-write: the returned slice
// shares every untouched *NewsItem with the input and carries a fresh
// pointer for the changed one.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"ev-newsroom/internal/model"
)

// ErrItemNotFound is returned when the target ID is not in the collection.
var ErrItemNotFound = errors.New("reconcile: item not found")

// Voter submits a vote and returns the server's view of the item.
type Voter interface {
	Vote(ctx context.Context, id, value int) (model.NewsItem, error)
}

// Reconciler applies server-confirmed updates to collections.
type Reconciler struct {
	voter Voter
}

// New creates a reconciler backed by voter.
func New(voter Voter) *Reconciler {
	return &Reconciler{voter: voter}
}

// ApplyVote sends the vote and, once the server confirms, replaces the
// matching item's tally with the server value. The tally is never bumped
// locally. On any error the input collection is returned as is.
func (r *Reconciler) ApplyVote(ctx context.Context, items []*model.NewsItem, id, value int) ([]*model.NewsItem, error) {
	idx := indexOf(items, id)
	if idx < 0 {
		return items, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	confirmed, err := r.voter.Vote(ctx, id, value)
	if err != nil {
		return items, fmt.Errorf("vote on %d: %w", id, err)
	}
	return replaceAt(items, idx, func(it *model.NewsItem) {
		it.VoteCount = confirmed.VoteCount
	}), nil
}

// ApplyBookmarkToggle flips the bookmark flag of the matching item.
func ApplyBookmarkToggle(items []*model.NewsItem, id int) ([]*model.NewsItem, error) {
	idx := indexOf(items, id)
	if idx < 0 {
		return items, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	return replaceAt(items, idx, func(it *model.NewsItem) {
		it.IsBookmarked = !it.IsBookmarked
	}), nil
}

// ApplyViewIncrement returns a copy of counts with counts[id] incremented by
// exactly one. The input map is not modified.
func ApplyViewIncrement(counts map[int]int64, id int) map[int]int64 {
	out := make(map[int]int64, len(counts)+1)
	for k, v := range counts {
		out[k] = v
	}
	out[id]++
	return out
}

// Pointers converts a freshly fetched page into a reconcilable collection.
func Pointers(items []model.NewsItem) []*model.NewsItem {
	out := make([]*model.NewsItem, len(items))
	for i := range items {
		it := items[i]
		out[i] = &it
	}
	return out
}

// Find returns the item with id, or nil.
func Find(items []*model.NewsItem, id int) *model.NewsItem {
	if i := indexOf(items, id); i >= 0 {
		return items[i]
	}
	return nil
}

func indexOf(items []*model.NewsItem, id int) int {
	for i, it := range items {
		if it != nil && it.ID == id {
			return i
		}
	}
	return -1
}

func replaceAt(items []*model.NewsItem, idx int, mutate func(*model.NewsItem)) []*model.NewsItem {
	out := make([]*model.NewsItem, len(items))
	copy(out, items)
	updated := *items[idx]
	mutate(&updated)
	out[idx] = &updated
	return out
}
