package storage

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ev-newsroom/internal/model"
	"ev-newsroom/internal/reconcile"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, session string) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewSessionStore(rdb, session, time.Hour), mr
}

var (
	_ reconcile.ViewCounter = (*SessionStore)(nil)
	_ reconcile.BookmarkSet = (*SessionStore)(nil)
)

func TestSessionStore_Views(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t, "abc")

	for i := 1; i <= 3; i++ {
		n, err := s.Increment(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(i), n)
	}
	_, err := s.Increment(ctx, 8)
	require.NoError(t, err)

	n, err := s.Count(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = s.Count(ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, n)

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{5: 3, 8: 1}, counts)

	assert.Equal(t, time.Hour, mr.TTL("newsroom:session:abc:views"))
}

func TestSessionStore_Bookmarks(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t, "abc")

	on, err := s.Toggle(ctx, 7)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, mr.Exists("newsroom:session:abc:bookmarks"))
	assert.Equal(t, time.Hour, mr.TTL("newsroom:session:abc:bookmarks"))

	marked, err := s.IsBookmarked(ctx, 7)
	require.NoError(t, err)
	assert.True(t, marked)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{7: true}, all)

	off, err := s.Toggle(ctx, 7)
	require.NoError(t, err)
	assert.False(t, off)
	all, err = s.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSessionStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	a := NewSessionStore(rdb, "a", 0)
	b := NewSessionStore(rdb, "b", 0)
	_, err := a.Increment(ctx, 1)
	require.NoError(t, err)
	_, err = a.Toggle(ctx, 1)
	require.NoError(t, err)

	n, err := b.Count(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, n)
	marked, err := b.IsBookmarked(ctx, 1)
	require.NoError(t, err)
	assert.False(t, marked)
	assert.Equal(t, DefaultSessionTTL, mr.TTL("newsroom:session:a:views"))
}

func TestSessionStore_Reset(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t, "abc")
	_, _ = s.Increment(ctx, 1)
	_, _ = s.Toggle(ctx, 1)

	require.NoError(t, s.Reset(ctx))
	assert.False(t, mr.Exists("newsroom:session:abc:views"))
	assert.False(t, mr.Exists("newsroom:session:abc:bookmarks"))
}

func TestSessionStore_AsOverlay(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, "overlay")
	o := reconcile.Overlay{Views: s, Bookmarks: s}

	items := reconcile.Pointers([]model.NewsItem{{ID: 1}, {ID: 2}})
	items, err := o.RecordView(ctx, items, 1)
	require.NoError(t, err)
	items, err = o.ToggleBookmark(ctx, items, 2)
	require.NoError(t, err)

	fresh, err := o.Apply(ctx, reconcile.Pointers([]model.NewsItem{{ID: 1}, {ID: 2}}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh[0].Views)
	assert.True(t, fresh[1].IsBookmarked)
	assert.Equal(t, items[1].IsBookmarked, fresh[1].IsBookmarked)
}

func TestSessionStore_ConcurrentTogglesAlternate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, "race")

	const n = 20
	var wg sync.WaitGroup
	var added atomic.Int32
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			on, err := s.Toggle(ctx, 3)
			assert.NoError(t, err)
			if on {
				added.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(n/2), added.Load())
	marked, err := s.IsBookmarked(ctx, 3)
	require.NoError(t, err)
	assert.False(t, marked)
}
