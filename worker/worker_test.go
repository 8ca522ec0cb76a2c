package worker

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"ev-newsroom/internal/model"
	"ev-newsroom/internal/paging"
	"ev-newsroom/internal/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsWatcher_PrintsOnlyNewItems(t *testing.T) {
	pages := [][]model.NewsItem{
		{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}},
		{{ID: 3, Title: "three"}, {ID: 1, Title: "one"}},
	}
	call := 0
	var gotSkip, gotLimit int
	ctrl := paging.NewController[model.NewsItem](func(ctx context.Context, skip, limit int) ([]model.NewsItem, error) {
		gotSkip, gotLimit = skip, limit
		p := pages[call]
		call++
		return p, nil
	}, 10)

	var out bytes.Buffer
	views := reconcile.NewMemoryViews()
	_, _ = views.Increment(context.Background(), 3)
	w := &NewsWatcher{Pages: ctrl, Overlay: reconcile.Overlay{Views: views}, Out: &out}

	w.runOnce(context.Background())
	assert.Equal(t, 0, gotSkip)
	assert.Equal(t, 10, gotLimit)
	assert.Contains(t, out.String(), "2 new headline(s)")
	assert.Contains(t, out.String(), "[1] one")
	assert.Contains(t, out.String(), "[2] two")

	out.Reset()
	w.runOnce(context.Background())
	assert.Contains(t, out.String(), "1 new headline(s)")
	assert.Contains(t, out.String(), "[3] three")
	assert.NotContains(t, out.String(), "[1] one")

	require.Len(t, w.Items(), 2)
	assert.Equal(t, int64(1), w.Items()[0].Views)
}

func TestNewsWatcher_FailureKeepsCollection(t *testing.T) {
	fail := false
	ctrl := paging.NewController[model.NewsItem](func(ctx context.Context, skip, limit int) ([]model.NewsItem, error) {
		if fail {
			return nil, errors.New("down")
		}
		return []model.NewsItem{{ID: 1, Title: "one"}}, nil
	}, 10)
	var out bytes.Buffer
	w := &NewsWatcher{Pages: ctrl, Out: &out}
	w.runOnce(context.Background())
	before := w.Items()

	fail = true
	out.Reset()
	w.runOnce(context.Background())
	assert.Empty(t, out.String())
	assert.Equal(t, before, w.Items())
}

type stubAnnouncements map[string][]model.Announcement

func (s stubAnnouncements) Announcements(_ context.Context, cat string) ([]model.Announcement, error) {
	items, ok := s[cat]
	if !ok {
		return nil, errors.New("unknown category")
	}
	return items, nil
}

func TestAnnouncementWatcher(t *testing.T) {
	src := stubAnnouncements{
		"seoul": {{Title: "Subsidy", Link: "https://example.com/1", Date: "2024-04-01"}},
	}
	var out bytes.Buffer
	w := &AnnouncementWatcher{Client: src, Categories: []string{" Seoul ", "", "nowhere"}, Out: &out}

	w.runOnce(context.Background())
	assert.Contains(t, out.String(), "== seoul ==")
	assert.Contains(t, out.String(), "Subsidy")

	out.Reset()
	w.runOnce(context.Background())
	assert.Empty(t, out.String())

	src["seoul"] = append(src["seoul"], model.Announcement{Title: "Charger bid", Link: "https://example.com/2"})
	w.runOnce(context.Background())
	assert.Contains(t, out.String(), "Charger bid")
	assert.Equal(t, 1, strings.Count(out.String(), "- "))
}

type countingWorker struct{ started atomic.Int32 }

func (c *countingWorker) Start(ctx context.Context) error {
	c.started.Add(1)
	<-ctx.Done()
	return nil
}

func TestManager_StopsOnCancel(t *testing.T) {
	a, b := &countingWorker{}, &countingWorker{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewManager(a, b).Start(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not stop")
	}
	assert.Equal(t, int32(1), a.started.Load())
	assert.Equal(t, int32(1), b.started.Load())
}

type failingWorker struct{ err error }

func (f failingWorker) Start(context.Context) error { return f.err }

func TestManager_ReportsWorkerErrors(t *testing.T) {
	boom := errors.New("boom")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewManager(failingWorker{err: boom}, &countingWorker{}).Start(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not stop")
	}
}

func TestSyncWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewSyncWriter(&buf)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}
