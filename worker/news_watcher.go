package worker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"ev-newsroom/internal/model"
	"ev-newsroom/internal/paging"
	"ev-newsroom/internal/reconcile"
	"ev-newsroom/internal/render"
)

// NewsWatcher polls the first news page and prints headlines it has not
// printed before. The held collection is replaced wholesale on each poll.
type NewsWatcher struct {
	Pages    *paging.Controller[model.NewsItem]
	Overlay  reconcile.Overlay
	Out      io.Writer
	Interval time.Duration

	items []*model.NewsItem
	seen  map[int]struct{}
}

func (w *NewsWatcher) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 5 * time.Minute
	}

	// initial run
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

// Items returns the collection from the last successful poll.
func (w *NewsWatcher) Items() []*model.NewsItem { return w.items }

func (w *NewsWatcher) runOnce(ctx context.Context) {
	if w.seen == nil {
		w.seen = map[int]struct{}{}
	}
	page, err := w.Pages.LoadPage(ctx, 1)
	if err != nil {
		// keep the previous collection
		slog.Error("news-watcher: load page failed", "error", err)
		return
	}
	items := reconcile.Pointers(page)
	if items, err = w.Overlay.Apply(ctx, items); err != nil {
		slog.Warn("news-watcher: overlay unavailable", "error", err)
	}
	w.items = items

	var fresh []*model.NewsItem
	for _, it := range items {
		if _, ok := w.seen[it.ID]; ok {
			continue
		}
		w.seen[it.ID] = struct{}{}
		fresh = append(fresh, it)
	}
	slog.Info("news-watcher: polled", "items", len(items), "new", len(fresh))
	if len(fresh) == 0 {
		return
	}
	var buf bytes.Buffer
	header := fmt.Sprintf("-- %d new headline(s) at %s --", len(fresh), time.Now().Format("15:04"))
	if err := render.News(&buf, render.NewsPage{Header: header, Items: fresh}); err != nil {
		slog.Error("news-watcher: render failed", "error", err)
		return
	}
	_, _ = w.Out.Write(buf.Bytes())
}
