package worker

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"ev-newsroom/internal/model"
	"ev-newsroom/internal/render"
)

// AnnouncementSource is the part of the API client the watcher needs.
type AnnouncementSource interface {
	Announcements(ctx context.Context, category string) ([]model.Announcement, error)
}

// AnnouncementWatcher polls announcement categories and prints entries with
// links it has not printed before.
type AnnouncementWatcher struct {
	Client     AnnouncementSource
	Categories []string
	Out        io.Writer
	Interval   time.Duration

	seen map[string]struct{}
}

func (w *AnnouncementWatcher) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 30 * time.Minute
	}
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

func (w *AnnouncementWatcher) runOnce(ctx context.Context) {
	if w.seen == nil {
		w.seen = map[string]struct{}{}
	}
	for _, cat := range w.Categories {
		cat = strings.ToLower(strings.TrimSpace(cat))
		if cat == "" {
			continue
		}
		items, err := w.Client.Announcements(ctx, cat)
		if err != nil {
			slog.Error("announcement-watcher: fetch failed", "category", cat, "error", err)
			continue
		}
		var fresh []model.Announcement
		for _, a := range items {
			key := cat + "|" + a.Link + "|" + a.Title
			if _, ok := w.seen[key]; ok {
				continue
			}
			w.seen[key] = struct{}{}
			fresh = append(fresh, a)
		}
		slog.Info("announcement-watcher: polled", "category", cat, "items", len(items), "new", len(fresh))
		if len(fresh) == 0 {
			continue
		}
		var buf bytes.Buffer
		if err := render.Announcements(&buf, render.AnnouncementList{Category: cat, Items: fresh}); err != nil {
			slog.Error("announcement-watcher: render failed", "error", err)
			continue
		}
		_, _ = w.Out.Write(buf.Bytes())
	}
}
