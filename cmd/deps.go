package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"ev-newsroom/internal/api"
	"ev-newsroom/internal/config"
	"ev-newsroom/internal/model"
	"ev-newsroom/internal/paging"
	"ev-newsroom/internal/reconcile"
	"ev-newsroom/internal/redisclient"
	"ev-newsroom/internal/storage"
)

// deps bundles what most commands need.
type deps struct {
	cfg     config.Config
	dur     config.Durations
	client  *api.Client
	news    *paging.Controller[model.NewsItem]
	overlay reconcile.Overlay
	close   func()
}

func loadDeps(ctx context.Context) (*deps, error) {
	cfg := GetConfig()
	dur, err := cfg.ParseDurations()
	if err != nil {
		return nil, err
	}
	client := api.New(cfg.API.BaseURL, dur.APITimeout).WithVehicleSpecsPath(cfg.API.VehicleSpecsPath)
	d := &deps{
		cfg:    cfg,
		dur:    dur,
		client: client,
		news:   paging.NewController[model.NewsItem](client.News, cfg.Paging.PageSize),
		close:  func() {},
	}
	d.overlay = openOverlay(ctx, cfg, dur, d)
	return d, nil
}

// openOverlay uses the Redis session store when configured and reachable,
// and falls back to process-local overlays otherwise.
func openOverlay(ctx context.Context, cfg config.Config, dur config.Durations, d *deps) reconcile.Overlay {
	if strings.TrimSpace(cfg.Redis.Addr) == "" {
		return reconcile.Overlay{Views: reconcile.NewMemoryViews(), Bookmarks: reconcile.NewMemoryBookmarks()}
	}
	rdb := redisclient.New(cfg.Redis)
	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		slog.Warn("redis unavailable; session overlays kept in memory", "addr", cfg.Redis.Addr, "error", err)
		_ = rdb.Close()
		return reconcile.Overlay{Views: reconcile.NewMemoryViews(), Bookmarks: reconcile.NewMemoryBookmarks()}
	}
	d.close = func() { _ = rdb.Close() }
	store := storage.NewSessionStore(rdb, cfg.Session.ID, dur.SessionTTL)
	slog.Debug("session overlays in redis", "session", store.Session())
	return reconcile.Overlay{Views: store, Bookmarks: store}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseVote accepts +1/-1 style numbers as well as up/down.
func parseVote(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "+":
		return 1, nil
	case "down", "-":
		return -1, nil
	}
	v, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "+"))
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid vote %q: use +1, -1, up or down", s)
	}
	return v, nil
}
