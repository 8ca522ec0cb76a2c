package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ev-newsroom/internal/model"
	"ev-newsroom/worker"

	"github.com/spf13/cobra"
)

var (
	watchNoNews          bool
	watchNoAnnouncements bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll news and announcements and print new entries until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		out := worker.NewSyncWriter(cmd.OutOrStdout())
		ws := []worker.Worker{}
		if !watchNoNews {
			slog.Info("starting news watcher", "interval", d.dur.Watch, "page_size", d.news.PageSize())
			ws = append(ws, &worker.NewsWatcher{
				Pages:    d.news,
				Overlay:  d.overlay,
				Out:      out,
				Interval: d.dur.Watch,
			})
		}
		if !watchNoAnnouncements {
			cats := d.cfg.Watch.Categories
			if len(cats) == 0 {
				cats = model.AnnouncementCategories
			}
			slog.Info("starting announcement watcher", "categories", cats)
			ws = append(ws, &worker.AnnouncementWatcher{
				Client:     d.client,
				Categories: cats,
				Out:        out,
				Interval:   d.dur.Watch,
			})
		}
		if len(ws) == 0 {
			slog.Warn("nothing to watch")
			return nil
		}

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		go func() {
			select {
			case s := <-sigc:
				slog.Info("received signal, shutting down", "signal", s.String())
				cancel()
			case <-ctx.Done():
			}
		}()

		return worker.NewManager(ws...).Start(ctx)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchNoNews, "no-news", false, "do not watch the news feed")
	watchCmd.Flags().BoolVar(&watchNoAnnouncements, "no-announcements", false, "do not watch announcements")
	rootCmd.AddCommand(watchCmd)
}
