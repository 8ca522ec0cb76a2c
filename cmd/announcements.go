package cmd

import (
	"fmt"
	"log/slog"

	"ev-newsroom/internal/model"
	"ev-newsroom/internal/render"

	"github.com/spf13/cobra"
)

var announcementsCmd = &cobra.Command{
	Use:   "announcements [category...]",
	Short: "Print announcements for one or more categories",
	Long: fmt.Sprintf("Print announcements per category. Without arguments, watch.categories "+
		"from the config is used, or every known category: %v", model.AnnouncementCategories),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		cats := args
		if len(cats) == 0 {
			cats = d.cfg.Watch.Categories
		}
		if len(cats) == 0 {
			cats = model.AnnouncementCategories
		}
		var failed int
		for _, cat := range cats {
			items, err := d.client.Announcements(ctx, cat)
			if err != nil {
				// one bad category must not hide the rest
				slog.Warn("announcements: fetch failed", "category", cat, "error", err)
				failed++
				continue
			}
			if err := render.Announcements(cmd.OutOrStdout(), render.AnnouncementList{Category: cat, Items: items}); err != nil {
				return err
			}
		}
		if failed == len(cats) {
			return fmt.Errorf("all %d announcement categories failed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(announcementsCmd)
}
