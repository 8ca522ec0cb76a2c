package cmd

import (
	"context"
	"fmt"
	"strings"

	"ev-newsroom/internal/api"
	"ev-newsroom/internal/model"
	"ev-newsroom/internal/reconcile"
	"ev-newsroom/internal/render"
	"ev-newsroom/internal/search"

	"github.com/spf13/cobra"
)

var (
	newsPage   int
	newsFilter string
)

// newsCmd groups news subcommands.
var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "List, search and interact with news items",
}

var newsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a page of news",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		page, err := d.news.LoadPage(ctx, newsPage)
		if err != nil {
			return err
		}
		items, err := d.overlay.Apply(ctx, reconcile.Pointers(page))
		if err != nil {
			return err
		}
		header := fmt.Sprintf("Page %d", newsPage)
		if strings.TrimSpace(newsFilter) != "" {
			items = search.Filter(items, newsFilter)
			header = fmt.Sprintf("Page %d, filtered by %q (%d)", newsPage, search.Normalize(newsFilter), len(items))
		}
		return render.News(cmd.OutOrStdout(), render.NewsPage{Header: header, Items: items})
	},
}

var newsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search news titles on the server",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		query := strings.Join(args, " ")
		cur, err := d.news.Cursor(newsPage)
		if err != nil {
			return err
		}
		found, err := d.client.SearchNews(ctx, query, cur.Skip(), cur.Limit)
		if api.IsNotFound(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "No news found for your search.")
			return nil
		}
		if err != nil {
			return err
		}
		items, err := d.overlay.Apply(ctx, reconcile.Pointers(found))
		if err != nil {
			return err
		}
		header := fmt.Sprintf("Results for %q, page %d", query, newsPage)
		return render.News(cmd.OutOrStdout(), render.NewsPage{Header: header, Items: items})
	},
}

var newsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single news item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, items, err := loadOne(ctx, args[0])
		if err != nil {
			return err
		}
		defer d.close()
		return render.News(cmd.OutOrStdout(), render.NewsPage{Items: items})
	},
}

var newsVoteCmd = &cobra.Command{
	Use:   "vote <id> <+1|-1>",
	Short: "Vote on a news item and print the confirmed tally",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		value, err := parseVote(args[1])
		if err != nil {
			return err
		}
		d, items, err := loadOne(ctx, args[0])
		if err != nil {
			return err
		}
		defer d.close()

		id := items[0].ID
		items, err = reconcile.New(d.client).ApplyVote(ctx, items, id, value)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Voted %+d on [%d]; votes now %d\n", value, id, items[0].VoteCount)
		return nil
	},
}

var newsBookmarkCmd = &cobra.Command{
	Use:   "bookmark <id>",
	Short: "Toggle the session bookmark of a news item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		on, err := d.overlay.Bookmarks.Toggle(ctx, id)
		if err != nil {
			return err
		}
		state := "removed"
		if on {
			state = "added"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Bookmark %s for [%d] (session %s)\n", state, id, d.cfg.Session.ID)
		return nil
	},
}

var newsOpenCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Record a view and print the article link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, items, err := loadOne(ctx, args[0])
		if err != nil {
			return err
		}
		defer d.close()

		items, err = d.overlay.RecordView(ctx, items, items[0].ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n(views %d)\n", items[0].Link, items[0].Views)
		return nil
	},
}

var newsShareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Print a news item as shareable text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, items, err := loadOne(ctx, args[0])
		if err != nil {
			return err
		}
		defer d.close()
		fmt.Fprintln(cmd.OutOrStdout(), shareText(items[0]))
		return nil
	},
}

// loadOne fetches a single item as a one-element collection with the
// session overlay applied.
func loadOne(ctx context.Context, rawID string) (*deps, []*model.NewsItem, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, nil, err
	}
	d, err := loadDeps(ctx)
	if err != nil {
		return nil, nil, err
	}
	it, err := d.client.NewsItem(ctx, id)
	if err != nil {
		d.close()
		return nil, nil, err
	}
	items, err := d.overlay.Apply(ctx, []*model.NewsItem{&it})
	if err != nil {
		d.close()
		return nil, nil, err
	}
	return d, items, nil
}

func shareText(it *model.NewsItem) string {
	return fmt.Sprintf("%s\n%s", it.DisplayTitle(), it.Link)
}

func init() {
	for _, c := range []*cobra.Command{newsListCmd, newsSearchCmd} {
		c.Flags().IntVar(&newsPage, "page", 1, "page number (1-based)")
	}
	newsListCmd.Flags().StringVar(&newsFilter, "filter", "", "filter the page by title/source substring")

	newsCmd.AddCommand(newsListCmd, newsSearchCmd, newsShowCmd, newsVoteCmd,
		newsBookmarkCmd, newsOpenCmd, newsShareCmd)
	rootCmd.AddCommand(newsCmd)
}
