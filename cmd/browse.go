package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"ev-newsroom/internal/model"
	"ev-newsroom/internal/paging"
	"ev-newsroom/internal/reconcile"
	"ev-newsroom/internal/render"
	"ev-newsroom/worker"

	"github.com/spf13/cobra"
)

const browseHelp = `commands:
  n / p        next / previous page
  g <page>     go to page
  r            reload current page
  l            list current page again
  v <id> <±1>  vote
  b <id>       toggle bookmark
  o <id>       open (records a view, prints link)
  s <id>       share text
  q            quit`

var newsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive news pager",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		b := newBrowser(d.news, reconcile.New(d.client), d.overlay, worker.NewSyncWriter(cmd.OutOrStdout()))
		fmt.Fprintln(b.out, browseHelp)
		b.load(ctx, 1)
		err = b.loop(ctx, cmd.InOrStdin())
		cancel()
		b.wait()
		return err
	},
}

// browser is the interactive consumer of the news controller. Page loads run
// in the background and only the response for the page currently wanted is
// displayed.
type browser struct {
	pages   *paging.Controller[model.NewsItem]
	view    *paging.View[*model.NewsItem]
	rec     *reconcile.Reconciler
	overlay reconcile.Overlay
	out     io.Writer
	wg      sync.WaitGroup
}

func newBrowser(pages *paging.Controller[model.NewsItem], rec *reconcile.Reconciler, overlay reconcile.Overlay, out io.Writer) *browser {
	return &browser{
		pages:   pages,
		view:    paging.NewView[*model.NewsItem](),
		rec:     rec,
		overlay: overlay,
		out:     out,
	}
}

func (b *browser) wait() { b.wg.Wait() }

// load requests page in the background.
func (b *browser) load(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	t := b.view.Want(page)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		fetched, err := b.pages.LoadPage(ctx, page)
		if err == nil {
			items, oerr := b.overlay.Apply(ctx, reconcile.Pointers(fetched))
			if oerr != nil {
				slog.Warn("browse: session overlay unavailable", "error", oerr)
			}
			if b.view.Commit(t, items) {
				b.show()
			} else {
				slog.Debug("browse: discarded stale page", "page", page, "want", b.view.Desired())
			}
			return
		}
		if b.view.Fail(t, err) && ctx.Err() == nil {
			fmt.Fprintf(b.out, "error loading page %d: %v\n", page, err)
		}
	}()
}

func (b *browser) show() {
	snap := b.view.Snapshot()
	if snap.Version == 0 {
		fmt.Fprintln(b.out, "loading...")
		return
	}
	_ = render.News(b.out, render.NewsPage{Header: fmt.Sprintf("Page %d", snap.Page), Items: snap.Items})
}

func (b *browser) loop(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if quit := b.exec(ctx, fields); quit {
			return nil
		}
	}
	return sc.Err()
}

// exec runs one command line and reports whether the loop should stop.
func (b *browser) exec(ctx context.Context, f []string) bool {
	switch f[0] {
	case "q", "quit", "exit":
		return true
	case "h", "help", "?":
		fmt.Fprintln(b.out, browseHelp)
	case "n":
		b.load(ctx, b.view.Desired()+1)
	case "p":
		b.load(ctx, b.view.Desired()-1)
	case "r":
		b.load(ctx, b.view.Desired())
	case "l":
		b.show()
	case "g":
		if len(f) < 2 {
			fmt.Fprintln(b.out, "usage: g <page>")
			break
		}
		n, err := strconv.Atoi(f[1])
		if err != nil || n < 1 {
			fmt.Fprintf(b.out, "invalid page %q\n", f[1])
			break
		}
		b.load(ctx, n)
	case "v", "b", "o", "s":
		b.interact(ctx, f)
	default:
		fmt.Fprintf(b.out, "unknown command %q (h for help)\n", f[0])
	}
	return false
}

func (b *browser) interact(ctx context.Context, f []string) {
	if len(f) < 2 || (f[0] == "v" && len(f) < 3) {
		fmt.Fprintln(b.out, "missing arguments (h for help)")
		return
	}
	id, err := parseID(f[1])
	if err != nil {
		fmt.Fprintln(b.out, err)
		return
	}
	snap := b.view.Snapshot()
	var items []*model.NewsItem
	switch f[0] {
	case "v":
		value, err := parseVote(f[2])
		if err != nil {
			fmt.Fprintln(b.out, err)
			return
		}
		items, err = b.rec.ApplyVote(ctx, snap.Items, id, value)
		if err != nil {
			fmt.Fprintf(b.out, "vote failed: %v\n", err)
			return
		}
		fmt.Fprintf(b.out, "[%d] votes now %d\n", id, reconcile.Find(items, id).VoteCount)
	case "b":
		items, err = b.overlay.ToggleBookmark(ctx, snap.Items, id)
		if err != nil {
			fmt.Fprintf(b.out, "bookmark failed: %v\n", err)
			return
		}
		fmt.Fprintf(b.out, "[%d] bookmarked: %v\n", id, reconcile.Find(items, id).IsBookmarked)
	case "o":
		items, err = b.overlay.RecordView(ctx, snap.Items, id)
		if err != nil {
			fmt.Fprintf(b.out, "open failed: %v\n", err)
			return
		}
		it := reconcile.Find(items, id)
		fmt.Fprintf(b.out, "%s (views %d)\n", it.Link, it.Views)
	case "s":
		it := reconcile.Find(snap.Items, id)
		if it == nil {
			fmt.Fprintf(b.out, "no item %d on this page\n", id)
			return
		}
		fmt.Fprintln(b.out, shareText(it))
		return
	}
	if !b.view.Update(snap.Version, items) {
		slog.Debug("browse: page changed during update; change kept in session only", "id", id)
	}
}

func init() {
	newsCmd.AddCommand(newsBrowseCmd)
}
