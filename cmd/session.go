package cmd

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the view-count and bookmark session",
	Long: "View counts and bookmarks are scoped to a session id (session.id or --session). " +
		"They live in Redis when redis.addr is set, otherwise only for one invocation.",
}

var sessionNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Print a fresh session id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), uuid.New().String())
		return nil
	},
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear view counts and bookmarks of the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.overlay.Views.Reset(ctx); err != nil {
			return err
		}
		if err := d.overlay.Bookmarks.Reset(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session %q reset\n", d.cfg.Session.ID)
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print view counts and bookmarks of the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := loadDeps(ctx)
		if err != nil {
			return err
		}
		defer d.close()

		counts, err := d.overlay.Views.Counts(ctx)
		if err != nil {
			return err
		}
		marks, err := d.overlay.Bookmarks.All(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Session: %s\n", d.cfg.Session.ID)
		fmt.Fprintln(out, "Views:")
		for _, id := range sortedKeys(counts) {
			fmt.Fprintf(out, "  [%d] %d\n", id, counts[id])
		}
		fmt.Fprintln(out, "Bookmarks:")
		for _, id := range sortedKeys(marks) {
			fmt.Fprintf(out, "  [%d]\n", id)
		}
		return nil
	},
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func init() {
	sessionCmd.AddCommand(sessionNewCmd, sessionResetCmd, sessionShowCmd)
	rootCmd.AddCommand(sessionCmd)
}
