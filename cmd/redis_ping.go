package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ev-newsroom/internal/redisclient"

	"github.com/spf13/cobra"
)

// pingCmd checks the Redis server that backs session overlays.
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Ping the session Redis and print PONG",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if strings.TrimSpace(cfg.Redis.Addr) == "" {
			return errors.New("redis.addr is not set; session overlays are in memory")
		}

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
		defer cancel()

		res, err := rdb.Ping(ctx).Result()
		if err != nil {
			return fmt.Errorf("ping %s: %w", cfg.Redis.Addr, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, session %q)\n", res, cfg.Redis.Addr, cfg.Session.ID)
		return nil
	},
}

func init() {
	redisCmd.AddCommand(pingCmd)
}
