package cmd

import "github.com/spf13/cobra"

// redisCmd groups checks for the session store backend.
var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Session store utilities",
}

func init() {
	rootCmd.AddCommand(redisCmd)
}
