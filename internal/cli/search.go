package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/style-kb/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search styles by name",
		Long:  "Shorthand for list -q: match the Chinese name, English name (any case) or sub-category.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	listStyles(cmd, store.FilterParams{Query: strings.Join(args, " ")}, limit, false)
}
