package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/style-kb/internal/model"
	"github.com/rcliao/style-kb/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List styles",
		Long:  "List styles, newest first. -q matches the Chinese name, English name (any case) or sub-category.",
		Run:   runList,
	}

	cmd.Flags().StringP("query", "q", "", "Filter by name or sub-category")
	cmd.Flags().StringP("category", "c", "", "Filter by category: Architecture, Interior, General")
	cmd.Flags().IntP("limit", "l", 0, "Max results (0 for all)")
	cmd.Flags().Bool("ids-only", false, "Only output id and Chinese name")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	query, _ := cmd.Flags().GetString("query")
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	params := store.FilterParams{Query: query}
	if category != "" {
		c, err := model.ParseCategory(category)
		if err != nil {
			exitErr("list", err)
		}
		params.Category = c
	}
	listStyles(cmd, params, limit, idsOnly)
}

func listStyles(cmd *cobra.Command, params store.FilterParams, limit int, idsOnly bool) {
	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.Search(cmd.Context(), params)
	if err != nil {
		exitErr("list", err)
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	if idsOnly {
		for _, r := range records {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.ID, r.NameCn)
		}
		return
	}
	printJSON(cmd, records)
}
