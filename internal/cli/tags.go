package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags with how many styles use them",
		Run:   runTags,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max tags (0 for all)")

	RootCmd.AddCommand(cmd)
}

func runTags(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	tags, err := s.Tags(cmd.Context())
	if err != nil {
		exitErr("tags", err)
	}
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	printJSON(cmd, tags)
}
