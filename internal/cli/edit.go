package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/rcliao/style-kb/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a style",
		Long: "Change fields of a style with --set key=value, or with a partial JSON object\n" +
			"piped via stdin. id and createdAt cannot be changed. Tags are comma-separated.",
		Args: cobra.ExactArgs(1),
		Run:  runEdit,
	}

	cmd.Flags().StringArray("set", nil, "Field as key=value (repeatable)")

	RootCmd.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, args []string) {
	pairs, _ := cmd.Flags().GetStringArray("set")

	var p model.StylePatch
	if len(pairs) > 0 {
		if err := setPairs(&p, pairs); err != nil {
			exitErr("edit", err)
		}
	} else {
		data, err := stdinJSON()
		if err != nil {
			exitErr("read stdin", err)
		}
		if data != nil {
			if err := json.Unmarshal(data, &p); err != nil {
				exitErr("parse json", err)
			}
		}
	}
	if p.Empty() {
		exitErr("edit", errors.New("nothing to change (use --set key=value or pipe JSON)"))
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	rec, err := s.Update(cmd.Context(), args[0], p)
	if err != nil {
		exitErr("edit", err)
	}
	printJSON(cmd, rec)
}
