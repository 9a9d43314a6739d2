package cli

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/style-kb/internal/sheet"
	"github.com/rcliao/style-kb/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import styles from a spreadsheet",
		Long: "Import styles from an .xlsx, .xls or .csv file whose first row holds the column\n" +
			"headers (风格名称(中文), 风格分类, 标签, ...). Unknown columns are ignored.\n" +
			"With --json, read an array of objects keyed by field name from the file or stdin.",
		Args: cobra.MaximumNArgs(1),
		Run:  runImport,
	}

	cmd.Flags().Bool("json", false, "Read raw rows as JSON instead of a spreadsheet")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")

	if !asJSON && len(args) == 0 {
		exitErr("import", errors.New("a spreadsheet file is required (or use --json)"))
	}

	var (
		r    io.Reader = os.Stdin
		name string
	)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			exitErr("open file", err)
		}
		defer f.Close()
		r, name = f, args[0]
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res := &sheet.Result{}
	if asJSON {
		var rows []store.RawRow
		if err := json.NewDecoder(r).Decode(&rows); err != nil {
			exitErr("parse json", err)
		}
		res.Imported, err = s.ImportBatch(cmd.Context(), rows)
	} else {
		res, err = sheet.Import(cmd.Context(), s, r, name)
	}
	if err != nil {
		exitErr("import", err)
	}

	printJSON(cmd, struct {
		OK bool `json:"ok"`
		*sheet.Result
	}{true, res})
}
