package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/style-kb/internal/sheet"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export styles",
		Long: "Export the collection as a JSON array, or with --xlsx as a spreadsheet that\n" +
			"import reads back. Use --xlsx - to write the spreadsheet to stdout.",
		Run: runExport,
	}

	cmd.Flags().String("xlsx", "", "Write an .xlsx file to this path")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	xlsxPath, _ := cmd.Flags().GetString("xlsx")

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.GetAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	if xlsxPath == "" {
		printJSON(cmd, records)
		return
	}

	if xlsxPath == "-" {
		if err := sheet.Export(records, cmd.OutOrStdout()); err != nil {
			exitErr("export", err)
		}
		return
	}

	err = writeFile(xlsxPath, func(w io.Writer) error {
		return sheet.Export(records, w)
	})
	if err != nil {
		exitErr("export", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"file":%q,"count":%d}`+"\n", xlsxPath, len(records))
}

// writeFile creates path and fills it with write. On any failure,
// including the final close, the partial file is removed.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}
