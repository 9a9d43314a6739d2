package sheet

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/rcliao/style-kb/internal/store"
)

// BatchImporter stores a batch of mapped rows.
type BatchImporter interface {
	ImportBatch(ctx context.Context, rows []store.RawRow) (int, error)
}

// Result summarizes an import.
type Result struct {
	Imported int      `json:"imported"`
	Ignored  []string `json:"ignored_columns,omitempty"`
}

// Import parses a spreadsheet, maps every row and hands the whole batch to
// imp in one call. Parse failures and files without usable rows return
// ErrMalformed and store nothing.
func Import(ctx context.Context, imp BatchImporter, r io.Reader, filename string) (*Result, error) {
	rows, err := Read(r, filename)
	if err != nil {
		return nil, err
	}

	batch := make([]store.RawRow, 0, len(rows))
	ignored := map[string]bool{}
	for _, row := range rows {
		mapped, dropped := MapRow(row)
		for _, h := range dropped {
			ignored[h] = true
		}
		if len(mapped) > 0 {
			batch = append(batch, mapped)
		}
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: no rows with recognized columns", ErrMalformed)
	}

	n, err := imp.ImportBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("import batch: %w", err)
	}

	res := &Result{Imported: n}
	for h := range ignored {
		res.Ignored = append(res.Ignored, h)
	}
	sort.Strings(res.Ignored)
	return res, nil
}
