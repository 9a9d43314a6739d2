package sheet

import (
	"sort"

	"github.com/rcliao/style-kb/internal/model"
	"github.com/rcliao/style-kb/internal/store"
)

// MapRow converts a header-keyed row into a row keyed by internal field
// keys. A header from the mapping table is copied to its key; a header
// that already is an internal key is copied through unless a mapped header
// in the same row supplied that key (the mapped header wins). Every other
// column is dropped and its header returned, sorted.
func MapRow(row Row) (store.RawRow, []string) {
	out := store.RawRow{}
	fromHeader := map[string]bool{}
	var passthrough, dropped []string

	for header, value := range row {
		if key, ok := model.KeyForHeader(header); ok {
			out[key] = store.TextCell(value)
			fromHeader[key] = true
			continue
		}
		if model.IsFieldKey(header) {
			passthrough = append(passthrough, header)
			continue
		}
		dropped = append(dropped, header)
	}

	for _, key := range passthrough {
		if fromHeader[key] {
			continue
		}
		out[key] = store.TextCell(row[key])
	}

	sort.Strings(dropped)
	return out, dropped
}
