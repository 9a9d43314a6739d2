package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rcliao/style-kb/internal/model"
)

// Cell is one raw imported value: either a scalar rendered as text or a
// list of strings.
type Cell struct {
	Text   string
	List   []string
	IsList bool
}

// TextCell returns a scalar cell.
func TextCell(s string) Cell { return Cell{Text: s} }

// ListCell returns a list cell.
func ListCell(items ...string) Cell {
	return Cell{List: append([]string{}, items...), IsList: true}
}

// String renders the cell as text; lists are joined with commas.
func (c Cell) String() string {
	if c.IsList {
		return strings.Join(c.List, ",")
	}
	return c.Text
}

// UnmarshalJSON accepts strings, numbers, booleans, null and arrays of
// those.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		list := make([]string, 0, len(items))
		for _, it := range items {
			s, err := scalarText(it)
			if err != nil {
				return err
			}
			list = append(list, s)
		}
		*c = Cell{List: list, IsList: true}
		return nil
	}
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	*c = Cell{Text: s}
	return nil
}

// MarshalJSON writes lists as arrays and everything else as a string.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsList {
		return json.Marshal(c.List)
	}
	return json.Marshal(c.Text)
}

func scalarText(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return fmt.Sprint(x), nil
	}
	return "", fmt.Errorf("unsupported cell value %s", data)
}

// RawRow is one imported row keyed by internal field key.
type RawRow map[string]Cell

// ImportBatch stores every row as a new record with a fresh id and the
// current time. Imported records are placed ahead of existing ones, in
// import order. Rows are not validated; see fieldsFromRow for coercion.
func (s *Store) ImportBatch(ctx context.Context, rows []RawRow) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	now := s.millis()
	imported := make([]model.StyleRecord, 0, len(rows)+len(records))
	for _, row := range rows {
		imported = append(imported, model.StyleRecord{
			ID:          s.newID(),
			StyleFields: fieldsFromRow(row),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	n := len(imported)

	if err := s.save(ctx, append(imported, records...)); err != nil {
		return 0, err
	}

	s.log.Info().Int("imported", n).Int("total", n+len(records)).Msg("import batch stored")
	return n, nil
}

// fieldsFromRow coerces a raw row into record fields:
//   - tags: a list is kept, text is split on "," and "，"; items are
//     trimmed and empty ones dropped; absent means no tags.
//   - images: only a list is accepted, anything else means no images.
//   - categoryType: parsed leniently, unknown or empty becomes General.
//   - text fields: lists are joined with ",".
//
// Keys that are not field keys are ignored.
func fieldsFromRow(row RawRow) model.StyleFields {
	f := model.StyleFields{CategoryType: model.General}
	for key, cell := range row {
		switch key {
		case "tags":
			if cell.IsList {
				f.Tags = model.CleanList(cell.List)
			} else {
				f.Tags = model.SplitTags(cell.Text)
			}
		case "images":
			if cell.IsList {
				f.Images = model.CleanList(cell.List)
			}
		case "categoryType":
			if c, err := model.ParseCategory(cell.String()); err == nil {
				f.CategoryType = c
			}
		default:
			f.SetText(key, cell.String())
		}
	}
	f.Normalize()
	return f
}
