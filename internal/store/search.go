package store

import (
	"context"
	"strings"

	"github.com/rcliao/style-kb/internal/model"
)

// FilterParams holds the list-view filters.
type FilterParams struct {
	Query    string
	Category model.Category // empty means any
}

// Matches reports whether r passes the filters. The query is a substring
// of nameCn or categoryStyle (case-sensitive) or of nameEn (ignoring case).
func (p FilterParams) Matches(r model.StyleRecord) bool {
	if p.Category != "" && r.CategoryType != p.Category {
		return false
	}
	q := p.Query
	return strings.Contains(r.NameCn, q) ||
		strings.Contains(strings.ToLower(r.NameEn), strings.ToLower(q)) ||
		strings.Contains(r.CategoryStyle, q)
}

// Filter returns the records matching p, preserving order.
func Filter(records []model.StyleRecord, p FilterParams) []model.StyleRecord {
	out := make([]model.StyleRecord, 0, len(records))
	for _, r := range records {
		if p.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Search filters the whole collection.
func (s *Store) Search(ctx context.Context, p FilterParams) ([]model.StyleRecord, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, p), nil
}
