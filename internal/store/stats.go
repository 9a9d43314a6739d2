package store

import (
	"context"
	"sort"

	"github.com/rcliao/style-kb/internal/model"
)

// Stats holds collection statistics.
type Stats struct {
	Key           string         `json:"key"`
	Total         int            `json:"total"`
	Categories    []CategoryStat `json:"categories"`
	DistinctTags  int            `json:"distinct_tags"`
	LastUpdatedAt int64          `json:"last_updated_at,omitempty"`
}

// CategoryStat holds a per-category count.
type CategoryStat struct {
	Category model.Category `json:"category"`
	Label    string         `json:"label"`
	Count    int            `json:"count"`
}

// TagCount is a tag and how many records carry it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Stats returns collection statistics.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{Key: s.key, Total: len(all)}
	counts := map[model.Category]int{}
	for _, r := range all {
		counts[r.CategoryType]++
		if r.UpdatedAt > st.LastUpdatedAt {
			st.LastUpdatedAt = r.UpdatedAt
		}
	}
	for _, c := range model.Categories {
		st.Categories = append(st.Categories, CategoryStat{Category: c, Label: c.Label(), Count: counts[c]})
	}
	st.DistinctTags = len(countTags(all))
	return st, nil
}

// Tags returns every distinct tag with its record count, most used first.
func (s *Store) Tags(ctx context.Context) ([]TagCount, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return countTags(all), nil
}

func countTags(records []model.StyleRecord) []TagCount {
	seen := map[string]int{}
	for _, r := range records {
		// A tag repeated within one record counts once.
		dup := map[string]bool{}
		for _, t := range r.Tags {
			if t == "" || dup[t] {
				continue
			}
			dup[t] = true
			seen[t]++
		}
	}

	tags := make([]TagCount, 0, len(seen))
	for t, n := range seen {
		tags = append(tags, TagCount{Tag: t, Count: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	return tags
}
