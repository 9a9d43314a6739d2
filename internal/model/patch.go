package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StylePatch is a partial update of a style record. Only the values that
// were set are merged; id and timestamps are never part of a patch.
type StylePatch struct {
	Text     map[string]string
	Category *Category
	Tags     *[]string
	Images   *[]string
}

// Empty reports whether the patch changes nothing.
func (p StylePatch) Empty() bool {
	return len(p.Text) == 0 && p.Category == nil && p.Tags == nil && p.Images == nil
}

// SetText records a new value for a text field.
func (p *StylePatch) SetText(key, value string) error {
	f, ok := LookupField(key)
	if !ok || f.Kind != KindText {
		return fmt.Errorf("unknown text field %q", key)
	}
	if p.Text == nil {
		p.Text = map[string]string{}
	}
	p.Text[key] = value
	return nil
}

// SetCategory records a new category.
func (p *StylePatch) SetCategory(c Category) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
	p.Category = &c
	return nil
}

// SetTags records a new tag list.
func (p *StylePatch) SetTags(tags []string) {
	t := CleanList(tags)
	p.Tags = &t
}

// SetImages records a new image list.
func (p *StylePatch) SetImages(images []string) {
	im := CleanList(images)
	p.Images = &im
}

// Set parses a string value for any field: tags are comma separated,
// images newline or comma separated, categories use ParseCategory.
func (p *StylePatch) Set(key, value string) error {
	f, ok := LookupField(key)
	if !ok {
		return fmt.Errorf("unknown field %q", key)
	}
	switch f.Kind {
	case KindCategory:
		c, err := ParseCategory(value)
		if err != nil {
			return err
		}
		p.Category = &c
	case KindList:
		if key == "tags" {
			p.SetTags(SplitTags(value))
		} else {
			p.SetImages(strings.FieldsFunc(value, func(r rune) bool { return r == '\n' || r == ',' }))
		}
	default:
		return p.SetText(key, value)
	}
	return nil
}

// Apply merges the patch over f.
func (p StylePatch) Apply(f *StyleFields) {
	for k, v := range p.Text {
		f.SetText(k, v)
	}
	if p.Category != nil {
		f.CategoryType = *p.Category
	}
	if p.Tags != nil {
		f.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.Images != nil {
		f.Images = append([]string{}, (*p.Images)...)
	}
}

// UnmarshalJSON decodes a partial record. Keys that are not descriptive
// fields (id, createdAt, updatedAt, anything unknown) are ignored.
func (p *StylePatch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, msg := range raw {
		f, ok := LookupField(key)
		if !ok {
			continue
		}
		switch f.Kind {
		case KindCategory:
			var s string
			if err := json.Unmarshal(msg, &s); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			c, err := ParseCategory(s)
			if err != nil {
				return err
			}
			p.Category = &c
		case KindList:
			var list []string
			if err := json.Unmarshal(msg, &list); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			if key == "tags" {
				p.SetTags(list)
			} else {
				p.SetImages(list)
			}
		default:
			var s string
			if err := json.Unmarshal(msg, &s); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			p.SetText(key, s)
		}
	}
	return nil
}
