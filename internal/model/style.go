// Package model defines the style record types and the spreadsheet header mapping.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the top-level classification of a style.
type Category string

const (
	Architecture Category = "Architecture"
	Interior     Category = "Interior"
	General      Category = "General"
)

// ErrInvalidCategory is returned when a category is not one of the known values.
var ErrInvalidCategory = errors.New("invalid category")

// Categories lists the valid categories in display order.
var Categories = []Category{Architecture, Interior, General}

var categoryLabels = map[Category]string{
	Architecture: "建筑专属",
	Interior:     "室内专属",
	General:      "通用",
}

// Label returns the Chinese display label.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory accepts the enum values (any case) and the Chinese labels.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || s == categoryLabels[c] {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: Architecture, Interior, General)", ErrInvalidCategory, s)
}

// StyleFields holds the user-editable part of a style record.
type StyleFields struct {
	// Basic info
	NameCn        string   `json:"nameCn"`
	NameEn        string   `json:"nameEn"`
	CategoryType  Category `json:"categoryType"`
	CategoryStyle string   `json:"categoryStyle"`
	Definition    string   `json:"definition"`
	Tags          []string `json:"tags"`
	CoverImage    string   `json:"coverImage,omitempty"`

	// Historical context
	OriginTime     string `json:"originTime"`
	OriginRegion   string `json:"originRegion"`
	HistoryContext string `json:"historyContext"`
	Founders       string `json:"founders"`

	// Design core
	Philosophy   string `json:"philosophy"`
	Features     string `json:"features"`
	DesignTaboos string `json:"designTaboos"`

	// Visual and technical
	Colors    string `json:"colors"`
	Materials string `json:"materials"`
	Elements  string `json:"elements"`
	Lighting  string `json:"lighting"`

	// Application and relations
	Application string `json:"application"`
	Derivatives string `json:"derivatives"`
	SimilarDiff string `json:"similarDiff"`
	MixMatch    string `json:"mixMatch"`

	// Resources
	Images []string `json:"images"`
	Notes  string   `json:"notes"`
}

// StyleRecord is one stored style entry.
type StyleRecord struct {
	ID string `json:"id"`
	StyleFields
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// Normalize replaces nil lists with empty ones so they serialize as [].
func (f *StyleFields) Normalize() {
	if f.Tags == nil {
		f.Tags = []string{}
	}
	if f.Images == nil {
		f.Images = []string{}
	}
}

// Validate checks the fields a form submission must carry.
func (f StyleFields) Validate() error {
	var missing []string
	if strings.TrimSpace(f.NameCn) == "" {
		missing = append(missing, "nameCn")
	}
	if f.CategoryType == "" {
		missing = append(missing, "categoryType")
	}
	if strings.TrimSpace(f.Definition) == "" {
		missing = append(missing, "definition")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if !f.CategoryType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, f.CategoryType)
	}
	return nil
}

// Text returns the value of a text field by internal key.
func (f *StyleFields) Text(key string) (string, bool) {
	p := f.textField(key)
	if p == nil {
		return "", false
	}
	return *p, true
}

// SetText sets a text field by internal key. It reports false for list
// fields, categoryType and unknown keys.
func (f *StyleFields) SetText(key, value string) bool {
	p := f.textField(key)
	if p == nil {
		return false
	}
	*p = value
	return true
}

func (f *StyleFields) textField(key string) *string {
	switch key {
	case "nameCn":
		return &f.NameCn
	case "nameEn":
		return &f.NameEn
	case "categoryStyle":
		return &f.CategoryStyle
	case "definition":
		return &f.Definition
	case "coverImage":
		return &f.CoverImage
	case "originTime":
		return &f.OriginTime
	case "originRegion":
		return &f.OriginRegion
	case "historyContext":
		return &f.HistoryContext
	case "founders":
		return &f.Founders
	case "philosophy":
		return &f.Philosophy
	case "features":
		return &f.Features
	case "designTaboos":
		return &f.DesignTaboos
	case "colors":
		return &f.Colors
	case "materials":
		return &f.Materials
	case "elements":
		return &f.Elements
	case "lighting":
		return &f.Lighting
	case "application":
		return &f.Application
	case "derivatives":
		return &f.Derivatives
	case "similarDiff":
		return &f.SimilarDiff
	case "mixMatch":
		return &f.MixMatch
	case "notes":
		return &f.Notes
	}
	return nil
}
