package web

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rcliao/style-kb/internal/model"
)

// formField is one input of the create/edit form.
type formField struct {
	model.Field
	Value    string
	Long     bool
	Required bool
}

var longFields = map[string]bool{
	"definition":     true,
	"historyContext": true,
	"philosophy":     true,
	"features":       true,
	"designTaboos":   true,
	"colors":         true,
	"materials":      true,
	"elements":       true,
	"lighting":       true,
	"application":    true,
	"derivatives":    true,
	"similarDiff":    true,
	"mixMatch":       true,
	"notes":          true,
	"images":         true,
}

var requiredFields = map[string]bool{
	"nameCn":       true,
	"categoryType": true,
	"definition":   true,
}

func formFields(f model.StyleFields) []formField {
	out := make([]formField, 0, len(model.Fields))
	for _, fd := range model.Fields {
		out = append(out, formField{
			Field:    fd,
			Value:    fieldValue(&f, fd.Key),
			Long:     longFields[fd.Key],
			Required: requiredFields[fd.Key],
		})
	}
	return out
}

// fieldValue renders a field the way the form edits it: tags comma
// separated, images one per line.
func fieldValue(f *model.StyleFields, key string) string {
	switch key {
	case "tags":
		return strings.Join(f.Tags, ", ")
	case "images":
		return strings.Join(f.Images, "\n")
	case "categoryType":
		return string(f.CategoryType)
	}
	v, _ := f.Text(key)
	return v
}

// parseForm reads the posted fields. The fields are returned even when
// validation fails so that the form can be shown again as submitted.
func parseForm(c *gin.Context) (model.StyleFields, error) {
	var f model.StyleFields
	var catErr error
	for _, fd := range model.Fields {
		v := c.PostForm(fd.Key)
		switch fd.Kind {
		case model.KindCategory:
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			cat, err := model.ParseCategory(v)
			if err != nil {
				catErr = err
				f.CategoryType = model.Category(v)
				continue
			}
			f.CategoryType = cat
		case model.KindList:
			if fd.Key == "tags" {
				f.Tags = model.SplitTags(v)
			} else {
				f.Images = model.SplitLines(v)
			}
		default:
			f.SetText(fd.Key, strings.TrimSpace(v))
		}
	}
	f.Normalize()

	if catErr != nil {
		return f, fmt.Errorf("%w: %w", errInvalid, catErr)
	}
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("%w: %w", errInvalid, err)
	}
	return f, nil
}

// patchFromFields turns a full form submission into a patch that replaces
// every descriptive field.
func patchFromFields(f model.StyleFields) model.StylePatch {
	var p model.StylePatch
	for _, fd := range model.Fields {
		if fd.Kind != model.KindText {
			continue
		}
		v, _ := f.Text(fd.Key)
		p.SetText(fd.Key, v)
	}
	p.SetCategory(f.CategoryType)
	p.SetTags(f.Tags)
	p.SetImages(f.Images)
	return p
}

// detailSection groups fields on the detail page.
type detailSection struct {
	Title string
	Items []detailItem
}

type detailItem struct {
	Label    string
	Value    string
	Markdown bool
}

var detailLayout = []struct {
	title string
	keys  []string
}{
	{"基础信息", []string{"nameEn", "categoryStyle", "definition"}},
	{"历史背景", []string{"originTime", "originRegion", "founders", "historyContext"}},
	{"设计核心", []string{"philosophy", "features", "designTaboos"}},
	{"视觉与技术", []string{"colors", "materials", "elements", "lighting"}},
	{"应用与关联", []string{"application", "derivatives", "similarDiff", "mixMatch"}},
	{"补充", []string{"notes"}},
}

// detailSections lists the non-empty text fields of r by section.
func detailSections(r *model.StyleRecord) []detailSection {
	var out []detailSection
	for _, sec := range detailLayout {
		ds := detailSection{Title: sec.title}
		for _, key := range sec.keys {
			v, _ := r.Text(key)
			if strings.TrimSpace(v) == "" {
				continue
			}
			fd, _ := model.LookupField(key)
			ds.Items = append(ds.Items, detailItem{Label: fd.Label, Value: v, Markdown: longFields[key]})
		}
		if len(ds.Items) > 0 {
			out = append(out, ds)
		}
	}
	return out
}
