package model

import "strings"

// FieldKind tells how a field's value is shaped.
type FieldKind int

const (
	KindText FieldKind = iota
	KindList
	KindCategory
)

// Field describes one descriptive field of a style record.
type Field struct {
	Key    string
	Header string // spreadsheet column header, empty when not importable
	Label  string // form label
	Kind   FieldKind
}

// Fields lists every descriptive field in form order.
var Fields = []Field{
	{Key: "nameCn", Header: "风格名称(中文)", Label: "风格名称（中文）"},
	{Key: "nameEn", Header: "风格名称(英文)", Label: "风格名称（英文/原文）"},
	{Key: "categoryType", Header: "风格分类", Label: "风格分类", Kind: KindCategory},
	{Key: "categoryStyle", Header: "二级分类", Label: "二级分类"},
	{Key: "coverImage", Label: "封面图"},
	{Key: "tags", Header: "标签", Label: "标签", Kind: KindList},
	{Key: "definition", Header: "核心定义", Label: "核心定义（一句话）"},
	{Key: "originTime", Header: "起源时间", Label: "起源时间"},
	{Key: "originRegion", Header: "起源地区", Label: "起源地区/国家"},
	{Key: "founders", Header: "核心奠基人", Label: "核心奠基人 / 代表流派"},
	{Key: "historyContext", Header: "历史背景", Label: "历史背景 / 诞生原因"},
	{Key: "philosophy", Header: "核心设计理念", Label: "核心设计理念"},
	{Key: "features", Header: "核心特征", Label: "核心特征"},
	{Key: "colors", Header: "色彩体系", Label: "色彩体系"},
	{Key: "materials", Header: "材质运用", Label: "材质运用"},
	{Key: "elements", Header: "装饰元素", Label: "核心装饰元素 / 纹样"},
	{Key: "lighting", Header: "灯光设计", Label: "灯光设计原则"},
	{Key: "designTaboos", Header: "设计禁忌", Label: "风格设计禁忌"},
	{Key: "application", Header: "应用方向", Label: "应用方向"},
	{Key: "derivatives", Header: "衍生风格", Label: "衍生风格"},
	{Key: "similarDiff", Header: "相似风格", Label: "相似风格区分"},
	{Key: "mixMatch", Header: "混搭风格", Label: "适配混搭风格"},
	{Key: "notes", Header: "备注", Label: "补充说明"},
	{Key: "images", Label: "图片链接", Kind: KindList},
}

var (
	fieldsByKey    = map[string]Field{}
	headerMapping  = map[string]string{}
	mappedByHeader []Field
)

func init() {
	for _, f := range Fields {
		fieldsByKey[f.Key] = f
		if f.Header != "" {
			headerMapping[f.Header] = f.Key
			mappedByHeader = append(mappedByHeader, f)
		}
	}
}

// LookupField returns the field with the given internal key.
func LookupField(key string) (Field, bool) {
	f, ok := fieldsByKey[key]
	return f, ok
}

// IsFieldKey reports whether key is an internal field key.
func IsFieldKey(key string) bool {
	_, ok := fieldsByKey[key]
	return ok
}

// KeyForHeader maps a spreadsheet header to its internal key. Matching is
// exact, byte for byte.
func KeyForHeader(header string) (string, bool) {
	k, ok := headerMapping[header]
	return k, ok
}

// ImportFields returns the fields that have a spreadsheet header, in
// column order.
func ImportFields() []Field {
	return mappedByHeader
}

// SplitTags splits a tag string on ASCII and fullwidth commas, trimming
// each tag and dropping empty ones.
func SplitTags(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '，' })
	return CleanList(parts)
}

// SplitLines splits a newline-separated list, as used for image URLs.
func SplitLines(s string) []string {
	return CleanList(strings.Split(s, "\n"))
}

// CleanList trims every item and drops empty ones. It never returns nil.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}
