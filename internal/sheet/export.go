package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rcliao/style-kb/internal/model"
)

// SheetName is the name of the exported worksheet.
const SheetName = "风格"

// exportColumns returns the header and internal key of every exported
// column: all mapped headers, then coverImage under its own key so it
// survives a re-import. Images are not exported; a spreadsheet cell can
// only carry text and the importer accepts images as a list only.
func exportColumns() (headers, keys []string) {
	for _, f := range model.ImportFields() {
		headers = append(headers, f.Header)
		keys = append(keys, f.Key)
	}
	headers = append(headers, "coverImage")
	keys = append(keys, "coverImage")
	return headers, keys
}

// Export writes records to w as an xlsx workbook whose first sheet uses
// the import headers, so the file can be imported again.
func Export(records []model.StyleRecord, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers, keys := exportColumns()
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		values := make([]any, len(keys))
		for j, key := range keys {
			values[j] = cellValue(r.StyleFields, key)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func cellValue(f model.StyleFields, key string) string {
	switch key {
	case "tags":
		return strings.Join(f.Tags, ",")
	case "images":
		return strings.Join(f.Images, "\n")
	case "categoryType":
		return string(f.CategoryType)
	}
	v, _ := f.Text(key)
	return v
}
