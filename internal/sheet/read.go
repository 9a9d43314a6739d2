// Package sheet reads spreadsheets into header-keyed rows, maps their
// columns onto style fields and writes the collection back out as xlsx.
package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/gabriel-vasile/mimetype"
	"github.com/xuri/excelize/v2"
)

// ErrMalformed is returned when a file cannot be parsed or has no usable
// rows. Nothing is written when it is returned.
var ErrMalformed = errors.New("malformed spreadsheet")

// Format is a supported spreadsheet format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeXLS  = "application/vnd.ms-excel"
	mimeCSV  = "text/csv"
)

// Row is one data row keyed by header text. Empty cells are absent.
type Row map[string]string

// Detect sniffs the content and falls back to the file extension.
func Detect(data []byte, filename string) (Format, error) {
	m := mimetype.Detect(data)
	switch {
	case m.Is(mimeXLSX):
		return FormatXLSX, nil
	case m.Is(mimeXLS):
		return FormatXLS, nil
	case m.Is(mimeCSV):
		return FormatCSV, nil
	case m.Is("application/zip") && !strings.EqualFold(filepath.Ext(filename), ".csv"):
		// Some writers order zip entries so that the OOXML marker falls
		// outside the sniffed prefix.
		return FormatXLSX, nil
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: unsupported file type %s", ErrMalformed, m.String())
}

// Read parses the first sheet of a spreadsheet. The first row holds the
// headers; wholly empty rows are skipped.
func Read(r io.Reader, filename string) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	format, err := Detect(data, filename)
	if err != nil {
		return nil, err
	}

	var grid [][]string
	switch format {
	case FormatXLSX:
		grid, err = readXLSX(data)
	case FormatXLS:
		grid, err = readXLS(data)
	case FormatCSV:
		grid, err = readCSV(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, format, err)
	}
	return rowsFromGrid(grid), nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errors.New("no Workbook stream")
	}
	if wb.NumSheets() == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("first sheet is unreadable")
	}
	// WorkSheet.Row panics on rows without cells; ReadAllCells walks only
	// the rows present and leaves gaps nil. Capping it at the first sheet's
	// row count keeps later sheets out.
	return wb.ReadAllCells(int(sheet.MaxRow) + 1), nil
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func rowsFromGrid(grid [][]string) []Row {
	if len(grid) == 0 {
		return nil
	}
	// Headers are matched byte for byte, so they are not trimmed.
	headers := grid[0]

	var rows []Row
	for _, cells := range grid[1:] {
		row := Row{}
		for i, v := range cells {
			if i >= len(headers) || headers[i] == "" || v == "" {
				continue
			}
			row[headers[i]] = v
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}
