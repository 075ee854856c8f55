// Package upload parses uploaded roster files (CSV or XLSX) into raw rows
// for the provisioning pipeline.
package upload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported roster format")
	ErrEmptyRoster       = errors.New("roster has no header row")
)

// ParseRoster reads a roster by file extension. The first row is the header;
// every following row becomes one RawRow keyed by header cell. Header cells
// keep their whitespace — key trimming is the normalizer's job.
func ParseRoster(filename string, r io.Reader) ([]domain.RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx":
		return parseXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func parseCSV(r io.Reader) ([]domain.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rowsFromCells(records)
}

func parseXLSX(r io.Reader) ([]domain.RawRow, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyRoster
	}

	cells, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rowsFromCells(cells)
}

func rowsFromCells(cells [][]string) ([]domain.RawRow, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyRoster
	}

	header := cells[0]
	rows := make([]domain.RawRow, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(domain.RawRow, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(line) {
				row[key] = line[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
