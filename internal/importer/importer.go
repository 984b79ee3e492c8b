package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// WordAdder is the part of the word catalog the importer writes to.
type WordAdder interface {
	AddWord(ctx context.Context, word models.Word) (models.Word, error)
}

// ImportConfig defines the import configuration.
// Columns are fixed: word, translation, level, topic.
type ImportConfig struct {
	FilePath   string // .xlsx or .csv
	SheetName  string // Excel only; empty means the first sheet
	SkipHeader bool
}

// DefaultImportConfig returns the default import configuration.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{SkipHeader: true}
}

// ImportResult holds the result of an import operation.
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportWords imports words from an Excel or CSV file.
// Rows are added one at a time. A storage error stops the import and rows added before it are kept.
func ImportWords(ctx context.Context, adder WordAdder, config ImportConfig) (*ImportResult, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(config.FilePath)) {
	case ".csv":
		rows, err = readCSV(config.FilePath)
	case ".xlsx", ".xlsm":
		rows, err = readExcel(config.FilePath, config.SheetName)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(config.FilePath))
	}
	if err != nil {
		return nil, err
	}

	if config.SkipHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	return importRows(ctx, adder, rows, config.SkipHeader)
}

func importRows(ctx context.Context, adder WordAdder, rows [][]string, skippedHeader bool) (*ImportResult, error) {
	result := &ImportResult{}
	firstRow := 1
	if skippedHeader {
		firstRow = 2
	}

	for i, row := range rows {
		rowNum := firstRow + i
		cells := make([]string, 4)
		for j := 0; j < len(cells) && j < len(row); j++ {
			cells[j] = strings.TrimSpace(row[j])
		}
		if strings.Join(cells, "") == "" {
			continue
		}

		result.TotalProcessed++
		_, err := adder.AddWord(ctx, models.Word{
			Word:        cells[0],
			Translation: cells[1],
			Level:       cells[2],
			Topic:       cells[3],
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: word, translation, level and topic are all required", rowNum))
				continue
			}
			return result, errors.Wrapf(err, "row %d", rowNum)
		}
		result.Created++
	}
	return result, nil
}

// readExcel reads all rows of a sheet.
func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %v", sheet, err)
	}
	return rows, nil
}

// readCSV reads all records of a CSV file. Rows may have varying lengths.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %v", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}
