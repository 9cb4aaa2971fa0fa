package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dataErrors "bikeshare/domain/errors"
)

const (
	csvExtension  = ".csv"
	xlsxExtension = ".xlsx"
	utf8BOM       = "\ufeff"
)

// readTable returns every row of a tabular source, header included.
// The format is chosen by the file extension.
func readTable(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case csvExtension:
		return readCSV(path)
	case xlsxExtension:
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", dataErrors.ErrUnsupportedFormat, path)
	}
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrSourceUnavailable, err)
	}

	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Errorf("[loader] error closing %s: %s", path, err.Error())
		}
	}(file)

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", dataErrors.ErrSourceUnavailable, path, err)
		}
		rows = append(rows, row)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}

	log.Debugf("[loader][format: csv] %d rows read from %s", len(rows), path)
	return rows, nil
}

// readXLSX reads the first sheet of the workbook
func readXLSX(path string) ([][]string, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrSourceUnavailable, err)
	}

	defer func(workbook *excelize.File) {
		err := workbook.Close()
		if err != nil {
			log.Errorf("[loader] error closing %s: %s", path, err.Error())
		}
	}(workbook)

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", dataErrors.ErrSourceUnavailable, path)
	}

	// raw values keep date cells as serial numbers instead of their locale display format
	rows, err := workbook.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %s of %s: %w", dataErrors.ErrSourceUnavailable, sheets[0], path, err)
	}

	log.Debugf("[loader][format: xlsx][sheet: %s] %d rows read from %s", sheets[0], len(rows), path)
	return rows, nil
}

// excelSerialTime converts an Excel serial date, e.g. "42909.631620370", to UTC time
func excelSerialTime(value string) (time.Time, bool) {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(serial) || math.IsInf(serial, 0) || serial <= 0 {
		return time.Time{}, false
	}

	parsed, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.Round(time.Second), true
}

// headerIndex maps each header name to its column position
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	return index
}

// cell returns the trimmed value at position i, or "" if the row is shorter
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
