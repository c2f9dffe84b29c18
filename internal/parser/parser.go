// Package parser turns an uploaded business CSV into validated import
// rows. The file format is fixed and positional:
//
//	business_category,display_name,address,business_location,website_url,phone_number,email,facebook
//
// with comma, semicolon, or tab as the separator, auto-detected per file.
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/business-directory-api/internal/models"
)

// ColumnCount is the fixed number of columns in the upload format
const ColumnCount = 8

var candidateDelimiters = []rune{',', ';', '\t'}

// Parse reads the full CSV and returns the valid rows plus warnings for
// every excluded row. Content problems never surface as an error: an
// undecodable or empty file yields zero rows and a single warning.
func Parse(r io.Reader) ([]models.ImportRow, []string) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, []string{"file could not be read"}
	}
	if len(data) == 0 || !utf8.Valid(data) {
		return nil, []string{"file could not be decoded as text"}
	}

	content := string(data)
	delim := detectDelimiter(content)

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows []models.ImportRow
	var warnings []string
	headerSeen := false
	rowNum := 0 // 1-based index of the data row, header excluded

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		if isBlank(record) {
			continue
		}
		rowNum++

		row := models.ImportRow{
			Line:             rowNum,
			BusinessCategory: field(record, 0),
			DisplayName:      field(record, 1),
			Address:          field(record, 2),
			BusinessLocation: field(record, 3),
			WebsiteURL:       field(record, 4),
			PhoneNumber:      field(record, 5),
			Email:            field(record, 6),
			Facebook:         field(record, 7),
		}

		if row.BusinessCategory == "" || row.DisplayName == "" {
			warnings = append(warnings, fmt.Sprintf("Row %d: missing required field(s)", rowNum))
			continue
		}

		rows = append(rows, row)
	}

	if !headerSeen || rowNum == 0 {
		return nil, []string{"file has no data rows"}
	}

	return rows, warnings
}

// detectDelimiter picks the separator that yields a consistent column
// count across the header and first data line. Detection is per file,
// not per line; comma wins when nothing else fits.
func detectDelimiter(content string) rune {
	header, firstData := firstTwoLines(content)

	for _, delim := range candidateDelimiters {
		headerCols := countFields(header, delim)
		if headerCols < 2 {
			continue
		}
		if firstData == "" {
			return delim
		}
		if countFields(firstData, delim) == headerCols {
			return delim
		}
	}
	return ','
}

func firstTwoLines(content string) (string, string) {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == 2 {
			break
		}
	}
	switch len(lines) {
	case 0:
		return "", ""
	case 1:
		return lines[0], ""
	default:
		return lines[0], lines[1]
	}
}

// countFields parses one line with the candidate delimiter and returns
// its column count, or 0 if the line does not parse.
func countFields(line string, delim rune) int {
	if line == "" {
		return 0
	}
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = delim
	reader.LazyQuotes = true
	record, err := reader.Read()
	if err != nil {
		return 0
	}
	return len(record)
}

func field(record []string, idx int) string {
	if idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
