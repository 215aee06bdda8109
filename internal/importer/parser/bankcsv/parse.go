// Package bankcsv parses bank statement CSV exports into transactions.
//
// Banks do not agree on column names, date formats, or how to express
// the direction of a transaction, so parsing happens in two steps:
// Parse reads the raw CSV into header-keyed rows, Normalize then probes
// the rows for known column names and produces clean transactions.
package bankcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Row is a single CSV record, keyed by the header of each column.
type Row map[string]string

// Parse reads a CSV file with a header row.
//
// Rows that cannot be read are reported as warnings and skipped, they
// never abort the parse. Rows with fewer fields than the header are
// padded with empty strings.
func Parse(f io.Reader) ([]Row, []string, error) {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, errors.New("the CSV file is empty")
	} else if err != nil {
		return nil, nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	var rows []Row
	var warnings []string

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}

		rows = append(rows, row)
	}

	return rows, warnings, nil
}
