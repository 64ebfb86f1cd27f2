package usecase

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
)

// missingTokens are the cell values read as missing, on top of the empty cell.
//
//nolint:gochecknoglobals // read-only lookup table
var missingTokens = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "<nil>", "N/A", "NA", "NULL", "NaN",
	"None", "n/a", "nan", "null",
}

var errEmptyUpload = errors.New("no columns to parse from file")

// Load parses comma-separated text with a header row into a Table. Column
// kinds are inferred once here: int and float columns become numeric, any
// other column categorical. A header without data rows is an empty table.
func Load(raw []byte) (*entity.Table, error) {
	records, err := readRecords(raw)
	if err != nil {
		return nil, pkgerror.NewMalformed(err, "invalid csv file")
	}

	if len(records) == 1 {
		return headerOnly(records[0]), nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(missingTokens),
	)
	if df.Err != nil {
		return nil, pkgerror.NewMalformed(df.Err, "invalid csv file")
	}

	rows, _ := df.Dims()
	table := &entity.Table{Rows: rows}

	for _, name := range df.Names() {
		col := df.Col(name)
		if col.Err != nil {
			return nil, pkgerror.NewMalformed(col.Err, "invalid csv file")
		}
		table.Columns = append(table.Columns, toColumn(name, col))
	}

	return table, nil
}

// readRecords splits raw into trimmed cells. Rows shorter than the header are
// padded with empty (missing) cells; longer rows are an error.
func readRecords(raw []byte) ([][]string, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errEmptyUpload
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errEmptyUpload
	}

	width := len(records[0])
	for i, rec := range records {
		if len(rec) > width {
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", i+1, width, len(rec))
		}
		for j := range rec {
			rec[j] = strings.TrimSpace(rec[j])
		}
		for len(rec) < width {
			rec = append(rec, "")
		}
		records[i] = rec
	}

	return records, nil
}

func headerOnly(names []string) *entity.Table {
	table := &entity.Table{}
	for _, name := range names {
		table.Columns = append(table.Columns, entity.NewCategorical(name, []string{}, []bool{}))
	}
	return table
}

func toColumn(name string, s series.Series) *entity.Column {
	missing := s.IsNaN()

	switch s.Type() {
	case series.Int, series.Float:
		if allTrue(missing) {
			break
		}
		return entity.NewNumeric(name, s.Float())
	}

	labels := s.Records()
	for i := range labels {
		if missing[i] {
			labels[i] = ""
		}
	}
	return entity.NewCategorical(name, labels, missing)
}

func allTrue(flags []bool) bool {
	for _, f := range flags {
		if !f {
			return false
		}
	}
	return true
}
