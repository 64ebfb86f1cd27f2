package entity

import (
	"math"
	"strconv"
)

// ColumnKind is the tag of the column variant, fixed when the table is loaded.
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// Placeholder replaces missing cells of non-numeric columns.
const Placeholder = "Unknown"

// Column holds one named column. Numeric columns keep their cells in Numbers,
// categorical columns in Labels; Missing flags cells of either kind.
type Column struct {
	Name    string
	Kind    ColumnKind
	Numbers []float64
	Labels  []string
	Missing []bool
}

// NewNumeric builds a numeric column; NaN cells are marked missing.
func NewNumeric(name string, values []float64) *Column {
	missing := make([]bool, len(values))
	for i, v := range values {
		missing[i] = math.IsNaN(v)
	}
	return &Column{Name: name, Kind: KindNumeric, Numbers: values, Missing: missing}
}

// NewCategorical builds a categorical column. A nil missing slice means no
// cell is missing.
func NewCategorical(name string, labels []string, missing []bool) *Column {
	if missing == nil {
		missing = make([]bool, len(labels))
	}
	return &Column{Name: name, Kind: KindCategorical, Labels: labels, Missing: missing}
}

func (c *Column) IsNumeric() bool {
	return c.Kind == KindNumeric
}

func (c *Column) Len() int {
	return len(c.Missing)
}

// MissingCount returns how many cells are currently missing.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// Observed returns the non-missing numeric cells in row order.
func (c *Column) Observed() []float64 {
	if !c.IsNumeric() {
		return nil
	}
	out := make([]float64, 0, len(c.Numbers))
	for i, v := range c.Numbers {
		if !c.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// Cell formats row i for display. Missing cells are empty.
func (c *Column) Cell(i int) string {
	if c.Missing[i] {
		return ""
	}
	if c.IsNumeric() {
		return FormatNumber(c.Numbers[i])
	}
	return c.Labels[i]
}

// FormatNumber renders v with the shortest exact representation.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *Column) clone() *Column {
	out := &Column{Name: c.Name, Kind: c.Kind, Missing: append([]bool(nil), c.Missing...)}
	if c.Numbers != nil {
		out.Numbers = append([]float64(nil), c.Numbers...)
	}
	if c.Labels != nil {
		out.Labels = append([]string(nil), c.Labels...)
	}
	return out
}
