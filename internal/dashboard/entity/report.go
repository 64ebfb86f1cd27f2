package entity

// MissingCount is the number of missing cells of one column.
type MissingCount struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

// MissingReport lists missing counts in column order. It is computed before
// cleaning and never updated afterwards.
type MissingReport []MissingCount

// Total sums the counts over all columns.
func (r MissingReport) Total() int {
	total := 0
	for _, mc := range r {
		total += mc.Count
	}
	return total
}

// NonZero keeps only the columns with at least one missing cell.
func (r MissingReport) NonZero() MissingReport {
	out := MissingReport{}
	for _, mc := range r {
		if mc.Count > 0 {
			out = append(out, mc)
		}
	}
	return out
}

// Count returns the count recorded for column, or 0.
func (r MissingReport) Count(column string) int {
	for _, mc := range r {
		if mc.Column == column {
			return mc.Count
		}
	}
	return 0
}
