package usecase

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
)

// Summary is the descriptive statistics of one numeric column.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mode   float64
}

// describeRows are the row captions of the combined describe table.
//
//nolint:gochecknoglobals // fixed captions
var describeRows = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Describe summarises every numeric column in table order. It returns nil when
// the table has no numeric column.
func Describe(t *entity.Table) []Summary {
	var out []Summary
	for _, c := range t.Numeric() {
		out = append(out, summarize(c.Name, c.Observed()))
	}
	return out
}

func summarize(name string, values []float64) Summary {
	s := Summary{Column: name, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Mode = nan, nan, nan, nan, nan, nan, nan, nan
		return s
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s.Mean = stat.Mean(values, nil)
	s.Std = math.NaN()
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	s.Q1 = quantile(sorted, 0.25)
	s.Median = quantile(sorted, 0.5)
	s.Q3 = quantile(sorted, 0.75)
	s.Mode = mode(sorted)

	return s
}

func (s Summary) describeColumn() []float64 {
	return []float64{float64(s.Count), s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max}
}

// quantile interpolates linearly between the closest ranks of sorted data.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)

	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// mode returns the most frequent value of sorted data, the smallest on ties.
func mode(sorted []float64) float64 {
	best, bestRun := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i > bestRun {
			best, bestRun = sorted[i], j-i
		}
		i = j
	}
	return best
}

// formatStat renders a describe cell with six significant decimals, the way
// tabular summaries are usually printed.
func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6f", v)
}

func format2(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}

// DescribeTable lays the summaries out with statistics as rows and columns as
// columns.
func DescribeTable(summaries []Summary) *entity.TableData {
	td := &entity.TableData{Index: slices.Clone(describeRows)}
	for _, s := range summaries {
		td.Columns = append(td.Columns, s.Column)
	}

	td.Rows = make([][]string, len(describeRows))
	for i := range describeRows {
		row := make([]string, len(summaries))
		for j, s := range summaries {
			row[j] = formatStat(s.describeColumn()[i])
		}
		td.Rows[i] = row
	}

	return td
}
