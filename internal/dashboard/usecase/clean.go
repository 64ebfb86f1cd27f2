package usecase

import (
	"slices"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
)

// MissingReport counts missing cells per column without touching the table.
func MissingReport(t *entity.Table) entity.MissingReport {
	report := make(entity.MissingReport, 0, len(t.Columns))
	for _, c := range t.Columns {
		report = append(report, entity.MissingCount{Column: c.Name, Count: c.MissingCount()})
	}
	return report
}

// Clean fills missing cells in place and returns the counts taken before
// filling. Numeric columns get the median of their observed values, every
// other column gets entity.Placeholder. A numeric column with nothing observed
// has no median, so it is turned categorical and filled with the placeholder.
func Clean(t *entity.Table) entity.MissingReport {
	report := MissingReport(t)

	for _, c := range t.Columns {
		if c.MissingCount() == 0 {
			continue
		}

		if c.IsNumeric() {
			observed := c.Observed()
			if len(observed) > 0 {
				fillNumeric(c, median(observed))
				continue
			}
			demote(c)
		}

		fillLabels(c, entity.Placeholder)
	}

	return report
}

func fillNumeric(c *entity.Column, v float64) {
	for i, m := range c.Missing {
		if m {
			c.Numbers[i] = v
			c.Missing[i] = false
		}
	}
}

func fillLabels(c *entity.Column, label string) {
	for i, m := range c.Missing {
		if m {
			c.Labels[i] = label
			c.Missing[i] = false
		}
	}
}

func demote(c *entity.Column) {
	c.Kind = entity.KindCategorical
	c.Labels = make([]string, c.Len())
	c.Numbers = nil
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return quantile(sorted, 0.5)
}
