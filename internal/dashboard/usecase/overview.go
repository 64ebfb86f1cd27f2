package usecase

import (
	"fmt"
	"strconv"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
)

// Overview renders the exploratory view: preview, missing counts, the
// distribution of one numeric column, the correlation heatmap and the count
// plot of one categorical column. Sections whose column class is absent are
// left out.
func Overview(t *entity.Table, report entity.MissingReport, sel entity.Selection, opt Options) ([]entity.Block, error) {
	rows := opt.PreviewRows
	if sel.Rows > 0 {
		rows = sel.Rows
	}

	blocks := []entity.Block{
		entity.Heading(2, "Dataset Preview"),
		tableBlock(&entity.TableData{Columns: t.Names(), Index: rowIndex(min(rows, t.Rows)), Rows: t.Head(rows)}),
	}

	if report.Total() > 0 {
		td := &entity.TableData{Columns: []string{"column", "missing"}}
		for _, mc := range report.NonZero() {
			td.Rows = append(td.Rows, []string{mc.Column, strconv.Itoa(mc.Count)})
		}
		blocks = append(blocks, entity.Heading(3, "Missing Values Before Cleaning"), tableBlock(td))
	}

	if numeric := t.Numeric(); len(numeric) > 0 {
		col, err := pick(t, "column", sel.Column, numeric)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks,
			entity.Heading(3, "Numerical Distribution"),
			selector("column", "Select a numerical column", numeric, col),
			chartBlock(distributionChart(col, opt)),
		)

		if len(numeric) > 1 {
			blocks = append(blocks,
				entity.Heading(3, "Correlation Heatmap"),
				chartBlock(heatmapChart(numeric)),
			)
		}
	}

	if cats := t.Categorical(); len(cats) > 0 {
		col, err := pick(t, "category", sel.Category, cats)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks,
			entity.Heading(3, "Categorical Column Distribution"),
			selector("category", "Select a categorical column", cats, col),
			chartBlock(frequencyChart(col, opt)),
		)
	}

	return blocks, nil
}

func rowIndex(n int) []string {
	idx := make([]string, max(n, 0))
	for i := range idx {
		idx[i] = strconv.Itoa(i)
	}
	return idx
}

func distributionChart(col *entity.Column, opt Options) *entity.Chart {
	return &entity.Chart{
		Kind:      entity.ChartHistogram,
		Title:     fmt.Sprintf("Distribution of %s", col.Name),
		XLabel:    col.Name,
		YLabel:    "Count",
		Histogram: Histogram(col.Observed(), opt.HistogramBins, opt.KDEPoints),
	}
}

func heatmapChart(numeric []*entity.Column) *entity.Chart {
	return &entity.Chart{
		Kind:    entity.ChartHeatmap,
		Title:   "Correlation Heatmap",
		Heatmap: Correlation(numeric),
	}
}

func frequencyChart(col *entity.Column, opt Options) *entity.Chart {
	return &entity.Chart{
		Kind:   entity.ChartFrequency,
		Title:  fmt.Sprintf("Count Plot of %s", col.Name),
		XLabel: "count",
		YLabel: col.Name,
		Counts: ValueCounts(col, opt.TopValues),
	}
}
