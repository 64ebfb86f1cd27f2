package usecase

import (
	"fmt"
	"slices"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
)

const (
	msgNoNumericY   = "No numerical columns available for the Y-axis."
	msgNoPieColumn  = "No categorical columns available for pie chart."
	msgPairTooFew   = "Need at least 2 numerical columns for pairplot."
	msgPairGenerate = "Generating pairplot for numerical columns..."
)

// Visual renders the custom chart selected by sel.Chart, scatter when empty.
// A missing column class becomes a warning block, never an error.
func Visual(t *entity.Table, sel entity.Selection, opt Options) ([]entity.Block, error) {
	kind := sel.Chart
	if kind == "" {
		kind = entity.ChartScatter
	}
	if !slices.Contains(entity.CustomChartKinds, kind) {
		return nil, pkgerror.NewInvalidInput(fmt.Errorf("chart: unknown chart kind %q", kind))
	}

	blocks := []entity.Block{entity.Heading(2, "Custom Visual Analysis"), kindSelector(kind)}

	switch {
	case kind.XY():
		numeric := t.Numeric()
		if len(t.Columns) == 0 || len(numeric) == 0 {
			return append(blocks, entity.Warning(msgNoNumericY)), nil
		}
		x, err := pick(t, "x", sel.X, t.Columns)
		if err != nil {
			return nil, err
		}
		y, err := pick(t, "y", sel.Y, numeric)
		if err != nil {
			return nil, err
		}
		return append(blocks,
			selector("x", "Select X-axis", t.Columns, x),
			selector("y", "Select Y-axis", numeric, y),
			chartBlock(xyChart(kind, x, y)),
		), nil

	case kind == entity.ChartPie:
		cats := t.Categorical()
		if len(cats) == 0 {
			return append(blocks, entity.Warning(msgNoPieColumn)), nil
		}
		col, err := pick(t, "pie", sel.Pie, cats)
		if err != nil {
			return nil, err
		}
		return append(blocks,
			selector("pie", "Select column for Pie Chart", cats, col),
			chartBlock(pieChart(col, opt)),
		), nil

	default:
		numeric := t.Numeric()
		if len(numeric) < 2 {
			return append(blocks, entity.Warning(msgPairTooFew)), nil
		}
		return append(blocks,
			entity.Info(msgPairGenerate),
			chartBlock(pairChart(numeric, opt)),
		), nil
	}
}

func kindSelector(kind entity.ChartKind) entity.Block {
	options := make([]string, 0, len(entity.CustomChartKinds))
	for _, k := range entity.CustomChartKinds {
		options = append(options, string(k))
	}
	return entity.Block{
		Kind:   entity.BlockSelect,
		Select: &entity.Select{Name: "chart", Label: "Choose Chart Type", Options: options, Selected: string(kind)},
	}
}

func xyChart(kind entity.ChartKind, x, y *entity.Column) *entity.Chart {
	c := &entity.Chart{
		Kind:   kind,
		Title:  fmt.Sprintf("%s Plot", kind.Label()),
		XLabel: x.Name,
		YLabel: y.Name,
	}
	switch kind {
	case entity.ChartScatter:
		c.Scatter = Scatter(x, y)
	case entity.ChartLine, entity.ChartBar:
		c.Series = MeanSeries(x, y)
	case entity.ChartBoxplot:
		c.Boxes = Boxes(x, y)
	}
	return c
}

func pieChart(col *entity.Column, opt Options) *entity.Chart {
	return &entity.Chart{
		Kind:  entity.ChartPie,
		Title: fmt.Sprintf("Distribution of %s", col.Name),
		Pie:   PieOf(col, opt.TopValues),
	}
}

func pairChart(numeric []*entity.Column, opt Options) *entity.Chart {
	return &entity.Chart{
		Kind:     entity.ChartPairGrid,
		Title:    "Pairplot",
		PairGrid: Pairs(numeric, opt.HistogramBins),
	}
}

// BuildChart describes a single chart outside of any page, resolving the
// selection the same way the views do. Unlike the views, an absent column
// class is an error because there is nothing to draw.
func BuildChart(t *entity.Table, kind entity.ChartKind, sel entity.Selection, opt Options) (*entity.Chart, error) {
	opt = opt.withDefaults()

	switch {
	case kind == entity.ChartHistogram:
		numeric := t.Numeric()
		if len(numeric) == 0 {
			return nil, errNoColumns("numerical")
		}
		col, err := pick(t, "column", sel.Column, numeric)
		if err != nil {
			return nil, err
		}
		return distributionChart(col, opt), nil

	case kind == entity.ChartHeatmap:
		numeric := t.Numeric()
		if len(numeric) < 2 {
			return nil, errNoColumns("at least 2 numerical")
		}
		return heatmapChart(numeric), nil

	case kind == entity.ChartFrequency:
		cats := t.Categorical()
		if len(cats) == 0 {
			return nil, errNoColumns("categorical")
		}
		col, err := pick(t, "category", sel.Category, cats)
		if err != nil {
			return nil, err
		}
		return frequencyChart(col, opt), nil

	case kind.XY():
		numeric := t.Numeric()
		if len(numeric) == 0 {
			return nil, errNoColumns("numerical")
		}
		x, err := pick(t, "x", sel.X, t.Columns)
		if err != nil {
			return nil, err
		}
		y, err := pick(t, "y", sel.Y, numeric)
		if err != nil {
			return nil, err
		}
		return xyChart(kind, x, y), nil

	case kind == entity.ChartPie:
		cats := t.Categorical()
		if len(cats) == 0 {
			return nil, errNoColumns("categorical")
		}
		col, err := pick(t, "pie", sel.Pie, cats)
		if err != nil {
			return nil, err
		}
		return pieChart(col, opt), nil

	case kind == entity.ChartPairGrid:
		numeric := t.Numeric()
		if len(numeric) < 2 {
			return nil, errNoColumns("at least 2 numerical")
		}
		return pairChart(numeric, opt), nil
	}

	return nil, pkgerror.NewInvalidInput(fmt.Errorf("chart: unknown chart kind %q", kind))
}

func errNoColumns(class string) error {
	return pkgerror.NewInvalidInput(fmt.Errorf("chart: dataset has no %s columns", class))
}
