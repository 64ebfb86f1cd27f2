package render

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
)

//nolint:gochecknoglobals // palette
var (
	colorBars    = drawing.ColorFromHex("4c72b0")
	colorDensity = drawing.ColorFromHex("dd8452")
	colorPoints  = drawing.ColorFromHex("55a868")
)

func background() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}

// histogram draws the bins as a filled step outline with the density curve
// on top.
func histogram(c *entity.Chart, width, height int) (renderable, error) {
	h := c.Histogram
	if h == nil || len(h.Edges) < 2 {
		return nil, errEmpty(c.Kind)
	}

	edges := plain(h.Edges)
	xs := make([]float64, 0, 2*len(h.Counts)+2)
	ys := make([]float64, 0, 2*len(h.Counts)+2)
	top := 0.0
	for i, n := range h.Counts {
		xs = append(xs, edges[i], edges[i])
		ys = append(ys, prev(ys), float64(n))
		xs = append(xs, edges[i+1])
		ys = append(ys, float64(n))
		top = math.Max(top, float64(n))
	}
	xs = append(xs, edges[len(edges)-1])
	ys = append(ys, 0)

	series := []chart.Series{chart.ContinuousSeries{
		Name:    c.XLabel,
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeColor: colorBars, FillColor: colorBars.WithAlpha(160)},
	}}

	if h.Density != nil {
		dy := plain(h.Density.Y)
		for _, v := range dy {
			top = math.Max(top, v)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "density",
			XValues: plain(h.Density.X),
			YValues: dy,
			Style:   chart.Style{StrokeColor: colorDensity, StrokeWidth: 2},
		})
	}

	return &chart.Chart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: background(),
		XAxis:      chart.XAxis{Name: c.XLabel, Range: &chart.ContinuousRange{Min: edges[0], Max: edges[len(edges)-1]}},
		YAxis:      chart.YAxis{Name: c.YLabel, Range: upTo(top)},
		Series:     series,
	}, nil
}

func prev(ys []float64) float64 {
	if len(ys) == 0 {
		return 0
	}
	return ys[len(ys)-1]
}

func frequency(c *entity.Chart, width, height int) (renderable, error) {
	if c.Counts == nil || len(c.Counts.Values) == 0 {
		return nil, errEmpty(c.Kind)
	}

	bars := make([]chart.Value, 0, len(c.Counts.Values))
	for _, vc := range c.Counts.Values {
		bars = append(bars, chart.Value{Label: vc.Value, Value: float64(vc.Count)})
	}

	return barChart(c.Title, bars, width, height), nil
}

func bar(c *entity.Chart, width, height int) (renderable, error) {
	if c.Series == nil || len(c.Series.Points) == 0 {
		return nil, errEmpty(c.Kind)
	}

	bars := make([]chart.Value, 0, len(c.Series.Points))
	for _, p := range c.Series.Points {
		if isFinite(float64(p.Y)) {
			bars = append(bars, chart.Value{Label: p.X, Value: float64(p.Y)})
		}
	}
	if len(bars) == 0 {
		return nil, errEmpty(c.Kind)
	}

	return barChart(c.Title, bars, width, height), nil
}

func barChart(title string, bars []chart.Value, width, height int) *chart.BarChart {
	lo, hi := 0.0, 0.0
	for i := range bars {
		bars[i].Style = chart.Style{FillColor: colorBars, StrokeColor: colorBars}
		lo = math.Min(lo, bars[i].Value)
		hi = math.Max(hi, bars[i].Value)
	}
	if hi == lo {
		hi = lo + 1
	}

	barWidth := (width - 80) / (2 * len(bars))
	return &chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: background(),
		BarWidth:   max(barWidth, 2),
		Bars:       bars,
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: lo, Max: hi * 1.05}},
	}
}

func scatter(c *entity.Chart, width, height int) (renderable, error) {
	if c.Scatter == nil || len(c.Scatter.Points) == 0 {
		return nil, errEmpty(c.Kind)
	}

	xs := make([]float64, 0, len(c.Scatter.Points))
	ys := make([]float64, 0, len(c.Scatter.Points))
	for _, p := range c.Scatter.Points {
		if !isFinite(float64(p.X)) || !isFinite(float64(p.Y)) {
			continue
		}
		xs, ys = append(xs, float64(p.X)), append(ys, float64(p.Y))
	}
	if len(xs) == 0 {
		return nil, errEmpty(c.Kind)
	}

	return &chart.Chart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: background(),
		XAxis:      xAxis(c.XLabel, xs, c.Scatter.Categories),
		YAxis:      chart.YAxis{Name: c.YLabel, Range: span(ys)},
		Series: []chart.Series{chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 4, DotColor: colorPoints},
		}},
	}, nil
}

// line plots the mean series. Non-numeric X values are placed at their index.
func line(c *entity.Chart, width, height int) (renderable, error) {
	if c.Series == nil || len(c.Series.Points) == 0 {
		return nil, errEmpty(c.Kind)
	}

	var labels []string
	xs := make([]float64, 0, len(c.Series.Points))
	ys := make([]float64, 0, len(c.Series.Points))
	for _, p := range c.Series.Points {
		y := float64(p.Y)
		if !isFinite(y) {
			continue
		}
		if v, err := strconv.ParseFloat(p.X, 64); c.Series.Numeric && err == nil {
			if !isFinite(v) {
				continue
			}
			xs, ys = append(xs, v), append(ys, y)
			continue
		}
		xs, ys = append(xs, float64(len(labels))), append(ys, y)
		labels = append(labels, p.X)
	}
	if len(xs) == 0 {
		return nil, errEmpty(c.Kind)
	}
	if len(labels) != len(xs) {
		labels = nil
	}

	return &chart.Chart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: background(),
		XAxis:      xAxis(c.XLabel, xs, labels),
		YAxis:      chart.YAxis{Name: c.YLabel, Range: span(ys)},
		Series: []chart.Series{chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: colorBars, StrokeWidth: 2, DotWidth: 3, DotColor: colorBars},
		}},
	}, nil
}

func pie(c *entity.Chart, width, height int) (renderable, error) {
	if c.Pie == nil || len(c.Pie.Wedges) == 0 {
		return nil, errEmpty(c.Kind)
	}

	values := make([]chart.Value, 0, len(c.Pie.Wedges))
	for _, w := range c.Pie.Wedges {
		values = append(values, chart.Value{Label: w.Label + " " + w.Text, Value: float64(w.Count)})
	}

	return &chart.PieChart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: background(),
		Values:     values,
	}, nil
}

// xAxis labels category positions when categories are given.
func xAxis(name string, xs []float64, categories []string) chart.XAxis {
	axis := chart.XAxis{Name: name, Range: span(xs)}
	if len(categories) == 0 {
		return axis
	}

	axis.Range = &chart.ContinuousRange{Min: -0.5, Max: float64(len(categories)) - 0.5}
	for i, label := range categories {
		axis.Ticks = append(axis.Ticks, chart.Tick{Value: float64(i), Label: label})
	}
	return axis
}

// span pads the data range by 5% on both sides and never returns an empty
// range, which go-chart refuses to draw.
func span(values []float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if math.IsInf(lo, 0) {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	if lo == hi {
		return &chart.ContinuousRange{Min: lo - 0.5, Max: hi + 0.5}
	}
	pad := (hi - lo) * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func upTo(top float64) *chart.ContinuousRange {
	if top <= 0 {
		top = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: top * 1.05}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func plain(values []entity.Float) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
