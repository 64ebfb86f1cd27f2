package usecase

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
)

// Histogram bins the finite values into equal-width bins over [min, max];
// the last bin is closed and infinities are left out. A single distinct
// value gets a unit-wide range around it. When kdePoints > 0 and the data
// has spread, a Gaussian density curve scaled to bin counts is attached.
func Histogram(values []float64, bins, kdePoints int) *entity.Histogram {
	if bins < 1 {
		bins = 1
	}
	values = finite(values)
	h := &entity.Histogram{Counts: make([]int, bins)}
	if len(values) == 0 {
		return h
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	width := (hi - lo) / float64(bins)
	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)
	h.Edges = entity.Floats(edges)

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		h.Counts[idx]++
	}

	if kdePoints > 1 {
		h.Density = density(values, lo, hi, kdePoints, float64(len(values))*width)
	}

	return h
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// density evaluates a Gaussian kernel density estimate with Scott's rule
// bandwidth on points evenly spaced over [lo, hi], multiplied by scale.
func density(values []float64, lo, hi float64, points int, scale float64) *entity.Curve {
	n := float64(len(values))
	if len(values) < 2 {
		return nil
	}
	sd := stat.StdDev(values, nil)
	if sd == 0 || math.IsNaN(sd) {
		return nil
	}

	bw := sd * math.Pow(n, -1.0/5)
	norm := 1 / (n * bw * math.Sqrt(2*math.Pi))

	xs := make([]float64, points)
	floats.Span(xs, lo, hi)
	ys := make([]float64, points)
	for i, x := range xs {
		var sum float64
		for _, v := range values {
			z := (x - v) / bw
			sum += math.Exp(-0.5 * z * z)
		}
		ys[i] = sum * norm * scale
	}

	return &entity.Curve{X: entity.Floats(xs), Y: entity.Floats(ys)}
}

// ValueCounts counts distinct labels, most frequent first; ties keep the
// order in which the values first appear. top <= 0 keeps every value.
func ValueCounts(c *entity.Column, top int) *entity.Counts {
	index := map[string]int{}
	var counts []entity.ValueCount
	for i := 0; i < c.Len(); i++ {
		if c.Missing[i] {
			continue
		}
		v := c.Cell(i)
		pos, ok := index[v]
		if !ok {
			pos = len(counts)
			index[v] = pos
			counts = append(counts, entity.ValueCount{Value: v})
		}
		counts[pos].Count++
	}

	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})

	out := &entity.Counts{Total: len(counts), Values: counts}
	if top > 0 && len(counts) > top {
		out.Values = counts[:top]
	}
	if out.Values == nil {
		out.Values = []entity.ValueCount{}
	}
	return out
}

// Scatter pairs every complete row of x and y. A categorical x is placed at
// the index of its category in order of appearance.
func Scatter(x, y *entity.Column) *entity.Scatter {
	s := &entity.Scatter{Points: []entity.Point{}}
	positions := map[string]int{}

	for i := 0; i < x.Len(); i++ {
		if x.Missing[i] || y.Missing[i] {
			continue
		}
		p := entity.Point{Y: entity.Float(y.Numbers[i])}
		if x.IsNumeric() {
			p.X = entity.Float(x.Numbers[i])
		} else {
			label := x.Labels[i]
			pos, ok := positions[label]
			if !ok {
				pos = len(s.Categories)
				positions[label] = pos
				s.Categories = append(s.Categories, label)
			}
			p.X = entity.Float(pos)
			p.Label = label
		}
		s.Points = append(s.Points, p)
	}

	return s
}

type group struct {
	key string
	num float64
	ys  []float64
}

// groupBy collects y by distinct x. Numeric keys are sorted ascending,
// categorical keys keep order of appearance.
func groupBy(x, y *entity.Column) []*group {
	index := map[string]*group{}
	var groups []*group

	for i := 0; i < x.Len(); i++ {
		if x.Missing[i] || y.Missing[i] {
			continue
		}
		key := x.Cell(i)
		g, ok := index[key]
		if !ok {
			g = &group{key: key}
			if x.IsNumeric() {
				g.num = x.Numbers[i]
			}
			index[key] = g
			groups = append(groups, g)
		}
		g.ys = append(g.ys, y.Numbers[i])
	}

	if x.IsNumeric() {
		slices.SortStableFunc(groups, func(a, b *group) int {
			switch {
			case a.num < b.num:
				return -1
			case a.num > b.num:
				return 1
			default:
				return 0
			}
		})
	}

	return groups
}

// MeanSeries averages y per distinct x, backing line and bar charts.
func MeanSeries(x, y *entity.Column) *entity.Series {
	s := &entity.Series{Numeric: x.IsNumeric(), Points: []entity.SeriesPoint{}}
	for _, g := range groupBy(x, y) {
		s.Points = append(s.Points, entity.SeriesPoint{
			X:     g.key,
			Y:     entity.Float(stat.Mean(g.ys, nil)),
			Count: len(g.ys),
		})
	}
	return s
}

// Boxes computes one box per x group. Whiskers reach the most extreme values
// within 1.5 IQR of the quartiles; anything beyond is an outlier.
func Boxes(x, y *entity.Column) *entity.BoxPlot {
	bp := &entity.BoxPlot{Boxes: []entity.Box{}}
	for _, g := range groupBy(x, y) {
		sorted := slices.Clone(g.ys)
		slices.Sort(sorted)

		q1, med, q3 := quantile(sorted, 0.25), quantile(sorted, 0.5), quantile(sorted, 0.75)
		iqr := q3 - q1
		lowFence, highFence := q1-1.5*iqr, q3+1.5*iqr

		box := entity.Box{
			Group:        g.key,
			Count:        len(sorted),
			Q1:           entity.Float(q1),
			Median:       entity.Float(med),
			Q3:           entity.Float(q3),
			LowerWhisker: entity.Float(q1),
			UpperWhisker: entity.Float(q3),
		}

		lowerSet, upperSet := false, false
		for _, v := range sorted {
			if v < lowFence || v > highFence {
				box.Outliers = append(box.Outliers, entity.Float(v))
				continue
			}
			if !lowerSet {
				box.LowerWhisker = entity.Float(v)
				lowerSet = true
			}
			box.UpperWhisker = entity.Float(v)
			upperSet = true
		}
		if !upperSet {
			box.UpperWhisker = entity.Float(q3)
		}

		bp.Boxes = append(bp.Boxes, box)
	}
	return bp
}

// PieOf turns the top value counts of c into wedges whose percentages sum
// to 100.
func PieOf(c *entity.Column, top int) *entity.Pie {
	counts := ValueCounts(c, top)

	total := 0
	for _, vc := range counts.Values {
		total += vc.Count
	}

	pie := &entity.Pie{StartAngle: 90, Wedges: make([]entity.Wedge, 0, len(counts.Values))}
	for _, vc := range counts.Values {
		pct := 100 * float64(vc.Count) / float64(total)
		pie.Wedges = append(pie.Wedges, entity.Wedge{
			Label:   vc.Value,
			Count:   vc.Count,
			Percent: entity.Float(pct),
			Text:    fmt.Sprintf("%.1f%%", pct),
		})
	}
	return pie
}

// Pairs builds the all-pairs grid of the numeric columns.
func Pairs(cols []*entity.Column, bins int) *entity.PairGrid {
	pg := &entity.PairGrid{Columns: make([]string, len(cols)), Cells: make([][]entity.PairCell, len(cols))}
	for i, c := range cols {
		pg.Columns[i] = c.Name
	}

	for i, row := range cols {
		pg.Cells[i] = make([]entity.PairCell, len(cols))
		for j, col := range cols {
			cell := entity.PairCell{X: col.Name, Y: row.Name}
			if i == j {
				cell.Histogram = Histogram(col.Observed(), bins, 0)
			} else {
				cell.Scatter = Scatter(col, row)
			}
			pg.Cells[i][j] = cell
		}
	}
	return pg
}
