package usecase

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
)

// Correlation builds the Pearson correlation matrix of the given numeric
// columns over pairwise complete rows. A pair with fewer than two rows or a
// constant side has no defined correlation, the diagonal included.
func Correlation(cols []*entity.Column) *entity.Heatmap {
	k := len(cols)
	hm := &entity.Heatmap{
		Columns:     make([]string, k),
		Values:      make([][]entity.Float, k),
		Annotations: make([][]string, k),
	}

	for i, c := range cols {
		hm.Columns[i] = c.Name
		hm.Values[i] = make([]entity.Float, k)
		hm.Annotations[i] = make([]string, k)
	}

	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			r := pearson(cols[i], cols[j])
			if i == j && !math.IsNaN(r) {
				r = 1
			}
			hm.Values[i][j], hm.Values[j][i] = entity.Float(r), entity.Float(r)
			hm.Annotations[i][j], hm.Annotations[j][i] = annotate(r), annotate(r)
		}
	}

	return hm
}

func pearson(a, b *entity.Column) float64 {
	xs := make([]float64, 0, a.Len())
	ys := make([]float64, 0, a.Len())
	for i := 0; i < a.Len() && i < b.Len(); i++ {
		if a.Missing[i] || b.Missing[i] {
			continue
		}
		xs = append(xs, a.Numbers[i])
		ys = append(ys, b.Numbers[i])
	}

	if len(xs) < 2 || isConstant(xs) || isConstant(ys) {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

func annotate(r float64) string {
	if math.IsNaN(r) {
		return ""
	}
	return format2(r)
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
