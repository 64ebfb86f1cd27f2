package entity

import (
	"encoding/json"
	"math"
	"strconv"
)

// Float is a float64 that encodes NaN and infinities as JSON null.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *Float) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = Float(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// Floats converts a float64 slice.
func Floats(values []float64) []Float {
	out := make([]Float, len(values))
	for i, v := range values {
		out[i] = Float(v)
	}
	return out
}

// Page is the render description of one interaction.
type Page struct {
	Title   string  `json:"title"`
	View    View    `json:"view,omitempty"`
	Blocks  []Block `json:"blocks"`
	Sidebar []Block `json:"sidebar,omitempty"`
}

// BlockKind selects how a front end draws a block.
type BlockKind string

const (
	BlockHeading BlockKind = "heading"
	BlockText    BlockKind = "text"
	BlockInfo    BlockKind = "info"
	BlockWarning BlockKind = "warning"
	BlockSuccess BlockKind = "success"
	BlockTable   BlockKind = "table"
	BlockSelect  BlockKind = "select"
	BlockChart   BlockKind = "chart"
)

// Block is one element of a page. Exactly one payload matches Kind.
type Block struct {
	Kind   BlockKind  `json:"kind"`
	Level  int        `json:"level,omitempty"`
	Text   string     `json:"text,omitempty"`
	Table  *TableData `json:"table,omitempty"`
	Select *Select    `json:"select,omitempty"`
	Chart  *Chart     `json:"chart,omitempty"`
}

func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

func Text(text string) Block {
	return Block{Kind: BlockText, Text: text}
}

func Info(text string) Block {
	return Block{Kind: BlockInfo, Text: text}
}

func Warning(text string) Block {
	return Block{Kind: BlockWarning, Text: text}
}

func Success(text string) Block {
	return Block{Kind: BlockSuccess, Text: text}
}

// TableData is a rectangular grid of display strings.
type TableData struct {
	Columns []string   `json:"columns"`
	Index   []string   `json:"index,omitempty"`
	Rows    [][]string `json:"rows"`
}

// Select describes a selector widget and the option in effect.
type Select struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Options  []string `json:"options"`
	Selected string   `json:"selected"`
}

// Chart is a figure description. Exactly one payload matches Kind.
type Chart struct {
	Kind      ChartKind  `json:"kind"`
	Title     string     `json:"title,omitempty"`
	XLabel    string     `json:"x_label,omitempty"`
	YLabel    string     `json:"y_label,omitempty"`
	Histogram *Histogram `json:"histogram,omitempty"`
	Heatmap   *Heatmap   `json:"heatmap,omitempty"`
	Counts    *Counts    `json:"counts,omitempty"`
	Scatter   *Scatter   `json:"scatter,omitempty"`
	Series    *Series    `json:"series,omitempty"`
	Boxes     *BoxPlot   `json:"boxes,omitempty"`
	Pie       *Pie       `json:"pie,omitempty"`
	PairGrid  *PairGrid  `json:"pair_grid,omitempty"`
}

// Histogram is a binned distribution with an optional density curve scaled
// to bin counts.
type Histogram struct {
	Edges   []Float `json:"edges"`
	Counts  []int   `json:"counts"`
	Density *Curve  `json:"density,omitempty"`
}

// Curve is a sampled line.
type Curve struct {
	X []Float `json:"x"`
	Y []Float `json:"y"`
}

// Heatmap is a square correlation matrix with formatted annotations.
type Heatmap struct {
	Columns     []string   `json:"columns"`
	Values      [][]Float  `json:"values"`
	Annotations [][]string `json:"annotations"`
}

// ValueCount is the frequency of one distinct value.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Counts is a frequency bar chart, most frequent first.
type Counts struct {
	Values []ValueCount `json:"values"`
	Total  int          `json:"total_distinct"`
}

// Point is one scatter mark. Label is set when X is categorical.
type Point struct {
	X     Float  `json:"x"`
	Y     Float  `json:"y"`
	Label string `json:"label,omitempty"`
}

// Scatter plots one point per row. Categories lists the X positions when X
// is categorical.
type Scatter struct {
	Points     []Point  `json:"points"`
	Categories []string `json:"categories,omitempty"`
}

// SeriesPoint is the mean of Y over the rows sharing one X value.
type SeriesPoint struct {
	X     string `json:"x"`
	Y     Float  `json:"y"`
	Count int    `json:"count"`
}

// Series backs line and bar charts.
type Series struct {
	Numeric bool          `json:"numeric_x"`
	Points  []SeriesPoint `json:"points"`
}

// Box is the five-number summary of one X group.
type Box struct {
	Group        string  `json:"group"`
	Count        int     `json:"count"`
	LowerWhisker Float   `json:"lower_whisker"`
	Q1           Float   `json:"q1"`
	Median       Float   `json:"median"`
	Q3           Float   `json:"q3"`
	UpperWhisker Float   `json:"upper_whisker"`
	Outliers     []Float `json:"outliers,omitempty"`
}

// BoxPlot holds one box per X group.
type BoxPlot struct {
	Boxes []Box `json:"boxes"`
}

// Wedge is one pie slice; Percent is unrounded, Text carries one decimal.
type Wedge struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent Float  `json:"percent"`
	Text    string `json:"text"`
}

// Pie holds the wedges in descending order, starting at 90 degrees.
type Pie struct {
	Wedges     []Wedge `json:"wedges"`
	StartAngle int     `json:"start_angle"`
}

// PairCell is a histogram on the diagonal and a scatter elsewhere.
type PairCell struct {
	X         string     `json:"x"`
	Y         string     `json:"y"`
	Histogram *Histogram `json:"histogram,omitempty"`
	Scatter   *Scatter   `json:"scatter,omitempty"`
}

// PairGrid is the all-pairs grid; Cells[i][j] plots Columns[j] against Columns[i].
type PairGrid struct {
	Columns []string     `json:"columns"`
	Cells   [][]PairCell `json:"cells"`
}
