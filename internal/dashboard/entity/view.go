package entity

// View is one of the three mutually exclusive dashboard views.
type View string

const (
	ViewOverview   View = "overview"
	ViewStatistics View = "statistics"
	ViewVisual     View = "visual"
)

// Views lists the views in selector order.
var Views = []View{ViewOverview, ViewStatistics, ViewVisual}

// Label is the human caption of the view.
func (v View) Label() string {
	switch v {
	case ViewOverview:
		return "Dataset Overview"
	case ViewStatistics:
		return "Summary Statistics"
	case ViewVisual:
		return "Visual Analysis"
	default:
		return string(v)
	}
}

// ChartKind names every figure the dashboard can describe.
type ChartKind string

const (
	ChartHistogram ChartKind = "histogram"
	ChartHeatmap   ChartKind = "heatmap"
	ChartFrequency ChartKind = "frequency"
	ChartScatter   ChartKind = "scatter"
	ChartLine      ChartKind = "line"
	ChartBar       ChartKind = "bar"
	ChartBoxplot   ChartKind = "boxplot"
	ChartPie       ChartKind = "pie"
	ChartPairGrid  ChartKind = "pairplot"
)

// CustomChartKinds are the kinds offered by the visual analysis selector.
var CustomChartKinds = []ChartKind{ChartScatter, ChartLine, ChartBar, ChartBoxplot, ChartPie, ChartPairGrid}

// Label is the caption shown in the chart-kind selector.
func (k ChartKind) Label() string {
	switch k {
	case ChartScatter:
		return "Scatter"
	case ChartLine:
		return "Line"
	case ChartBar:
		return "Bar"
	case ChartBoxplot:
		return "Boxplot"
	case ChartPie:
		return "Pie Chart"
	case ChartPairGrid:
		return "Pairplot"
	case ChartHistogram:
		return "Histogram"
	case ChartHeatmap:
		return "Heatmap"
	case ChartFrequency:
		return "Count Plot"
	default:
		return string(k)
	}
}

// XY reports whether the kind takes an X and a Y selection.
func (k ChartKind) XY() bool {
	switch k {
	case ChartScatter, ChartLine, ChartBar, ChartBoxplot:
		return true
	default:
		return false
	}
}

// Selection carries the widget state of one interaction. Empty fields fall
// back to the first available option, as a select box does.
type Selection struct {
	Column   string    // numeric column of the distribution plot
	Category string    // categorical column of the count plot
	Chart    ChartKind // visual analysis chart kind
	X        string
	Y        string
	Pie      string // categorical column of the pie chart
	Rows     int    // preview rows, 0 means the configured default
}
