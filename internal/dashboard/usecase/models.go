package usecase

import (
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
)

// Options tunes rendering and upload limits.
type Options struct {
	PreviewRows    int
	HistogramBins  int
	TopValues      int
	KDEPoints      int
	MaxUploadBytes int64
	SessionTTL     int64 // seconds
	ChartWidth     int
	ChartHeight    int
}

// DefaultOptions mirrors what the dashboard shows without configuration.
func DefaultOptions() Options {
	return Options{
		PreviewRows:    5,
		HistogramBins:  30,
		TopValues:      10,
		KDEPoints:      200,
		MaxUploadBytes: 200 << 20,
		SessionTTL:     3600,
		ChartWidth:     800,
		ChartHeight:    480,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PreviewRows <= 0 {
		o.PreviewRows = def.PreviewRows
	}
	if o.HistogramBins <= 0 {
		o.HistogramBins = def.HistogramBins
	}
	if o.TopValues <= 0 {
		o.TopValues = def.TopValues
	}
	if o.KDEPoints <= 0 {
		o.KDEPoints = def.KDEPoints
	}
	if o.MaxUploadBytes <= 0 {
		o.MaxUploadBytes = def.MaxUploadBytes
	}
	if o.SessionTTL <= 0 {
		o.SessionTTL = def.SessionTTL
	}
	if o.ChartWidth <= 0 {
		o.ChartWidth = def.ChartWidth
	}
	if o.ChartHeight <= 0 {
		o.ChartHeight = def.ChartHeight
	}
	return o
}

// RenderRequest is one interaction: the view and the widget selections.
type RenderRequest struct {
	View      entity.View
	Selection entity.Selection
}

// ColumnInfo describes one column of an uploaded dataset.
type ColumnInfo struct {
	Name    string
	Kind    entity.ColumnKind
	Missing int
}

// DatasetResult summarises a dataset after load and clean.
type DatasetResult struct {
	ID        string
	Filename  string
	Size      int
	Rows      int
	Columns   []ColumnInfo
	Missing   entity.MissingReport
	CreatedAt int64
	ExpiresAt int64
}

// ImageFormat is the encoding of a rasterised chart.
type ImageFormat string

const (
	FormatSVG ImageFormat = "svg"
	FormatPNG ImageFormat = "png"
)

// ChartRequest asks for a single chart image.
type ChartRequest struct {
	Kind      entity.ChartKind
	Format    ImageFormat
	Selection entity.Selection
}

// ChartImage is an encoded chart.
type ChartImage struct {
	ContentType string
	Body        []byte
}
