package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/usecase"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
)

var _ usecase.Rasterizer = (*Rasterizer)(nil)

// renderable is the part of chart.Chart, chart.BarChart and chart.PieChart
// the rasterizer needs.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

type Rasterizer struct{}

func New() *Rasterizer {
	return &Rasterizer{}
}

// Rasterize draws c at width x height pixels in the given format.
func (r *Rasterizer) Rasterize(c *entity.Chart, format usecase.ImageFormat, width, height int) (usecase.ChartImage, error) {
	provider, contentType, err := providerFor(format)
	if err != nil {
		return usecase.ChartImage{}, err
	}

	fig, err := figure(c, width, height)
	if err != nil {
		return usecase.ChartImage{}, err
	}

	var buf bytes.Buffer
	if err := fig.Render(provider, &buf); err != nil {
		return usecase.ChartImage{}, pkgerror.NewServer(fmt.Errorf("render %s chart: %w", c.Kind, err))
	}

	return usecase.ChartImage{ContentType: contentType, Body: buf.Bytes()}, nil
}

func providerFor(format usecase.ImageFormat) (chart.RendererProvider, string, error) {
	switch format {
	case usecase.FormatSVG, "":
		return chart.SVG, chart.ContentTypeSVG, nil
	case usecase.FormatPNG:
		return chart.PNG, chart.ContentTypePNG, nil
	default:
		return nil, "", pkgerror.NewInvalidInput(fmt.Errorf("format: unsupported image format %q", format))
	}
}

func figure(c *entity.Chart, width, height int) (renderable, error) {
	switch c.Kind {
	case entity.ChartHistogram:
		return histogram(c, width, height)
	case entity.ChartFrequency:
		return frequency(c, width, height)
	case entity.ChartScatter:
		return scatter(c, width, height)
	case entity.ChartLine:
		return line(c, width, height)
	case entity.ChartBar:
		return bar(c, width, height)
	case entity.ChartPie:
		return pie(c, width, height)
	default:
		return nil, pkgerror.NewInvalidInput(fmt.Errorf("chart: %s has no image form", c.Kind))
	}
}

func errEmpty(kind entity.ChartKind) error {
	return pkgerror.NewInvalidInput(fmt.Errorf("chart: %s has no data to draw", kind))
}
