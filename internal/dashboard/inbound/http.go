package inbound

import (
	"context"
	"io"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/usecase"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgrouter"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkguid"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgvalidator"
)

type uc interface {
	Upload(ctx context.Context, filename string, r io.Reader) (usecase.DatasetResult, error)
	Dataset(ctx context.Context, id string) (usecase.DatasetResult, error)
	Delete(ctx context.Context, id string) error
	View(ctx context.Context, id string, req usecase.RenderRequest) (entity.Page, error)
	Chart(ctx context.Context, id string, req usecase.ChartRequest) (usecase.ChartImage, error)
	Render(ctx context.Context, r io.Reader, req usecase.RenderRequest) (entity.Page, error)
	Options() usecase.Options
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, val *pkgvalidator.Validator, renderID pkguid.NumberID) {
	maxUpload := uc.Options().MaxUploadBytes
	end := &HTTPEndpoint{uc: uc, val: val, renderID: renderID, maxUpload: maxUpload}
	limit := limitBody(maxUpload + formOverhead)

	r.POST("/datasets", end.Upload, limit)
	r.GET("/datasets/:id", end.Dataset)
	r.DELETE("/datasets/:id", end.Delete)

	r.GET("/datasets/:id/views/:view", end.View)    // ?column=&category=&chart=&x=&y=&pie=&rows=
	r.GET("/datasets/:id/charts/:chart", end.Chart) // ?format=svg|png plus the view selectors

	r.POST("/render", end.Render, limit)
}
