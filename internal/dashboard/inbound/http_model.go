package inbound

import (
	"net/http"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/usecase"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkguid"
)

// selectionQuery holds the widget selections shared by views and charts.
type selectionQuery struct {
	Column   string `query:"column" validate:"max=256"`
	Category string `query:"category" validate:"max=256"`
	Chart    string `query:"chart" validate:"omitempty,oneof=scatter line bar boxplot pie pairplot"`
	X        string `query:"x" validate:"max=256"`
	Y        string `query:"y" validate:"max=256"`
	Pie      string `query:"pie" validate:"max=256"`
	Rows     int    `query:"rows" validate:"min=0,max=1000"`
}

func (q selectionQuery) selection() entity.Selection {
	return entity.Selection{
		Column:   q.Column,
		Category: q.Category,
		Chart:    entity.ChartKind(q.Chart),
		X:        q.X,
		Y:        q.Y,
		Pie:      q.Pie,
		Rows:     q.Rows,
	}
}

type viewQuery struct {
	View string `query:"view" validate:"required,oneof=overview statistics visual"`
	selectionQuery
}

type chartQuery struct {
	Kind   string `query:"chart" validate:"required,oneof=histogram frequency scatter line bar pie"`
	Format string `query:"format" validate:"omitempty,oneof=svg png"`
	selectionQuery
}

type ColumnResponse struct {
	Name    string            `json:"name"`
	Kind    entity.ColumnKind `json:"kind"`
	Missing int               `json:"missing"`
}

type DatasetResponse struct {
	ID        string               `json:"id"`
	Filename  string               `json:"filename,omitempty"`
	Size      int                  `json:"size"`
	Rows      int                  `json:"rows"`
	Columns   []ColumnResponse     `json:"columns"`
	Missing   entity.MissingReport `json:"missing"`
	CreatedAt int64                `json:"created_at"`
	ExpiresAt int64                `json:"expires_at"`
}

func toDatasetResponse(res usecase.DatasetResult) DatasetResponse {
	cols := make([]ColumnResponse, 0, len(res.Columns))
	for _, c := range res.Columns {
		cols = append(cols, ColumnResponse{Name: c.Name, Kind: c.Kind, Missing: c.Missing})
	}

	return DatasetResponse{
		ID:        res.ID,
		Filename:  res.Filename,
		Size:      res.Size,
		Rows:      res.Rows,
		Columns:   cols,
		Missing:   res.Missing,
		CreatedAt: res.CreatedAt,
		ExpiresAt: res.ExpiresAt,
	}
}

type UploadResponse struct {
	DatasetResponse
}

func (UploadResponse) StatusCode() int {
	return http.StatusCreated
}

func (UploadResponse) Message() string {
	return "dataset uploaded"
}

type DeleteResponse struct{}

func (DeleteResponse) StatusCode() int {
	return http.StatusNoContent
}

type PageResponse struct {
	entity.Page
	renderID int64
}

func (PageResponse) Message() string {
	return "Analysis complete"
}

func (r PageResponse) Meta() map[string]any {
	return map[string]any{
		"render_id": pkguid.FormatID(r.renderID),
	}
}

type ImageResponse struct {
	image usecase.ChartImage
}

func (r ImageResponse) ContentType() string {
	return r.image.ContentType
}

func (r ImageResponse) Bytes() []byte {
	return r.image.Body
}
