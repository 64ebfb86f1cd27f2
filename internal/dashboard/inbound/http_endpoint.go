package inbound

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/usecase"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgrouter"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkguid"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgvalidator"
)

// multipartMemory is how much of a multipart form is buffered in memory
// before parts spill to temporary files.
const multipartMemory = 32 << 20

// formOverhead is what a request body may carry on top of the upload limit
// for multipart boundaries and form fields.
const formOverhead = 1 << 20

type HTTPEndpoint struct {
	uc        uc
	val       *pkgvalidator.Validator
	renderID  pkguid.NumberID
	maxUpload int64
}

func (h *HTTPEndpoint) Upload(ctx context.Context, r *http.Request) (any, error) {
	reader, filename, cleanup, err := extractCSVReader(r)
	if err != nil {
		return nil, h.bodyErr(err)
	}
	defer cleanup()

	result, err := h.uc.Upload(ctx, filename, reader)
	if err != nil {
		return nil, err
	}

	return UploadResponse{DatasetResponse: toDatasetResponse(result)}, nil
}

func (h *HTTPEndpoint) Dataset(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Dataset(ctx, datasetID(ctx))
	if err != nil {
		return nil, err
	}

	return toDatasetResponse(result), nil
}

func (h *HTTPEndpoint) Delete(ctx context.Context, r *http.Request) (any, error) {
	if err := h.uc.Delete(ctx, datasetID(ctx)); err != nil {
		return nil, err
	}

	return DeleteResponse{}, nil
}

func (h *HTTPEndpoint) View(ctx context.Context, r *http.Request) (any, error) {
	sel, err := decodeSelection(r.URL.Query())
	if err != nil {
		return nil, err
	}

	q := viewQuery{View: pkgrouter.GetParam(ctx, "view"), selectionQuery: sel}
	if err := h.val.Struct(q); err != nil {
		return nil, err
	}

	page, err := h.uc.View(ctx, datasetID(ctx), usecase.RenderRequest{
		View:      entity.View(q.View),
		Selection: q.selection(),
	})
	if err != nil {
		return nil, err
	}

	return h.pageResponse(ctx, page), nil
}

func (h *HTTPEndpoint) Chart(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()
	sel, err := decodeSelection(query)
	if err != nil {
		return nil, err
	}

	q := chartQuery{
		Kind:           pkgrouter.GetParam(ctx, "chart"),
		Format:         strings.ToLower(strings.TrimSpace(query.Get("format"))),
		selectionQuery: sel,
	}
	if err := h.val.Struct(q); err != nil {
		return nil, err
	}

	img, err := h.uc.Chart(ctx, datasetID(ctx), usecase.ChartRequest{
		Kind:      entity.ChartKind(q.Kind),
		Format:    usecase.ImageFormat(q.Format),
		Selection: q.selection(),
	})
	if err != nil {
		return nil, err
	}

	return ImageResponse{image: img}, nil
}

// Render analyses a file sent with the request without creating a session.
// Selections come from the query string or from form fields next to the file.
func (h *HTTPEndpoint) Render(ctx context.Context, r *http.Request) (any, error) {
	reader, values, cleanup, err := extractRenderInput(r)
	if err != nil {
		return nil, h.bodyErr(err)
	}
	defer cleanup()

	sel, err := decodeSelection(values)
	if err != nil {
		return nil, err
	}

	view := strings.TrimSpace(values.Get("view"))
	if view == "" {
		view = string(entity.ViewOverview)
	}

	q := viewQuery{View: view, selectionQuery: sel}
	if err := h.val.Struct(q); err != nil {
		return nil, err
	}

	page, err := h.uc.Render(ctx, reader, usecase.RenderRequest{
		View:      entity.View(q.View),
		Selection: q.selection(),
	})
	if err != nil {
		return nil, err
	}

	return h.pageResponse(ctx, page), nil
}

func (h *HTTPEndpoint) pageResponse(ctx context.Context, page entity.Page) PageResponse {
	var id int64
	if h.renderID != nil {
		id = h.renderID.Generate()
	}
	slog.InfoContext(ctx, "page rendered", "render_id", pkguid.FormatID(id), "view", page.View, "blocks", len(page.Blocks))

	return PageResponse{Page: page, renderID: id}
}

func datasetID(ctx context.Context) string {
	return strings.TrimSpace(pkgrouter.GetParam(ctx, "id"))
}

func decodeSelection(values url.Values) (selectionQuery, error) {
	q := selectionQuery{
		Column:   strings.TrimSpace(values.Get("column")),
		Category: strings.TrimSpace(values.Get("category")),
		Chart:    strings.ToLower(strings.TrimSpace(values.Get("chart"))),
		X:        strings.TrimSpace(values.Get("x")),
		Y:        strings.TrimSpace(values.Get("y")),
		Pie:      strings.TrimSpace(values.Get("pie")),
	}

	if raw := strings.TrimSpace(values.Get("rows")); raw != "" {
		rows, err := strconv.Atoi(raw)
		if err != nil {
			return q, pkgerror.NewInvalidInput(errors.New("rows must be an integer"))
		}
		q.Rows = rows
	}

	return q, nil
}

func isMultipart(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && strings.EqualFold(mediaType, "multipart/form-data")
}

// extractCSVReader returns the "file" part of a multipart upload, or the raw
// body for any other content type. The filename comes from the part or from
// the ?filename= query parameter.
func extractCSVReader(r *http.Request) (io.Reader, string, func(), error) {
	if isMultipart(r) {
		return extractMultipartFile(r)
	}

	if r.Body == nil || r.Body == http.NoBody {
		return nil, "", func() {}, pkgerror.NewInvalidInput(errors.New("empty request body"))
	}

	return r.Body, r.URL.Query().Get("filename"), func() {}, nil
}

func extractMultipartFile(r *http.Request) (io.Reader, string, func(), error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, "", func() {}, pkgerror.NewInvalidFormat()
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, "", func() {}, pkgerror.NewInvalidInput(errors.New("file part is required"))
			}
			return nil, "", func() {}, formErr(err)
		}

		if part.FormName() == "file" {
			return part, part.FileName(), func() { _ = part.Close() }, nil
		}
		_ = part.Close()
	}
}

// extractRenderInput parses a stateless render request. A request without a
// file yields a nil reader.
func extractRenderInput(r *http.Request) (io.Reader, url.Values, func(), error) {
	if !isMultipart(r) {
		if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
			return nil, r.URL.Query(), func() {}, nil
		}
		return r.Body, r.URL.Query(), func() {}, nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, nil, func() {}, formErr(err)
	}
	cleanup := func() { _ = r.MultipartForm.RemoveAll() }

	file, _, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, r.Form, cleanup, nil
	}
	if err != nil {
		cleanup()
		return nil, nil, func() {}, pkgerror.NewInvalidFormat()
	}

	return file, r.Form, func() {
		_ = file.Close()
		cleanup()
	}, nil
}

// formErr keeps a body-limit error recognisable and reports any other form
// failure as malformed input.
func formErr(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return err
	}
	return pkgerror.NewInvalidFormat()
}

// bodyErr reports a request body cut off by limitBody as an oversize upload.
func (h *HTTPEndpoint) bodyErr(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return pkgerror.NewTooLarge(h.maxUpload)
	}
	return err
}

// limitBody caps how many bytes a handler can read from the request body.
func limitBody(n int64) pkgrouter.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
