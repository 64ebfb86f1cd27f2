package inbound

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/render"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/store"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/usecase"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgrouter"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkguid"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgvalidator"
)

type envelope[T any] struct {
	Message string         `json:"message"`
	Data    T              `json:"data"`
	Meta    map[string]any `json:"meta,omitempty"`
}

const peopleCSV = "age,income,city\n25,100,NY\n,200,LA\n31,300,\n40,400,NY\n"

type seqRenderID struct{ n int64 }

func (s *seqRenderID) Generate() int64 {
	s.n++
	return s.n
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWithOptions(t, usecase.Options{})
}

func newTestRouterWithOptions(t *testing.T, opt usecase.Options) http.Handler {
	t.Helper()

	uc := usecase.New(usecase.Dependency{
		Store:      store.NewInMemoryStore(),
		Rasterizer: render.New(),
		ID:         pkguid.NewUUID(),
		Options:    opt,
	})

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc, pkgvalidator.New(), &seqRenderID{})

	return router
}

func multipartBody(t *testing.T, fields map[string]string, csv string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if csv != "" {
		part, err := writer.CreateFormFile("file", "people.csv")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(csv)); err != nil {
			t.Fatalf("write csv: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	return body, writer.FormDataContentType()
}

func do(t *testing.T, router http.Handler, req *http.Request, want int) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != want {
		t.Fatalf("%s %s: status = %d, want %d, body = %s", req.Method, req.URL, rec.Code, want, rec.Body.String())
	}

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}

	return env
}

func uploadCSV(t *testing.T, router http.Handler) DatasetResponse {
	t.Helper()

	body, contentType := multipartBody(t, nil, peopleCSV)
	req := httptest.NewRequest(http.MethodPost, "/datasets", body)
	req.Header.Set("Content-Type", contentType)

	env := decode[DatasetResponse](t, do(t, router, req, http.StatusCreated))
	if env.Data.ID == "" {
		t.Fatal("dataset id is empty")
	}

	return env.Data
}

func hasBlock(blocks []entity.Block, want entity.Block) bool {
	for _, b := range blocks {
		if b.Kind == want.Kind && b.Text == want.Text && b.Level == want.Level {
			return true
		}
	}
	return false
}

func TestUploadDescribeAndDelete(t *testing.T) {
	router := newTestRouter(t)
	ds := uploadCSV(t, router)

	if ds.Filename != "people.csv" || ds.Rows != 4 || len(ds.Columns) != 3 {
		t.Fatalf("unexpected dataset: %+v", ds)
	}
	if ds.Columns[2].Kind != entity.KindCategorical || ds.Columns[0].Missing != 1 {
		t.Fatalf("unexpected columns: %+v", ds.Columns)
	}

	got := decode[DatasetResponse](t, do(t, router, httptest.NewRequest(http.MethodGet, "/datasets/"+ds.ID, nil), http.StatusOK))
	if got.Data.ID != ds.ID {
		t.Fatalf("dataset id = %q, want %q", got.Data.ID, ds.ID)
	}

	do(t, router, httptest.NewRequest(http.MethodDelete, "/datasets/"+ds.ID, nil), http.StatusNoContent)
	do(t, router, httptest.NewRequest(http.MethodGet, "/datasets/"+ds.ID, nil), http.StatusNotFound)
}

func TestUploadRawBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/datasets?filename=raw.csv", strings.NewReader(peopleCSV))
	req.Header.Set("Content-Type", "text/csv")

	env := decode[DatasetResponse](t, do(t, router, req, http.StatusCreated))
	if env.Data.Filename != "raw.csv" {
		t.Fatalf("filename = %q", env.Data.Filename)
	}
}

func TestUploadInvalidCSV(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/datasets", strings.NewReader("a,b\n1,2,3\n"))
	req.Header.Set("Content-Type", "text/csv")

	env := decode[map[string]any](t, do(t, router, req, http.StatusBadRequest))
	if env.Message != "invalid csv file" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestViews(t *testing.T) {
	router := newTestRouter(t)
	ds := uploadCSV(t, router)

	rec := do(t, router, httptest.NewRequest(http.MethodGet, "/datasets/"+ds.ID+"/views/overview?column=income&rows=2", nil), http.StatusOK)
	page := decode[entity.Page](t, rec)
	if page.Data.Title != "CSV Analyzer Dashboard" || page.Meta["render_id"] == nil {
		t.Fatalf("unexpected page: %+v", page)
	}
	if !hasBlock(page.Data.Sidebar, entity.Success("Analysis complete")) {
		t.Fatal("sidebar lacks success notice")
	}
	if len(page.Data.Blocks[1].Table.Rows) != 2 {
		t.Fatalf("preview rows = %d, want 2", len(page.Data.Blocks[1].Table.Rows))
	}

	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/datasets/"+ds.ID+"/views/statistics", nil), http.StatusOK)
	page = decode[entity.Page](t, rec)
	if !hasBlock(page.Data.Blocks, entity.Heading(3, "Central Tendency")) {
		t.Fatal("statistics view lacks central tendency")
	}

	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/datasets/"+ds.ID+"/views/visual?chart=pairplot", nil), http.StatusOK)
	page = decode[entity.Page](t, rec)
	if !hasBlock(page.Data.Blocks, entity.Info("Generating pairplot for numerical columns...")) {
		t.Fatal("pairplot info block missing")
	}
}

func TestViewRejectsBadInput(t *testing.T) {
	router := newTestRouter(t)
	ds := uploadCSV(t, router)

	paths := []string{
		"/datasets/" + ds.ID + "/views/timeline",
		"/datasets/" + ds.ID + "/views/visual?chart=radar",
		"/datasets/" + ds.ID + "/views/visual?y=city",
		"/datasets/" + ds.ID + "/views/overview?column=salary",
		"/datasets/" + ds.ID + "/views/overview?rows=many",
		"/datasets/" + ds.ID + "/charts/heatmap",
		"/datasets/" + ds.ID + "/charts/scatter?format=gif",
	}
	for _, path := range paths {
		do(t, router, httptest.NewRequest(http.MethodGet, path, nil), http.StatusUnprocessableEntity)
	}

	do(t, router, httptest.NewRequest(http.MethodGet, "/datasets/nope/views/overview", nil), http.StatusNotFound)
}

func TestChartImage(t *testing.T) {
	router := newTestRouter(t)
	ds := uploadCSV(t, router)

	rec := do(t, router, httptest.NewRequest(http.MethodGet, "/datasets/"+ds.ID+"/charts/scatter?x=age&y=income", nil), http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Fatalf("body is not svg: %.32s", rec.Body.String())
	}

	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/datasets/"+ds.ID+"/charts/pie?format=png", nil), http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestStatelessRender(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, httptest.NewRequest(http.MethodPost, "/render", nil), http.StatusOK)
	page := decode[entity.Page](t, rec)
	if !hasBlock(page.Data.Blocks, entity.Info("Please upload a CSV file to begin.")) {
		t.Fatalf("unexpected waiting page: %+v", page.Data)
	}

	body, contentType := multipartBody(t, map[string]string{"view": "visual", "chart": "pie"}, peopleCSV)
	req := httptest.NewRequest(http.MethodPost, "/render", body)
	req.Header.Set("Content-Type", contentType)

	page = decode[entity.Page](t, do(t, router, req, http.StatusOK))
	if page.Data.View != entity.ViewVisual {
		t.Fatalf("view = %q", page.Data.View)
	}
	found := false
	for _, b := range page.Data.Blocks {
		if b.Kind == entity.BlockChart && b.Chart.Kind == entity.ChartPie {
			found = true
		}
	}
	if !found {
		t.Fatal("pie chart block missing")
	}
}

func TestOversizeBodyIsRejected(t *testing.T) {
	router := newTestRouterWithOptions(t, usecase.Options{MaxUploadBytes: 64})

	// Larger than the upload limit plus the multipart allowance, so the
	// stateless path must stop reading before the form is fully parsed.
	big := "a,b\n" + strings.Repeat("1,2\n", (formOverhead+4096)/4)

	body, contentType := multipartBody(t, map[string]string{"view": "overview"}, big)
	req := httptest.NewRequest(http.MethodPost, "/render", body)
	req.Header.Set("Content-Type", contentType)
	rec := do(t, router, req, http.StatusRequestEntityTooLarge)
	if env := decode[map[string]any](t, rec); env.Message != "payload exceeds 64 bytes" {
		t.Fatalf("unexpected message %q", env.Message)
	}

	body, contentType = multipartBody(t, nil, big)
	req = httptest.NewRequest(http.MethodPost, "/datasets", body)
	req.Header.Set("Content-Type", contentType)
	do(t, router, req, http.StatusRequestEntityTooLarge)

	req = httptest.NewRequest(http.MethodPost, "/datasets", strings.NewReader(big))
	req.Header.Set("Content-Type", "text/csv")
	do(t, router, req, http.StatusRequestEntityTooLarge)
}
