package pkgrouter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestMiddlewareRecovererWritesServerError(t *testing.T) {
	h := middlewareRecoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("chart exploded")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/datasets/x/charts/pie", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Internal server error" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestMiddlewareRecovererRepanicsOnAbort(t *testing.T) {
	h := middlewareRecoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rvr := recover(); rvr != http.ErrAbortHandler { //nolint:errorlint // direct compare
			t.Fatalf("expected ErrAbortHandler, got %v", rvr)
		}
	}()

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	t.Fatal("expected panic to propagate")
}

func TestInternalFrames(t *testing.T) {
	stack := []byte("goroutine 1 [running]:\n" +
		"main.main()\n" +
		"\t/src/app/internal/dashboard/render/figures.go:42 +0x1d\n" +
		"\t/usr/local/go/src/runtime/proc.go:250 +0x20\n" +
		"\t/src/app/internal/pkg/pkgrouter/router.go:170\n")

	got := internalFrames(stack)
	want := []string{
		"internal/dashboard/render/figures.go:42",
		"internal/pkg/pkgrouter/router.go:170",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("internalFrames = %#v", got)
	}
}
