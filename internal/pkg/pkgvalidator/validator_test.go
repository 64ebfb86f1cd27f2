package pkgvalidator

import (
	"errors"
	"testing"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
)

type sample struct {
	Format string `query:"format" validate:"omitempty,oneof=svg png"`
	Rows   int    `query:"rows" validate:"min=0,max=100"`
	Name   string `json:"name" validate:"required"`
}

func TestStructPasses(t *testing.T) {
	if err := New().Struct(sample{Format: "svg", Rows: 5, Name: "ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructReportsTagNames(t *testing.T) {
	err := New().Struct(sample{Format: "gif", Rows: 500})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected pkgerror.Error, got %T", err)
	}
	if perr.Code() != pkgerror.CodeInvalidInput {
		t.Fatalf("unexpected code: %v", perr.Code())
	}

	want := "format must be one of [svg png]; rows must be at most 100; name is required"
	if got := err.Error(); got != want {
		t.Fatalf("unexpected message:\n got: %q\nwant: %q", got, want)
	}
}
