package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkguid"
)

type Store interface {
	Save(ctx context.Context, ds entity.Dataset) error
	Get(ctx context.Context, id string) (entity.Dataset, error)
	Delete(ctx context.Context, id string) error
}

// Rasterizer encodes a chart description as an image.
type Rasterizer interface {
	Rasterize(chart *entity.Chart, format ImageFormat, width, height int) (ChartImage, error)
}

// Recorder observes uploads and renders. Outcome is "ok" or the error type.
type Recorder interface {
	Upload(outcome string, size int)
	Render(target, outcome string, elapsed time.Duration)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store      Store
	Rasterizer Rasterizer
	Recorder   Recorder
	Clock      Clock
	ID         pkguid.StringID
	Options    Options
}

type Usecase struct {
	store      Store
	rasterizer Rasterizer
	recorder   Recorder
	clock      Clock
	id         pkguid.StringID
	opt        Options
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	recorder := dep.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &Usecase{
		store:      dep.Store,
		rasterizer: dep.Rasterizer,
		recorder:   recorder,
		clock:      clock,
		id:         dep.ID,
		opt:        dep.Options.withDefaults(),
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

type nopRecorder struct{}

func (nopRecorder) Upload(string, int) {}
func (nopRecorder) Render(string, string, time.Duration) {}

// Options returns the effective options after defaults are applied.
func (u *Usecase) Options() Options {
	return u.opt
}

// Upload reads the whole stream, checks that it loads, and keeps the raw bytes
// as a new dataset session.
func (u *Usecase) Upload(ctx context.Context, filename string, r io.Reader) (DatasetResult, error) {
	if u.store == nil || u.id == nil {
		return DatasetResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	raw, err := u.readLimited(r)
	if err != nil {
		u.recorder.Upload(outcome(err), len(raw))
		return DatasetResult{}, err
	}

	table, err := Load(raw)
	if err != nil {
		u.recorder.Upload(outcome(err), len(raw))
		return DatasetResult{}, err
	}
	report := Clean(table)

	now := u.clock.Now().Unix()
	ds := entity.Dataset{
		ID:        u.id.Generate(),
		Filename:  filename,
		Raw:       raw,
		CreatedAt: now,
		ExpiresAt: now + u.opt.SessionTTL,
	}
	if err := u.store.Save(ctx, ds); err != nil {
		u.recorder.Upload(outcome(err), len(raw))
		return DatasetResult{}, normalizeErr(err)
	}

	slog.InfoContext(ctx, "dataset uploaded",
		"dataset_id", ds.ID, "filename", filename, "bytes", len(raw),
		"rows", table.Rows, "columns", len(table.Columns), "missing", report.Total())
	u.recorder.Upload(outcomeOK, len(raw))

	return summarizeDataset(ds, table, report), nil
}

// Dataset describes a stored dataset: its shape, column kinds after cleaning
// and the counts of missing cells before cleaning.
func (u *Usecase) Dataset(ctx context.Context, id string) (DatasetResult, error) {
	ds, err := u.get(ctx, id)
	if err != nil {
		return DatasetResult{}, err
	}

	table, err := Load(ds.Raw)
	if err != nil {
		return DatasetResult{}, normalizeErr(err)
	}
	report := Clean(table)

	return summarizeDataset(ds, table, report), nil
}

// Delete ends a dataset session.
func (u *Usecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerror.NewInvalidInput(errors.New("dataset_id is required"))
	}
	if err := u.store.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	return nil
}

// View renders one view of a stored dataset. Every call starts again from the
// uploaded bytes.
func (u *Usecase) View(ctx context.Context, id string, req RenderRequest) (entity.Page, error) {
	ds, err := u.get(ctx, id)
	if err != nil {
		return entity.Page{}, err
	}

	start := u.clock.Now()
	page, err := Analyze(ds.Raw, req, u.opt)
	u.recorder.Render(string(req.View), outcome(err), u.clock.Now().Sub(start))
	if err != nil {
		return entity.Page{}, normalizeErr(err)
	}

	return page, nil
}

// Chart renders a single chart of a stored dataset as an image.
func (u *Usecase) Chart(ctx context.Context, id string, req ChartRequest) (ChartImage, error) {
	if u.rasterizer == nil {
		return ChartImage{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	ds, err := u.get(ctx, id)
	if err != nil {
		return ChartImage{}, err
	}

	start := u.clock.Now()
	img, err := u.chart(ds.Raw, req)
	u.recorder.Render("chart:"+string(req.Kind), outcome(err), u.clock.Now().Sub(start))
	if err != nil {
		return ChartImage{}, normalizeErr(err)
	}

	return img, nil
}

func (u *Usecase) chart(raw []byte, req ChartRequest) (ChartImage, error) {
	table, err := Load(raw)
	if err != nil {
		return ChartImage{}, err
	}
	Clean(table)

	chart, err := BuildChart(table, req.Kind, req.Selection, u.opt)
	if err != nil {
		return ChartImage{}, err
	}

	format := req.Format
	if format == "" {
		format = FormatSVG
	}
	return u.rasterizer.Rasterize(chart, format, u.opt.ChartWidth, u.opt.ChartHeight)
}

// Render is the stateless form of View: the bytes come with the request. A
// request without a file gets the waiting page.
func (u *Usecase) Render(ctx context.Context, r io.Reader, req RenderRequest) (entity.Page, error) {
	if r == nil {
		return WaitingPage(), nil
	}

	raw, err := u.readLimited(r)
	if err != nil {
		return entity.Page{}, err
	}

	start := u.clock.Now()
	page, err := Analyze(raw, req, u.opt)
	u.recorder.Render(string(req.View), outcome(err), u.clock.Now().Sub(start))
	if err != nil {
		slog.WarnContext(ctx, "stateless render failed", "view", req.View, "error", err)
		return entity.Page{}, normalizeErr(err)
	}

	return page, nil
}

func (u *Usecase) get(ctx context.Context, id string) (entity.Dataset, error) {
	if id == "" {
		return entity.Dataset{}, pkgerror.NewInvalidInput(errors.New("dataset_id is required"))
	}

	ds, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.Dataset{}, mapStoreErr(err)
	}
	return ds, nil
}

func (u *Usecase) readLimited(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, u.opt.MaxUploadBytes+1))
	if err != nil {
		return nil, pkgerror.NewMalformed(err, "invalid csv file")
	}
	if n > u.opt.MaxUploadBytes {
		return nil, pkgerror.NewTooLarge(u.opt.MaxUploadBytes)
	}
	return buf.Bytes(), nil
}

func summarizeDataset(ds entity.Dataset, table *entity.Table, report entity.MissingReport) DatasetResult {
	cols := make([]ColumnInfo, 0, len(table.Columns))
	for _, c := range table.Columns {
		cols = append(cols, ColumnInfo{Name: c.Name, Kind: c.Kind, Missing: report.Count(c.Name)})
	}

	return DatasetResult{
		ID:        ds.ID,
		Filename:  ds.Filename,
		Size:      len(ds.Raw),
		Rows:      table.Rows,
		Columns:   cols,
		Missing:   report,
		CreatedAt: ds.CreatedAt,
		ExpiresAt: ds.ExpiresAt,
	}
}

const outcomeOK = "ok"

func outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr.Code().String()
	}
	return pkgerror.CodeInternal.String()
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("dataset not found", pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
