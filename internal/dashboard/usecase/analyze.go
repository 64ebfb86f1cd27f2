package usecase

import (
	"fmt"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/entity"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgerror"
)

const pageTitle = "CSV Analyzer Dashboard"

// Analyze runs one interaction from scratch: load raw, clean it, then render
// the single view req asks for. It holds no state between calls.
func Analyze(raw []byte, req RenderRequest, opt Options) (entity.Page, error) {
	opt = opt.withDefaults()

	table, err := Load(raw)
	if err != nil {
		return entity.Page{}, err
	}
	report := Clean(table)

	return Render(table, report, req, opt)
}

// Render dispatches a cleaned table to the renderer of req.View.
func Render(t *entity.Table, report entity.MissingReport, req RenderRequest, opt Options) (entity.Page, error) {
	opt = opt.withDefaults()

	var (
		blocks []entity.Block
		err    error
	)
	switch req.View {
	case entity.ViewOverview:
		blocks, err = Overview(t, report, req.Selection, opt)
	case entity.ViewStatistics:
		blocks = Statistics(t)
	case entity.ViewVisual:
		blocks, err = Visual(t, req.Selection, opt)
	default:
		return entity.Page{}, pkgerror.NewInvalidInput(fmt.Errorf("view: unknown view %q", req.View))
	}
	if err != nil {
		return entity.Page{}, err
	}

	return entity.Page{
		Title:   pageTitle,
		View:    req.View,
		Blocks:  blocks,
		Sidebar: []entity.Block{viewSelector(req.View), entity.Success("Analysis complete")},
	}, nil
}

// WaitingPage is shown until a file has been uploaded.
func WaitingPage() entity.Page {
	return entity.Page{
		Title:  pageTitle,
		Blocks: []entity.Block{entity.Info("Please upload a CSV file to begin.")},
	}
}

func viewSelector(current entity.View) entity.Block {
	options := make([]string, 0, len(entity.Views))
	for _, v := range entity.Views {
		options = append(options, string(v))
	}
	return entity.Block{
		Kind:   entity.BlockSelect,
		Select: &entity.Select{Name: "view", Label: "View", Options: options, Selected: string(current)},
	}
}
