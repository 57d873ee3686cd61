package plotter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/penwyp/timeline-viz/internal/core/model"
	"github.com/penwyp/timeline-viz/internal/core/timeline"
	"github.com/penwyp/timeline-viz/internal/presentation/layout"
	"github.com/penwyp/timeline-viz/internal/presentation/render"
)

// PlotTimeline renders a single entity's timeline to dst. The entity must
// carry at least one event; extraction from raw rows happens in the batch
// path or in the caller.
func PlotTimeline(entity model.Entity, opts Options, dst io.Writer) error {
	opts.normalize()

	if len(entity.Events) == 0 {
		return fmt.Errorf("entity %s: %w", entity.ID, model.ErrNoEvents)
	}

	segments, err := timeline.Build(entity.Events, opts.ThresholdDays)
	if err != nil {
		return err
	}
	plan := layout.NewPlan(segments)

	geom := opts.Geometry
	if geom.Width <= 0 || geom.Height <= 0 {
		geom = render.DefaultGeometry()
	}
	canvas, err := render.NewCanvas(opts.ImageFormat, geom.Width, geom.Height, "#ffffff")
	if err != nil {
		return model.NewConfigErrorf("%v", err)
	}

	title := opts.Title
	if title == "" {
		title = "Timeline"
		if entity.ID != "" {
			title = fmt.Sprintf("Timeline - %s %s", opts.EntityName, entity.ID)
		}
	}

	r := render.New(canvas, opts.Colors, geom)
	r.Draw(plan, title)
	if err := r.Save(dst); err != nil {
		return &model.RenderError{Err: err}
	}
	return nil
}

// PlotTimelineFile renders a single entity's timeline to path, creating
// parent directories as needed.
func PlotTimelineFile(entity model.Entity, opts Options, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &model.RenderError{Destination: path, Err: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &model.RenderError{Destination: path, Err: err}
	}

	if err := PlotTimeline(entity, opts, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return &model.RenderError{Destination: path, Err: err}
	}
	return nil
}
