package plotter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/penwyp/timeline-viz/internal/core/model"
	"github.com/penwyp/timeline-viz/internal/data/detect"
	"github.com/penwyp/timeline-viz/internal/data/source"
	"github.com/penwyp/timeline-viz/internal/util"
)

// Plotter runs the batch pipeline: one image per entity, skip-and-continue
// on per-entity failures.
type Plotter struct {
	opts  Options
	runID string
}

// New creates a batch plotter. Every run is tagged with a fresh run id that
// appears in logs and in the summary.
func New(opts Options) *Plotter {
	opts.normalize()
	return &Plotter{opts: opts, runID: uuid.NewString()}
}

// RunID returns the identifier attached to this plotter's runs.
func (p *Plotter) RunID() string {
	return p.runID
}

// RunFile loads a CSV file and renders one timeline image per entity.
func (p *Plotter) RunFile(csvPath string) (*model.Summary, error) {
	table, err := source.ReadCSV(csvPath)
	if err != nil {
		return nil, err
	}
	return p.Run(table)
}

// Run renders one timeline image per table row. Configuration problems abort
// before any entity is processed; per-entity parse and render failures are
// recorded as skips and the batch continues.
func (p *Plotter) Run(table *source.Table) (*model.Summary, error) {
	if p.opts.ThresholdDays <= 0 {
		return nil, model.NewConfigErrorf("threshold-days must be positive, got %g", p.opts.ThresholdDays)
	}

	columns, err := p.resolveColumns(table)
	if err != nil {
		return nil, err
	}

	entities, err := table.Entities(p.opts.IDColumn)
	if err != nil {
		return nil, err
	}
	if p.opts.MaxEntities > 0 && len(entities) > p.opts.MaxEntities {
		entities = entities[:p.opts.MaxEntities]
	}

	if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", p.opts.OutputDir, err)
	}

	util.LogInfof("run %s: rendering %d entities to %s", p.runID, len(entities), p.opts.OutputDir)

	summary := &model.Summary{RunID: p.runID}
	for _, re := range entities {
		events := p.extractEvents(re, columns)
		if len(events) == 0 {
			summary.Skipped = append(summary.Skipped,
				model.SkippedEntity{ID: re.ID, Reason: "no valid timestamps"})
			util.LogWarnf("run %s: entity %s skipped: no valid timestamps", p.runID, re.ID)
			continue
		}

		opts := p.opts
		opts.Title = p.title(re.ID)
		path := p.outputPath(re.ID)

		if err := PlotTimelineFile(model.Entity{ID: re.ID, Events: events}, opts, path); err != nil {
			var cfgErr *model.ConfigError
			if errors.As(err, &cfgErr) {
				return nil, err
			}
			summary.Skipped = append(summary.Skipped,
				model.SkippedEntity{ID: re.ID, Reason: err.Error()})
			util.LogErrorf("run %s: entity %s skipped: %v", p.runID, re.ID, err)
			continue
		}

		summary.Rendered++
		util.LogDebugf("run %s: saved %s", p.runID, path)
	}

	util.LogInfof("run %s: rendered %d, skipped %d", p.runID, summary.Rendered, len(summary.Skipped))
	return summary, nil
}

// resolveColumns combines caller-specified columns with auto-detected ones,
// keeping the caller's order first.
func (p *Plotter) resolveColumns(table *source.Table) ([]string, error) {
	columns := make([]string, 0, len(p.opts.TimestampColumns))
	for _, col := range p.opts.TimestampColumns {
		if !table.HasColumn(col) {
			util.LogWarnf("run %s: timestamp column %q not found in input", p.runID, col)
		}
		columns = append(columns, col)
	}

	if p.opts.DetectColumns {
		for _, col := range detect.Columns(table.Columns) {
			if !contains(columns, col) {
				columns = append(columns, col)
			}
		}
	}

	if len(columns) == 0 {
		return nil, model.NewConfigErrorf("no timestamp columns specified or detected")
	}
	return columns, nil
}

// extractEvents parses one event per timestamp column. A cell that fails to
// parse drops only that event.
func (p *Plotter) extractEvents(re source.RowEntity, columns []string) []model.Event {
	var events []model.Event
	for _, col := range columns {
		value, ok := re.Row[col]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}

		ts, err := util.ParseTimestamp(value)
		if err != nil {
			perr := &model.ParseError{Column: col, Value: value, Err: err}
			util.LogWarnf("run %s: entity %s: %v, event dropped", p.runID, re.ID, perr)
			continue
		}

		events = append(events, model.Event{
			Label:     p.label(col),
			Column:    col,
			Timestamp: ts,
		})
	}
	return events
}

func (p *Plotter) label(column string) string {
	if mapped, ok := p.opts.LabelMappings[column]; ok {
		return mapped
	}
	return util.HumanizeColumn(column, p.opts.RemoveSuffixes)
}

func (p *Plotter) title(id string) string {
	if p.opts.Title != "" {
		return p.opts.Title
	}
	return fmt.Sprintf("%s Timeline - %s", p.opts.EntityName, id)
}

func (p *Plotter) outputPath(id string) string {
	name := fmt.Sprintf("%s_%s_timeline.%s",
		strings.ToLower(p.opts.EntityName), util.SanitizeID(id), p.opts.ImageFormat)
	return filepath.Join(p.opts.OutputDir, name)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
