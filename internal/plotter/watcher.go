package plotter

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/timeline-viz/internal/core/model"
	"github.com/penwyp/timeline-viz/internal/util"
)

// Watch re-runs the batch whenever csvPath changes, until ctx is cancelled.
// The parent directory is watched rather than the file itself because many
// editors replace the file on save. Re-render failures are logged and the
// watcher keeps running.
func (p *Plotter) Watch(ctx context.Context, csvPath string, onRun func(*model.Summary)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(csvPath)); err != nil {
		return err
	}
	target := filepath.Base(csvPath)
	util.LogInfof("run %s: watching %s for changes", p.runID, csvPath)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			util.LogInfof("run %s: %s changed, re-rendering", p.runID, csvPath)
			summary, err := p.RunFile(csvPath)
			if err != nil {
				util.LogErrorf("run %s: re-render failed: %v", p.runID, err)
				continue
			}
			if onRun != nil {
				onRun(summary)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			util.LogError("file watch error: " + err.Error())
		}
	}
}
