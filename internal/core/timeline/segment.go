// Package timeline partitions an entity's events into renderable segments.
package timeline

import (
	"sort"

	"github.com/penwyp/timeline-viz/internal/core/model"
	"github.com/penwyp/timeline-viz/internal/util"
)

// Build sorts events ascending by timestamp and partitions them into
// segments: a new segment starts whenever the gap to the previous event
// exceeds thresholdDays. The sort is stable, so events sharing a timestamp
// keep their original column order and always land in the same segment.
func Build(events []model.Event, thresholdDays float64) ([]model.Segment, error) {
	if thresholdDays <= 0 {
		return nil, model.NewConfigErrorf("threshold-days must be positive, got %g", thresholdDays)
	}
	if len(events) == 0 {
		return nil, nil
	}

	sorted := make([]model.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var segments []model.Segment
	current := model.Segment{Events: []model.Event{sorted[0]}}
	for _, ev := range sorted[1:] {
		last := current.Events[len(current.Events)-1]
		if util.DaysBetween(last.Timestamp, ev.Timestamp) > thresholdDays {
			segments = append(segments, current)
			current = model.Segment{}
		}
		current.Events = append(current.Events, ev)
	}
	return append(segments, current), nil
}
