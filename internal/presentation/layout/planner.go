// Package layout turns segments into drawable positions along a unit axis.
package layout

import (
	"github.com/penwyp/timeline-viz/internal/core/model"
)

// Side is the vertical placement of an event's label.
type Side int

const (
	SideAbove Side = iota
	SideBelow
)

func (s Side) String() string {
	if s == SideBelow {
		return "below"
	}
	return "above"
}

// Entry is the planned position for one event. X is normalized to [0,1]
// across the full axis.
type Entry struct {
	Event model.Event
	X     float64
	Side  Side
}

// Slot is the horizontal extent of one segment on the axis.
type Slot struct {
	Start float64
	End   float64
}

// Plan is the full drawing plan for one entity.
type Plan struct {
	Entries []Entry
	Slots   []Slot
	Breaks  []float64 // x of each segment-break marker
}

const (
	// slotGap is the visual gap between adjacent segment slots, as a
	// fraction of the axis width.
	slotGap = 0.05
	// slotPad keeps events away from slot edges so points never touch the
	// break markers.
	slotPad = 0.08
)

// NewPlan lays out segments left to right. Every segment gets an equal-width
// slot; events are placed proportionally to their time offset within the
// segment, and a single event is centered in its slot. Label sides alternate
// globally in event order, starting above, so labels avoid their neighbors
// even across a segment break.
func NewPlan(segments []model.Segment) *Plan {
	plan := &Plan{}
	n := len(segments)
	if n == 0 {
		return plan
	}

	slotWidth := (1.0 - slotGap*float64(n-1)) / float64(n)
	side := SideAbove

	for i, seg := range segments {
		slotStart := float64(i) * (slotWidth + slotGap)
		plan.Slots = append(plan.Slots, Slot{Start: slotStart, End: slotStart + slotWidth})

		span := seg.End().Sub(seg.Start())
		for _, ev := range seg.Events {
			rel := 0.5
			if len(seg.Events) > 1 && span > 0 {
				rel = ev.Timestamp.Sub(seg.Start()).Seconds() / span.Seconds()
			}
			x := slotStart + (slotPad+rel*(1-2*slotPad))*slotWidth
			plan.Entries = append(plan.Entries, Entry{Event: ev, X: x, Side: side})

			if side == SideAbove {
				side = SideBelow
			} else {
				side = SideAbove
			}
		}

		if i < n-1 {
			plan.Breaks = append(plan.Breaks, slotStart+slotWidth+slotGap/2)
		}
	}
	return plan
}
