package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/timeline-viz/internal/core/model"
	"github.com/penwyp/timeline-viz/internal/util"
)

func event(column string, ts string) model.Event {
	t, err := time.Parse("2006-01-02", ts)
	if err != nil {
		t, err = time.Parse("2006-01-02 15:04:05", ts)
		if err != nil {
			panic(err)
		}
	}
	return model.Event{Label: column, Column: column, Timestamp: t}
}

func TestBuildRejectsInvalidThreshold(t *testing.T) {
	for _, threshold := range []float64{0, -1, -0.5} {
		_, err := Build([]model.Event{event("a", "2024-01-01")}, threshold)
		require.Error(t, err)
		var cfgErr *model.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	segments, err := Build(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestBuildSingleEvent(t *testing.T) {
	segments, err := Build([]model.Event{event("created_at", "2024-01-01")}, 1)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Len(t, segments[0].Events, 1)
}

func TestBuildSplitsOnLargeGap(t *testing.T) {
	events := []model.Event{
		event("created_at", "2024-01-01"),
		event("shipped_at", "2024-01-03"),
		event("delivered_at", "2024-03-01"),
	}

	segments, err := Build(events, 14)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, []string{"created_at", "shipped_at"}, columns(segments[0]))
	assert.Equal(t, []string{"delivered_at"}, columns(segments[1]))
}

func TestBuildSortsBeforeSegmenting(t *testing.T) {
	events := []model.Event{
		event("delivered_at", "2024-03-01"),
		event("created_at", "2024-01-01"),
		event("shipped_at", "2024-01-03"),
	}

	segments, err := Build(events, 14)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, []string{"created_at", "shipped_at"}, columns(segments[0]))
}

func TestBuildSingleSegmentWhenGapsSmall(t *testing.T) {
	events := []model.Event{
		event("a", "2024-01-01"),
		event("b", "2024-01-02"),
		event("c", "2024-01-03"),
	}

	segments, err := Build(events, 30)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Len(t, segments[0].Events, 3)
}

func TestBuildKeepsEqualTimestampsTogether(t *testing.T) {
	events := []model.Event{
		event("a", "2024-01-01 10:00:00"),
		event("b", "2024-01-01 10:00:00"),
		event("c", "2024-01-01 10:00:00"),
	}

	segments, err := Build(events, 0.001)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	// Stable sort preserves the original column order on ties.
	assert.Equal(t, []string{"a", "b", "c"}, columns(segments[0]))
}

func TestBuildPartitionInvariants(t *testing.T) {
	events := []model.Event{
		event("a", "2024-01-01"),
		event("b", "2024-01-02"),
		event("c", "2024-01-20"),
		event("d", "2024-01-21"),
		event("e", "2024-06-01"),
	}
	const threshold = 5.0

	segments, err := Build(events, threshold)
	require.NoError(t, err)

	// No events lost or duplicated.
	total := 0
	for _, seg := range segments {
		total += len(seg.Events)
	}
	assert.Equal(t, len(events), total)

	// Gaps within a segment stay at or below the threshold; gaps across
	// boundaries exceed it.
	for i, seg := range segments {
		for j := 1; j < len(seg.Events); j++ {
			gap := util.DaysBetween(seg.Events[j-1].Timestamp, seg.Events[j].Timestamp)
			assert.LessOrEqual(t, gap, threshold)
		}
		if i > 0 {
			gap := util.DaysBetween(segments[i-1].End(), seg.Start())
			assert.Greater(t, gap, threshold)
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	events := []model.Event{
		event("a", "2024-01-01"),
		event("b", "2024-01-02"),
		event("c", "2024-02-01"),
		event("d", "2024-02-02"),
	}

	first, err := Build(events, 7)
	require.NoError(t, err)

	var flattened []model.Event
	for _, seg := range first {
		flattened = append(flattened, seg.Events...)
	}

	second, err := Build(flattened, 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func columns(seg model.Segment) []string {
	out := make([]string, 0, len(seg.Events))
	for _, ev := range seg.Events {
		out = append(out, ev.Column)
	}
	return out
}
