// Package aggregate computes windowed per-value rating means for the dashboard.
package aggregate

import (
	"math"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/values-journal/internal/model"
)

// DefaultRating is substituted for tags whose rating is missing, so that
// tagged values never silently drop out of the mean.
const DefaultRating = 50

// State describes the dashboard outcome. The two empty states are distinct
// and neither carries rows; the renderer must not collapse them.
type State int

const (
	// StateNoEntries means the user has no entries at all.
	StateNoEntries State = iota
	// StateNoTaggedValues means entries exist in the window but none carry tags.
	StateNoTaggedValues
	// StateRanked means Rows holds the ranked per-value means.
	StateRanked
)

// Result is the aggregation outcome handed to the dashboard renderer.
type Result struct {
	State State
	Rows  []model.ValueMean
}

// Aggregate filters entries to the window, fills missing ratings with
// DefaultRating, and returns per-value means rounded to one decimal place
// (half away from zero), sorted by mean descending with ties broken by
// value name ascending.
//
// The window's lower bound is inclusive and there is no upper bound, so
// future-dated entries are always included.
func Aggregate(entries []model.Entry, tags []model.Tag, w model.Window, now time.Time) Result {
	if len(entries) == 0 {
		return Result{State: StateNoEntries}
	}

	lower := lowerBound(entries, w, now)

	inWindow := make(map[uuid.UUID]bool, len(entries))
	for i := range entries {
		if !entries[i].CreatedAt.Before(lower) {
			inWindow[entries[i].ID] = true
		}
	}

	sums := make(map[string]int64)
	counts := make(map[string]int64)
	for i := range tags {
		if !inWindow[tags[i].EntryID] {
			continue
		}
		rating := int64(DefaultRating)
		if tags[i].Rating != nil {
			rating = int64(*tags[i].Rating)
		}
		sums[tags[i].Value] += rating
		counts[tags[i].Value]++
	}
	if len(counts) == 0 {
		return Result{State: StateNoTaggedValues}
	}

	rows := make([]model.ValueMean, 0, len(counts))
	for value, n := range counts {
		mean := math.Round(float64(sums[value])/float64(n)*10) / 10
		rows = append(rows, model.ValueMean{Value: value, Mean: mean})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Mean != rows[j].Mean {
			return rows[i].Mean > rows[j].Mean
		}
		return rows[i].Value < rows[j].Value
	})
	return Result{State: StateRanked, Rows: rows}
}

func lowerBound(entries []model.Entry, w model.Window, now time.Time) time.Time {
	switch w {
	case model.WindowDay:
		return now.Add(-24 * time.Hour)
	case model.WindowWeek:
		return now.Add(-7 * 24 * time.Hour)
	case model.WindowMonth:
		return now.Add(-30 * 24 * time.Hour)
	default:
		min := entries[0].CreatedAt
		for i := 1; i < len(entries); i++ {
			if entries[i].CreatedAt.Before(min) {
				min = entries[i].CreatedAt
			}
		}
		return min
	}
}
