package aggregate

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/and161185/values-journal/internal/model"
)

func rating(v int32) *int32 { return &v }

func entry(owner string, at time.Time) model.Entry {
	return model.Entry{ID: uuid.Must(uuid.NewV4()), Owner: owner, CreatedAt: at, Text: "t"}
}

func TestAggregate_NoEntries(t *testing.T) {
	res := Aggregate(nil, nil, model.WindowAll, time.Now())
	require.Equal(t, StateNoEntries, res.State)
	require.Empty(t, res.Rows)
}

func TestAggregate_NoTaggedValuesInWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// untagged entry in window
	e := entry("demo", now)
	res := Aggregate([]model.Entry{e}, nil, model.WindowDay, now)
	require.Equal(t, StateNoTaggedValues, res.State)

	// tagged entry outside window
	old := entry("demo", now.Add(-48*time.Hour))
	tags := []model.Tag{{EntryID: old.ID, Value: "Health", Rating: rating(80)}}
	res = Aggregate([]model.Entry{old}, tags, model.WindowDay, now)
	require.Equal(t, StateNoTaggedValues, res.State)
}

func TestAggregate_WindowLowerBoundInclusive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	onBoundary := entry("demo", now.Add(-24*time.Hour))
	justOutside := entry("demo", now.Add(-24*time.Hour-time.Second))
	tags := []model.Tag{
		{EntryID: onBoundary.ID, Value: "Health", Rating: rating(80)},
		{EntryID: justOutside.ID, Value: "Wealth", Rating: rating(10)},
	}

	res := Aggregate([]model.Entry{onBoundary, justOutside}, tags, model.WindowDay, now)
	require.Equal(t, StateRanked, res.State)
	require.Equal(t, []model.ValueMean{{Value: "Health", Mean: 80}}, res.Rows)
}

func TestAggregate_FutureEntriesIncluded(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	e := entry("demo", now.Add(time.Hour))
	tags := []model.Tag{{EntryID: e.ID, Value: "Drive", Rating: rating(70)}}

	res := Aggregate([]model.Entry{e}, tags, model.WindowDay, now)
	require.Equal(t, StateRanked, res.State)
	require.Equal(t, float64(70), res.Rows[0].Mean)
}

func TestAggregate_DefaultFillForMissingRating(t *testing.T) {
	now := time.Now().UTC()
	e := entry("demo", now)
	tags := []model.Tag{
		{EntryID: e.ID, Value: "Growth", Rating: nil},
		{EntryID: e.ID, Value: "Growth", Rating: rating(70)},
	}

	res := Aggregate([]model.Entry{e}, tags, model.WindowAll, now)
	require.Equal(t, StateRanked, res.State)
	// (50 + 70) / 2
	require.Equal(t, []model.ValueMean{{Value: "Growth", Mean: 60}}, res.Rows)
}

func TestAggregate_RoundingOneDecimal(t *testing.T) {
	now := time.Now().UTC()
	e := entry("demo", now)
	tags := []model.Tag{
		{EntryID: e.ID, Value: "Wisdom", Rating: rating(1)},
		{EntryID: e.ID, Value: "Wisdom", Rating: rating(2)},
		{EntryID: e.ID, Value: "Wisdom", Rating: rating(2)},
	}

	res := Aggregate([]model.Entry{e}, tags, model.WindowAll, now)
	// 5/3 = 1.666... -> 1.7
	require.Equal(t, 1.7, res.Rows[0].Mean)
}

func TestAggregate_SortAndTieBreakDeterministic(t *testing.T) {
	now := time.Now().UTC()
	e := entry("demo", now)
	tags := []model.Tag{
		{EntryID: e.ID, Value: "Stability", Rating: rating(60)},
		{EntryID: e.ID, Value: "Autonomy", Rating: rating(60)},
		{EntryID: e.ID, Value: "Health", Rating: rating(90)},
	}

	want := []model.ValueMean{
		{Value: "Health", Mean: 90},
		{Value: "Autonomy", Mean: 60},
		{Value: "Stability", Mean: 60},
	}
	for i := 0; i < 5; i++ {
		res := Aggregate([]model.Entry{e}, tags, model.WindowAll, now)
		require.Equal(t, want, res.Rows)
	}
}

func TestAggregate_AllTimeScenario(t *testing.T) {
	// user "demo" adds "felt great" with Health=80, Growth=60 at T;
	// dashboard at T+1s over all time.
	T := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	e := model.Entry{ID: uuid.Must(uuid.NewV4()), Owner: "demo", CreatedAt: T, Text: "felt great"}
	tags := []model.Tag{
		{EntryID: e.ID, Value: "Health", Rating: rating(80)},
		{EntryID: e.ID, Value: "Growth", Rating: rating(60)},
	}

	res := Aggregate([]model.Entry{e}, tags, model.WindowAll, T.Add(time.Second))
	require.Equal(t, StateRanked, res.State)
	require.Equal(t, []model.ValueMean{
		{Value: "Health", Mean: 80},
		{Value: "Growth", Mean: 60},
	}, res.Rows)
}

func TestAggregate_WeekWindowDropsOldEntry(t *testing.T) {
	// two entries 10 days apart; week window anchored at the second one.
	e2 := entry("demo", time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC))
	e1 := entry("demo", e2.CreatedAt.Add(-10*24*time.Hour))
	tags := []model.Tag{
		{EntryID: e1.ID, Value: "Stability", Rating: rating(40)},
		{EntryID: e2.ID, Value: "Stability", Rating: rating(90)},
	}

	res := Aggregate([]model.Entry{e1, e2}, tags, model.WindowWeek, e2.CreatedAt)
	require.Equal(t, StateRanked, res.State)
	require.Equal(t, []model.ValueMean{{Value: "Stability", Mean: 90}}, res.Rows)
}

func TestAggregate_MonthWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	in := entry("demo", now.Add(-29*24*time.Hour))
	out := entry("demo", now.Add(-31*24*time.Hour))
	tags := []model.Tag{
		{EntryID: in.ID, Value: "Family", Rating: rating(55)},
		{EntryID: out.ID, Value: "Family", Rating: rating(5)},
	}

	res := Aggregate([]model.Entry{in, out}, tags, model.WindowMonth, now)
	require.Equal(t, []model.ValueMean{{Value: "Family", Mean: 55}}, res.Rows)
}

func TestAggregate_OneRowPerValue(t *testing.T) {
	now := time.Now().UTC()
	e1 := entry("demo", now)
	e2 := entry("demo", now)
	tags := []model.Tag{
		{EntryID: e1.ID, Value: "Honesty", Rating: rating(30)},
		{EntryID: e2.ID, Value: "Honesty", Rating: rating(50)},
	}

	res := Aggregate([]model.Entry{e1, e2}, tags, model.WindowAll, now)
	require.Len(t, res.Rows, 1)
	require.Equal(t, float64(40), res.Rows[0].Mean)
}
