package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	day := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Wed, WeekdayOf(day))
	assert.Equal(t, Sun, WeekdayOf(day.AddDate(0, 0, 4)))

	d, ok := ParseWeekday("Fri")
	assert.True(t, ok)
	assert.Equal(t, Fri, d)
	_, ok = ParseWeekday("Friday")
	assert.False(t, ok)
}

func TestTeamScheduleCollapsesDuplicates(t *testing.T) {
	ts := TeamSchedule{}
	ts.Add("PIT", Sat)
	ts.Add("PIT", Mon)
	ts.Add("PIT", Sat)

	assert.Equal(t, []Weekday{Mon, Sat}, ts.Days("PIT"))
	assert.Equal(t, 2, ts.Games("PIT"))
	assert.True(t, ts.Plays("PIT", Mon))
	assert.False(t, ts.Plays("PIT", Tue))
	assert.False(t, ts.Plays("NYR", Mon))
	assert.Empty(t, ts.Days("NYR"))
	assert.Equal(t, 1, ts.TeamsOn(Sat))
}

func TestDayCountsAlwaysSevenDays(t *testing.T) {
	counts := TeamSchedule{}.DayCounts()
	require.Len(t, counts, 7)
	for i, c := range counts {
		assert.Equal(t, Weekdays[i], c.Day)
		assert.Zero(t, c.Teams)
	}
}

// scheduleWith puts n synthetic teams on each listed day.
func scheduleWith(perDay map[Weekday]int) TeamSchedule {
	ts := TeamSchedule{}
	for day, n := range perDay {
		for i := 0; i < n; i++ {
			ts.Add(fmt.Sprintf("T%02d", i), day)
		}
	}
	return ts
}

func TestComputeWeights(t *testing.T) {
	ts := scheduleWith(map[Weekday]int{Sat: 20, Tue: 4})

	w, err := ComputeWeights(ts)
	require.NoError(t, err)
	require.Len(t, w, 7)

	assert.Equal(t, 0.1, w[Sat])
	assert.Equal(t, 1.0, w[Tue])
	assert.Equal(t, 0.0, w[Sun])
	assert.Equal(t, 0.0, w[Mon])
}

func TestComputeWeightsThresholdBoundary(t *testing.T) {
	w, err := ComputeWeights(scheduleWith(map[Weekday]int{Mon: 16, Tue: 17, Wed: 1}))
	require.NoError(t, err)
	assert.Equal(t, OffNightWeight, w[Mon])
	assert.Equal(t, BusyNightWeight, w[Tue])
	assert.Equal(t, OffNightWeight, w[Wed])
}

func TestWeightsForEmptyScheduleUsesStaticTable(t *testing.T) {
	got := WeightsFor(TeamSchedule{})
	assert.True(t, got.Fallback)
	assert.Equal(t, StaticWeights(), got.Table)
	require.NoError(t, got.Table.Validate())
	assert.InDelta(t, 3.7, got.Table.Sum(), 1e-9)
}

func TestWeightsInvariants(t *testing.T) {
	cases := []TeamSchedule{
		{},
		scheduleWith(map[Weekday]int{Sat: 20, Tue: 4}),
		scheduleWith(map[Weekday]int{Mon: 32, Tue: 32, Wed: 32, Thu: 32, Fri: 32, Sat: 32, Sun: 32}),
		scheduleWith(map[Weekday]int{Mon: 2, Tue: 2, Wed: 2, Thu: 2, Fri: 2, Sat: 2, Sun: 2}),
	}
	for i, ts := range cases {
		w := WeightsFor(ts)
		require.Len(t, w.Table, 7, "case %d", i)
		sum := w.Table.Sum()
		assert.GreaterOrEqual(t, sum, 0.0, "case %d", i)
		assert.LessOrEqual(t, sum, 7.0, "case %d", i)
	}
}

func TestValidate(t *testing.T) {
	w := StaticWeights()
	delete(w, Sun)
	assert.Error(t, w.Validate())

	w = StaticWeights()
	w[Mon] = 1.5
	assert.Error(t, w.Validate())
}

func TestRows(t *testing.T) {
	ts := scheduleWith(map[Weekday]int{Sat: 20, Tue: 4})

	rows := WeightsFor(ts).Rows(ts)
	require.Len(t, rows, 7)
	assert.Equal(t, DayWeight{Day: Tue, Teams: 4, Weight: 1.0, Class: ClassOff}, rows[1])
	assert.Equal(t, DayWeight{Day: Sat, Teams: 20, Weight: 0.1, Class: ClassBusy}, rows[5])
	assert.Equal(t, ClassNoGames, rows[6].Class)

	static := WeightsFor(TeamSchedule{}).Rows(TeamSchedule{})
	assert.Equal(t, DayWeight{Day: Mon, Weight: 1.0}, static[0])
}
