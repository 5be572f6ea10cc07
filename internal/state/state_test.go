package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayIndex_MondayFirst(t *testing.T) {
	// 2024-06-03 is a Monday.
	monday := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		assert.Equal(t, i, DayIndex(day), "day %s", day.Weekday())
	}
}

func TestWeekStart_StableAcrossWeek(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		assert.Equal(t, "2024-06-03", WeekStart(day), "day %s", day.Weekday())
	}
}

func TestWeekStart_SundayMapsBack(t *testing.T) {
	// Sunday belongs to the Monday six days earlier, not the next Monday.
	sunday := time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-03", WeekStart(sunday))

	nextMonday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-10", WeekStart(nextMonday))
}

func TestDefault_FullySpecified(t *testing.T) {
	now := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)
	st := Default(now)

	assert.NotNil(t, st.Missions)
	assert.Empty(t, st.Missions)
	assert.Equal(t, 0, st.XP)
	assert.Equal(t, 0, st.Streak)
	assert.Equal(t, [7]int{}, st.Last7Days)
	assert.Equal(t, ViewInput, st.CurrentView)
	assert.Equal(t, "2024-06-05", st.LastResetDate)
	assert.Empty(t, st.WeekStartDate, "empty anchor forces a weekly reset on first reconcile")
}

func TestNewMission(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		m := NewMission("Write draft", TagFocus, "ship it")
		require.NotEmpty(t, m.ID)
		assert.False(t, seen[m.ID], "ids must be unique")
		seen[m.ID] = true
		assert.GreaterOrEqual(t, m.Duration, 15)
		assert.LessOrEqual(t, m.Duration, 25)
		assert.False(t, m.Completed)
		assert.Nil(t, m.CompletedAt)
	}
}

func TestIncomplete_CapsAtThree(t *testing.T) {
	missions := []Mission{
		{ID: "m1", Completed: true},
		{ID: "m2"},
		{ID: "m3"},
		{ID: "m4"},
		{ID: "m5"},
	}
	got := Incomplete(missions)
	require.Len(t, got, 3)
	assert.Equal(t, "m2", got[0].ID)
	assert.Equal(t, "m4", got[2].ID)
}

func TestIncomplete_Empty(t *testing.T) {
	assert.Empty(t, Incomplete(nil))
	assert.Empty(t, Incomplete([]Mission{{ID: "m1", Completed: true}}))
}

func TestLevel_Thresholds(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 0},
		{49, 0},
		{50, 1},
		{149, 1},
		{150, 2},
		{299, 2},
		{300, 3},
		{499, 3},
		{500, 4},
		{10000, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, Level(tc.xp), "xp=%d", tc.xp)
	}
}

func TestLevelName_Clamps(t *testing.T) {
	assert.Equal(t, "Focus Explorer", LevelName(0))
	assert.Equal(t, "Focus Master", LevelName(4))
	assert.Equal(t, "Focus Master", LevelName(99))
	assert.Equal(t, "Focus Explorer", LevelName(-1))
}
