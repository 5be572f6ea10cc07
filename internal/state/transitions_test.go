package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planState() AppState {
	return AppState{
		Missions: []Mission{
			{ID: "m1", Title: "Write draft", Tag: TagFocus, Duration: 20},
			{ID: "m2", Title: "Stretch", Tag: TagHealth, Duration: 15},
			{ID: "m3", Title: "Pay bills", Tag: TagAdmin, Duration: 18},
		},
		XP:            40,
		Streak:        2,
		CurrentView:   ViewFocus,
		LastResetDate: "2024-06-05",
		WeekStartDate: "2024-06-03",
	}
}

func TestGeneratePlan(t *testing.T) {
	st := Default(time.Date(2024, 6, 5, 8, 0, 0, 0, time.UTC))
	missions := []Mission{{ID: "m1", Title: "Write draft", Tag: TagFocus, Duration: 20}}

	got := GeneratePlan(st, missions)
	assert.Equal(t, missions, got.Missions)
	assert.Equal(t, ViewPlan, got.CurrentView)
}

func TestStartDay(t *testing.T) {
	got := StartDay(planState())
	assert.Equal(t, ViewFocus, got.CurrentView)
}

func TestCompleteMission(t *testing.T) {
	// 2024-06-05 is a Wednesday, day index 2.
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	st := planState()

	got := CompleteMission(st, "m1", now)

	require.True(t, got.Missions[0].Completed)
	require.NotNil(t, got.Missions[0].CompletedAt)
	assert.Equal(t, now, *got.Missions[0].CompletedAt)
	assert.Equal(t, 50, got.XP)
	assert.Equal(t, 1, got.Last7Days[2], "today's slot recounts in real time")

	got = CompleteMission(got, "m2", now)
	assert.Equal(t, 2, got.Last7Days[2])
	assert.Equal(t, 60, got.XP)
}

func TestCompleteMission_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	st := planState()

	_ = CompleteMission(st, "m1", now)
	assert.False(t, st.Missions[0].Completed)
	assert.Equal(t, 40, st.XP)
}

func TestCompleteMission_UnknownID(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	st := planState()

	got := CompleteMission(st, "nope", now)

	for i := range got.Missions {
		assert.False(t, got.Missions[i].Completed)
	}
	assert.Equal(t, 50, got.XP, "the award applies even without a match")
	assert.Equal(t, 0, got.Last7Days[2])
}

func TestSkipMission(t *testing.T) {
	st := planState()
	at := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)
	st.Missions[1].Completed = true
	st.Missions[1].CompletedAt = &at

	got := SkipMission(st, "m2")

	assert.False(t, got.Missions[1].Completed, "skip sets completed false even when it was true")
	assert.Equal(t, 42, got.XP)
}

func TestSkipMission_UnknownID(t *testing.T) {
	st := planState()
	got := SkipMission(st, "nope")
	assert.Equal(t, st.Missions, got.Missions)
	assert.Equal(t, 42, got.XP)
}

func TestFinishDay_ViewTransitionOnly(t *testing.T) {
	st := planState()
	st.Missions[0].Completed = true

	got := FinishDay(st)

	assert.Equal(t, ViewDashboard, got.CurrentView)
	assert.Equal(t, st.Streak, got.Streak, "streak only moves on daily rollover")
	assert.Equal(t, st.Missions, got.Missions)
	assert.Equal(t, st.Last7Days, got.Last7Days)
}

func TestResetDay(t *testing.T) {
	st := planState()
	got := ResetDay(st)

	assert.NotNil(t, got.Missions)
	assert.Empty(t, got.Missions)
	assert.Equal(t, ViewInput, got.CurrentView)
	assert.Equal(t, st.XP, got.XP)
	assert.Equal(t, st.Streak, got.Streak)
}
