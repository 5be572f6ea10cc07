package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeos/internal/state"
	"lifeos/internal/storage"
)

// 2024-06-05 is a Wednesday.
var wednesday = time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

func testGateway(t *testing.T) *storage.Gateway {
	t.Helper()
	secondary, err := storage.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	return storage.NewGateway(nil, secondary)
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestNew_FirstRun(t *testing.T) {
	s := NewWithClock(testGateway(t), fixedClock(wednesday))

	st := s.State()
	assert.Empty(t, st.Missions)
	assert.Equal(t, "2024-06-05", st.LastResetDate)
	assert.Equal(t, "2024-06-03", st.WeekStartDate, "first reconcile anchors the week")
	assert.Equal(t, state.ViewInput, st.CurrentView)
	assert.Equal(t, state.DefaultUIState(), s.UIState())
}

func TestMutationsPersist(t *testing.T) {
	gw := testGateway(t)
	s := NewWithClock(gw, fixedClock(wednesday))

	missions := []state.Mission{
		state.NewMission("Write draft", state.TagFocus, "ship it"),
		state.NewMission("Stretch", state.TagHealth, ""),
	}
	s.GeneratePlan(missions)
	s.StartDay()
	s.CompleteMission(missions[0].ID, "good")

	st := s.State()
	assert.True(t, st.Missions[0].Completed)
	assert.Equal(t, 10, st.XP)
	assert.Equal(t, 1, st.Last7Days[2])

	// A second store over the same gateway sees the persisted snapshot.
	reloaded := NewWithClock(gw, fixedClock(wednesday))
	assert.Equal(t, st, reloaded.State())
}

func TestSkipAndFinishDay(t *testing.T) {
	s := NewWithClock(testGateway(t), fixedClock(wednesday))
	missions := []state.Mission{state.NewMission("Pay bills", state.TagAdmin, "")}
	s.GeneratePlan(missions)

	s.SkipMission(missions[0].ID)
	assert.Equal(t, 2, s.State().XP)
	assert.False(t, s.State().Missions[0].Completed)

	streak := s.State().Streak
	s.FinishDay()
	assert.Equal(t, state.ViewDashboard, s.State().CurrentView)
	assert.Equal(t, streak, s.State().Streak)
}

func TestResetDay(t *testing.T) {
	s := NewWithClock(testGateway(t), fixedClock(wednesday))
	s.GeneratePlan([]state.Mission{state.NewMission("Write draft", state.TagFocus, "")})

	s.ResetDay()
	assert.Empty(t, s.State().Missions)
	assert.Equal(t, state.ViewInput, s.State().CurrentView)
}

func TestRolloverOnLoad(t *testing.T) {
	gw := testGateway(t)

	tuesday := time.Date(2024, 6, 4, 20, 0, 0, 0, time.UTC)
	s := NewWithClock(gw, fixedClock(tuesday))
	missions := []state.Mission{
		state.NewMission("Write draft", state.TagFocus, ""),
		state.NewMission("Stretch", state.TagHealth, ""),
	}
	s.GeneratePlan(missions)
	s.CompleteMission(missions[0].ID, "")
	require.Equal(t, 1, s.State().Last7Days[1])

	// Next launch, one day later: the day rolls over.
	next := NewWithClock(gw, fixedClock(wednesday))
	st := next.State()
	assert.Empty(t, st.Missions)
	assert.Equal(t, 1, st.Streak)
	assert.Equal(t, 1, st.Last7Days[1], "Tuesday's count survives the rollover")
	assert.Equal(t, "2024-06-05", st.LastResetDate)
	assert.Equal(t, state.ViewInput, st.CurrentView)
	assert.Equal(t, 10, st.XP)

	// And the corrected snapshot was persisted immediately.
	again := NewWithClock(gw, fixedClock(wednesday))
	assert.Equal(t, st, again.State())
}

func TestUIPreferencesPersist(t *testing.T) {
	gw := testGateway(t)
	s := NewWithClock(gw, fixedClock(wednesday))

	s.SetPage(state.PageFocus)
	s.ToggleMomentumBar()
	s.SetFocusWindow(2)

	reloaded := NewWithClock(gw, fixedClock(wednesday))
	ui := reloaded.UIState()
	assert.Equal(t, state.PageFocus, ui.CurrentPage)
	assert.False(t, ui.MomentumBar.Show)
	assert.True(t, ui.WeeklyBox.Show)
	assert.Equal(t, 2, ui.FocusWindow)
}

func TestSetView(t *testing.T) {
	s := NewWithClock(testGateway(t), fixedClock(wednesday))
	s.SetView(state.ViewDashboard)
	assert.Equal(t, state.ViewDashboard, s.State().CurrentView)
}
