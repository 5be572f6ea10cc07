package state

import "time"

// Pure state transitions. Each returns a new snapshot derived from the
// previous one; persistence is the caller's concern.

const (
	completeXP = 10
	skipXP     = 2
)

// GeneratePlan replaces the mission list and moves to the plan view.
func GeneratePlan(st AppState, missions []Mission) AppState {
	st.Missions = missions
	st.CurrentView = ViewPlan
	return st
}

// StartDay moves to the focus view.
func StartDay(st AppState) AppState {
	st.CurrentView = ViewFocus
	return st
}

// CompleteMission marks the identified mission completed with a timestamp,
// awards XP, and recomputes today's momentum slot from the new completed
// count. An unknown id changes no mission; the XP award still applies.
func CompleteMission(st AppState, missionID string, now time.Time) AppState {
	missions := make([]Mission, len(st.Missions))
	copy(missions, st.Missions)
	for i := range missions {
		if missions[i].ID != missionID {
			continue
		}
		missions[i].Completed = true
		at := now
		missions[i].CompletedAt = &at
	}
	st.Missions = missions
	st.XP += completeXP
	st.Last7Days[DayIndex(now)] = CompletedCount(missions)
	return st
}

// SkipMission marks the identified mission explicitly not completed and
// awards a small XP reward: skipping is a deliberate choice, not a no-op.
func SkipMission(st AppState, missionID string) AppState {
	missions := make([]Mission, len(st.Missions))
	copy(missions, st.Missions)
	for i := range missions {
		if missions[i].ID == missionID {
			missions[i].Completed = false
		}
	}
	st.Missions = missions
	st.XP += skipXP
	return st
}

// FinishDay moves to the dashboard. The streak is left alone: the daily
// rollover is the single authoritative increment point.
func FinishDay(st AppState) AppState {
	st.CurrentView = ViewDashboard
	return st
}

// ResetDay clears the mission list and returns to the input view. Streak and
// XP are untouched.
func ResetDay(st AppState) AppState {
	st.Missions = []Mission{}
	st.CurrentView = ViewInput
	return st
}
