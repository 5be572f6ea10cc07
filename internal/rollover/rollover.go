// Package rollover derives the next state snapshot across calendar-day and
// calendar-week boundaries. All functions are pure; the caller persists the
// result.
package rollover

import (
	"time"

	"lifeos/internal/state"
)

// NeedsDailyReset reports whether the loaded snapshot belongs to an earlier
// calendar day than now.
func NeedsDailyReset(st state.AppState, now time.Time) bool {
	return st.LastResetDate != state.FormatDate(now)
}

// ApplyDailyReset rolls the snapshot over to a new day: yesterday's completed
// count is written into its momentum slot, the streak advances when at least
// one mission was completed and resets otherwise, and the mission list is
// cleared. A snapshot with no missions is returned unchanged.
func ApplyDailyReset(st state.AppState, now time.Time) state.AppState {
	if len(st.Missions) == 0 {
		return st
	}
	completed := state.CompletedCount(st.Missions)
	yesterday := now.AddDate(0, 0, -1)
	st.Last7Days[state.DayIndex(yesterday)] = completed
	if completed >= 1 {
		st.Streak++
	} else {
		st.Streak = 0
	}
	st.Missions = []state.Mission{}
	st.LastResetDate = state.FormatDate(now)
	st.CurrentView = state.ViewInput
	return st
}

// NeedsWeeklyReset reports whether the snapshot's week anchor is absent or
// belongs to a different Monday-anchored week than now.
func NeedsWeeklyReset(st state.AppState, now time.Time) bool {
	return st.WeekStartDate == "" || st.WeekStartDate != state.WeekStart(now)
}

// ApplyWeeklyReset zeroes the momentum window and re-anchors it at the
// Monday of now's week.
func ApplyWeeklyReset(st state.AppState, now time.Time) state.AppState {
	st.Last7Days = [7]int{}
	st.WeekStartDate = state.WeekStart(now)
	return st
}

// Reconcile corrects a loaded snapshot against now. Weekly reset runs first:
// the daily reset writes into a day-indexed slot, and running it before the
// zeroing would lose yesterday's count.
func Reconcile(st state.AppState, now time.Time) state.AppState {
	if NeedsWeeklyReset(st, now) {
		st = ApplyWeeklyReset(st, now)
	}
	if NeedsDailyReset(st, now) {
		st = ApplyDailyReset(st, now)
	}
	return st
}
