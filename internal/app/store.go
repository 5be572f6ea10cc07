// Package app holds the in-memory current state and persists every mutation
// through the storage gateway. Transitions themselves are pure and live in
// the state and rollover packages; this wrapper only sequences them with
// saves.
package app

import (
	"time"

	"lifeos/internal/rollover"
	"lifeos/internal/state"
	"lifeos/internal/storage"
)

type Store struct {
	gw  *storage.Gateway
	st  state.AppState
	ui  state.UIState
	now func() time.Time
}

func New(gw *storage.Gateway) *Store {
	return NewWithClock(gw, time.Now)
}

// NewWithClock loads both persisted blobs, reconciles the snapshot against
// the clock, and persists the corrected result.
func NewWithClock(gw *storage.Gateway, now func() time.Time) *Store {
	s := &Store{gw: gw, now: now}
	loaded := gw.LoadAppState(state.Default(now()))
	s.st = rollover.Reconcile(loaded, now())
	if s.st.WeekStartDate != loaded.WeekStartDate || s.st.LastResetDate != loaded.LastResetDate {
		gw.SaveAppState(s.st)
	}
	s.ui = gw.LoadUIState(state.DefaultUIState())
	return s
}

func (s *Store) State() state.AppState { return s.st }

func (s *Store) UIState() state.UIState { return s.ui }

func (s *Store) GeneratePlan(missions []state.Mission) {
	s.apply(state.GeneratePlan(s.st, missions))
}

func (s *Store) StartDay() {
	s.apply(state.StartDay(s.st))
}

// CompleteMission records the completion. The reflection feeling is a prompt
// artifact and is not persisted.
func (s *Store) CompleteMission(missionID, feeling string) {
	_ = feeling
	s.apply(state.CompleteMission(s.st, missionID, s.now()))
}

func (s *Store) SkipMission(missionID string) {
	s.apply(state.SkipMission(s.st, missionID))
}

func (s *Store) FinishDay() {
	s.apply(state.FinishDay(s.st))
}

func (s *Store) ResetDay() {
	s.apply(state.ResetDay(s.st))
}

// SetView records a tab-driven view change without touching anything else.
func (s *Store) SetView(v state.View) {
	st := s.st
	st.CurrentView = v
	s.apply(st)
}

func (s *Store) SetPage(p state.Page) {
	s.ui.CurrentPage = p
	s.gw.SaveUIState(s.ui)
}

func (s *Store) ToggleMomentumBar() {
	s.ui.MomentumBar.Show = !s.ui.MomentumBar.Show
	s.gw.SaveUIState(s.ui)
}

func (s *Store) ToggleWeeklyBox() {
	s.ui.WeeklyBox.Show = !s.ui.WeeklyBox.Show
	s.gw.SaveUIState(s.ui)
}

func (s *Store) SetFocusWindow(index int) {
	s.ui.FocusWindow = index
	s.gw.SaveUIState(s.ui)
}

func (s *Store) apply(next state.AppState) {
	s.st = next
	s.gw.SaveAppState(next)
}
