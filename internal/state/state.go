package state

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Tag classifies a mission by life domain.
type Tag string

const (
	TagFocus         Tag = "Focus"
	TagHealth        Tag = "Health"
	TagMoney         Tag = "Money"
	TagAdmin         Tag = "Admin"
	TagRelationships Tag = "Relationships"
)

func Tags() []Tag {
	return []Tag{TagFocus, TagHealth, TagMoney, TagAdmin, TagRelationships}
}

// View identifies which screen renders the current state.
type View string

const (
	ViewInput     View = "input"
	ViewPlan      View = "plan"
	ViewFocus     View = "focus"
	ViewDashboard View = "dashboard"
)

// Page identifies a tab in the persisted UI preferences. Unlike View it has
// no input page; the plan tab falls back to input when no missions exist.
type Page string

const (
	PagePlan      Page = "plan"
	PageFocus     Page = "focus"
	PageDashboard Page = "dashboard"
)

type Mission struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Tag         Tag        `json:"tag"`
	Duration    int        `json:"duration"` // minutes
	Why         string     `json:"why,omitempty"`
	Completed   bool       `json:"completed,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// AppState is the persisted root object under the "lifeOS" key.
// Last7Days holds completed-mission counts indexed Monday=0..Sunday=6 for the
// week anchored at WeekStartDate.
type AppState struct {
	Missions      []Mission `json:"missions"`
	XP            int       `json:"xp"`
	Streak        int       `json:"streak"`
	Last7Days     [7]int    `json:"last7Days"`
	CurrentView   View      `json:"currentView"`
	LastResetDate string    `json:"lastResetDate"`
	WeekStartDate string    `json:"weekStartDate"`
}

// UIState is the persisted root object under the "lifeOUIState" key.
type UIState struct {
	CurrentPage Page        `json:"currentPage"`
	MomentumBar PanelToggle `json:"momentumBar"`
	WeeklyBox   PanelToggle `json:"weeklyBox"`
	FocusWindow int         `json:"focusWindow"`
}

type PanelToggle struct {
	Show bool `json:"show"`
}

// Default returns the fully-specified first-run snapshot. WeekStartDate is
// left empty so the first reconcile performs a weekly reset and anchors it.
func Default(now time.Time) AppState {
	return AppState{
		Missions:      []Mission{},
		CurrentView:   ViewInput,
		LastResetDate: FormatDate(now),
	}
}

func DefaultUIState() UIState {
	return UIState{
		CurrentPage: PageDashboard,
		MomentumBar: PanelToggle{Show: true},
		WeeklyBox:   PanelToggle{Show: true},
	}
}

const (
	minMissionDuration = 15
	maxMissionDuration = 25
	maxMissionsPerDay  = 3
)

// NewMission builds a mission draft with a fresh id and a randomly assigned
// focus duration between 15 and 25 minutes.
func NewMission(title string, tag Tag, why string) Mission {
	return Mission{
		ID:       uuid.NewString(),
		Title:    title,
		Tag:      tag,
		Why:      why,
		Duration: minMissionDuration + rand.Intn(maxMissionDuration-minMissionDuration+1),
	}
}

// MaxMissions is the per-day mission cap.
func MaxMissions() int { return maxMissionsPerDay }

// Incomplete returns the missions not yet completed, capped at the per-day
// mission limit. Used by the import-from-yesterday flow.
func Incomplete(missions []Mission) []Mission {
	out := make([]Mission, 0, maxMissionsPerDay)
	for _, m := range missions {
		if m.Completed {
			continue
		}
		out = append(out, m)
		if len(out) == maxMissionsPerDay {
			break
		}
	}
	return out
}

func CompletedCount(missions []Mission) int {
	n := 0
	for _, m := range missions {
		if m.Completed {
			n++
		}
	}
	return n
}
