package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lifeos/internal/app"
	"lifeos/internal/config"
	"lifeos/internal/state"
)

type stage int

const (
	stageBrowse stage = iota
	stageTitle
	stageTag
	stageWhy
)

type draft struct {
	title string
	tag   state.Tag
	why   string
}

type Model struct {
	store  *app.Store
	cfg    config.Config
	input  textinput.Model
	status string

	// input screen
	drafts       []draft
	stage        stage
	tagIdx       int
	pendingTitle string

	// focus screen
	focusIdx   int
	remaining  int // seconds
	running    bool
	timerGen   int
	reflecting bool
}

func Run(store *app.Store, cfg config.Config) error {
	ti := textinput.New()
	ti.Placeholder = "Mission title"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:  store,
		cfg:    cfg,
		input:  ti,
		status: "Three missions a day. That's it.",
	}
	m = m.enterFocus()

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

type tickMsg struct {
	gen int
}

func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// A tick from a superseded timer carries a stale generation; drop it.
		if msg.gen != m.timerGen || !m.running {
			return m, nil
		}
		if m.remaining > 0 {
			m.remaining--
		}
		if m.remaining == 0 {
			m.running = false
			m.status = "Time's up. Complete or skip the mission."
			return m, nil
		}
		return m, tick(m.timerGen)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.store.State().CurrentView {
	case state.ViewInput:
		return m.updateInput(key, msg)
	case state.ViewPlan:
		return m.updatePlan(key)
	case state.ViewFocus:
		return m.updateFocus(key)
	case state.ViewDashboard:
		return m.updateDashboard(key)
	}
	return m, nil
}

func (m Model) updateInput(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageTitle:
		return m.updateTitleStage(key, msg)
	case stageTag:
		return m.updateTagStage(key)
	case stageWhy:
		return m.updateWhyStage(key, msg)
	}

	switch key {
	case m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.NextTab:
		return m.nextTab()
	case m.cfg.Keys.Add:
		if len(m.drafts) >= state.MaxMissions() {
			m.status = fmt.Sprintf("%d missions is the cap", state.MaxMissions())
			return m, nil
		}
		m.stage = stageTitle
		m.input.Placeholder = "Mission title"
		m.input.SetValue("")
		m.input.Focus()
		m.status = fmt.Sprintf("Mission %d: type a title and press enter", len(m.drafts)+1)
		return m, nil
	case m.cfg.Keys.Import:
		return m.importFromYesterday()
	case m.cfg.Keys.Remove:
		if len(m.drafts) == 0 {
			m.status = "No missions to remove"
			return m, nil
		}
		m.drafts = m.drafts[:len(m.drafts)-1]
		m.status = "Removed last mission"
		return m, nil
	case m.cfg.Keys.Confirm:
		if len(m.drafts) == 0 {
			m.status = fmt.Sprintf("Press %s to add a mission first", m.cfg.Keys.Add)
			return m, nil
		}
		return m.generatePlan()
	}
	return m, nil
}

func (m Model) updateTitleStage(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.stage = stageBrowse
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.pendingTitle = title
		m.input.SetValue("")
		m.input.Blur()
		m.stage = stageTag
		m.tagIdx = 0
		m.status = "Pick a tag: h/l to move, enter to select"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateTagStage(key string) (tea.Model, tea.Cmd) {
	tags := state.Tags()
	switch key {
	case m.cfg.Keys.Cancel:
		m.stage = stageTitle
		m.input.SetValue(m.pendingTitle)
		m.pendingTitle = ""
		m.input.Focus()
		m.status = "Back to title"
	case "h", "left":
		m.tagIdx = wrapIndex(m.tagIdx-1, len(tags))
	case "l", "right":
		m.tagIdx = wrapIndex(m.tagIdx+1, len(tags))
	case m.cfg.Keys.Confirm:
		m.stage = stageWhy
		m.input.Placeholder = "Why? (optional)"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Why does this matter? Enter to add, esc to skip"
	}
	return m, nil
}

func (m Model) updateWhyStage(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		return m.finishDraft(""), nil
	case m.cfg.Keys.Confirm:
		return m.finishDraft(m.input.Value()), nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) finishDraft(why string) Model {
	m.drafts = append(m.drafts, draft{
		title: m.pendingTitle,
		tag:   state.Tags()[m.tagIdx],
		why:   strings.TrimSpace(why),
	})
	m.pendingTitle = ""
	m.stage = stageBrowse
	m.input.SetValue("")
	m.input.Blur()
	if len(m.drafts) >= state.MaxMissions() {
		m.status = fmt.Sprintf("Mission %d of %d added. Press %s to generate the plan.",
			len(m.drafts), state.MaxMissions(), m.cfg.Keys.Confirm)
	} else {
		m.status = fmt.Sprintf("Mission %d added. %s for another, %s to generate.",
			len(m.drafts), m.cfg.Keys.Add, m.cfg.Keys.Confirm)
	}
	return m
}

func (m Model) importFromYesterday() (tea.Model, tea.Cmd) {
	prev := state.Incomplete(m.store.State().Missions)
	if len(prev) == 0 {
		m.status = "Nothing to import from yesterday"
		return m, nil
	}
	m.drafts = m.drafts[:0]
	for _, p := range prev {
		m.drafts = append(m.drafts, draft{title: p.Title, tag: p.Tag, why: p.Why})
	}
	m.status = fmt.Sprintf("Imported %d from yesterday", len(m.drafts))
	return m, nil
}

func (m Model) generatePlan() (tea.Model, tea.Cmd) {
	missions := make([]state.Mission, 0, len(m.drafts))
	for _, d := range m.drafts {
		missions = append(missions, state.NewMission(d.title, d.tag, d.why))
	}
	m.store.GeneratePlan(missions)
	m.store.SetPage(state.PagePlan)
	m.drafts = nil
	m.stage = stageBrowse
	m.input.Blur()
	m.status = fmt.Sprintf("Plan ready: %d missions. Press %s to start the day.",
		len(missions), m.cfg.Keys.Start)
	return m, nil
}

func (m Model) updatePlan(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Start, m.cfg.Keys.Confirm:
		m.store.StartDay()
		m.store.SetPage(state.PageFocus)
		m = m.enterFocus()
		m.status = fmt.Sprintf("Press %q to start the timer", m.cfg.Keys.Timer)
		return m, nil
	case m.cfg.Keys.NextTab:
		return m.nextTab()
	}
	return m, nil
}

func (m Model) updateFocus(key string) (tea.Model, tea.Cmd) {
	missions := m.store.State().Missions

	if m.reflecting {
		switch key {
		case "1":
			return m.completeCurrent("good")
		case "2":
			return m.completeCurrent("neutral")
		case "3":
			return m.completeCurrent("bad")
		case m.cfg.Keys.Cancel:
			return m.completeCurrent("")
		}
		return m, nil
	}

	switch key {
	case m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.NextTab:
		return m.nextTab()
	case m.cfg.Keys.Timer:
		if m.focusIdx < 0 || m.focusIdx >= len(missions) {
			return m, nil
		}
		if m.running {
			m.running = false
			m.timerGen++
			m.status = "Paused"
			return m, nil
		}
		if m.remaining == 0 {
			m.remaining = missions[m.focusIdx].Duration * 60
		}
		m.running = true
		m.timerGen++ // a new timer supersedes any previous one
		m.status = "Focus"
		return m, tick(m.timerGen)
	case m.cfg.Keys.Complete:
		if m.focusIdx < 0 || m.focusIdx >= len(missions) {
			return m, nil
		}
		m.running = false
		m.timerGen++
		m.reflecting = true
		m.status = "How did it feel? 1 good, 2 neutral, 3 bad (esc to pass)"
		return m, nil
	case m.cfg.Keys.Skip:
		if m.focusIdx < 0 || m.focusIdx >= len(missions) {
			return m, nil
		}
		m.running = false
		m.timerGen++
		m.store.SkipMission(missions[m.focusIdx].ID)
		m.status = "Skipped. +2 XP for deciding."
		return m.advance()
	}
	return m, nil
}

func (m Model) completeCurrent(feeling string) (tea.Model, tea.Cmd) {
	m.reflecting = false
	missions := m.store.State().Missions
	if m.focusIdx < 0 || m.focusIdx >= len(missions) {
		return m, nil
	}
	m.store.CompleteMission(missions[m.focusIdx].ID, feeling)
	m.status = "Mission complete. +10 XP"
	return m.advance()
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	missions := m.store.State().Missions
	if m.focusIdx < len(missions)-1 {
		m.focusIdx++
		m.store.SetFocusWindow(m.focusIdx)
		m.remaining = missions[m.focusIdx].Duration * 60
		m.running = false
		m.timerGen++
		return m, nil
	}
	m.store.FinishDay()
	m.store.SetPage(state.PageDashboard)
	return m, nil
}

func (m Model) updateDashboard(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Reset:
		m.store.ResetDay()
		m.store.SetPage(state.PagePlan)
		m.drafts = nil
		m.stage = stageBrowse
		m.input.SetValue("")
		m.status = "Fresh start. Pick today's missions."
		return m, nil
	case m.cfg.Keys.ToggleMoment:
		m.store.ToggleMomentumBar()
		return m, nil
	case m.cfg.Keys.ToggleWeekly:
		m.store.ToggleWeeklyBox()
		return m, nil
	case m.cfg.Keys.NextTab:
		return m.nextTab()
	}
	return m, nil
}

// nextTab cycles plan → focus → dashboard. The plan tab falls back to the
// input view when no missions exist yet.
func (m Model) nextTab() (tea.Model, tea.Cmd) {
	var next state.Page
	switch m.store.UIState().CurrentPage {
	case state.PagePlan:
		next = state.PageFocus
	case state.PageFocus:
		next = state.PageDashboard
	default:
		next = state.PagePlan
	}
	m.store.SetPage(next)

	switch next {
	case state.PagePlan:
		if len(m.store.State().Missions) == 0 {
			m.store.SetView(state.ViewInput)
			m.stage = stageBrowse
			m.input.SetValue("")
			m.input.Blur()
		} else {
			m.store.SetView(state.ViewPlan)
		}
	case state.PageFocus:
		m.store.SetView(state.ViewFocus)
		m = m.enterFocus()
	case state.PageDashboard:
		m.store.SetView(state.ViewDashboard)
	}
	return m, nil
}

// enterFocus picks the mission to focus on: the saved focus window when it
// still points at an incomplete mission, otherwise the first incomplete one.
func (m Model) enterFocus() Model {
	missions := m.store.State().Missions
	idx := m.store.UIState().FocusWindow
	if idx < 0 || idx >= len(missions) || missions[idx].Completed {
		idx = firstIncomplete(missions)
	}
	m.focusIdx = idx
	m.running = false
	m.timerGen++
	m.reflecting = false
	if idx >= 0 {
		m.remaining = missions[idx].Duration * 60
	} else {
		m.remaining = 0
	}
	return m
}

func firstIncomplete(missions []state.Mission) int {
	for i, mi := range missions {
		if !mi.Completed {
			return i
		}
	}
	return -1
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
