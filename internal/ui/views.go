package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lifeos/internal/config"
	"lifeos/internal/state"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	streakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	levelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	selectedTagStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	momentumHotStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("27"))

	momentumWarmStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))
)

func (m Model) View() string {
	st := m.store.State()

	var b strings.Builder
	b.WriteString(m.renderHeader(st))
	b.WriteString("\n\n")

	switch st.CurrentView {
	case state.ViewInput:
		b.WriteString(m.renderInput())
	case state.ViewPlan:
		b.WriteString(m.renderPlan(st))
	case state.ViewFocus:
		b.WriteString(m.renderFocus(st))
	case state.ViewDashboard:
		b.WriteString(m.renderDashboard(st))
	}

	b.WriteString("\n\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(renderHelp(st.CurrentView, m.cfg.Keys)))
	return b.String()
}

func (m Model) renderHeader(st state.AppState) string {
	level := state.Level(st.XP)
	return fmt.Sprintf("%s  %s  %s",
		titleStyle.Render("Life OS"),
		streakStyle.Render(fmt.Sprintf("streak %d", st.Streak)),
		levelStyle.Render(fmt.Sprintf("LVL %d · %s · %d XP", level, state.LevelName(level), st.XP)))
}

func (m Model) renderInput() string {
	var b strings.Builder
	b.WriteString("Pick today's missions\n\n")

	for i, d := range m.drafts {
		b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, d.title, tagStyle.Render("["+string(d.tag)+"]")))
	}
	if len(m.drafts) > 0 {
		b.WriteString("\n")
	}

	switch m.stage {
	case stageBrowse:
		if len(m.drafts) == 0 {
			b.WriteString(faintStyle.Render(fmt.Sprintf("No missions yet. Press %q to add one.", m.cfg.Keys.Add)))
			b.WriteString("\n")
		}
	case stageTitle:
		b.WriteString(fmt.Sprintf("Mission %d: ", len(m.drafts)+1))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case stageTag:
		b.WriteString(fmt.Sprintf("Mission %d: %s\n", len(m.drafts)+1, m.pendingTitle))
		b.WriteString("Tag: ")
		for i, tag := range state.Tags() {
			if i > 0 {
				b.WriteString(" ")
			}
			if i == m.tagIdx {
				b.WriteString(selectedTagStyle.Render(" " + string(tag) + " "))
			} else {
				b.WriteString(tagStyle.Render(string(tag)))
			}
		}
		b.WriteString("\n")
	case stageWhy:
		b.WriteString(fmt.Sprintf("Mission %d: %s %s\n", len(m.drafts)+1, m.pendingTitle,
			tagStyle.Render("["+string(state.Tags()[m.tagIdx])+"]")))
		b.WriteString("Why: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPlan(st state.AppState) string {
	var b strings.Builder
	b.WriteString("Today's plan\n\n")
	for i, mi := range st.Missions {
		b.WriteString(fmt.Sprintf("  %d. %s %s %s\n", i+1, mi.Title,
			tagStyle.Render("["+string(mi.Tag)+"]"),
			faintStyle.Render(fmt.Sprintf("%d min", mi.Duration))))
		if mi.Why != "" {
			b.WriteString(faintStyle.Render("     why: " + mi.Why))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderFocus(st state.AppState) string {
	if m.focusIdx < 0 || m.focusIdx >= len(st.Missions) {
		return "All done! Check your dashboard to see your progress."
	}
	mi := st.Missions[m.focusIdx]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Mission %d of %d\n\n", m.focusIdx+1, len(st.Missions)))
	b.WriteString("  " + mi.Title + " " + tagStyle.Render("["+string(mi.Tag)+"]") + "\n")
	if mi.Why != "" {
		b.WriteString(faintStyle.Render("  why: " + mi.Why))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(formatClock(m.remaining)))
	if m.running {
		b.WriteString(faintStyle.Render("  running"))
	} else {
		b.WriteString(faintStyle.Render("  paused"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderDashboard(st state.AppState) string {
	ui := m.store.UIState()

	var b strings.Builder
	if ui.MomentumBar.Show {
		b.WriteString(renderMomentum(st.Last7Days))
		b.WriteString("\n")
	}

	if ui.WeeklyBox.Show {
		completed := state.CompletedCount(st.Missions)
		rate := 0
		if len(st.Missions) > 0 {
			rate = completed * 100 / len(st.Missions)
		}
		b.WriteString(fmt.Sprintf("Daily progress: %d%%\n", rate))
		b.WriteString(encouragement(completed, len(st.Missions)))
		b.WriteString("\n\n")
	}

	if len(st.Missions) > 0 {
		b.WriteString("Today's missions\n")
		for _, mi := range st.Missions {
			check := "[ ]"
			line := fmt.Sprintf("  %s %s", check, mi.Title)
			if mi.Completed {
				check = "[x]"
				line = doneStyle.Render(fmt.Sprintf("  %s %s", check, mi.Title))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderMomentum draws the Monday-anchored 7-day window.
func renderMomentum(last7Days [7]int) string {
	labels := []string{"M", "T", "W", "T", "F", "S", "S"}

	var b strings.Builder
	b.WriteString(faintStyle.Render("MOMENTUM"))
	b.WriteString("\n  ")
	for i, count := range last7Days {
		cell := fmt.Sprintf(" %d ", count)
		switch {
		case count >= 2:
			cell = momentumHotStyle.Render(cell)
		case count == 1:
			cell = momentumWarmStyle.Render(cell)
		default:
			cell = faintStyle.Render(" · ")
		}
		b.WriteString(cell)
		if i < len(last7Days)-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n  ")
	for i, l := range labels {
		b.WriteString(faintStyle.Render(" " + l + " "))
		if i < len(labels)-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func encouragement(completed, total int) string {
	switch {
	case total > 0 && completed == total:
		return "Amazing work today! You completed all your missions."
	case completed > 0:
		return "You showed up today. Tiny step, real progress."
	default:
		return "Ready when you are. Every journey starts with showing up."
	}
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func renderHelp(view state.View, k config.Keymap) string {
	switch view {
	case state.ViewInput:
		return fmt.Sprintf("%s add • %s import • %s remove • %s generate • %s tab • %s quit",
			k.Add, k.Import, k.Remove, k.Confirm, k.NextTab, k.Quit)
	case state.ViewPlan:
		return fmt.Sprintf("%s start day • %s tab • %s quit", k.Start, k.NextTab, k.Quit)
	case state.ViewFocus:
		return fmt.Sprintf("%q timer • %s complete • %s skip • %s tab • %s quit",
			k.Timer, k.Complete, k.Skip, k.NextTab, k.Quit)
	default:
		return fmt.Sprintf("%s reset tomorrow • %s momentum • %s weekly • %s tab • %s quit",
			k.Reset, k.ToggleMoment, k.ToggleWeekly, k.NextTab, k.Quit)
	}
}
