package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	switch m.screen {
	case screenRestoring:
		return m.viewRestoring()
	case screenLogin:
		return m.viewAuthForm(m.login, "tab next field · enter sign in · ctrl+n create account · ctrl+c quit")
	case screenSignup:
		return m.viewAuthForm(m.signup, "tab next field · enter submit · esc back to sign in · ctrl+c quit")
	default:
		return m.viewDashboard()
	}
}

func (m Model) viewRestoring() string {
	return "\n " + m.spinner.View() + " restoring session...\n"
}

func (m Model) viewAuthForm(f authForm, help string) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("econdash") + "\n")
	b.WriteString(m.styles.Muted.Render("world bank economic indicators") + "\n\n")

	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice) + "\n\n")
	}

	b.WriteString(m.styles.Title.Render(f.title) + "\n\n")

	for i, label := range f.labels {
		st := m.styles.Label
		if i == f.focus {
			st = m.styles.FocusedLabel
		}
		b.WriteString(st.Render(label) + "\n")
		b.WriteString(f.inputs[i].View() + "\n")
	}

	if f.busy {
		b.WriteString("\n" + m.spinner.View() + " contacting the server...\n")
	} else if f.errMsg != "" {
		b.WriteString("\n" + m.styles.Error.Render(f.errMsg) + "\n")
	}

	b.WriteString("\n" + m.styles.Help.Render(help) + "\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
