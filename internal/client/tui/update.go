package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case restoredMsg:
		if m.session.Current() != nil {
			m.screen = screenDashboard
			cmd := m.startFetch(m.filters)
			return m, cmd
		}
		m.screen = screenLogin
		return m, nil

	case authResultMsg:
		return m.applyAuthResult(msg)

	case signedOutMsg:
		m.screen = screenLogin
		m.login = newLoginForm()
		m.notice = "signed out"
		return m, nil

	case snapshotMsg:
		// Results from a superseded fetch cycle carry a stale sequence
		// number and must never overwrite newer data.
		if msg.seq != m.seq {
			return m, nil
		}
		m.snapshot = msg.snap
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenLogin:
			return m.updateLogin(msg)
		case screenSignup:
			return m.updateSignup(msg)
		case screenDashboard:
			return m.updateDashboard(msg)
		}
	}

	return m, nil
}

func (m Model) applyAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	if msg.signup {
		m.signup.busy = false
		if !msg.ok {
			m.signup.errMsg = "signup failed, check the details and try again"
			return m, nil
		}
		m.screen = screenLogin
		m.signup = newSignupForm()
		m.notice = "account created, please sign in"
		return m, nil
	}

	m.login.busy = false
	if !msg.ok {
		m.login.errMsg = "login failed, check your credentials"
		return m, nil
	}
	m.login = newLoginForm()
	m.notice = ""
	m.screen = screenDashboard
	cmd := m.startFetch(m.filters)
	return m, cmd
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlN:
		m.screen = screenSignup
		m.notice = ""
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.login.moveFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.login.moveFocus(-1)
		return m, nil
	case tea.KeyEnter:
		if m.login.busy {
			return m, nil
		}
		if msg := m.login.validate(); msg != "" {
			m.login.errMsg = msg
			return m, nil
		}
		m.login.busy = true
		m.login.errMsg = ""
		return m, m.loginCmd(m.login.value(0), m.login.value(1))
	}
	cmd := m.login.update(msg)
	return m, cmd
}

func (m Model) updateSignup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlN, tea.KeyEsc:
		m.screen = screenLogin
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.signup.moveFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.signup.moveFocus(-1)
		return m, nil
	case tea.KeyEnter:
		if m.signup.busy {
			return m, nil
		}
		if msg := m.signup.validate(); msg != "" {
			m.signup.errMsg = msg
			return m, nil
		}
		m.signup.busy = true
		m.signup.errMsg = ""
		return m, m.signupCmd(m.signup.value(0), m.signup.value(1), m.signup.value(2), m.signup.value(3))
	}
	cmd := m.signup.update(msg)
	return m, cmd
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlO:
		return m, m.signOutCmd()
	case tea.KeyTab, tea.KeyDown:
		m.panel.moveFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.panel.moveFocus(-1)
		return m, nil
	case tea.KeyLeft:
		if m.panel.focus == fieldCountry || m.panel.focus == fieldIndicator {
			m.panel.cycle(-1)
			return m, nil
		}
	case tea.KeyRight:
		if m.panel.focus == fieldCountry || m.panel.focus == fieldIndicator {
			m.panel.cycle(1)
			return m, nil
		}
	case tea.KeyEnter:
		f, ok := m.panel.commit()
		if !ok {
			return m, nil
		}
		cmd := m.startFetch(f)
		return m, cmd
	}
	cmd := m.panel.update(msg)
	return m, cmd
}
