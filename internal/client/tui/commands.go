package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/client/services"
)

// restoredMsg signals that the persisted session has been loaded (or found
// absent).
type restoredMsg struct{}

// authResultMsg carries the outcome of a login or signup attempt.
type authResultMsg struct {
	signup bool
	ok     bool
}

// signedOutMsg signals that the session has been torn down.
type signedOutMsg struct{}

// snapshotMsg carries the outcome of one fetch cycle together with the
// sequence number captured when the cycle was issued.
type snapshotMsg struct {
	seq  int
	snap services.Snapshot
}

func (m Model) restoreCmd() tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		sess.Restore(context.Background())
		return restoredMsg{}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		return authResultMsg{ok: sess.Login(context.Background(), username, password)}
	}
}

func (m Model) signupCmd(email, username, fullName, password string) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		return authResultMsg{signup: true, ok: sess.Signup(context.Background(), email, username, fullName, password)}
	}
}

func (m Model) signOutCmd() tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		sess.Logout(context.Background())
		return signedOutMsg{}
	}
}

// fetchCmd runs one dashboard fetch cycle. In-flight cycles are never
// cancelled; superseded results are dropped by the sequence check in Update.
func (m Model) fetchCmd(seq int, f models.FilterSet) tea.Cmd {
	dash := m.dashboard
	return func() tea.Msg {
		return snapshotMsg{seq: seq, snap: dash.Load(context.Background(), f)}
	}
}
