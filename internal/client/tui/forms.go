package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authForm is the shared state of the login and signup screens: a titled
// stack of text inputs with one focused field.
type authForm struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
	busy   bool
}

func newInput(placeholder string, masked bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 32
	if masked {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

func newLoginForm() authForm {
	f := authForm{
		title:  "Sign in",
		labels: []string{"Username", "Password"},
		inputs: []textinput.Model{
			newInput("username", false),
			newInput("password", true),
		},
	}
	f.inputs[0].Focus()
	return f
}

func newSignupForm() authForm {
	f := authForm{
		title:  "Create account",
		labels: []string{"Email", "Username", "Full name", "Password"},
		inputs: []textinput.Model{
			newInput("you@example.com", false),
			newInput("username", false),
			newInput("optional", false),
			newInput("password", true),
		},
	}
	f.inputs[0].Focus()
	return f
}

// moveFocus shifts focus by delta, wrapping around the field list.
func (f *authForm) moveFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update routes a key to the focused input.
func (f *authForm) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *authForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// validate reports the first missing required field, or "" when the form can
// be submitted. The "Full name" field is optional.
func (f *authForm) validate() string {
	for i, label := range f.labels {
		if label == "Full name" {
			continue
		}
		if f.value(i) == "" {
			return strings.ToLower(label) + " is required"
		}
	}
	return ""
}
