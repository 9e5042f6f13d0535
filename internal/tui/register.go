// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/service"
)

// RegisterModel is the account creation screen. A successful registration
// signs the user in directly.
type RegisterModel struct {
	ctx     context.Context
	session service.ClientSessionService

	form       credentialForm
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, session service.ClientSessionService) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		session: session,
		form: newCredentialForm(
			formField{label: "Username", placeholder: "reader", charLimit: 50},
			formField{label: "Email", placeholder: "you@example.com", charLimit: 254},
			formField{label: "Password", placeholder: "password", secret: true, charLimit: 256},
			formField{label: "Repeat", placeholder: "repeat password", secret: true, charLimit: 256},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.form.reset()
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if errMsg := m.check(); errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(
				strings.TrimSpace(m.form.value(0)),
				strings.TrimSpace(m.form.value(1)),
				m.form.value(2),
			)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// check covers only what the form itself knows; field rules are left to the
// service layer and the backend.
func (m *RegisterModel) check() string {
	for i := range m.form.inputs {
		if strings.TrimSpace(m.form.value(i)) == "" {
			return "All fields are required"
		}
	}
	if m.form.value(2) != m.form.value(3) {
		return "Passwords do not match"
	}
	return ""
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(username, email, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return AuthResult{Err: session.Register(ctx, username, email, password)}
	}
}
