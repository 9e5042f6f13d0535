// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// credentialForm is the set of focusable inputs shared by the sign-in
// screens.
type credentialForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

type formField struct {
	label       string
	placeholder string
	secret      bool
	charLimit   int
}

func newCredentialForm(fields ...formField) credentialForm {
	f := credentialForm{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.Width = 40
		in.CharLimit = field.charLimit
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels[i] = field.label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *credentialForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *credentialForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *credentialForm) value(i int) string {
	return f.inputs[i].Value()
}

func (f *credentialForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *credentialForm) view() string {
	width := 0
	for _, l := range f.labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(f.labels[i])
		b.WriteString(strings.Repeat(" ", width-len(f.labels[i])))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return b.String()
}
