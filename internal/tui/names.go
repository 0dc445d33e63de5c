// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-name-keeper/internal/app"
	"github.com/MKhiriev/go-name-keeper/internal/service"
	"github.com/MKhiriev/go-name-keeper/internal/utils"
	"github.com/MKhiriev/go-name-keeper/internal/validators"
	"github.com/MKhiriev/go-name-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// namesModel is the single screen of the client: the name field on top and
// the list below. All state that outlives a frame lives in the controller.
type namesModel struct {
	ctx        context.Context
	controller *service.NamesController
	buildInfo  models.AppBuildInfo

	input   textinput.Model
	spinner spinner.Model
	focus   focusArea
	cursor  int

	// loading and submitting cover the gap between issuing a command and the
	// controller picking it up.
	loading    bool
	submitting bool

	confirm  *confirmModel
	showInfo bool
	status   string

	copyToClipboard func(string) error
}

func newNamesModel(ctx context.Context, controller *service.NamesController, buildInfo models.AppBuildInfo) namesModel {
	in := textinput.New()
	in.Placeholder = "Type a name"
	in.CharLimit = validators.MaxNameLength
	in.Prompt = "> "
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return namesModel{
		ctx:             ctx,
		controller:      controller,
		buildInfo:       buildInfo,
		input:           in,
		spinner:         s,
		focus:           focusInput,
		loading:         true,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m namesModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.loadCmd())
}

func (m namesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{err: m.controller.Load(m.ctx)}
	}
}

func (m namesModel) submitCmd(raw string, editing bool) tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg{editing: editing, err: m.controller.Submit(m.ctx, raw)}
	}
}

func (m namesModel) deleteCmd(id models.EntryID) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: m.controller.Delete(m.ctx, id)}
	}
}

func (m namesModel) copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.copyToClipboard(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m namesModel) busy() bool {
	return m.submitting || m.controller.State().Submitting
}

func (m namesModel) selected() (models.NameEntry, bool) {
	list := m.controller.State().List
	if len(list) == 0 || m.cursor < 0 || m.cursor >= len(list) {
		return models.NameEntry{}, false
	}
	return list[m.cursor], true
}

func (m namesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadDoneMsg:
		m.loading = false
		m.cursor = clampCursor(m.cursor, len(m.controller.State().List))
		return m, nil

	case submitDoneMsg:
		m.submitting = false
		return m.afterWrite(msg.err, submitStatus(msg.editing))

	case deleteDoneMsg:
		m.submitting = false
		return m.afterWrite(msg.err, app.MsgNameDeleted)

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = app.MsgCopied
		}
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func submitStatus(editing bool) string {
	if editing {
		return app.MsgNameUpdated
	}
	return app.MsgNameAdded
}

func (m namesModel) afterWrite(err error, okStatus string) (tea.Model, tea.Cmd) {
	st := m.controller.State()
	m.cursor = clampCursor(m.cursor, len(st.List))

	switch {
	case errors.Is(err, service.ErrBusy):
		m.status = app.MsgBusy
	case err == nil:
		m.input.SetValue(st.Input)
		m.status = okStatus
	case errors.Is(err, service.ErrLoadFailed):
		// the write went through, only the refresh failed
		m.input.SetValue(st.Input)
		m.status = okStatus
	default:
		m.status = ""
	}

	if m.status == "" {
		return m, nil
	}
	return m, clearStatusAfter(statusTTL)
}

func (m namesModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQ) {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showInfo = false
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			id := m.confirm.entry.ID
			m.confirm = nil
			if m.busy() {
				m.status = app.MsgBusy
				return m, nil
			}
			m.submitting = true
			return m, m.deleteCmd(id)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if key.Matches(msg, keys.tab) {
		return m.toggleFocus(), nil
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m namesModel) toggleFocus() namesModel {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		return m
	}
	m.focus = focusInput
	m.input.Focus()
	return m
}

func (m namesModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		if m.busy() {
			m.status = app.MsgBusy
			return m, nil
		}
		m.submitting = true
		return m, m.submitCmd(m.input.Value(), m.controller.State().Editing())

	case key.Matches(msg, keys.esc):
		if m.controller.State().Editing() {
			m.controller.CancelEdit()
			m.input.SetValue("")
		}
		m.controller.ClearError()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.controller.SetInput(m.input.Value()); v != m.input.Value() {
		m.input.SetValue(v)
	}
	return m, cmd
}

func (m namesModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.controller.State().List)

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.down):
		if m.cursor < n-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.loadCmd()

	case key.Matches(msg, keys.edit):
		entry, ok := m.selected()
		if !ok || m.busy() {
			return m, nil
		}
		m.controller.StartEdit(entry)
		m.input.SetValue(utils.PrintableText(entry.Text))
		m.input.CursorEnd()
		m = m.toggleFocus()

	case key.Matches(msg, keys.delete):
		entry, ok := m.selected()
		if !ok || m.busy() {
			return m, nil
		}
		m.confirm = &confirmModel{entry: entry}

	case key.Matches(msg, keys.copy):
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.copyCmd(utils.PrintableText(entry.Text))

	case key.Matches(msg, keys.version):
		m.showInfo = true

	case key.Matches(msg, keys.esc):
		m.controller.ClearError()
	}

	return m, nil
}

func (m namesModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	st := m.controller.State()

	var b strings.Builder

	label := "New name"
	if st.Editing() {
		label = "Edit name"
	}
	b.WriteString(titleStyle.Render(label))
	if st.Submitting || m.submitting {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(app.MsgHelper))
	b.WriteString("\n\n")

	if st.Loading || m.loading {
		b.WriteString(m.spinner.View() + " " + app.MsgLoading)
	} else {
		b.WriteString(renderList(st.List, m.cursor, m.focus == focusList))
	}

	if st.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(HumanizeError(st.Err)))
	} else if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	if m.confirm != nil {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}

	return appStyle.Render(renderPage("NAMES", b.String(), m.hotKeys(st)))
}

func (m namesModel) hotKeys(st service.NamesState) string {
	if m.focus == focusInput {
		hint := "enter: save  tab: list"
		if st.Editing() {
			hint += "  esc: cancel edit"
		}
		return hint
	}

	actions := "e: edit  d: delete"
	if st.Submitting || m.submitting {
		actions = disabledStyle.Render(actions)
	}
	return "↑/↓: move  " + actions + "  c: copy  r: reload  v: version  tab: input  q: quit"
}
