package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/qryptshare/internal/app"
	"github.com/MKhiriev/qryptshare/internal/service"
	"github.com/MKhiriev/qryptshare/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusTTL is how long a notice stays on screen.
const statusTTL = 4 * time.Second

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// FormModel is the editing screen: field inputs on the left and the live
// preview on the right. It owns the session's FormState and StyleConfig and
// keeps both across visits to the menu.
type FormModel struct {
	ctx      context.Context
	services *service.Services

	form   models.FormState
	style  models.StyleConfig
	inputs [fieldCount]textinput.Model
	focus  int

	passwordVisible bool
	panel           *stylePanel

	payload    string
	payloadErr error
	preview    string
	previewErr error

	exporting   bool
	status      string
	statusIsErr bool
	statusSeq   int
}

func NewFormModel(ctx context.Context, services *service.Services, style models.StyleConfig) *FormModel {
	m := &FormModel{
		ctx:      ctx,
		services: services,
		form:     models.NewFormState(),
		style:    style,
		inputs:   newFieldInputs(),
	}
	m.focusCurrent()
	m.refresh()
	return m
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case modeSelectedMsg:
		m.form.Mode = msg.mode
		m.focus = 0
		m.panel = nil
		m.focusCurrent()
		m.refresh()
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			return m, m.setStatus(app.UserMessage(msg.err), true)
		}
		return m, m.setStatus(app.MsgSavedPrefix+msg.path, false)

	case copiedMsg:
		if msg.err != nil {
			return m, m.setStatus(app.MsgCopyFailed, true)
		}
		return m, m.setStatus(app.MsgCopied, false)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.panel != nil {
			return m, m.updatePanel(msg)
		}
		return m, m.updateKey(msg)
	}

	// cursor blink and other input housekeeping
	return m, m.updateFocusedInput(msg)
}

func (m *FormModel) updateKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		return func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(msg, keys.style):
		m.panel = newStylePanel(m.style)
		m.blurAll()
		return nil
	case key.Matches(msg, keys.exportPNG):
		return m.export(models.FormatPNG)
	case key.Matches(msg, keys.exportJPEG):
		return m.export(models.FormatJPEG)
	case key.Matches(msg, keys.exportWebP):
		return m.export(models.FormatWebP)
	case key.Matches(msg, keys.copy):
		return m.copyPayload()
	case key.Matches(msg, keys.revealInput):
		m.togglePasswordVisibility()
		return nil
	case key.Matches(msg, keys.nextField):
		m.moveFocus(1)
		return nil
	case key.Matches(msg, keys.prevField):
		m.moveFocus(-1)
		return nil
	}

	switch m.focusedField() {
	case fieldEncryption:
		switch {
		case key.Matches(msg, keys.left):
			m.form.WiFi.Encryption = nextEncryption(m.form.WiFi.Encryption, -1)
		case key.Matches(msg, keys.right), key.Matches(msg, keys.toggle):
			m.form.WiFi.Encryption = nextEncryption(m.form.WiFi.Encryption, 1)
		}
		m.refresh()
		return nil
	case fieldHidden:
		if key.Matches(msg, keys.toggle) {
			m.form.WiFi.Hidden = !m.form.WiFi.Hidden
			m.refresh()
		}
		return nil
	}

	cmd := m.updateFocusedInput(msg)
	m.refresh()
	return cmd
}

func (m *FormModel) updatePanel(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.style) {
		m.panel = nil
		m.focusCurrent()
		return nil
	}

	cmd := m.panel.update(msg)
	m.style = m.panel.style
	return cmd
}

func (m *FormModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	f := m.focusedField()
	if f.isSelector() || m.panel != nil {
		return nil
	}

	var cmd tea.Cmd
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	return cmd
}

// refresh recomputes the payload and the preview from the current inputs.
func (m *FormModel) refresh() {
	m.form = applyInputs(m.form, m.inputs)

	m.payload = m.services.PayloadService.Draft(m.form)
	_, m.payloadErr = m.services.PayloadService.Payload(m.ctx, m.form)

	m.preview, m.previewErr = "", nil
	if m.payload != "" {
		m.preview, m.previewErr = m.services.PreviewService.Terminal(m.ctx, m.payload)
	}
}

func (m *FormModel) export(format models.OutputFormat) tea.Cmd {
	if m.payloadErr != nil {
		return m.setStatus(app.UserMessage(m.payloadErr), true)
	}
	if m.exporting {
		return nil
	}

	m.exporting = true
	m.status, m.statusIsErr = "Exporting "+strings.ToUpper(format.Ext())+"...", false

	return exportCmd(m.ctx, m.services.ExportService, m.form, m.style, format)
}

func exportCmd(ctx context.Context, svc service.ExportService, form models.FormState, style models.StyleConfig, format models.OutputFormat) tea.Cmd {
	results := svc.ExportAsync(ctx, form, style, format)

	return func() tea.Msg {
		res := <-results
		if res.Err != nil {
			return exportDoneMsg{format: format, err: res.Err}
		}

		path, err := svc.Save(ctx, res.File)
		return exportDoneMsg{format: format, path: path, err: err}
	}
}

func (m *FormModel) copyPayload() tea.Cmd {
	if m.payload == "" {
		return m.setStatus(app.MsgTypeToGenerate, true)
	}

	payload := m.payload
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(payload)}
	}
}

func (m *FormModel) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status, m.statusIsErr = text, isErr

	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *FormModel) togglePasswordVisibility() {
	m.passwordVisible = !m.passwordVisible
	if m.passwordVisible {
		m.inputs[fieldPassword].EchoMode = textinput.EchoNormal
		return
	}
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
}

// focusable skips the password while the network is open.
func (m *FormModel) focusable() []fieldID {
	fields := modeFields[m.form.Mode]
	if m.form.WiFi.Encryption != models.EncryptionNone {
		return fields
	}

	out := make([]fieldID, 0, len(fields))
	for _, f := range fields {
		if f != fieldPassword {
			out = append(out, f)
		}
	}
	return out
}

func (m *FormModel) focusedField() fieldID {
	fields := m.focusable()
	if len(fields) == 0 {
		return fieldURL
	}
	if m.focus >= len(fields) {
		m.focus = len(fields) - 1
	}
	return fields[m.focus]
}

func (m *FormModel) moveFocus(step int) {
	n := len(m.focusable())
	if n == 0 {
		return
	}
	m.focus = ((m.focus+step)%n + n) % n
	m.focusCurrent()
}

func (m *FormModel) focusCurrent() {
	m.blurAll()
	if f := m.focusedField(); !f.isSelector() {
		m.inputs[f].Focus()
	}
}

func (m *FormModel) blurAll() {
	for i := range m.inputs {
		if !fieldID(i).isSelector() {
			m.inputs[i].Blur()
		}
	}
}

func (m *FormModel) View() string {
	left := m.viewFields()
	if m.panel != nil {
		left = m.panel.view()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", m.viewPreview())

	if m.status != "" {
		style := noticeStyle
		if m.statusIsErr {
			style = errorStyle
		}
		body += "\n\n" + style.Render(m.status)
	}

	hotKeys := "tab: next │ ctrl+s: style │ ctrl+p/ctrl+j/ctrl+w: export png/jpg/webp │ ctrl+y: copy │ esc: menu"
	if m.panel != nil {
		hotKeys = "↑/↓: select │ ←/→: adjust │ space: toggle │ esc: close"
	}

	return renderPage(strings.ToUpper(m.form.Mode.Title()), body, hotKeys)
}

func (m *FormModel) viewFields() string {
	var b strings.Builder
	focused := m.focusedField()

	for _, f := range modeFields[m.form.Mode] {
		label := labelStyle.Render(fieldLabels[f])
		if f == focused {
			label = focusedStyle.Render(labelStyle.Render(fieldLabels[f]))
		}
		b.WriteString(label)

		switch f {
		case fieldEncryption:
			b.WriteString("‹ " + m.form.WiFi.Encryption.Label() + " ›")
		case fieldHidden:
			b.WriteString(checkbox(m.form.WiFi.Hidden))
		case fieldPassword:
			if m.form.WiFi.Encryption == models.EncryptionNone {
				b.WriteString(helpStyle.Render("not required"))
				break
			}
			b.WriteString(m.inputs[f].View())
			if m.passwordVisible {
				b.WriteString(helpStyle.Render("  (ctrl+r hide)"))
			} else {
				b.WriteString(helpStyle.Render("  (ctrl+r show)"))
			}
		default:
			b.WriteString(m.inputs[f].View())
		}
		b.WriteString("\n")
	}

	if m.payloadErr != nil && m.payload != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(app.UserMessage(m.payloadErr)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *FormModel) viewPreview() string {
	switch {
	case m.payload == "":
		return previewBoxStyle.Render(helpStyle.Render(app.MsgTypeToGenerate))
	case m.previewErr != nil:
		return previewBoxStyle.Render(errorStyle.Render(app.UserMessage(m.previewErr)))
	default:
		return previewBoxStyle.Render(styledPreview(m.preview, m.style) + "\n" + helpStyle.Render(fitText(m.payload, 40)))
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
