package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/qryptshare/internal/app"
	"github.com/MKhiriev/qryptshare/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type styleRow int

const (
	rowEnabled styleRow = iota
	rowLineColor
	rowBorderColor
	rowPadding
	rowBorderThickness
	rowBorderRadius

	styleRowCount
)

var styleRowLabels = [styleRowCount]string{
	rowEnabled:         "Custom style",
	rowLineColor:       "Line color",
	rowBorderColor:     "Border color",
	rowPadding:         "Padding",
	rowBorderThickness: "Border",
	rowBorderRadius:    "Radius",
}

// stylePanel edits a copy of the session style. Colors are applied only once
// the input holds a valid #RRGGBB value.
type stylePanel struct {
	style  models.StyleConfig
	row    styleRow
	colors map[styleRow]*textinput.Model
	err    string
}

func newStylePanel(style models.StyleConfig) *stylePanel {
	newColorInput := func(c models.Color) *textinput.Model {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 7
		in.Width = 8
		in.SetValue(c.Hex())
		return &in
	}

	return &stylePanel{
		style: style.Clamped(),
		colors: map[styleRow]*textinput.Model{
			rowLineColor:   newColorInput(style.LineColor),
			rowBorderColor: newColorInput(style.BorderColor),
		},
	}
}

func (p *stylePanel) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.nextField):
		p.moveRow(1)
		return nil
	case key.Matches(msg, keys.prevField):
		p.moveRow(-1)
		return nil
	}

	switch p.row {
	case rowEnabled:
		if key.Matches(msg, keys.toggle) || key.Matches(msg, keys.enter) {
			p.style.Enabled = !p.style.Enabled
		}
	case rowPadding, rowBorderThickness, rowBorderRadius:
		switch {
		case key.Matches(msg, keys.left):
			p.adjust(-1)
		case key.Matches(msg, keys.right):
			p.adjust(1)
		}
	case rowLineColor, rowBorderColor:
		in := p.colors[p.row]
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		p.applyColor(p.row, in.Value())
		return cmd
	}

	return nil
}

func (p *stylePanel) adjust(delta int) {
	switch p.row {
	case rowPadding:
		p.style.Padding += delta
	case rowBorderThickness:
		p.style.BorderThickness += delta
	case rowBorderRadius:
		p.style.BorderRadius += delta
	}
	p.style = p.style.Clamped()
}

func (p *stylePanel) applyColor(row styleRow, value string) {
	c, err := models.ParseColor(value)
	if err != nil {
		p.err = app.MsgInvalidColor
		return
	}

	p.err = ""
	if row == rowLineColor {
		p.style.LineColor = c
		return
	}
	p.style.BorderColor = c
}

func (p *stylePanel) moveRow(step int) {
	if in, ok := p.colors[p.row]; ok {
		in.Blur()
	}

	n := int(styleRowCount)
	p.row = styleRow(((int(p.row)+step)%n + n) % n)

	if in, ok := p.colors[p.row]; ok {
		in.Focus()
	}
}

func (p *stylePanel) view() string {
	var b strings.Builder

	for r := styleRow(0); r < styleRowCount; r++ {
		label := labelStyle.Render(styleRowLabels[r])
		if r == p.row {
			label = focusedStyle.Render(label)
		}
		b.WriteString(label)

		switch r {
		case rowEnabled:
			b.WriteString(checkbox(p.style.Enabled))
		case rowLineColor, rowBorderColor:
			b.WriteString(p.colors[r].View())
		case rowPadding:
			b.WriteString(slider(p.style.Padding, models.MaxPadding))
		case rowBorderThickness:
			b.WriteString(slider(p.style.BorderThickness, models.MaxBorderThickness))
		case rowBorderRadius:
			b.WriteString(slider(p.style.BorderRadius, models.MaxBorderRadius))
		}
		b.WriteString("\n")
	}

	if !p.style.Enabled {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("style is off: exports use black lines and default padding"))
	}
	if p.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(p.err))
	}

	return strings.TrimRight(b.String(), "\n")
}

// slider draws value on a ten-cell track.
func slider(value, max int) string {
	const cells = 10
	filled := 0
	if max > 0 {
		filled = value * cells / max
	}
	return fmt.Sprintf("%s%s %d", strings.Repeat("█", filled), strings.Repeat("░", cells-filled), value)
}
