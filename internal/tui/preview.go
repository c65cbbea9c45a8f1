package tui

import (
	"strings"

	"github.com/MKhiriev/qryptshare/models"
	"github.com/charmbracelet/lipgloss"
)

// previewCellPx is roughly how many unscaled export pixels one terminal cell
// stands for in the preview.
const previewCellPx = 8

// styledPreview draws the terminal code the way the export will look: white
// quiet zone scaled from the padding, modules in the line color and a frame
// in the border color when one is configured.
func styledPreview(art string, style models.StyleConfig) string {
	cells := (style.EffectivePadding() + previewCellPx/2) / previewCellPx

	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.Foreground().Hex())).
		Background(lipgloss.Color(models.White.Hex())).
		// one cell row holds two module rows
		Padding((cells+1)/2, cells)

	if style.HasBorder() {
		s = s.Border(previewBorder(style)).
			BorderForeground(lipgloss.Color(style.BorderColor.Hex()))
	}

	return s.Render(strings.TrimRight(art, "\n"))
}

func previewBorder(style models.StyleConfig) lipgloss.Border {
	switch {
	case style.BorderRadius > 0:
		return lipgloss.RoundedBorder()
	case style.BorderThickness > models.MaxBorderThickness/2:
		return lipgloss.ThickBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
