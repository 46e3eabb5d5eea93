package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wellcheck/internal/ui/theme"
)

const bannerArt = `┬ ┬┌─┐┬  ┬  ┌─┐┬ ┬┌─┐┌─┐┬┌─
│││├┤ │  │  │  ├─┤├┤ │  ├┴┐
└┴┘└─┘┴─┘┴─┘└─┘┴ ┴└─┘└─┘┴ ┴`

const bannerCompact = "w e l l c h e c k"

// RenderBanner returns the wellcheck banner in the primary color, or a
// compact one for terminals narrower than 34 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 34 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
