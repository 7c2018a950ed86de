package styles

import "github.com/charmbracelet/lipgloss"

const (
	boxBackground     = lipgloss.Color("238")
	textboxBackground = lipgloss.Color("235")
	accent            = lipgloss.Color("62")
)

func TitleStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 1).
		Width(width)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

// BoxStyle frames a list or a form
func BoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Background(boxBackground).
		Padding(0, 1).
		Width(width)
}

// HeaderStyle is used for list and form headers
func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)
}

// LabelStyle renders list entries in the default color
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle()
}

func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
}

func InputStyle(width int, active bool) lipgloss.Style {
	border := lipgloss.Color("240")
	if active {
		border = accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border).
		Background(textboxBackground).
		Width(width)
}

func ButtonStyle(hovered bool) lipgloss.Style {
	bg := lipgloss.Color("235")
	if hovered {
		bg = lipgloss.Color("237")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(bg).
		Padding(0, 2)
}
