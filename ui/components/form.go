package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriInspect/ui/styles"
)

// FormView is what a creation form needs to render
type FormView struct {
	Header        string
	Input         string // rendered text input
	Active        bool
	ButtonHovered bool
}

// FormGeometry locates the interactive parts of a rendered form, relative
// to the form's top-left corner.
type FormGeometry struct {
	Width, Height int
	InputX        int
	InputY        int
	InputW        int
	InputH        int
	ButtonX       int
	ButtonY       int
	ButtonW       int
}

const (
	boxBorder  = 1
	boxPadding = 1
)

func RenderForm(f FormView, width int) (string, FormGeometry) {
	inner := width - 2*boxPadding
	header := styles.HeaderStyle().Render(f.Header)
	input := styles.InputStyle(inner-2*boxBorder, f.Active).Render(f.Input)
	button := styles.ButtonStyle(f.ButtonHovered).Render("Go")

	body := lipgloss.JoinVertical(lipgloss.Left, header, input, button)
	view := styles.BoxStyle(width).Render(body)

	left := boxBorder + boxPadding
	inputY := boxBorder + lipgloss.Height(header)
	return view, FormGeometry{
		Width:   lipgloss.Width(view),
		Height:  lipgloss.Height(view),
		InputX:  left,
		InputY:  inputY,
		InputW:  lipgloss.Width(input),
		InputH:  lipgloss.Height(input),
		ButtonX: left,
		ButtonY: inputY + lipgloss.Height(input),
		ButtonW: lipgloss.Width(button),
	}
}
