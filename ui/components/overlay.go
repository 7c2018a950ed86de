package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriInspect/ui/styles"
)

const gap = 1

// OverlayView is everything the inspector screen shows
type OverlayView struct {
	Characters []string
	Items      []string
	Forms      []FormView
	Status     string
	MaxRows    int
	Width      int
}

// PlacedForm is a form geometry with its absolute origin
type PlacedForm struct {
	X, Y int
	FormGeometry
}

// RenderOverlay renders the screen and reports where each form landed
func RenderOverlay(v OverlayView) (string, []PlacedForm) {
	width := v.Width
	if width < 40 {
		width = 40
	}

	var b strings.Builder
	title := styles.TitleStyle(width).Render("Debug Inspector")
	b.WriteString(title)
	b.WriteString("\n")
	y := lipgloss.Height(title)

	half := (width-gap)/2 - 2
	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderList("Character List", v.Characters, v.MaxRows, half),
		strings.Repeat(" ", gap),
		RenderList("Item List", v.Items, v.MaxRows, half),
	)
	b.WriteString(lists)
	b.WriteString("\n")
	y += lipgloss.Height(lists)

	formWidth := width/4 + 8
	views := make([]string, 0, 2*len(v.Forms))
	placed := make([]PlacedForm, 0, len(v.Forms))
	x := 0
	for i, f := range v.Forms {
		if i > 0 {
			views = append(views, strings.Repeat(" ", gap))
			x += gap
		}
		view, geo := RenderForm(f, formWidth)
		views = append(views, view)
		placed = append(placed, PlacedForm{X: x, Y: y, FormGeometry: geo})
		x += geo.Width
	}
	forms := lipgloss.JoinHorizontal(lipgloss.Top, views...)
	b.WriteString(forms)
	b.WriteString("\n")

	b.WriteString(RenderStatus(v.Status, width))
	return b.String(), placed
}
