package components

import (
	"fmt"
	"strings"

	"github.com/Rorical/RoriInspect/ui/styles"
)

// RenderList renders a titled list box. Only the newest maxRows entries are
// shown; older ones collapse into a count line.
func RenderList(title string, labels []string, maxRows, width int) string {
	var b strings.Builder

	b.WriteString(styles.HeaderStyle().Render(title))
	b.WriteString("\n")

	shown := labels
	if maxRows > 0 && len(labels) > maxRows {
		hidden := len(labels) - maxRows + 1
		shown = labels[hidden:]
		b.WriteString(styles.MutedStyle().Render(fmt.Sprintf("(%d earlier)", hidden)))
		b.WriteString("\n")
	}

	labelStyle := styles.LabelStyle()
	for i, label := range shown {
		b.WriteString(labelStyle.Render(label))
		if i < len(shown)-1 {
			b.WriteString("\n")
		}
	}
	if len(labels) == 0 {
		b.WriteString(styles.MutedStyle().Render("(empty)"))
	}

	return styles.BoxStyle(width).Render(b.String())
}
