package components

import (
	"github.com/Rorical/RoriInspect/ui/styles"
)

func RenderStatus(status string, width int) string {
	return styles.StatusStyle(width).Render(status)
}
