package components

import (
	"strings"

	"github.com/kayan-consulting/kayan/ui/styles"
)

// RenderStatus draws the bottom bar: the last status message, if any,
// followed by the key help.
func RenderStatus(status, help string, width int) string {
	parts := make([]string, 0, 2)
	if status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, help)
	return styles.StatusStyle(width).Render(strings.Join(parts, "  •  "))
}
