package components

import (
	"strings"

	"github.com/kayan-consulting/kayan/ui/styles"
)

// RenderInput draws the chat input box. The placeholder shows while input is
// empty; a pending reply replaces the cursor with animated dots.
func RenderInput(input, placeholder string, loading bool, loadingDots, width int) string {
	content := input + "▏"
	switch {
	case loading:
		content = input + strings.Repeat(".", loadingDots%4)
	case input == "":
		content = "▏" + styles.PlaceholderStyle().Render(placeholder)
	}
	return styles.InputStyle(width).Render(content)
}
