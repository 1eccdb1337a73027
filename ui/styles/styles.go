package styles

import "github.com/charmbracelet/lipgloss"

// Brand palette.
var (
	Primary   = lipgloss.Color("#1E3A8A")
	Accent    = lipgloss.Color("#F59E0B")
	Success   = lipgloss.Color("#10B981")
	Danger    = lipgloss.Color("#EF4444")
	Muted     = lipgloss.Color("245")
	Subtle    = lipgloss.Color("236")
	Highlight = lipgloss.Color("39")
)

// Aligned returns a full-width block aligned to the reading direction.
func Aligned(width int, rtl bool) lipgloss.Style {
	s := lipgloss.NewStyle()
	if width > 0 {
		s = s.Width(width)
	}
	if rtl {
		return s.Align(lipgloss.Right)
	}
	return s.Align(lipgloss.Left)
}

func NavStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(Primary).
		Bold(true).
		Padding(0, 1).
		Width(width)
}

func MenuStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(Muted).
		Padding(0, 2)
}

func HeroTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
}

func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Danger).
		Bold(true)
}

func BadgeStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(color).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}

func SectionTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Underline(true).
		MarginTop(1)
}

func CardStyle(focused, active bool) lipgloss.Style {
	border := Subtle
	switch {
	case active:
		border = Accent
	case focused:
		border = Highlight
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func DetailStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Success)
}

func CTAStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(Primary).
		Padding(1, 2).
		Width(width)
}

func ButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Primary).
		Background(Accent).
		Bold(true).
		Padding(0, 2)
}

func FooterStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Muted).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(Subtle).
		Width(width)
}

func ChatPanelStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1).
		Width(width - 2)
}

func ChatHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
}

func OnlineStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Success)
}

func UserStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Highlight).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Highlight).
		Padding(0, 1)
}

func AssistantStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Accent).
		Padding(0, 1)
}

func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)
}

func SuggestionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)
}

func InputStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(width - 4)
}

func UnreadStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(Danger).
		Bold(true).
		Padding(0, 1)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

// Markdown styles
func CodeBlockStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(Subtle).
		Padding(0, 1).
		MarginLeft(2)
}

func CodeSpanStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(Subtle)
}

func BoldStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func ItalicStyle() lipgloss.Style {
	return lipgloss.NewStyle().Italic(true)
}

func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Primary)
}

func LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().Underline(true)
}

func QuoteStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Muted).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Muted).
		PaddingLeft(1)
}
