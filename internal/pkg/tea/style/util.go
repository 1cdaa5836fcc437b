package style

import "github.com/charmbracelet/lipgloss"

// ContextLine renders "title → subject object", used to show which API the CLI talks to.
func ContextLine(title, titleColor, subject, object string) string {
	titleStr := ForegroundPrint(title, titleColor)
	arrowStr := ForegroundPrint("→", "241")
	subjectStr := ForegroundPrint(subject, "4")
	return titleStr + " " + arrowStr + " " + subjectStr + " " + object
}

func ForegroundPrint(text string, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}
