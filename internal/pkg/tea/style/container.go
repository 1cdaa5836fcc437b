package style

import "github.com/charmbracelet/lipgloss"

var (
	Container = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0,
		1).BorderForeground(lipgloss.Color("#874BFD")) //nolint:mnd
	cliHeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 2). //nolint:mnd
			Bold(true).
			Align(lipgloss.Center).
			Width(40) //nolint:mnd

	PrimaryButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0D6EFD")).
			Padding(0, 1) //nolint:mnd
	SecondaryButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#6C757D")).
			Padding(0, 1) //nolint:mnd
	Help   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true)
)

func CLIHeader(title string, description string) string {
	if description == "" {
		return cliHeaderStyle.Render(title)
	}
	return cliHeaderStyle.Render(title) + "\n" + description
}
