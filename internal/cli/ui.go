package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// UI styles
var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Italic(true).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// DisplayWelcomeBanner shows the welcome banner
func DisplayWelcomeBanner() {
	banner := `
████████╗██████╗  █████╗ ██████╗ ███████╗██████╗ ███████╗███████╗██╗  ██╗
╚══██╔══╝██╔══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔════╝██╔════╝██║ ██╔╝
   ██║   ██████╔╝███████║██║  ██║█████╗  ██║  ██║█████╗  ███████╗█████╔╝
   ██║   ██╔══██╗██╔══██║██║  ██║██╔══╝  ██║  ██║██╔══╝  ╚════██║██╔═██╗
   ██║   ██║  ██║██║  ██║██████╔╝███████╗██████╔╝███████╗███████║██║  ██╗
   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚══════╝╚═════╝ ╚══════╝╚══════╝╚═╝  ╚═╝
`

	fmt.Println(bannerStyle.Render(banner))
	fmt.Println(taglineStyle.Render("Search tickers and print current prices"))
}

// DisplayError shows a formatted error message
func DisplayError(err error) {
	fmt.Println(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

// DisplayInfo shows a formatted info message
func DisplayInfo(message string) {
	fmt.Println(infoStyle.Render(message))
}
