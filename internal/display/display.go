package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/gokulrajanpillai/TradeDeskCLI/internal/models"
)

// Renderer writes a price result to the given sink.
type Renderer interface {
	Render(w io.Writer, res *models.PriceResult) error
}

// ForFormat picks the renderer for the requested output format.
func ForFormat(jsonOut bool) Renderer {
	if jsonOut {
		return JSONRenderer{}
	}
	return TableRenderer{}
}

// JSONRenderer emits the result as pretty-printed JSON.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, res *models.PriceResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

var (
	tableTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	nameCellStyle = lipgloss.NewStyle().Bold(true)

	missingPriceStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#EF4444"))

	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#3B82F6")).
				Padding(0, 1)
)

// TableRenderer emits the result as a three-column table.
type TableRenderer struct{}

func (TableRenderer) Render(w io.Writer, res *models.PriceResult) error {
	price := missingPriceStyle.Render("N/A")
	if res.Price != nil {
		price = FormatPrice(*res.Price)
	}

	ticker := res.Ticker
	if ticker == "" {
		ticker = "-"
	}

	headers := []string{"Name", "Ticker", "Current Price"}
	cells := []string{nameCellStyle.Render(res.Name), ticker, price}

	widths := make([]int, len(headers))
	for i := range headers {
		widths[i] = lipgloss.Width(headers[i])
		if cw := lipgloss.Width(cells[i]); cw > widths[i] {
			widths[i] = cw
		}
	}

	var rows string
	for i, h := range headers {
		rows += padCell(headerCellStyle.Render(h), widths[i])
		if i < len(headers)-1 {
			rows += "  "
		}
	}
	rows += "\n"
	for i, c := range cells {
		rows += padCell(c, widths[i])
		if i < len(cells)-1 {
			rows += "  "
		}
	}

	if _, err := fmt.Fprintln(w, tableTitleStyle.Render("TradeDeskCLI – Price Lookup")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, tableBorderStyle.Render(rows))
	return err
}

// FormatPrice renders a price with 4 decimal places and thousands separators.
func FormatPrice(price float64) string {
	return humanize.FormatFloat("#,###.####", price)
}

func padCell(s string, width int) string {
	for lipgloss.Width(s) < width {
		s += " "
	}
	return s
}
