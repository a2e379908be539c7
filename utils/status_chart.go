package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	colorActive   = "#1a9850"
	colorExpiring = "#fee08b"
	colorSoon     = "#f46d43"
	colorExpired  = "#d73027"
	colorOther    = "#66c2a5"
)

var chartStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawStatusChart displays the status distribution as a bar chart
func DrawStatusChart(summary model.ReportSummary) {
	if summary.Total == 0 {
		return
	}

	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📊 STATUS DISTRIBUTION"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	statuses := make([]string, 0, len(summary.ByStatus))
	for status := range summary.ByStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	bc := barchart.New(70, 12)
	for _, status := range statuses {
		bc.Push(barchart.BarData{
			Label: status,
			Values: []barchart.BarValue{
				{
					Value: float64(summary.ByStatus[status]),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(statusChartColor(status))),
				},
			},
		})
	}

	fmt.Println()
	bc.Draw()
	fmt.Println(chartStyle.Render(bc.View()))
}

func statusChartColor(status string) string {
	switch status {
	case model.StatusActive:
		return colorActive
	case model.StatusExpiring:
		return colorExpiring
	case model.StatusExpiringSoon:
		return colorSoon
	case model.StatusExpired, model.StatusExpiresToday, model.StatusFailed, model.StatusCancelled:
		return colorExpired
	default:
		return colorOther
	}
}
