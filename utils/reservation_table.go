package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var detailStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060")).
	PaddingLeft(1).
	PaddingRight(1)

// DrawReservationTable displays the one-row-per-reservation summary
func DrawReservationTable(account model.AccountInfo, reservations []model.DetailedReservation) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🏥 AZURE RESERVATION CHECKUP"))
	fmt.Printf(" Subscription: %s (%s)\n", text.FgBlue.Sprint(account.AccountName), account.AccountID)
	if account.State != "" && account.State != "Enabled" {
		fmt.Printf(" %s\n", text.FgHiYellow.Sprintf("subscription state: %s", account.State))
	}
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Reservation", "SKU", "Type", "Qty", "Term", "Status", "Usage %", "Expiry", "State"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})

	for _, r := range reservations {
		usage := "-"
		if r.Utilization.Available {
			usage = fmt.Sprintf("%.1f", r.Utilization.AverageUtilization)
		}
		expiry := "-"
		if r.ExpiryDateTime != nil {
			expiry = r.ExpiryDateTime.Format("2006-01-02")
		}

		tw.AppendRow(table.Row{
			r.DisplayName,
			r.SKUName,
			r.ReservedResourceType,
			r.Quantity,
			r.Term,
			statusColor(r.Status.Status).Sprint(r.Status.Status),
			usage,
			expiry,
			r.ProvisioningState,
		})
	}

	tw.Render()
}

// DrawReservationDetails displays a free-text block per reservation
func DrawReservationDetails(reservations []model.DetailedReservation) {
	for _, r := range reservations {
		var b strings.Builder

		fmt.Fprintf(&b, "%s  %s\n", text.FgHiCyan.Sprint(r.DisplayName), statusColor(r.Status.Status).Sprint(r.Status.Status))
		fmt.Fprintf(&b, "Order: %s  Term: %s  Quantity: %d\n", r.ParentOrderName, r.Term, r.Quantity)
		if r.EffectiveDateTime != nil {
			fmt.Fprintf(&b, "Effective: %s\n", r.EffectiveDateTime.Format("2006-01-02"))
		}
		if r.ExpiryDateTime != nil {
			fmt.Fprintf(&b, "Expiry: %s (%s)\n", r.ExpiryDateTime.Format("2006-01-02"), r.Status.Explanation)
		} else {
			fmt.Fprintf(&b, "Expiry: unknown (%s)\n", r.Status.Explanation)
		}
		if r.Utilization.Available {
			fmt.Fprintf(&b, "Utilization: avg %.1f%%  min %.1f%%  max %.1f%% (%d data points)\n",
				r.Utilization.AverageUtilization, r.Utilization.MinUtilization, r.Utilization.MaxUtilization, r.Utilization.DataPointCount)
		} else {
			fmt.Fprintf(&b, "Utilization: not available\n")
		}
		fmt.Fprintf(&b, "Month-to-date cost: %s\n", r.MonthToDateCost)
		fmt.Fprintf(&b, "Possibly affected resources:\n")
		for _, resource := range r.AffectedResources {
			fmt.Fprintf(&b, "  - %s\n", resource)
		}

		fmt.Println(detailStyle.Render(strings.TrimRight(b.String(), "\n")))
	}
}

// DrawReportSummary prints the aggregate counts under the table
func DrawReportSummary(summary model.ReportSummary) {
	statuses := make([]string, 0, len(summary.ByStatus))
	for status := range summary.ByStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	parts := make([]string, 0, len(statuses))
	for _, status := range statuses {
		parts = append(parts, fmt.Sprintf("%s: %d", statusColor(status).Sprint(status), summary.ByStatus[status]))
	}

	fmt.Printf("\n %d reservations | %s | %s\n",
		summary.Total,
		strings.Join(parts, " | "),
		text.FgHiYellow.Sprintf("%d below 50%% utilization", summary.LowUtilization))
}

func statusColor(status string) text.Color {
	switch status {
	case model.StatusActive:
		return text.FgHiGreen
	case model.StatusExpiring:
		return text.FgYellow
	case model.StatusExpiringSoon:
		return text.FgHiYellow
	case model.StatusExpiresToday, model.StatusExpired, model.StatusFailed, model.StatusCancelled:
		return text.FgHiRed
	case model.StatusPending, model.StatusFuture:
		return text.FgHiCyan
	default:
		return text.FgHiWhite
	}
}
