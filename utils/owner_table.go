package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawOwnerTable displays the Owner assignments grouped by reservation
func DrawOwnerTable(grouped []model.ReservationOwners) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🔑 CURRENT OWNERS"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Reservation", "Owner", "Type", "Object ID"})
	tw.SetStyle(table.StyleRounded)

	for _, entry := range grouped {
		if len(entry.Owners) == 0 {
			tw.AppendRow(table.Row{
				entry.Reservation.DisplayName,
				text.FgHiYellow.Sprint("no owners assigned"),
				"-",
				"-",
			})
			continue
		}

		for _, owner := range entry.Owners {
			name := owner.PrincipalName
			if name == "" {
				name = owner.PrincipalID
			}
			tw.AppendRow(table.Row{
				entry.Reservation.DisplayName,
				name,
				owner.PrincipalType,
				owner.PrincipalID,
			})
		}
	}

	tw.Render()
}

// DrawAssignmentTable displays the per-reservation outcome of a bulk assignment
func DrawAssignmentTable(summary model.AssignmentSummary, principal model.Principal) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" 📋 OWNER ASSIGNMENT: %s (%s)", principal.DisplayName, principal.PrincipalType))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Reservation", "Outcome", "Detail"})
	tw.SetStyle(table.StyleRounded)

	for _, result := range summary.Results {
		detail := ""
		if result.Err != nil {
			detail = result.Err.Error()
		}
		tw.AppendRow(table.Row{
			result.ReservationName,
			outcomeColor(result.Outcome).Sprint(result.Outcome),
			detail,
		})
	}

	tw.Render()

	if summary.WhatIfCount > 0 {
		fmt.Printf(" %s\n", text.FgHiCyan.Sprintf("%d assignment(s) simulated, none created", summary.WhatIfCount))
		return
	}

	fmt.Printf(" %s, %s\n",
		text.FgHiGreen.Sprintf("%d succeeded", summary.SuccessCount),
		text.FgHiRed.Sprintf("%d failed", summary.FailCount))
	for _, name := range summary.FailedNames {
		fmt.Printf("   %s %s\n", text.FgHiRed.Sprint("✗"), name)
	}
}

func outcomeColor(outcome string) text.Color {
	switch outcome {
	case model.AssignmentSucceeded:
		return text.FgHiGreen
	case model.AssignmentFailed:
		return text.FgHiRed
	default:
		return text.FgHiCyan
	}
}
