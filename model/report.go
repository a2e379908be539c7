package model

// AccountInfo represents the subscription the run is scoped to
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
	TenantID    string
	State       string
}

// ReportSummary aggregates the per-run reservation statistics
type ReportSummary struct {
	Total          int
	ByStatus       map[string]int
	LowUtilization int
}

// NewReportSummary builds the aggregate counts for a set of enriched reservations
func NewReportSummary(reservations []DetailedReservation) ReportSummary {
	summary := ReportSummary{
		Total:    len(reservations),
		ByStatus: make(map[string]int),
	}

	for _, r := range reservations {
		summary.ByStatus[r.Status.Status]++
		if r.Utilization.Available && r.Utilization.AverageUtilization < 50 {
			summary.LowUtilization++
		}
	}

	return summary
}
