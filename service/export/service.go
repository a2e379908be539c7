package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
)

func NewService(outputDir string) *svc {
	return &svc{outputDir: outputDir}
}

// Export writes the four report files, timestamped at export time.
// Files that fail are skipped and reported through the returned error;
// the successfully written paths are always returned.
func (s *svc) Export(reservations []model.DetailedReservation, owners []model.ReservationOwners, exportedAt time.Time) ([]string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", s.outputDir, err)
	}

	stamp := exportedAt.Format("20060102_150405")

	var written []string
	var errs []error

	files := []struct {
		name string
		rows [][]string
	}{
		{fmt.Sprintf("reservations_summary_%s.csv", stamp), summaryRows(reservations)},
		{fmt.Sprintf("reservations_detail_%s.csv", stamp), detailRows(reservations)},
		{fmt.Sprintf("reservation_owners_%s.csv", stamp), ownerRows(owners)},
		{fmt.Sprintf("status_breakdown_%s.csv", stamp), statusRows(reservations)},
	}

	for _, file := range files {
		path := filepath.Join(s.outputDir, file.name)
		if err := writeCSV(path, file.rows); err != nil {
			errs = append(errs, err)
			continue
		}
		written = append(written, path)
	}

	return written, errors.Join(errs...)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func summaryRows(reservations []model.DetailedReservation) [][]string {
	rows := [][]string{{"Name", "SKU", "Type", "Quantity", "Term", "Status", "AvgUtilization", "ExpiryDate", "ProvisioningState"}}

	for _, r := range reservations {
		rows = append(rows, []string{
			r.DisplayName,
			r.SKUName,
			r.ReservedResourceType,
			strconv.Itoa(int(r.Quantity)),
			r.Term,
			r.Status.Status,
			formatUtilization(r.Utilization),
			formatDate(r.ExpiryDateTime),
			r.ProvisioningState,
		})
	}

	return rows
}

func detailRows(reservations []model.DetailedReservation) [][]string {
	rows := [][]string{{
		"Name", "DisplayName", "Order", "SKU", "Type", "Quantity", "Term",
		"InstanceFlexibility", "Status", "Explanation", "DaysUntilExpiry",
		"EffectiveDate", "ExpiryDate", "ProvisioningState",
		"AvgUtilization", "MinUtilization", "MaxUtilization", "DataPoints",
		"MonthToDateCost", "AffectedResources",
	}}

	for _, r := range reservations {
		days := ""
		if r.Status.KnownExpiry {
			days = strconv.Itoa(r.Status.DaysUntilExpiry)
		}

		rows = append(rows, []string{
			r.Name,
			r.DisplayName,
			r.ParentOrderName,
			r.SKUName,
			r.ReservedResourceType,
			strconv.Itoa(int(r.Quantity)),
			r.Term,
			r.InstanceFlexibility,
			r.Status.Status,
			r.Status.Explanation,
			days,
			formatDate(r.EffectiveDateTime),
			formatDate(r.ExpiryDateTime),
			r.ProvisioningState,
			formatUtilization(r.Utilization),
			formatPercent(r.Utilization.MinUtilization, r.Utilization.Available),
			formatPercent(r.Utilization.MaxUtilization, r.Utilization.Available),
			strconv.Itoa(r.Utilization.DataPointCount),
			r.MonthToDateCost,
			strings.Join(r.AffectedResources, "; "),
		})
	}

	return rows
}

func ownerRows(owners []model.ReservationOwners) [][]string {
	rows := [][]string{{"Reservation", "PrincipalName", "PrincipalType", "PrincipalID", "Scope"}}

	for _, entry := range owners {
		if len(entry.Owners) == 0 {
			rows = append(rows, []string{entry.Reservation.DisplayName, "", "", "", entry.Reservation.ID})
			continue
		}
		for _, owner := range entry.Owners {
			rows = append(rows, []string{
				entry.Reservation.DisplayName,
				owner.PrincipalName,
				owner.PrincipalType,
				owner.PrincipalID,
				owner.Scope,
			})
		}
	}

	return rows
}

func statusRows(reservations []model.DetailedReservation) [][]string {
	summary := model.NewReportSummary(reservations)

	statuses := make([]string, 0, len(summary.ByStatus))
	for status := range summary.ByStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	rows := [][]string{{"Status", "Count"}}
	for _, status := range statuses {
		rows = append(rows, []string{status, strconv.Itoa(summary.ByStatus[status])})
	}

	return rows
}

func formatUtilization(u model.UtilizationSummary) string {
	return formatPercent(u.AverageUtilization, u.Available)
}

func formatPercent(value float64, available bool) string {
	if !available {
		return "N/A"
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
