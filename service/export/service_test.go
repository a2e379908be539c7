package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReservations(now time.Time) []model.DetailedReservation {
	soon := now.Add(10 * 24 * time.Hour)
	far := now.Add(400 * 24 * time.Hour)

	return []model.DetailedReservation{
		{
			Reservation: model.Reservation{
				Name:                 "res-1",
				DisplayName:          "sql prod",
				SKUName:              "P2",
				ReservedResourceType: "SqlDatabases",
				Quantity:             1,
				Term:                 "P1Y",
				ProvisioningState:    "Succeeded",
				ExpiryDateTime:       &soon,
				ParentOrderName:      "order-1",
			},
			Status:            model.StatusInfo{Status: model.StatusExpiringSoon, Explanation: "expires in 10 days", DaysUntilExpiry: 10, KnownExpiry: true},
			Utilization:       model.UtilizationSummary{Available: true, AverageUtilization: 63.25, MinUtilization: 60, MaxUtilization: 70, DataPointCount: 3},
			AffectedResources: []string{"SQL database srv-1/db-1 (sku P2)", "SQL database srv-1/db-2 (sku P4)"},
			MonthToDateCost:   "42.00 USD",
		},
		{
			Reservation: model.Reservation{
				Name:                 "res-2",
				DisplayName:          "vm fleet",
				SKUName:              "Standard_D2s_v3",
				ReservedResourceType: "VirtualMachines",
				Quantity:             4,
				Term:                 "P3Y",
				ProvisioningState:    "Succeeded",
				ExpiryDateTime:       &far,
				ParentOrderName:      "order-2",
			},
			Status:          model.StatusInfo{Status: model.StatusActive, Explanation: "expires in 400 days", DaysUntilExpiry: 400, KnownExpiry: true},
			MonthToDateCost: "not available",
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func findFile(t *testing.T, paths []string, prefix string) string {
	t.Helper()
	for _, path := range paths {
		if strings.HasPrefix(filepath.Base(path), prefix) {
			return path
		}
	}
	t.Fatalf("no exported file with prefix %q in %v", prefix, paths)
	return ""
}

func TestExport_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	reservations := testReservations(now)
	owners := []model.ReservationOwners{
		{
			Reservation: reservations[0].Reservation,
			Owners: []model.RoleAssignment{
				{PrincipalID: "u-1", PrincipalName: "Ada", PrincipalType: model.PrincipalTypeUser, RoleDefinitionName: "Owner", Scope: "scope-1"},
			},
		},
		{Reservation: reservations[1].Reservation},
	}

	dir := t.TempDir()
	written, err := NewService(dir).Export(reservations, owners, now)
	require.NoError(t, err)
	require.Len(t, written, 4)

	// summary round-trip: names and statuses survive the export
	summary := readCSV(t, findFile(t, written, "reservations_summary_"))
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"Name", "SKU", "Type", "Quantity", "Term", "Status", "AvgUtilization", "ExpiryDate", "ProvisioningState"}, summary[0])
	assert.Equal(t, "sql prod", summary[1][0])
	assert.Equal(t, model.StatusExpiringSoon, summary[1][5])
	assert.Equal(t, "vm fleet", summary[2][0])
	assert.Equal(t, model.StatusActive, summary[2][5])
	assert.Equal(t, "N/A", summary[2][6])

	detail := readCSV(t, findFile(t, written, "reservations_detail_"))
	require.Len(t, detail, 3)
	assert.Contains(t, detail[1], "SQL database srv-1/db-1 (sku P2); SQL database srv-1/db-2 (sku P4)")
	assert.Contains(t, detail[1], "42.00 USD")

	ownersRows := readCSV(t, findFile(t, written, "reservation_owners_"))
	require.Len(t, ownersRows, 3)
	assert.Equal(t, "Ada", ownersRows[1][1])
	assert.Equal(t, "", ownersRows[2][1], "ownerless reservation still gets a row")

	breakdown := readCSV(t, findFile(t, written, "status_breakdown_"))
	require.Len(t, breakdown, 3)
	assert.Equal(t, []string{model.StatusActive, "1"}, breakdown[1])
	assert.Equal(t, []string{model.StatusExpiringSoon, "1"}, breakdown[2])
}

func TestExport_UnwritablePath(t *testing.T) {
	now := time.Now()
	s := NewService(filepath.Join(string(os.PathSeparator), "dev", "null", "nope"))

	written, err := s.Export(testReservations(now), nil, now)
	assert.Error(t, err)
	assert.Empty(t, written)
}

func TestExport_Timestamping(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 45, 0, time.UTC)
	dir := t.TempDir()

	written, err := NewService(dir).Export(nil, nil, now)
	require.NoError(t, err)

	for _, path := range written {
		assert.Contains(t, filepath.Base(path), "20250615_103045")
	}
}
