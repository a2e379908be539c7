package enricher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReservations struct {
	utilization map[string]model.UtilizationSummary
	utilErr     error
}

func (f *fakeReservations) ListAllReservations(context.Context) ([]model.Reservation, error) {
	return nil, nil
}

func (f *fakeReservations) GetUtilization(_ context.Context, r model.Reservation) (model.UtilizationSummary, error) {
	if f.utilErr != nil {
		return model.UtilizationSummary{}, f.utilErr
	}
	return f.utilization[r.Name], nil
}

func (f *fakeReservations) Guidance() string { return "" }

type fakeResources struct{}

func (f *fakeResources) FindAffectedResources(_ context.Context, r model.Reservation) []string {
	return []string{"no VMs of size " + r.SKUName + " found in subscription"}
}

type fakeCosts struct {
	charges map[string]string
	err     error
}

func (f *fakeCosts) GetMonthToDateCharges(context.Context) (map[string]string, error) {
	return f.charges, f.err
}

func TestEnrichAll(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	soon := now.Add(10 * 24 * time.Hour)
	far := now.Add(400 * 24 * time.Hour)

	reservations := []model.Reservation{
		{Name: "r1", DisplayName: "sql prod", SKUName: "P2", ReservedResourceType: "SqlDatabases", ProvisioningState: "Succeeded", ExpiryDateTime: &soon},
		{Name: "r2", DisplayName: "vm fleet", SKUName: "Standard_D2s_v3", ReservedResourceType: "VirtualMachines", ProvisioningState: "Succeeded", ExpiryDateTime: &far},
	}

	svc := NewService(
		&fakeReservations{utilization: map[string]model.UtilizationSummary{
			"r1": {Available: true, AverageUtilization: 42.5, MinUtilization: 40, MaxUtilization: 45, DataPointCount: 3},
		}},
		&fakeResources{},
		&fakeCosts{charges: map[string]string{"vm fleet": "120.50 USD"}},
	)

	got := svc.EnrichAll(context.Background(), reservations, now)

	require.Len(t, got, 2)
	assert.Equal(t, model.StatusExpiringSoon, got[0].Status.Status)
	assert.Equal(t, model.StatusActive, got[1].Status.Status)
	assert.True(t, got[0].Utilization.Available)
	assert.False(t, got[1].Utilization.Available)
	assert.Equal(t, "not available", got[0].MonthToDateCost)
	assert.Equal(t, "120.50 USD", got[1].MonthToDateCost)
	require.Len(t, got[1].AffectedResources, 1)
	assert.Contains(t, got[1].AffectedResources[0], "Standard_D2s_v3")
}

func TestEnrichAll_FailuresBecomeSentinels(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	reservations := []model.Reservation{
		{Name: "r1", DisplayName: "sql prod", ProvisioningState: "Succeeded"},
	}

	svc := NewService(
		&fakeReservations{utilErr: errors.New("api down")},
		&fakeResources{},
		&fakeCosts{err: errors.New("query denied")},
	)

	got := svc.EnrichAll(context.Background(), reservations, now)

	require.Len(t, got, 1)
	assert.False(t, got[0].Utilization.Available)
	assert.Equal(t, "not available", got[0].MonthToDateCost)
}
