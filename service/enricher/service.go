package enricher

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/elC0mpa/reservation-doctor/service"
	"github.com/elC0mpa/reservation-doctor/service/status"
	"github.com/jedib0t/go-pretty/v6/text"
)

const costNotAvailable = "not available"

func NewService(
	reservationService service.ReservationService,
	resourceService service.ResourceService,
	costService service.CostService,
) *svc {
	return &svc{
		reservationService: reservationService,
		resourceService:    resourceService,
		costService:        costService,
	}
}

// EnrichAll classifies and enriches every reservation. Month-to-date
// charges are queried once for the whole run; on failure every
// reservation just reports "not available".
func (s *svc) EnrichAll(ctx context.Context, reservations []model.Reservation, now time.Time) []model.DetailedReservation {
	charges, err := s.costService.GetMonthToDateCharges(ctx)
	if err != nil {
		fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprintf("reservation charges unavailable: %v", err))
		charges = nil
	}

	detailed := make([]model.DetailedReservation, 0, len(reservations))
	for _, reservation := range reservations {
		detailed = append(detailed, s.enrich(ctx, reservation, now, charges))
	}

	return detailed
}

func (s *svc) enrich(ctx context.Context, reservation model.Reservation, now time.Time, charges map[string]string) model.DetailedReservation {
	detail := model.DetailedReservation{
		Reservation:     reservation,
		Status:          status.Classify(reservation, now),
		MonthToDateCost: costNotAvailable,
	}

	utilization, err := s.reservationService.GetUtilization(ctx, reservation)
	if err != nil {
		fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprintf("utilization unavailable for %s: %v", reservation.DisplayName, err))
		utilization = model.UtilizationSummary{}
	}
	detail.Utilization = utilization

	detail.AffectedResources = s.resourceService.FindAffectedResources(ctx, reservation)

	if cost, ok := charges[reservation.DisplayName]; ok {
		detail.MonthToDateCost = cost
	}

	return detail
}
