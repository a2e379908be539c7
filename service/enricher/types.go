package enricher

import (
	"context"
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/elC0mpa/reservation-doctor/service"
)

type svc struct {
	reservationService service.ReservationService
	resourceService    service.ResourceService
	costService        service.CostService
}

type EnricherService interface {
	EnrichAll(ctx context.Context, reservations []model.Reservation, now time.Time) []model.DetailedReservation
}
