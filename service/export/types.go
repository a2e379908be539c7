package export

import (
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
)

type svc struct {
	outputDir string
}

type ExportService interface {
	Export(reservations []model.DetailedReservation, owners []model.ReservationOwners, exportedAt time.Time) ([]string, error)
}
