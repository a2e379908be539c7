package orchestrator

import (
	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/elC0mpa/reservation-doctor/service"
	"github.com/elC0mpa/reservation-doctor/service/enricher"
	"github.com/elC0mpa/reservation-doctor/service/export"
	"github.com/elC0mpa/reservation-doctor/service/owner"
)

type svc struct {
	identityService    service.IdentityService
	reservationService service.ReservationService
	enricherService    enricher.EnricherService
	ownerService       owner.OwnerService
	exportService      export.ExportService
}

type OrchestratorService interface {
	Orchestrate(model.Flags) error
}
