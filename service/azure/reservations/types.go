package azurereservations

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/reservations/armreservations"
	"github.com/elC0mpa/reservation-doctor/model"
)

type service struct {
	orderClient       *armreservations.ReservationOrderClient
	reservationClient *armreservations.ReservationClient
	guidance          string
}

type ReservationService interface {
	ListAllReservations(ctx context.Context) ([]model.Reservation, error)
	GetUtilization(ctx context.Context, reservation model.Reservation) (model.UtilizationSummary, error)
	Guidance() string
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
