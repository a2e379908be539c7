package owner

import (
	"bufio"
	"context"
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/elC0mpa/reservation-doctor/service"
)

// Printer writes user-facing prompt/confirmation output; fmt.Printf in
// the binary, a capture function in tests
type Printer func(format string, args ...any)

type svc struct {
	authorizationService service.AuthorizationService
	directoryService     service.DirectoryService
	input                *bufio.Scanner
	output               Printer
	verifyAttempts       int
	verifyInterval       time.Duration
}

type OwnerService interface {
	ShowCurrentOwners(ctx context.Context, reservations []model.Reservation) []model.ReservationOwners
	ResolvePrincipal(ctx context.Context, identifier string) (*model.Principal, error)
	AcquirePrincipal(ctx context.Context) (*model.Principal, error)
	AssignOwner(ctx context.Context, reservation model.Reservation, principal model.Principal, dryRun bool) model.AssignmentResult
	AssignOwnerToAll(ctx context.Context, reservations []model.Reservation, principal model.Principal, dryRun bool) model.AssignmentSummary
	VerifyOwner(ctx context.Context, reservation model.Reservation, principal model.Principal) bool
}
