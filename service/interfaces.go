package service

import (
	"context"

	"github.com/elC0mpa/reservation-doctor/model"
)

// IdentityService provides subscription identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// ReservationService enumerates reservation orders and their reservations
type ReservationService interface {
	ListAllReservations(ctx context.Context) ([]model.Reservation, error)
	GetUtilization(ctx context.Context, reservation model.Reservation) (model.UtilizationSummary, error)
	Guidance() string
}

// ResourceService discovers resources that may be consuming a reservation
type ResourceService interface {
	FindAffectedResources(ctx context.Context, reservation model.Reservation) []string
}

// AuthorizationService reads and creates role assignments at a reservation scope
type AuthorizationService interface {
	ListOwners(ctx context.Context, scope string) ([]model.RoleAssignment, error)
	CreateOwnerAssignment(ctx context.Context, scope string, principal model.Principal) error
}

// DirectoryService resolves principals against the directory
type DirectoryService interface {
	ResolveUser(ctx context.Context, identifier string) (*model.Principal, error)
	ResolveGroup(ctx context.Context, identifier string) (*model.Principal, error)
	ResolveByObjectID(ctx context.Context, objectID string) (*model.Principal, error)
}

// CostService provides best-effort reservation cost information
type CostService interface {
	GetMonthToDateCharges(ctx context.Context) (map[string]string, error)
}
