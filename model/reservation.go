package model

import "time"

// ReservationOrder groups the reservations bought in a single purchase
type ReservationOrder struct {
	ID          string
	Name        string
	DisplayName string
	Term        string
}

// Reservation is the canonical record built from the ARM response,
// regardless of whether the API returned fields flat or under Properties
type Reservation struct {
	ID                   string
	Name                 string
	DisplayName          string
	SKUName              string
	ReservedResourceType string
	Quantity             int32
	Term                 string
	InstanceFlexibility  string
	ProvisioningState    string
	EffectiveDateTime    *time.Time
	ExpiryDateTime       *time.Time
	ParentOrderName      string
	ParentOrderID        string
}

// UtilizationSummary is best-effort: the reservations API frequently has
// no aggregates, in which case Available is false and the rest is zero
type UtilizationSummary struct {
	Available          bool
	AverageUtilization float64
	MaxUtilization     float64
	MinUtilization     float64
	DataPointCount     int
}

// DetailedReservation attaches per-run enrichment to a reservation.
// AffectedResources entries are descriptive strings, approximate only.
type DetailedReservation struct {
	Reservation
	Status            StatusInfo
	Utilization       UtilizationSummary
	AffectedResources []string
	MonthToDateCost   string
}
