package model

// Status labels derived from provisioning state and expiry date
const (
	StatusActive       = "Active"
	StatusExpired      = "Expired"
	StatusExpiresToday = "Expires Today"
	StatusExpiringSoon = "Expiring Soon"
	StatusExpiring     = "Expiring"
	StatusPending      = "Pending"
	StatusFuture       = "Future"
	StatusFailed       = "Failed"
	StatusCancelled    = "Cancelled"
	StatusUnknown      = "Unknown"
)

// StatusInfo is a derived, per-run classification of a reservation.
// DaysUntilExpiry is only meaningful when KnownExpiry is true.
type StatusInfo struct {
	Status          string
	Explanation     string
	DaysUntilExpiry int
	KnownExpiry     bool
}
