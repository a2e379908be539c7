package status

import (
	"fmt"
	"math"
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
)

// Classify derives a status label from a reservation's provisioning state
// and dates. First matching rule wins; the 30/90 day windows drive both
// console coloring and the exported status fields.
func Classify(r model.Reservation, now time.Time) model.StatusInfo {
	switch r.ProvisioningState {
	case "Failed":
		return model.StatusInfo{
			Status:      model.StatusFailed,
			Explanation: "provisioning failed",
		}
	case "Cancelled":
		return model.StatusInfo{
			Status:      model.StatusCancelled,
			Explanation: "reservation was cancelled",
		}
	case "Pending", "PendingResourceHold", "PendingBilling":
		return model.StatusInfo{
			Status:      model.StatusPending,
			Explanation: fmt.Sprintf("provisioning in progress (%s)", r.ProvisioningState),
		}
	}

	if r.ExpiryDateTime != nil {
		days := DaysUntilExpiry(*r.ExpiryDateTime, now)
		info := model.StatusInfo{DaysUntilExpiry: days, KnownExpiry: true}

		switch {
		case days < 0:
			info.Status = model.StatusExpired
			info.Explanation = fmt.Sprintf("expired %d days ago", -days)
		case days == 0:
			info.Status = model.StatusExpiresToday
			info.Explanation = "expires today"
		case days <= 30:
			info.Status = model.StatusExpiringSoon
			info.Explanation = fmt.Sprintf("expires in %d days", days)
		case days <= 90:
			info.Status = model.StatusExpiring
			info.Explanation = fmt.Sprintf("expires in %d days", days)
		default:
			info.Status = model.StatusActive
			info.Explanation = fmt.Sprintf("expires in %d days", days)
		}
		return info
	}

	if r.EffectiveDateTime != nil && r.EffectiveDateTime.After(now) {
		return model.StatusInfo{
			Status:      model.StatusFuture,
			Explanation: fmt.Sprintf("becomes effective %s", r.EffectiveDateTime.Format("2006-01-02")),
		}
	}

	if r.ProvisioningState == "Succeeded" {
		return model.StatusInfo{
			Status:      model.StatusActive,
			Explanation: "succeeded, no expiry data",
		}
	}

	if r.ProvisioningState == "" {
		return model.StatusInfo{
			Status:      model.StatusUnknown,
			Explanation: "no provisioning state reported",
		}
	}

	return model.StatusInfo{
		Status:      r.ProvisioningState,
		Explanation: fmt.Sprintf("provisioning state %q", r.ProvisioningState),
	}
}

// DaysUntilExpiry is the floor of the remaining duration in whole days,
// so any partially elapsed day in the past counts as expired.
func DaysUntilExpiry(expiry, now time.Time) int {
	return int(math.Floor(expiry.Sub(now).Hours() / 24))
}
