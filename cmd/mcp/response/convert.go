package response

import (
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/elC0mpa/reservation-doctor/service/status"
)

// ConvertReservation classifies one reservation and maps it to a response row
func ConvertReservation(r model.Reservation, now time.Time) Reservation {
	info := status.Classify(r, now)

	row := Reservation{
		Name:              r.Name,
		DisplayName:       r.DisplayName,
		SKU:               r.SKUName,
		Type:              r.ReservedResourceType,
		Quantity:          r.Quantity,
		Term:              r.Term,
		Status:            info.Status,
		Explanation:       info.Explanation,
		ProvisioningState: r.ProvisioningState,
		Order:             r.ParentOrderName,
	}

	if info.KnownExpiry {
		days := info.DaysUntilExpiry
		row.DaysUntilExpiry = &days
	}
	if r.ExpiryDateTime != nil {
		row.ExpiryDate = r.ExpiryDateTime.Format("2006-01-02")
	}

	return row
}

// ConvertReport builds the full report payload for a reservation set
func ConvertReport(reservations []model.Reservation, now time.Time) Report {
	report := Report{
		Total:    len(reservations),
		ByStatus: make(map[string]int),
	}

	for _, r := range reservations {
		row := ConvertReservation(r, now)
		report.ByStatus[row.Status]++
		report.Reservations = append(report.Reservations, row)
	}

	return report
}

// ConvertOwners maps grouped owner assignments to the response shape
func ConvertOwners(grouped []model.ReservationOwners) []ReservationOwners {
	result := make([]ReservationOwners, 0, len(grouped))

	for _, entry := range grouped {
		converted := ReservationOwners{Reservation: entry.Reservation.DisplayName}
		for _, owner := range entry.Owners {
			converted.Owners = append(converted.Owners, Owner{
				PrincipalName: owner.PrincipalName,
				PrincipalType: owner.PrincipalType,
				PrincipalID:   owner.PrincipalID,
			})
		}
		result = append(result, converted)
	}

	return result
}
