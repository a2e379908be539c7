package azurereservations

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/reservations/armreservations"
	"github.com/elC0mpa/reservation-doctor/model"
)

// normalizeOrder maps an ARM reservation order into the canonical record
func normalizeOrder(order *armreservations.ReservationOrderResponse) model.ReservationOrder {
	o := model.ReservationOrder{}
	if order == nil {
		return o
	}

	if order.ID != nil {
		o.ID = *order.ID
	}
	if order.Name != nil {
		o.Name = *order.Name
	}
	if order.Properties != nil {
		if order.Properties.DisplayName != nil {
			o.DisplayName = *order.Properties.DisplayName
		}
		if order.Properties.Term != nil {
			o.Term = string(*order.Properties.Term)
		}
	}
	if o.DisplayName == "" {
		o.DisplayName = o.Name
	}

	return o
}

// normalizeReservation maps an ARM reservation into the canonical record
// right after the call returns, so the rest of the system never touches
// the response shape. Order name and term are carried down from the parent.
func normalizeReservation(order model.ReservationOrder, res *armreservations.ReservationResponse) model.Reservation {
	r := model.Reservation{
		ParentOrderName: order.Name,
		ParentOrderID:   order.ID,
		Term:            order.Term,
	}
	if res == nil {
		return r
	}

	if res.ID != nil {
		r.ID = *res.ID
		r.Name = extractResourceName(*res.ID)
	}
	if res.SKU != nil && res.SKU.Name != nil {
		r.SKUName = *res.SKU.Name
	}

	props := res.Properties
	if props == nil {
		return r
	}

	if props.DisplayName != nil {
		r.DisplayName = *props.DisplayName
	}
	if r.DisplayName == "" {
		r.DisplayName = r.Name
	}
	if props.ReservedResourceType != nil {
		r.ReservedResourceType = string(*props.ReservedResourceType)
	}
	if props.Quantity != nil {
		r.Quantity = *props.Quantity
	}
	if props.InstanceFlexibility != nil {
		r.InstanceFlexibility = string(*props.InstanceFlexibility)
	}
	if props.ProvisioningState != nil {
		r.ProvisioningState = string(*props.ProvisioningState)
	}
	r.EffectiveDateTime = props.EffectiveDateTime
	r.ExpiryDateTime = props.ExpiryDate

	return r
}

// extractResourceName extracts the trailing resource name from an Azure
// resource ID, e.g. ".../reservationOrders/<order>/reservations/<id>" -> "<id>"
func extractResourceName(resourceID string) string {
	parts := strings.Split(resourceID, "/")
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return resourceID
}
