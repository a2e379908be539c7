package azurereservations

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/reservations/armreservations"
	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewService(credential *Credential) (*service, error) {
	orderClient, err := armreservations.NewReservationOrderClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation order client: %w", err)
	}

	reservationClient, err := armreservations.NewReservationClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation client: %w", err)
	}

	return &service{
		orderClient:       orderClient,
		reservationClient: reservationClient,
	}, nil
}

// ListAllReservations implements service.ReservationService.
// A clean permission/not-found failure on the top-level order listing is
// converted to an empty result plus guidance text; anything else is fatal.
// Per-order listing failures are warnings and the order is skipped.
func (s *service) ListAllReservations(ctx context.Context) ([]model.Reservation, error) {
	s.guidance = ""

	orders, err := s.listOrders(ctx)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) {
			switch respErr.StatusCode {
			case http.StatusForbidden:
				s.guidance = "the signed-in identity has no permission to read reservation orders; ask for Reader on Microsoft.Capacity"
				return nil, nil
			case http.StatusNotFound:
				s.guidance = "no reservation orders are visible on this tenant path"
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to list reservation orders: %w", err)
	}

	if len(orders) == 0 {
		s.guidance = "no reservation orders found; nothing has been purchased on this subscription's billing scope"
		return nil, nil
	}

	reservations := collectAcrossOrders(orders, s.listByOrder(ctx), warn)
	return reservations, nil
}

// Guidance explains an empty discovery result, when one was produced
func (s *service) Guidance() string {
	return s.guidance
}

func (s *service) listOrders(ctx context.Context) ([]model.ReservationOrder, error) {
	var orders []model.ReservationOrder

	pager := s.orderClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, order := range page.Value {
			orders = append(orders, normalizeOrder(order))
		}
	}

	return orders, nil
}

func (s *service) listByOrder(ctx context.Context) func(model.ReservationOrder) ([]model.Reservation, error) {
	return func(order model.ReservationOrder) ([]model.Reservation, error) {
		var reservations []model.Reservation

		pager := s.reservationClient.NewListPager(order.Name, nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, err
			}

			for _, res := range page.Value {
				reservations = append(reservations, normalizeReservation(order, res))
			}
		}

		return reservations, nil
	}
}

// collectAcrossOrders gathers reservations order by order. A failing order
// contributes nothing and is reported through warn; the rest still count.
func collectAcrossOrders(
	orders []model.ReservationOrder,
	list func(model.ReservationOrder) ([]model.Reservation, error),
	warn func(format string, args ...any),
) []model.Reservation {
	var all []model.Reservation

	for _, order := range orders {
		reservations, err := list(order)
		if err != nil {
			warn("skipping order %s: %v", order.Name, err)
			continue
		}
		all = append(all, reservations...)
	}

	return all
}

// GetUtilization implements service.ReservationService. The reservations
// API only carries utilization aggregates on the single-reservation GET,
// and even there they are frequently absent.
func (s *service) GetUtilization(ctx context.Context, reservation model.Reservation) (model.UtilizationSummary, error) {
	resp, err := s.reservationClient.Get(ctx, reservation.Name, reservation.ParentOrderName, nil)
	if err != nil {
		return model.UtilizationSummary{}, fmt.Errorf("failed to get reservation %s: %w", reservation.Name, err)
	}

	if resp.Properties == nil || resp.Properties.Utilization == nil {
		return model.UtilizationSummary{}, nil
	}

	return summarizeAggregates(resp.Properties.Utilization.Aggregates), nil
}

func summarizeAggregates(aggregates []*armreservations.ReservationUtilizationAggregates) model.UtilizationSummary {
	summary := model.UtilizationSummary{}

	for _, agg := range aggregates {
		if agg == nil || agg.Value == nil {
			continue
		}

		value := float64(*agg.Value)
		if summary.DataPointCount == 0 {
			summary.MinUtilization = value
			summary.MaxUtilization = value
		} else {
			if value < summary.MinUtilization {
				summary.MinUtilization = value
			}
			if value > summary.MaxUtilization {
				summary.MaxUtilization = value
			}
		}
		summary.AverageUtilization += value
		summary.DataPointCount++
	}

	if summary.DataPointCount > 0 {
		summary.Available = true
		summary.AverageUtilization /= float64(summary.DataPointCount)
	}

	return summary
}

func warn(format string, args ...any) {
	fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprintf(format, args...))
}
