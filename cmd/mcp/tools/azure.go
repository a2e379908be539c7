package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/reservation-doctor/cmd/mcp/response"
	"github.com/elC0mpa/reservation-doctor/model"
	azureauthorization "github.com/elC0mpa/reservation-doctor/service/azure/authorization"
	azuregraph "github.com/elC0mpa/reservation-doctor/service/azure/graph"
	azurereservations "github.com/elC0mpa/reservation-doctor/service/azure/reservations"
	"github.com/elC0mpa/reservation-doctor/service/status"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterReservationTools registers the read-only reservation tools
func RegisterReservationTools(s *server.MCPServer, subscriptionID string) {
	// List subscriptions (works without specific subscription ID)
	s.AddTool(
		mcp.NewTool("azure_list_subscriptions",
			mcp.WithDescription("List all Azure subscriptions the current credential has access to"),
		),
		makeListSubscriptionsHandler(),
	)

	// Full reservation report with status breakdown
	s.AddTool(
		mcp.NewTool("azure_get_reservation_report",
			mcp.WithDescription("List all reservations across reservation orders with derived status (Active, Expiring Soon, Expired, ...) and per-status counts. Requires AZURE_SUBSCRIPTION_ID."),
		),
		makeReservationReportHandler(),
	)

	// Expired and soon-to-expire reservations
	s.AddTool(
		mcp.NewTool("azure_get_expiring_reservations",
			mcp.WithDescription("List reservations that already expired or expire within the next 30 days. Requires AZURE_SUBSCRIPTION_ID."),
		),
		makeExpiringReservationsHandler(),
	)

	// Owner role assignments per reservation
	s.AddTool(
		mcp.NewTool("azure_get_reservation_owners",
			mcp.WithDescription("List the Owner role assignments on every reservation, with best-effort principal names. Requires AZURE_SUBSCRIPTION_ID."),
		),
		makeReservationOwnersHandler(subscriptionID),
	)
}

func makeListSubscriptionsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		credential, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err)), nil
		}

		client, err := armsubscriptions.NewClient(credential, nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create subscriptions client: %v", err)), nil
		}

		var subscriptions []response.AzureSubscription
		pager := client.NewListPager(nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list subscriptions: %v", err)), nil
			}

			for _, sub := range page.Value {
				if sub.SubscriptionID == nil {
					continue
				}

				displayName := *sub.SubscriptionID
				if sub.DisplayName != nil {
					displayName = *sub.DisplayName
				}
				state := "Unknown"
				if sub.State != nil {
					state = string(*sub.State)
				}

				subscriptions = append(subscriptions, response.AzureSubscription{
					SubscriptionID: *sub.SubscriptionID,
					DisplayName:    displayName,
					State:          state,
				})
			}
		}

		return toolResultJSON(subscriptions)
	}
}

func makeReservationReportHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reservations, errResult := listReservations(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return toolResultJSON(response.ConvertReport(reservations, time.Now()))
	}
}

func makeExpiringReservationsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reservations, errResult := listReservations(ctx)
		if errResult != nil {
			return errResult, nil
		}

		now := time.Now()
		var expiring []response.Reservation
		for _, reservation := range reservations {
			info := status.Classify(reservation, now)
			if info.KnownExpiry && info.DaysUntilExpiry <= 30 {
				expiring = append(expiring, response.ConvertReservation(reservation, now))
			}
		}

		return toolResultJSON(expiring)
	}
}

func makeReservationOwnersHandler(subscriptionID string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if subscriptionID == "" {
			return mcp.NewToolResultError("AZURE_SUBSCRIPTION_ID is not configured"), nil
		}

		credential, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err)), nil
		}

		reservationService, err := azurereservations.NewService(credential)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create reservations service: %v", err)), nil
		}

		authorizationService, err := azureauthorization.NewService(subscriptionID, credential)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create authorization service: %v", err)), nil
		}

		directoryService, err := azuregraph.NewService(credential)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Graph service: %v", err)), nil
		}

		reservations, err := reservationService.ListAllReservations(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list reservations: %v", err)), nil
		}

		var grouped []model.ReservationOwners
		for _, reservation := range reservations {
			entry := model.ReservationOwners{Reservation: reservation}

			owners, err := authorizationService.ListOwners(ctx, reservation.ID)
			if err == nil {
				for _, owner := range owners {
					if principal, err := directoryService.ResolveByObjectID(ctx, owner.PrincipalID); err == nil {
						owner.PrincipalName = principal.DisplayName
					}
					entry.Owners = append(entry.Owners, owner)
				}
			}

			grouped = append(grouped, entry)
		}

		return toolResultJSON(response.ConvertOwners(grouped))
	}
}

func listReservations(ctx context.Context) ([]model.Reservation, *mcp.CallToolResult) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err))
	}

	reservationService, err := azurereservations.NewService(credential)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("Failed to create reservations service: %v", err))
	}

	reservations, err := reservationService.ListAllReservations(ctx)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("Failed to list reservations: %v", err))
	}

	return reservations, nil
}

func toolResultJSON(payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
