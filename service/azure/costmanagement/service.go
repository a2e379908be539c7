package azurecostmanagement

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	client, err := armcostmanagement.NewQueryClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cost management client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// GetMonthToDateCharges implements service.CostService. Best-effort:
// returns actual month-to-date cost keyed by reservation name. Callers
// treat any failure as "cost not available".
func (s *service) GetMonthToDateCharges(ctx context.Context) (map[string]string, error) {
	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	scope := fmt.Sprintf("/subscriptions/%s", s.subscriptionID)

	queryDefinition := armcostmanagement.QueryDefinition{
		Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
		Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: to.Ptr(startDate),
			To:   to.Ptr(now),
		},
		Dataset: &armcostmanagement.QueryDataset{
			Granularity: to.Ptr(armcostmanagement.GranularityTypeDaily),
			Aggregation: map[string]*armcostmanagement.QueryAggregation{
				"totalCost": {
					Name:     to.Ptr("Cost"),
					Function: to.Ptr(armcostmanagement.FunctionTypeSum),
				},
			},
			Grouping: []*armcostmanagement.QueryGrouping{
				{
					Type: to.Ptr(armcostmanagement.QueryColumnTypeDimension),
					Name: to.Ptr("ReservationName"),
				},
			},
		},
	}

	resp, err := s.client.Usage(ctx, scope, queryDefinition, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservation charges: %w", err)
	}

	totals := make(map[string]float64)

	if resp.Properties != nil && resp.Properties.Rows != nil {
		for _, row := range resp.Properties.Rows {
			if len(row) < 2 {
				continue
			}
			// Row format: [cost, reservationName, ...]
			cost, ok := row[0].(float64)
			if !ok {
				continue
			}
			name, ok := row[1].(string)
			if !ok || name == "" {
				continue
			}
			totals[name] += cost
		}
	}

	charges := make(map[string]string, len(totals))
	for name, amount := range totals {
		charges[name] = fmt.Sprintf("%.2f USD", amount)
	}

	return charges, nil
}
