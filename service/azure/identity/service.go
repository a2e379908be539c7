package azureidentity

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/reservation-doctor/model"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	client, err := armsubscriptions.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// GetAccountInfo implements service.IdentityService. The display name
// falls back to the raw subscription id when the API omits it.
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	resp, err := s.client.Get(ctx, s.subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription %s: %w", s.subscriptionID, err)
	}

	info := &model.AccountInfo{
		Provider:    "azure",
		AccountID:   s.subscriptionID,
		AccountName: s.subscriptionID,
	}
	if resp.DisplayName != nil {
		info.AccountName = *resp.DisplayName
	}
	if resp.TenantID != nil {
		info.TenantID = *resp.TenantID
	}
	if resp.State != nil {
		info.State = string(*resp.State)
	}

	return info, nil
}
