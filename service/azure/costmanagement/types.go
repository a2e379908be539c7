package azurecostmanagement

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
)

type service struct {
	subscriptionID string
	client         *armcostmanagement.QueryClient
}

type CostService interface {
	GetMonthToDateCharges(ctx context.Context) (map[string]string, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
