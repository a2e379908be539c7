package azureresources

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cosmos/armcosmos/v3"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/sql/armsql"
	"github.com/elC0mpa/reservation-doctor/model"
)

type service struct {
	subscriptionID  string
	vmClient        *armcompute.VirtualMachinesClient
	serversClient   *armsql.ServersClient
	databasesClient *armsql.DatabasesClient
	cosmosClient    *armcosmos.DatabaseAccountsClient
}

type ResourceService interface {
	FindAffectedResources(ctx context.Context, reservation model.Reservation) []string
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
