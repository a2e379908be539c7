package azureauthorization

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/elC0mpa/reservation-doctor/model"
)

type service struct {
	subscriptionID    string
	assignmentsClient *armauthorization.RoleAssignmentsClient
	definitionsClient *armauthorization.RoleDefinitionsClient
	ownerDefinitionID string
}

type AuthorizationService interface {
	ListOwners(ctx context.Context, scope string) ([]model.RoleAssignment, error)
	CreateOwnerAssignment(ctx context.Context, scope string, principal model.Principal) error
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
