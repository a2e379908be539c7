package azuregraph

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"

	"github.com/elC0mpa/reservation-doctor/model"
)

type service struct {
	client *msgraphsdk.GraphServiceClient
}

type DirectoryService interface {
	ResolveUser(ctx context.Context, identifier string) (*model.Principal, error)
	ResolveGroup(ctx context.Context, identifier string) (*model.Principal, error)
	ResolveByObjectID(ctx context.Context, objectID string) (*model.Principal, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
