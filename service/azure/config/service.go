package azureconfig

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// NewService builds the credential shared by every Azure-facing service.
// DefaultAzureCredential covers environment variables, managed identity,
// Azure CLI and Azure PowerShell sessions.
func NewService() (*service, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	return &service{credential: credential}, nil
}

func (s *service) GetCredential() *azidentity.DefaultAzureCredential {
	return s.credential
}
