package azureresources

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cosmos/armcosmos/v3"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/sql/armsql"
	"github.com/elC0mpa/reservation-doctor/model"
)

// unfilteredNote flags the known imprecision for SQL and Cosmos discovery:
// those listings are not narrowed by the reservation's SKU or tier.
const unfilteredNote = "note: unfiltered list, may include resources outside this reservation's tier"

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	vmClient, err := armcompute.NewVirtualMachinesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create VM client: %w", err)
	}

	serversClient, err := armsql.NewServersClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQL servers client: %w", err)
	}

	databasesClient, err := armsql.NewDatabasesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQL databases client: %w", err)
	}

	cosmosClient, err := armcosmos.NewDatabaseAccountsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cosmos accounts client: %w", err)
	}

	return &service{
		subscriptionID:  subscriptionID,
		vmClient:        vmClient,
		serversClient:   serversClient,
		databasesClient: databasesClient,
		cosmosClient:    cosmosClient,
	}, nil
}

// FindAffectedResources implements service.ResourceService. Results are
// descriptive strings, approximate by design; a query failure becomes a
// descriptive entry instead of aborting the enrichment.
func (s *service) FindAffectedResources(ctx context.Context, reservation model.Reservation) []string {
	switch reservation.ReservedResourceType {
	case "VirtualMachines":
		return s.findMatchingVMs(ctx, reservation.SKUName)
	case "SqlDatabases":
		return s.findSQLDatabases(ctx)
	case "CosmosDb":
		return s.findCosmosAccounts(ctx)
	default:
		return []string{fmt.Sprintf("automatic discovery not implemented for resource type %q", reservation.ReservedResourceType)}
	}
}

// findMatchingVMs returns VMs whose size equals the reservation's SKU name
func (s *service) findMatchingVMs(ctx context.Context, skuName string) []string {
	var matches []string

	pager := s.vmClient.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return append(matches, fmt.Sprintf("error listing virtual machines: %v", err))
		}

		for _, vm := range page.Value {
			if vm.Name == nil || vm.Properties == nil || vm.Properties.HardwareProfile == nil ||
				vm.Properties.HardwareProfile.VMSize == nil {
				continue
			}
			size := string(*vm.Properties.HardwareProfile.VMSize)
			if !strings.EqualFold(size, skuName) {
				continue
			}

			rg := extractResourceGroup(deref(vm.ID))
			matches = append(matches, fmt.Sprintf("VM %s (size %s, resource group %s)", *vm.Name, size, rg))
		}
	}

	if len(matches) == 0 {
		return []string{fmt.Sprintf("no VMs of size %s found in subscription", skuName)}
	}
	return matches
}

// findSQLDatabases lists every SQL database in the subscription; see unfilteredNote
func (s *service) findSQLDatabases(ctx context.Context) []string {
	results := []string{unfilteredNote}
	found := false

	serverPager := s.serversClient.NewListPager(nil)
	for serverPager.More() {
		page, err := serverPager.NextPage(ctx)
		if err != nil {
			return append(results, fmt.Sprintf("error listing SQL servers: %v", err))
		}

		for _, server := range page.Value {
			if server.Name == nil || server.ID == nil {
				continue
			}
			rg := extractResourceGroup(*server.ID)

			dbPager := s.databasesClient.NewListByServerPager(rg, *server.Name, nil)
			for dbPager.More() {
				dbPage, err := dbPager.NextPage(ctx)
				if err != nil {
					results = append(results, fmt.Sprintf("error listing databases on server %s: %v", *server.Name, err))
					break
				}

				for _, db := range dbPage.Value {
					if db.Name == nil || strings.EqualFold(*db.Name, "master") {
						continue
					}
					tier := ""
					if db.SKU != nil && db.SKU.Name != nil {
						tier = *db.SKU.Name
					}
					results = append(results, fmt.Sprintf("SQL database %s/%s (sku %s)", *server.Name, *db.Name, tier))
					found = true
				}
			}
		}
	}

	if !found {
		return []string{"no SQL databases found in subscription"}
	}
	return results
}

// findCosmosAccounts lists every Cosmos DB account in the subscription; see unfilteredNote
func (s *service) findCosmosAccounts(ctx context.Context) []string {
	results := []string{unfilteredNote}
	found := false

	pager := s.cosmosClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return append(results, fmt.Sprintf("error listing Cosmos DB accounts: %v", err))
		}

		for _, account := range page.Value {
			if account.Name == nil {
				continue
			}
			kind := ""
			if account.Kind != nil {
				kind = string(*account.Kind)
			}
			results = append(results, fmt.Sprintf("Cosmos DB account %s (kind %s)", *account.Name, kind))
			found = true
		}
	}

	if !found {
		return []string{"no Cosmos DB accounts found in subscription"}
	}
	return results
}

// extractResourceGroup extracts the resource group from an Azure resource ID
func extractResourceGroup(resourceID string) string {
	parts := strings.Split(resourceID, "/")
	for i, part := range parts {
		if strings.EqualFold(part, "resourceGroups") && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
