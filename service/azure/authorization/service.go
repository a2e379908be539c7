package azureauthorization

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/google/uuid"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	assignmentsClient, err := armauthorization.NewRoleAssignmentsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create role assignments client: %w", err)
	}

	definitionsClient, err := armauthorization.NewRoleDefinitionsClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create role definitions client: %w", err)
	}

	return &service{
		subscriptionID:    subscriptionID,
		assignmentsClient: assignmentsClient,
		definitionsClient: definitionsClient,
	}, nil
}

// ListOwners implements service.AuthorizationService. Only assignments
// whose role definition is Owner are returned; an empty result is valid.
func (s *service) ListOwners(ctx context.Context, scope string) ([]model.RoleAssignment, error) {
	ownerDefinitionID, err := s.ownerRoleDefinitionID(ctx, scope)
	if err != nil {
		return nil, err
	}

	var owners []model.RoleAssignment

	pager := s.assignmentsClient.NewListForScopePager(scope, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list role assignments at %s: %w", scope, err)
		}

		for _, assignment := range page.Value {
			if assignment.Properties == nil || assignment.Properties.RoleDefinitionID == nil {
				continue
			}
			if !sameRoleDefinition(*assignment.Properties.RoleDefinitionID, ownerDefinitionID) {
				continue
			}

			owner := model.RoleAssignment{
				RoleDefinitionName: "Owner",
				Scope:              scope,
			}
			if assignment.Properties.PrincipalID != nil {
				owner.PrincipalID = *assignment.Properties.PrincipalID
			}
			if assignment.Properties.PrincipalType != nil {
				owner.PrincipalType = string(*assignment.Properties.PrincipalType)
			}
			owners = append(owners, owner)
		}
	}

	return owners, nil
}

// CreateOwnerAssignment implements service.AuthorizationService. The
// outcome is whatever the single Create call reports; no retries.
func (s *service) CreateOwnerAssignment(ctx context.Context, scope string, principal model.Principal) error {
	ownerDefinitionID, err := s.ownerRoleDefinitionID(ctx, scope)
	if err != nil {
		return err
	}

	principalType := armauthorization.PrincipalType(principal.PrincipalType)
	parameters := armauthorization.RoleAssignmentCreateParameters{
		Properties: &armauthorization.RoleAssignmentProperties{
			PrincipalID:      to.Ptr(principal.ID),
			PrincipalType:    &principalType,
			RoleDefinitionID: to.Ptr(ownerDefinitionID),
		},
	}

	_, err = s.assignmentsClient.Create(ctx, scope, uuid.NewString(), parameters, nil)
	if err != nil {
		return fmt.Errorf("failed to create Owner assignment at %s: %w", scope, err)
	}

	return nil
}

// ownerRoleDefinitionID looks up the Owner role definition once per run
func (s *service) ownerRoleDefinitionID(ctx context.Context, scope string) (string, error) {
	if s.ownerDefinitionID != "" {
		return s.ownerDefinitionID, nil
	}

	options := &armauthorization.RoleDefinitionsClientListOptions{
		Filter: to.Ptr("roleName eq 'Owner'"),
	}

	pager := s.definitionsClient.NewListPager(scope, options)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to look up Owner role definition: %w", err)
		}

		for _, definition := range page.Value {
			if definition.ID != nil {
				s.ownerDefinitionID = *definition.ID
				return s.ownerDefinitionID, nil
			}
		}
	}

	return "", fmt.Errorf("Owner role definition not found at %s", scope)
}

// sameRoleDefinition compares two role definition IDs by their trailing
// GUID, since assignments may reference the definition at another scope
func sameRoleDefinition(a, b string) bool {
	return strings.EqualFold(lastSegment(a), lastSegment(b))
}

func lastSegment(id string) string {
	parts := strings.Split(id, "/")
	return parts[len(parts)-1]
}
