package azuregraph

import (
	"context"
	"fmt"
	"strings"

	"github.com/elC0mpa/reservation-doctor/model"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	graphgroups "github.com/microsoftgraph/msgraph-sdk-go/groups"
)

func NewService(credential *Credential) (*service, error) {
	client, err := msgraphsdk.NewGraphServiceClientWithCredentials(credential, []string{"https://graph.microsoft.com/.default"})
	if err != nil {
		return nil, fmt.Errorf("failed to create Graph client: %w", err)
	}

	return &service{client: client}, nil
}

// ResolveUser implements service.DirectoryService. The identifier may be
// a UPN or an object id; Graph accepts either on the same path.
func (s *service) ResolveUser(ctx context.Context, identifier string) (*model.Principal, error) {
	user, err := s.client.Users().ByUserId(identifier).Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("user %q not found: %w", identifier, err)
	}

	principal := &model.Principal{PrincipalType: model.PrincipalTypeUser}
	if id := user.GetId(); id != nil {
		principal.ID = *id
	}
	if name := user.GetDisplayName(); name != nil {
		principal.DisplayName = *name
	}
	if upn := user.GetUserPrincipalName(); upn != nil {
		principal.UserPrincipalName = *upn
	}

	return principal, nil
}

// ResolveGroup implements service.DirectoryService. Object id is tried
// first, then an exact displayName match.
func (s *service) ResolveGroup(ctx context.Context, identifier string) (*model.Principal, error) {
	group, err := s.client.Groups().ByGroupId(identifier).Get(ctx, nil)
	if err == nil {
		principal := &model.Principal{PrincipalType: model.PrincipalTypeGroup}
		if id := group.GetId(); id != nil {
			principal.ID = *id
		}
		if name := group.GetDisplayName(); name != nil {
			principal.DisplayName = *name
		}
		return principal, nil
	}

	filter := fmt.Sprintf("displayName eq '%s'", strings.ReplaceAll(identifier, "'", "''"))
	configuration := &graphgroups.GroupsRequestBuilderGetRequestConfiguration{
		QueryParameters: &graphgroups.GroupsRequestBuilderGetQueryParameters{
			Filter: &filter,
		},
	}

	result, err := s.client.Groups().Get(ctx, configuration)
	if err != nil {
		return nil, fmt.Errorf("group %q not found: %w", identifier, err)
	}

	groups := result.GetValue()
	if len(groups) == 0 {
		return nil, fmt.Errorf("group %q not found", identifier)
	}

	principal := &model.Principal{PrincipalType: model.PrincipalTypeGroup}
	if id := groups[0].GetId(); id != nil {
		principal.ID = *id
	}
	if name := groups[0].GetDisplayName(); name != nil {
		principal.DisplayName = *name
	}

	return principal, nil
}

// ResolveByObjectID implements service.DirectoryService; used to put
// display names on role assignments, which only carry object ids.
func (s *service) ResolveByObjectID(ctx context.Context, objectID string) (*model.Principal, error) {
	if principal, err := s.ResolveUser(ctx, objectID); err == nil {
		return principal, nil
	}
	if principal, err := s.ResolveGroup(ctx, objectID); err == nil {
		return principal, nil
	}
	return nil, fmt.Errorf("no user or group with object id %q", objectID)
}
