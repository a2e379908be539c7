package owner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthorization struct {
	owners      map[string][]model.RoleAssignment
	listErr     map[string]error
	createErr   map[string]error
	createCalls []string
}

func (f *fakeAuthorization) ListOwners(_ context.Context, scope string) ([]model.RoleAssignment, error) {
	if err := f.listErr[scope]; err != nil {
		return nil, err
	}
	return f.owners[scope], nil
}

func (f *fakeAuthorization) CreateOwnerAssignment(_ context.Context, scope string, principal model.Principal) error {
	f.createCalls = append(f.createCalls, scope)
	if err := f.createErr[scope]; err != nil {
		return err
	}
	if f.owners == nil {
		f.owners = make(map[string][]model.RoleAssignment)
	}
	f.owners[scope] = append(f.owners[scope], model.RoleAssignment{
		PrincipalID:        principal.ID,
		PrincipalType:      principal.PrincipalType,
		RoleDefinitionName: "Owner",
		Scope:              scope,
	})
	return nil
}

type fakeDirectory struct {
	users  map[string]*model.Principal
	groups map[string]*model.Principal
}

func (f *fakeDirectory) ResolveUser(_ context.Context, identifier string) (*model.Principal, error) {
	if p, ok := f.users[identifier]; ok {
		return p, nil
	}
	return nil, errors.New("user not found")
}

func (f *fakeDirectory) ResolveGroup(_ context.Context, identifier string) (*model.Principal, error) {
	if p, ok := f.groups[identifier]; ok {
		return p, nil
	}
	return nil, errors.New("group not found")
}

func (f *fakeDirectory) ResolveByObjectID(ctx context.Context, objectID string) (*model.Principal, error) {
	if p, err := f.ResolveUser(ctx, objectID); err == nil {
		return p, nil
	}
	return f.ResolveGroup(ctx, objectID)
}

func newTestService(auth *fakeAuthorization, dir *fakeDirectory, scripted string) (*svc, *strings.Builder) {
	var captured strings.Builder
	s := NewService(auth, dir, bufio.NewScanner(strings.NewReader(scripted)), func(format string, args ...any) {
		fmt.Fprintf(&captured, format, args...)
	})
	s.verifyAttempts = 2
	s.verifyInterval = 0
	return s, &captured
}

func TestAssignOwnerToAll_DryRunNeverCallsCreate(t *testing.T) {
	auth := &fakeAuthorization{}
	s, _ := newTestService(auth, &fakeDirectory{}, "")

	reservations := []model.Reservation{
		{ID: "scope-1", DisplayName: "r1"},
		{ID: "scope-2", DisplayName: "r2"},
		{ID: "scope-3", DisplayName: "r3"},
	}
	principal := model.Principal{ID: "p-1", PrincipalType: model.PrincipalTypeUser}

	summary := s.AssignOwnerToAll(context.Background(), reservations, principal, true)

	assert.Empty(t, auth.createCalls, "dry-run must not invoke the assignment API")
	assert.Equal(t, 3, summary.WhatIfCount)
	assert.Zero(t, summary.SuccessCount)
	assert.Zero(t, summary.FailCount)
	for _, result := range summary.Results {
		assert.Equal(t, model.AssignmentWhatIf, result.Outcome)
	}
}

func TestAssignOwnerToAll_PartialFailureTally(t *testing.T) {
	auth := &fakeAuthorization{
		createErr: map[string]error{
			"scope-2": errors.New("conflict"),
			"scope-4": errors.New("forbidden"),
		},
	}
	s, _ := newTestService(auth, &fakeDirectory{}, "")

	var reservations []model.Reservation
	for i := 1; i <= 5; i++ {
		reservations = append(reservations, model.Reservation{
			ID:          fmt.Sprintf("scope-%d", i),
			DisplayName: fmt.Sprintf("r%d", i),
		})
	}
	principal := model.Principal{ID: "p-1", PrincipalType: model.PrincipalTypeGroup}

	summary := s.AssignOwnerToAll(context.Background(), reservations, principal, false)

	assert.Equal(t, 3, summary.SuccessCount)
	assert.Equal(t, 2, summary.FailCount)
	assert.Equal(t, []string{"r2", "r4"}, summary.FailedNames)
	assert.Len(t, auth.createCalls, 5, "a failure must not stop the remaining assignments")
}

func TestFilterReservations(t *testing.T) {
	reservations := []model.Reservation{
		{Name: "res-1", DisplayName: "prod vms"},
		{Name: "res-2", DisplayName: "sql prod"},
		{Name: "res-3", DisplayName: "cosmos"},
	}

	tests := []struct {
		name  string
		names string
		want  []string
	}{
		{"empty keeps all", "", []string{"res-1", "res-2", "res-3"}},
		{"by display name", "sql prod", []string{"res-2"}},
		{"case insensitive resource name", "RES-3", []string{"res-3"}},
		{"unmatched silently excluded", "res-1, no-such-thing", []string{"res-1"}},
		{"nothing matches", "ghost", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterReservations(reservations, tt.names)
			var names []string
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestResolvePrincipal_UserBeforeGroup(t *testing.T) {
	dir := &fakeDirectory{
		users:  map[string]*model.Principal{"ada@contoso.com": {ID: "u-1", DisplayName: "Ada", PrincipalType: model.PrincipalTypeUser}},
		groups: map[string]*model.Principal{"platform-team": {ID: "g-1", DisplayName: "Platform Team", PrincipalType: model.PrincipalTypeGroup}},
	}
	s, _ := newTestService(&fakeAuthorization{}, dir, "")

	user, err := s.ResolvePrincipal(context.Background(), "ada@contoso.com")
	require.NoError(t, err)
	assert.Equal(t, model.PrincipalTypeUser, user.PrincipalType)

	group, err := s.ResolvePrincipal(context.Background(), "platform-team")
	require.NoError(t, err)
	assert.Equal(t, model.PrincipalTypeGroup, group.PrincipalType)

	_, err = s.ResolvePrincipal(context.Background(), "nobody")
	assert.Error(t, err)

	_, err = s.ResolvePrincipal(context.Background(), "   ")
	assert.Error(t, err)
}

func TestAcquirePrincipal_ConfirmedFirstTry(t *testing.T) {
	dir := &fakeDirectory{
		users: map[string]*model.Principal{"ada@contoso.com": {ID: "u-1", DisplayName: "Ada", PrincipalType: model.PrincipalTypeUser}},
	}
	s, _ := newTestService(&fakeAuthorization{}, dir, "ada@contoso.com\ny\n")

	principal, err := s.AcquirePrincipal(context.Background())
	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, "u-1", principal.ID)
}

func TestAcquirePrincipal_RetryThenConfirm(t *testing.T) {
	dir := &fakeDirectory{
		users: map[string]*model.Principal{"ada@contoso.com": {ID: "u-1", DisplayName: "Ada", PrincipalType: model.PrincipalTypeUser}},
	}
	// bad identifier -> retry -> good identifier -> confirm
	s, _ := newTestService(&fakeAuthorization{}, dir, "typo@contoso.com\ny\nada@contoso.com\ny\n")

	principal, err := s.AcquirePrincipal(context.Background())
	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, "Ada", principal.DisplayName)
}

func TestAcquirePrincipal_UserAborts(t *testing.T) {
	s, _ := newTestService(&fakeAuthorization{}, &fakeDirectory{}, "\nn\n")

	principal, err := s.AcquirePrincipal(context.Background())
	require.NoError(t, err)
	assert.Nil(t, principal, "declining the retry must abort with no principal")
}

func TestAcquirePrincipal_DeclineConfirmationThenAbort(t *testing.T) {
	dir := &fakeDirectory{
		users: map[string]*model.Principal{"ada@contoso.com": {ID: "u-1", DisplayName: "Ada", PrincipalType: model.PrincipalTypeUser}},
	}
	s, _ := newTestService(&fakeAuthorization{}, dir, "ada@contoso.com\nn\nn\n")

	principal, err := s.AcquirePrincipal(context.Background())
	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestShowCurrentOwners(t *testing.T) {
	auth := &fakeAuthorization{
		owners: map[string][]model.RoleAssignment{
			"scope-1": {{PrincipalID: "u-1", PrincipalType: model.PrincipalTypeUser, RoleDefinitionName: "Owner", Scope: "scope-1"}},
		},
		listErr: map[string]error{"scope-2": errors.New("forbidden")},
	}
	dir := &fakeDirectory{
		users: map[string]*model.Principal{"u-1": {ID: "u-1", DisplayName: "Ada", PrincipalType: model.PrincipalTypeUser}},
	}
	s, captured := newTestService(auth, dir, "")

	reservations := []model.Reservation{
		{ID: "scope-1", DisplayName: "r1"},
		{ID: "scope-2", DisplayName: "r2"},
		{ID: "scope-3", DisplayName: "r3"},
	}

	grouped := s.ShowCurrentOwners(context.Background(), reservations)

	require.Len(t, grouped, 3)
	require.Len(t, grouped[0].Owners, 1)
	assert.Equal(t, "Ada", grouped[0].Owners[0].PrincipalName)
	assert.Empty(t, grouped[1].Owners, "failed read yields an empty owner list")
	assert.Contains(t, captured.String(), "could not read owners")
	assert.Empty(t, grouped[2].Owners, "no owners is a normal result")
}

func TestVerifyOwner(t *testing.T) {
	auth := &fakeAuthorization{}
	s, _ := newTestService(auth, &fakeDirectory{}, "")

	reservation := model.Reservation{ID: "scope-1", DisplayName: "r1"}
	principal := model.Principal{ID: "p-1", PrincipalType: model.PrincipalTypeUser}

	assert.False(t, s.VerifyOwner(context.Background(), reservation, principal))

	require.NoError(t, auth.CreateOwnerAssignment(context.Background(), "scope-1", principal))
	assert.True(t, s.VerifyOwner(context.Background(), reservation, principal))
}
