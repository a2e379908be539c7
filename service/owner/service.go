package owner

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/elC0mpa/reservation-doctor/service"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewService(
	authorizationService service.AuthorizationService,
	directoryService service.DirectoryService,
	input *bufio.Scanner,
	output Printer,
) *svc {
	return &svc{
		authorizationService: authorizationService,
		directoryService:     directoryService,
		input:                input,
		output:               output,
		verifyAttempts:       5,
		verifyInterval:       2 * time.Second,
	}
}

// ShowCurrentOwners reads the Owner assignments on each reservation.
// A reservation without owners is a normal result; a read failure is a
// warning and the reservation appears with an empty owner list.
func (s *svc) ShowCurrentOwners(ctx context.Context, reservations []model.Reservation) []model.ReservationOwners {
	grouped := make([]model.ReservationOwners, 0, len(reservations))

	for _, reservation := range reservations {
		entry := model.ReservationOwners{Reservation: reservation}

		owners, err := s.authorizationService.ListOwners(ctx, reservation.ID)
		if err != nil {
			s.output(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprintf("could not read owners of %s: %v", reservation.DisplayName, err))
			grouped = append(grouped, entry)
			continue
		}

		for _, assignment := range owners {
			// assignments only carry object ids; names are best-effort
			if principal, err := s.directoryService.ResolveByObjectID(ctx, assignment.PrincipalID); err == nil {
				assignment.PrincipalName = principal.DisplayName
				if assignment.PrincipalType == "" {
					assignment.PrincipalType = principal.PrincipalType
				}
			}
			entry.Owners = append(entry.Owners, assignment)
		}

		grouped = append(grouped, entry)
	}

	return grouped
}

// ResolvePrincipal tries the identifier as a user first, then as a group.
// The type is never inferred from the shape of the string.
func (s *svc) ResolvePrincipal(ctx context.Context, identifier string) (*model.Principal, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("empty principal identifier")
	}

	if principal, err := s.directoryService.ResolveUser(ctx, identifier); err == nil {
		return principal, nil
	}
	if principal, err := s.directoryService.ResolveGroup(ctx, identifier); err == nil {
		return principal, nil
	}

	return nil, fmt.Errorf("%q is neither a resolvable user nor group", identifier)
}

// AcquirePrincipal runs the interactive loop:
// Prompt -> Validate -> Resolve -> Confirm -> {Accept, Retry, Abort}.
// It returns nil (and no error) when the user aborts.
func (s *svc) AcquirePrincipal(ctx context.Context) (*model.Principal, error) {
	for {
		s.output("Enter a user email/UPN, group name, or object id: ")
		identifier, ok := s.readLine()
		if !ok {
			return nil, nil
		}

		if strings.TrimSpace(identifier) == "" {
			if !s.askRetry("No identifier entered.") {
				return nil, nil
			}
			continue
		}

		principal, err := s.ResolvePrincipal(ctx, identifier)
		if err != nil {
			if !s.askRetry(fmt.Sprintf("Could not resolve %q.", identifier)) {
				return nil, nil
			}
			continue
		}

		s.output(" %s resolved %s (%s, id %s)\n",
			text.FgHiGreen.Sprint("✔"), principal.DisplayName, principal.PrincipalType, principal.ID)
		s.output("Assign Owner to this principal? [y/N]: ")
		answer, ok := s.readLine()
		if !ok {
			return nil, nil
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return principal, nil
		default:
			if !s.askRetry("Assignment not confirmed.") {
				return nil, nil
			}
		}
	}
}

func (s *svc) askRetry(reason string) bool {
	s.output(" %s %s Retry? [y/N]: ", text.FgHiYellow.Sprint("⚠"), reason)
	answer, ok := s.readLine()
	if !ok {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func (s *svc) readLine() (string, bool) {
	if !s.input.Scan() {
		return "", false
	}
	return s.input.Text(), true
}

// FilterReservations restricts the target set to the named subset.
// Unmatched names are silently excluded; an empty list keeps everything.
func FilterReservations(reservations []model.Reservation, namesCSV string) []model.Reservation {
	namesCSV = strings.TrimSpace(namesCSV)
	if namesCSV == "" {
		return reservations
	}

	wanted := make(map[string]bool)
	for _, name := range strings.Split(namesCSV, ",") {
		if name = strings.TrimSpace(name); name != "" {
			wanted[strings.ToLower(name)] = true
		}
	}

	var filtered []model.Reservation
	for _, reservation := range reservations {
		if wanted[strings.ToLower(reservation.Name)] || wanted[strings.ToLower(reservation.DisplayName)] {
			filtered = append(filtered, reservation)
		}
	}

	return filtered
}

// AssignOwner creates one Owner assignment. Under dry-run the external
// call is never made and the outcome is WhatIf.
func (s *svc) AssignOwner(ctx context.Context, reservation model.Reservation, principal model.Principal, dryRun bool) model.AssignmentResult {
	result := model.AssignmentResult{ReservationName: reservation.DisplayName}

	if dryRun {
		result.Outcome = model.AssignmentWhatIf
		return result
	}

	if err := s.authorizationService.CreateOwnerAssignment(ctx, reservation.ID, principal); err != nil {
		result.Outcome = model.AssignmentFailed
		result.Err = err
		return result
	}

	result.Outcome = model.AssignmentSucceeded
	return result
}

// AssignOwnerToAll applies the assignment to every reservation
// independently; one failure never stops the rest.
func (s *svc) AssignOwnerToAll(ctx context.Context, reservations []model.Reservation, principal model.Principal, dryRun bool) model.AssignmentSummary {
	summary := model.AssignmentSummary{}

	for _, reservation := range reservations {
		result := s.AssignOwner(ctx, reservation, principal, dryRun)
		summary.Results = append(summary.Results, result)

		switch result.Outcome {
		case model.AssignmentSucceeded:
			summary.SuccessCount++
		case model.AssignmentWhatIf:
			summary.WhatIfCount++
		case model.AssignmentFailed:
			summary.FailCount++
			summary.FailedNames = append(summary.FailedNames, result.ReservationName)
		}
	}

	return summary
}

// VerifyOwner polls the assignments until the principal shows up or the
// attempts run out. IAM propagation is eventually consistent, so a false
// result means "not visible yet", not "assignment lost".
func (s *svc) VerifyOwner(ctx context.Context, reservation model.Reservation, principal model.Principal) bool {
	for attempt := 0; attempt < s.verifyAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(s.verifyInterval)
		}

		owners, err := s.authorizationService.ListOwners(ctx, reservation.ID)
		if err != nil {
			continue
		}
		for _, owner := range owners {
			if strings.EqualFold(owner.PrincipalID, principal.ID) {
				return true
			}
		}
	}

	return false
}
