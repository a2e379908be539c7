package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/elC0mpa/reservation-doctor/model"
	"github.com/elC0mpa/reservation-doctor/service"
	"github.com/elC0mpa/reservation-doctor/service/enricher"
	"github.com/elC0mpa/reservation-doctor/service/export"
	"github.com/elC0mpa/reservation-doctor/service/owner"
	"github.com/elC0mpa/reservation-doctor/utils"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewService(
	identityService service.IdentityService,
	reservationService service.ReservationService,
	enricherService enricher.EnricherService,
	ownerService owner.OwnerService,
	exportService export.ExportService,
) *svc {
	return &svc{
		identityService:    identityService,
		reservationService: reservationService,
		enricherService:    enricherService,
		ownerService:       ownerService,
		exportService:      exportService,
	}
}

// Orchestrate runs the linear flow: discover, enrich, report, then the
// optional export and owner-management steps.
func (s *svc) Orchestrate(flags model.Flags) error {
	ctx := context.Background()

	account, err := s.identityService.GetAccountInfo(ctx)
	if err != nil {
		return err
	}

	reservations, err := s.reservationService.ListAllReservations(ctx)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if len(reservations) == 0 {
		guidance := s.reservationService.Guidance()
		if guidance == "" {
			guidance = "no reservations found"
		}
		fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprint(guidance))
		return nil
	}

	detailed := s.enricherService.EnrichAll(ctx, reservations, time.Now())
	summary := model.NewReportSummary(detailed)

	utils.DrawReservationTable(*account, detailed)
	utils.DrawReservationDetails(detailed)
	utils.DrawStatusChart(summary)
	utils.DrawReportSummary(summary)

	var grouped []model.ReservationOwners
	if flags.Manage || flags.Export {
		grouped = s.ownerService.ShowCurrentOwners(ctx, reservations)
	}
	if flags.Manage {
		utils.DrawOwnerTable(grouped)
	}

	if flags.Export {
		written, err := s.exportService.Export(detailed, grouped, time.Now())
		if err != nil {
			fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprintf("export incomplete: %v", err))
		}
		for _, path := range written {
			fmt.Printf(" %s exported %s\n", text.FgHiGreen.Sprint("✔"), path)
		}
	}

	if flags.Manage {
		return s.manageOwners(ctx, reservations, flags)
	}

	return nil
}

func (s *svc) manageOwners(ctx context.Context, reservations []model.Reservation, flags model.Flags) error {
	targets := owner.FilterReservations(reservations, flags.Reservations)
	if len(targets) == 0 {
		fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprintf("no reservations match %q, nothing to assign", flags.Reservations))
		return nil
	}

	principal, err := s.acquirePrincipal(ctx, flags)
	if err != nil {
		return err
	}
	if principal == nil {
		fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprint("owner assignment cancelled"))
		return nil
	}

	summary := s.ownerService.AssignOwnerToAll(ctx, targets, *principal, flags.DryRun)
	utils.DrawAssignmentTable(summary, *principal)

	if flags.DryRun || summary.SuccessCount == 0 {
		return nil
	}

	// IAM propagation is eventually consistent; poll before re-reading
	for _, target := range targets {
		if !s.ownerService.VerifyOwner(ctx, target, *principal) {
			fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprintf("assignment on %s not visible yet", target.DisplayName))
		}
	}

	utils.DrawOwnerTable(s.ownerService.ShowCurrentOwners(ctx, targets))
	return nil
}

// acquirePrincipal resolves the pre-supplied assignee, or falls back to
// the interactive loop. An unresolvable assignee in batch mode is a
// cancellation, not a fatal error.
func (s *svc) acquirePrincipal(ctx context.Context, flags model.Flags) (*model.Principal, error) {
	if flags.Assignee == "" {
		return s.ownerService.AcquirePrincipal(ctx)
	}

	principal, err := s.ownerService.ResolvePrincipal(ctx, flags.Assignee)
	if err != nil {
		fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprintf("cannot resolve assignee: %v", err))
		return nil, nil
	}
	return principal, nil
}
