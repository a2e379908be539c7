package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	azureauthorization "github.com/elC0mpa/reservation-doctor/service/azure/authorization"
	azureconfig "github.com/elC0mpa/reservation-doctor/service/azure/config"
	azurecostmanagement "github.com/elC0mpa/reservation-doctor/service/azure/costmanagement"
	azuregraph "github.com/elC0mpa/reservation-doctor/service/azure/graph"
	azureidentity "github.com/elC0mpa/reservation-doctor/service/azure/identity"
	azurereservations "github.com/elC0mpa/reservation-doctor/service/azure/reservations"
	azureresources "github.com/elC0mpa/reservation-doctor/service/azure/resources"
	"github.com/elC0mpa/reservation-doctor/service/enricher"
	"github.com/elC0mpa/reservation-doctor/service/export"
	"github.com/elC0mpa/reservation-doctor/service/flag"
	"github.com/elC0mpa/reservation-doctor/service/orchestrator"
	"github.com/elC0mpa/reservation-doctor/service/owner"
	"github.com/elC0mpa/reservation-doctor/utils"
	"github.com/jedib0t/go-pretty/v6/text"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		fail(err)
	}

	if flags.Subscription == "" {
		fail(errors.New("no subscription: pass -subscription or set AZURE_SUBSCRIPTION_ID"))
	}

	utils.StartSpinner()

	cfgService, err := azureconfig.NewService()
	if err != nil {
		fail(err)
	}
	credential := cfgService.GetCredential()

	identityService, err := azureidentity.NewService(flags.Subscription, credential)
	if err != nil {
		fail(err)
	}

	reservationService, err := azurereservations.NewService(credential)
	if err != nil {
		fail(err)
	}

	resourceService, err := azureresources.NewService(flags.Subscription, credential)
	if err != nil {
		fail(err)
	}

	authorizationService, err := azureauthorization.NewService(flags.Subscription, credential)
	if err != nil {
		fail(err)
	}

	directoryService, err := azuregraph.NewService(credential)
	if err != nil {
		fail(err)
	}

	costService, err := azurecostmanagement.NewService(flags.Subscription, credential)
	if err != nil {
		fail(err)
	}

	enricherService := enricher.NewService(reservationService, resourceService, costService)
	ownerService := owner.NewService(authorizationService, directoryService, bufio.NewScanner(os.Stdin), func(format string, args ...any) {
		fmt.Printf(format, args...)
	})
	exportService := export.NewService(flags.OutputDir)

	orchestratorService := orchestrator.NewService(identityService, reservationService, enricherService, ownerService, exportService)

	if err := orchestratorService.Orchestrate(flags); err != nil {
		fail(err)
	}
}

func fail(err error) {
	utils.StopSpinner()
	fmt.Fprintf(os.Stderr, "%s %v\n", text.FgHiRed.Sprint("✗"), err)
	os.Exit(1)
}
