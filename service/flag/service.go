package flag

import (
	"flag"
	"os"

	"github.com/elC0mpa/reservation-doctor/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	subscription := flag.String("subscription", os.Getenv("AZURE_SUBSCRIPTION_ID"), "Azure subscription ID (defaults to AZURE_SUBSCRIPTION_ID)")
	manage := flag.Bool("manage", false, "Run the owner management workflow after the report")
	dryRun := flag.Bool("dry-run", false, "Record intended owner assignments without creating them")
	assignee := flag.String("assignee", "", "Principal to assign as Owner (email, group name, or object id); skips the prompt")
	reservations := flag.String("reservations", "", "Comma-separated reservation names to restrict owner management to")
	export := flag.Bool("export", false, "Export the report to CSV files")
	output := flag.String("output", "./reports", "Directory for exported CSV files")

	flag.Parse()

	return model.Flags{
		Subscription: *subscription,
		Manage:       *manage,
		DryRun:       *dryRun,
		Assignee:     *assignee,
		Reservations: *reservations,
		Export:       *export,
		OutputDir:    *output,
	}, nil
}
