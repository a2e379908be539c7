package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var loadingSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func DrawBanner() {
	banner := figure.NewFigure("rsv doctor", "", true)
	banner.Print()
}

func StartSpinner() {
	loadingSpinner.Suffix = " Collecting reservation data..."
	loadingSpinner.Start()
}

func StopSpinner() {
	loadingSpinner.Stop()
}
