package utils

import (
	"time"

	"github.com/briandowns/spinner"
)

var apiSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func StartSpinner() {
	apiSpinner.Suffix = " Inspecting DNS forwarding zones..."
	apiSpinner.Start()
}

func StopSpinner() {
	apiSpinner.Stop()
}
