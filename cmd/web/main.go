// The web command runs the property report generator's HTTP service:
// upload a listing spreadsheet, get the branded PDF report back.
package main

import (
	"context"
	"fmt"
	"os"

	"busireport/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		application.Logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
