// The report command generates a property report directly from a local
// spreadsheet, without going through the web service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"busireport/internal/config"
	"busireport/internal/infrastructure"
	"busireport/internal/services"
	"busireport/pkg/contracts/domain"
)

func main() {
	var (
		file       = flag.String("file", "", "path to the property spreadsheet (.xlsx, .xls or .csv)")
		brand      = flag.String("brand", "busivet", "brand preset: busivet or busihealth")
		secondLine = flag.String("second-line", "Landscape Report & Site Search", "second line of the cover title")
		thirdLine  = flag.String("third-line", "", "third line of the cover title (location)")
		reportDate = flag.String("date", "", "report date, e.g. '26 March 2025'")
	)
	flag.Parse()

	if *file == "" || *thirdLine == "" || *reportDate == "" {
		fmt.Fprintln(os.Stderr, "usage: report -file data.xlsx -third-line 'Oran Park & Mickleham' -date '26 March 2025' [-brand busivet]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Paths.EnsureDirectories(); err != nil {
		logger.Error("failed to ensure directories", "error", err)
		os.Exit(1)
	}

	service := services.NewReportServiceWithLogger(cfg, logger)
	generated, err := service.Generate(context.Background(), *file, domain.ReportRequest{
		BrandKey:   *brand,
		SecondLine: *secondLine,
		ThirdLine:  *thirdLine,
		ReportDate: *reportDate,
	})
	if err != nil {
		logger.Error("report generation failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(generated.Path)
}
