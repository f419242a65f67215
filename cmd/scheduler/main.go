/*
Package main - Shift Scheduler CLI Entry Point

==============================================================================
FILE: cmd/scheduler/main.go
==============================================================================

DESCRIPTION:
    The command-line entry point for the shift scheduler. Reads one
    ScheduleRequest as JSON from a file or stdin, runs the full
    pipeline (internal/scheduler), and writes the ScheduleResponse as JSON
    to stdout or a file, with optional .xlsx/.pdf export alongside it.

USER PERSPECTIVE:
    - `scheduler -in request.json -out response.json` runs one solve
    - `-xlsx schedule.xlsx` / `-pdf schedule.pdf` additionally render the
      solved schedule to spreadsheet/report form
    - With no -in, the request is read from stdin; with no -out, the
      response is written to stdout

DEVELOPER GUIDELINES:
    OK to modify: add new flags, new export formats
    CAUTION: exit codes - non-zero only on a pipeline error;
        INFEASIBLE/UNKNOWN solver outcomes exit 0 with their status in the
        JSON body; solver outcomes are data, not failures

==============================================================================
*/
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"shiftsched/internal/config"
	"shiftsched/internal/export"
	"shiftsched/internal/logger"
	"shiftsched/internal/models"
	"shiftsched/internal/scheduler"
)

func main() {
	inPath := flag.String("in", "", "path to a ScheduleRequest JSON file (default: stdin)")
	outPath := flag.String("out", "", "path to write the ScheduleResponse JSON (default: stdout)")
	xlsxPath := flag.String("xlsx", "", "optional path to write an .xlsx export of the solved schedule")
	pdfPath := flag.String("pdf", "", "optional path to write a .pdf export of the solved schedule")
	flag.Parse()

	appConfig, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("scheduler: failed to load configuration: %v", err)
	}
	appLog := logger.Setup(appConfig.Env)

	req, err := readRequest(*inPath)
	if err != nil {
		appLog.WithError(err).Fatal("failed to read schedule request")
	}

	sched := scheduler.New(appLog, appConfig)
	resp, err := sched.Solve(context.Background(), req)
	if err != nil {
		appLog.WithError(err).Fatal("solve failed")
	}

	if err := writeResponse(*outPath, resp); err != nil {
		appLog.WithError(err).Fatal("failed to write schedule response")
	}

	if *xlsxPath != "" {
		data, err := export.ScheduleToXLSX(resp)
		if err != nil {
			appLog.WithError(err).Fatal("failed to render xlsx export")
		}
		if err := os.WriteFile(*xlsxPath, data, 0o644); err != nil {
			appLog.WithError(err).Fatal("failed to write xlsx export")
		}
	}

	if *pdfPath != "" {
		data, err := export.ScheduleToPDF(resp, req.Year, req.Month)
		if err != nil {
			appLog.WithError(err).Fatal("failed to render pdf export")
		}
		if err := os.WriteFile(*pdfPath, data, 0o644); err != nil {
			appLog.WithError(err).Fatal("failed to write pdf export")
		}
	}
}

func readRequest(path string) (*models.ScheduleRequest, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var req models.ScheduleRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func writeResponse(path string, resp *models.ScheduleResponse) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}
