// roster builds a lab funding roster, prints its total cost and optionally
// applies a funding source to it.
//
// Students come from a YAML file (--students or ROSTER_STUDENTS_FILE) or,
// when none is given, from the built-in sample intake.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"lab-funding/internal/config"
	"lab-funding/internal/funding"
	"lab-funding/internal/report"
	"lab-funding/internal/seed"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var source, account string
	var quiet bool

	flagSet := pflag.NewFlagSet("roster", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.IntVar(&cfg.Year, "year", cfg.Year, "period label for the roster (0 for none)")
	flagSet.StringVar(&cfg.StudentsFile, "students", cfg.StudentsFile, "YAML file listing students (default: built-in sample)")
	flagSet.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flagSet.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	flagSet.StringVar(&source, "source", "", "funding source to apply: NSERC, CIHR or None")
	flagSet.StringVar(&account, "account", "", "account number for the funding source")
	flagSet.BoolVarP(&quiet, "quiet", "q", false, "skip the structured funding log record")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	logger, err := config.NewLogger(cfg, stderr)
	if err != nil {
		return err
	}

	entries, err := seed.LoadFile(cfg.StudentsFile)
	if err != nil {
		return err
	}

	roster := funding.NewRoster(cfg.Year)
	for _, e := range entries {
		roster.AddStudent(e.Name, e.FundingPerYear, e.YearsNeeded)
	}
	logger.Debug("roster loaded", "year", roster.Year(), "students", roster.Len())

	fmt.Fprintf(stdout, "Total cost: %s\n", strconv.FormatFloat(roster.TotalCost(), 'f', -1, 64))

	if !flagSet.Changed("source") {
		return nil
	}

	reporters := report.Multi{&report.ConsoleReporter{W: stdout}}
	if !quiet {
		reporters = append(reporters, &report.SlogReporter{Logger: logger})
	}

	service := funding.NewService(reporters, logger)
	if _, err := service.Assign(ctx, roster, source, account); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Status: %s\n", roster.Status())
	return nil
}
