// process-due records all recurring items that are due as of a date and
// prints a localized summary of the run. It is meant to be started by cron
// or a systemd timer.
//
// The exit status is 1 when the run failed or any item could not be
// processed completely.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dojo-ledger/backend/internal/config"
	"github.com/dojo-ledger/backend/internal/messages"
	"github.com/dojo-ledger/backend/internal/models"
	"github.com/dojo-ledger/backend/internal/money"
	"github.com/dojo-ledger/backend/internal/recurring"
	"github.com/dojo-ledger/backend/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var errActorMissing = errors.New("-actor must be set")

func main() {
	output := io.Writer(os.Stderr)
	if os.Getenv("LOG_FORMAT") != "json" {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

// run processes the due items and returns the exit status.
func run(ctx context.Context, args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("process-due", flag.ContinueOnError)
	date := flags.String("date", "", "process items due on or before this date, YYYY-MM-DD. Defaults to today")
	actor := flags.String("actor", "", "who the generated transactions are recorded by")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*actor) == "" {
		log.Error().Err(errActorMissing).Msg("process-due")
		return 2
	}

	asOf := recurring.SystemClock{}.Today()
	if *date != "" {
		parsed, err := types.ParseDate(*date)
		if err != nil {
			log.Error().Err(err).Str("date", *date).Msg("process-due")
			return 2
		}
		asOf = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("process-due")
		return 1
	}

	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Error().Err(err).Msg("process-due")
		return 1
	}

	err = models.Connect(cfg.DSN())
	if err != nil {
		log.Error().Err(err).Msg("process-due")
		return 1
	}
	defer func() {
		if sqlDB, err := models.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	formatter, err := money.NewFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		log.Error().Err(err).Msg("process-due")
		return 1
	}

	processor := recurring.NewProcessor(models.NewRecurringStore(models.DB), models.NewLedger(models.DB))
	report, err := processor.ProcessDue(ctx, asOf, *actor)
	if err != nil {
		log.Error().Err(err).Str("asOf", asOf.String()).Msg("process-due")
		return 1
	}

	printer := messages.NewPrinter(cfg.Locale, formatter, cfg.DisplayDateFormat)
	fmt.Fprintln(stdout, printer.SummaryText(report))

	if !report.OK() {
		return 1
	}

	return 0
}
