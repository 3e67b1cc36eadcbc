// Package cli implements the mlbcal and mlbcal-teams commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"

	appschedule "github.com/preston-bernstein/mlbcal/internal/app/schedule"
	"github.com/preston-bernstein/mlbcal/internal/domain/games"
	"github.com/preston-bernstein/mlbcal/internal/lookup"
	"github.com/preston-bernstein/mlbcal/internal/output"
	"github.com/preston-bernstein/mlbcal/internal/providers"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const scheduleUsage = `Usage: mlbcal TEAM [flags]

Download the MLB calendar for a team. Default output is JSON.

Flags:
`

// ScheduleOptions holds the parsed mlbcal command line.
type ScheduleOptions struct {
	Team      string
	Year      int
	CSV       bool
	NoPre     bool
	Full      bool
	ListTeams bool
	File      string
	Timezone  string
	Verbose   bool
}

// ParseScheduleArgs parses mlbcal arguments. Usage text goes to stderr.
func ParseScheduleArgs(args []string, stderr io.Writer) (ScheduleOptions, error) {
	var opts ScheduleOptions
	fs := pflag.NewFlagSet("mlbcal", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, scheduleUsage)
		fs.PrintDefaults()
	}
	fs.IntVar(&opts.Year, "year", 0, "change schedule year (default: current year)")
	fs.BoolVar(&opts.CSV, "csv", false, "format results as csv (default: json)")
	fs.BoolVar(&opts.NoPre, "nopre", false, "filter out preseason spring training games")
	fs.BoolVar(&opts.Full, "full", false, "emit the raw upstream game objects")
	fs.BoolVar(&opts.ListTeams, "teams", false, "list the team lookup table and exit")
	fs.StringVar(&opts.File, "file", "", "read a saved schedule document instead of fetching")
	fs.StringVar(&opts.Timezone, "timezone", "", "zone for local date and time fields (default: host zone)")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	rest := fs.Args()
	switch {
	case opts.ListTeams:
	case len(rest) == 0:
		return opts, errors.New("team name is required")
	case len(rest) > 1:
		return opts, fmt.Errorf("expected one team, got %d arguments", len(rest))
	default:
		opts.Team = rest[0]
	}
	if opts.Full && opts.CSV {
		return opts, errors.New("--full output is JSON only and cannot be combined with --csv")
	}
	if opts.Year < 0 {
		return opts, fmt.Errorf("invalid year %d", opts.Year)
	}
	return opts, nil
}

// RunSchedule executes the mlbcal command and returns its exit code.
func RunSchedule(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := ParseScheduleArgs(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "mlbcal: %v\n", err)
		return exitUsage
	}

	ctx, sess, err := newSession(ctx, "mlbcal", opts.Verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "mlbcal: %v\n", err)
		return exitFailure
	}
	defer sess.close(ctx)

	start := time.Now()
	err = runSchedule(ctx, sess, opts, stdout)
	sess.metrics.RecordRun(time.Since(start), err)
	if err != nil {
		fmt.Fprintf(stderr, "mlbcal: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func runSchedule(ctx context.Context, sess *session, opts ScheduleOptions, stdout io.Writer) error {
	table, err := lookup.Default()
	if err != nil {
		return err
	}
	if opts.ListTeams {
		return lookup.Write(stdout, table)
	}

	tz := opts.Timezone
	if tz == "" {
		tz = sess.cfg.Timezone
	}
	loc, err := providers.ResolveTimezone(tz)
	if err != nil {
		return err
	}

	provider := newProviderFactory(sess.logger, sess.metrics).schedule(sess.cfg, opts.File)
	svc := appschedule.NewService(table, provider, games.NewNormalizer(loc), sess.logger, sess.metrics)
	res, err := svc.Run(ctx, appschedule.Request{
		Team:             opts.Team,
		Year:             opts.Year,
		ExcludePreseason: opts.NoPre,
		Full:             opts.Full,
	})
	if err != nil {
		return err
	}

	if opts.Full {
		return output.WriteRaw(stdout, res.Raw)
	}
	format := output.FormatJSON
	if opts.CSV {
		format = output.FormatCSV
	}
	return output.WriteGames(stdout, format, res.Games)
}
