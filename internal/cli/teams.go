package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	appteams "github.com/preston-bernstein/mlbcal/internal/app/teams"
	"github.com/preston-bernstein/mlbcal/internal/lookup"
)

const teamsUsage = `Usage: mlbcal-teams [SEASON] [flags]

Rebuild the team lookup table from the MLB stats API. SEASON defaults to
the current year.

Flags:
`

// TeamsOptions holds the parsed mlbcal-teams command line.
type TeamsOptions struct {
	Season  int
	Output  string
	Verbose bool
}

// ParseTeamsArgs parses mlbcal-teams arguments.
func ParseTeamsArgs(args []string, now time.Time, stderr io.Writer) (TeamsOptions, error) {
	opts := TeamsOptions{Season: now.Year()}
	fs := pflag.NewFlagSet("mlbcal-teams", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, teamsUsage)
		fs.PrintDefaults()
	}
	fs.StringVarP(&opts.Output, "output", "o", "", "write the lookup JSON to this path (default: stdout)")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		season, err := strconv.Atoi(rest[0])
		if err != nil || season <= 0 {
			return opts, fmt.Errorf("invalid season %q", rest[0])
		}
		opts.Season = season
	default:
		return opts, fmt.Errorf("expected at most one season, got %d arguments", len(rest))
	}
	return opts, nil
}

// RunTeams executes the mlbcal-teams command and returns its exit code.
func RunTeams(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := ParseTeamsArgs(args, time.Now(), stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "mlbcal-teams: %v\n", err)
		return exitUsage
	}

	ctx, sess, err := newSession(ctx, "mlbcal-teams", opts.Verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "mlbcal-teams: %v\n", err)
		return exitFailure
	}
	defer sess.close(ctx)

	start := time.Now()
	err = runTeams(ctx, sess, opts, stdout)
	sess.metrics.RecordRun(time.Since(start), err)
	if err != nil {
		fmt.Fprintf(stderr, "mlbcal-teams: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func runTeams(ctx context.Context, sess *session, opts TeamsOptions, stdout io.Writer) (err error) {
	svc := appteams.NewService(newProviderFactory(sess.logger, sess.metrics).teams(sess.cfg), nil, sess.logger)
	table, err := svc.BuildTable(ctx, opts.Season)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		return lookup.Write(stdout, table)
	}
	f, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return lookup.Write(f, table)
}
