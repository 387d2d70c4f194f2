package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pfrederiksen/mlb-gamedata/internal/config"
	"github.com/pfrederiksen/mlb-gamedata/internal/export"
	"github.com/pfrederiksen/mlb-gamedata/internal/gameday"
	"github.com/pfrederiksen/mlb-gamedata/internal/logger"
	"github.com/pfrederiksen/mlb-gamedata/internal/scraper"
	"github.com/pfrederiksen/mlb-gamedata/internal/storage"
	"github.com/spf13/cobra"
)

const argCount = 2

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mlb-gamedata <date> <output-file>",
		Short: "Export one day of MLB games to CSV",
		Long: `Gets the data from a given day in MLB history and stores it in a CSV file.
The date must be provided in ISO format (YYYY-MM-DD).`,
		Example:       "  mlb-gamedata 2022-04-07 games.csv",
		Args:          validateArgs,
		RunE:          runExport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return cmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) != argCount {
		return &ArgumentCountError{Got: len(args), Want: argCount}
	}
	return nil
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	date, err := gameday.ParseDate(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.SetDefault(logger.New(cfg.LogLevel, cmd.ErrOrStderr()))

	out, err := storage.New(args[1])
	if err != nil {
		return fmt.Errorf("initializing output: %w", err)
	}

	sc := scraper.New(scraper.Config{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		StripMode: cfg.StripMode,
	})

	day, err := sc.FetchGameDay(cmd.Context(), date)
	if err != nil {
		return fmt.Errorf("fetching games for %s: %w", args[0], err)
	}

	exp := export.New(gameday.AllowList(), cmd.OutOrStdout())
	written, err := exp.WriteFile(out, day.Games)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	writeSummary(cmd.OutOrStdout(), day, out.Path(), written)
	logMetrics()
	return nil
}

// printHelp writes the long description and usage to w
func printHelp(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintf(w, "%s\n\n%s", cmd.Long, cmd.UsageString())
}

// Run executes the root command with args and returns the exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if showsHelp(err) {
		fmt.Fprintln(stderr)
		printHelp(stderr, cmd)
	}
	return ExitCode(err)
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	logger.Default().Sync() // nolint:errcheck
	os.Exit(code)
}
