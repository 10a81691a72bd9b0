package main

import (
	"context"
	"errors"
	"flight-analytics-service/internal/adapters/repositories"
	"flight-analytics-service/internal/app"
	"flight-analytics-service/internal/config"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/platform/db"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	maxErrors  int
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "dbtool",
		Short:         "Administer the flight analytics database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().IntVar(&opts.maxErrors, "max-errors", 20, "row errors to print per file (0 prints all)")

	cmd.AddCommand(
		newMigrateCommand(opts),
		newImportAirportsCommand(opts),
		newLoadAirlinesCommand(opts),
		newLoadRoutesCommand(opts),
		newReportCommand(opts),
	)
	return cmd
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cfg.Store != config.StorePostgres {
				return errors.New("migrate: requires the postgres store")
			}

			conn, err := db.Open(cmd.Context(), cfg.DatabaseDSN(), db.DefaultPoolOptions())
			if err != nil {
				return err
			}
			defer conn.Close()

			log.Println("Applying migrations...")
			if err := repositories.Migrate(conn); err != nil {
				return err
			}
			v, err := repositories.MigrationVersion(conn)
			if err != nil {
				return err
			}
			log.Printf("Schema ready. version=%d", v)
			return nil
		},
	}
}

// withRepositories opens the configured store, migrated, for the duration of fn.
func withRepositories(ctx context.Context, opts *rootOptions, fn func(*config.Config, app.Repositories) error) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	repos, closeRepos, err := app.OpenRepositories(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer closeRepos()

	return fn(cfg, repos)
}

func newImportAirportsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import-airports <file>",
		Short: "Import airports from a legacy .dat file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepositories(cmd.Context(), opts, func(cfg *config.Config, repos app.Repositories) error {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("import airports: %w", err)
				}
				defer f.Close()

				report, err := app.NewImporter(cfg, repos).Import(cmd.Context(), f, filepath.Base(args[0]))
				if err != nil {
					return err
				}

				renderSummary(cmd.OutOrStdout(), report.Filename, table.Row{"Total", report.TotalRecords},
					table.Row{"Inserted", report.RecordsInserted},
					table.Row{"Skipped (duplicate)", report.SkippedDuplicate},
					table.Row{"Skipped (error)", report.SkippedError},
				)
				renderErrors(cmd.OutOrStdout(), report.Errors, opts.maxErrors)
				return nil
			})
		},
	}
}

func newLoadAirlinesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load-airlines <file>",
		Short: "Upsert airlines from the airlines CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepositories(cmd.Context(), opts, func(_ *config.Config, repos app.Repositories) error {
				return runLoad(cmd, args[0], opts, app.NewCatalogLoader(repos).LoadAirlines)
			})
		},
	}
}

func newLoadRoutesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load-routes <file>",
		Short: "Insert routes from the pipe-separated routes export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepositories(cmd.Context(), opts, func(_ *config.Config, repos app.Repositories) error {
				return runLoad(cmd, args[0], opts, app.NewCatalogLoader(repos).LoadRoutes)
			})
		},
	}
}

type loadFunc func(ctx context.Context, r io.Reader, filename string) (domain.LoadReport, error)

func runLoad(cmd *cobra.Command, path string, opts *rootOptions, load loadFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	report, err := load(cmd.Context(), f, filepath.Base(path))
	if err != nil {
		return err
	}

	renderSummary(cmd.OutOrStdout(), report.Filename,
		table.Row{"Created", report.Created},
		table.Row{"Updated", report.Updated},
		table.Row{"Errors", len(report.Errors)},
	)
	renderErrors(cmd.OutOrStdout(), report.Errors, opts.maxErrors)
	return nil
}

func renderSummary(w io.Writer, title string, rows ...table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Outcome", "Count"})
	t.AppendRows(rows)
	t.Render()
}

func renderErrors(w io.Writer, errs []string, limit int) {
	if len(errs) == 0 {
		return
	}

	shown := errs
	if limit > 0 && len(errs) > limit {
		shown = errs[:limit]
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Error"})
	for i, e := range shown {
		t.AppendRow(table.Row{i + 1, e})
	}
	if len(shown) < len(errs) {
		t.AppendFooter(table.Row{"", fmt.Sprintf("... %d more", len(errs)-len(shown))})
	}
	t.Render()
}
