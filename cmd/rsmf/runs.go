package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	errs "rsmf-lab/errors"
	"rsmf-lab/internal"
	"rsmf-lab/repositories"
)

func newRunsCommand(log *slog.Logger, cfg internal.Config) *cobra.Command {
	var (
		dbPath    string
		limit     int
		servePort int
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List journaled runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return fmt.Errorf("%w: set BADGER_FILEPATH or --db", errs.ErrJournalDisabled)
			}

			// Read-only so a concurrent generate keeps its lock
			db, err := repositories.OpenBadgerReadOnly(dbPath)
			if err != nil {
				return fmt.Errorf("database opening failed: %w", err)
			}
			defer func() {
				log.Debug("Closing BadgerDB...")
				_ = db.Close()
			}()

			journal := repositories.NewJournalRepository(db, log)
			records, err := journal.ListRuns(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No runs journaled yet")
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"At", "Run", "Output", "Events", "Entries", "Lang", "Validated", "Duration"})
			table.SetAutoWrapText(false)
			table.SetAutoFormatHeaders(true)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetCenterSeparator("")
			table.SetColumnSeparator("")
			table.SetRowSeparator("")
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetTablePadding("\t")

			for _, r := range records {
				table.Append([]string{
					r.At.Format(time.RFC3339),
					r.ID.String()[:8],
					r.OutputPath,
					strconv.Itoa(r.EventCount),
					strconv.Itoa(r.ArchiveEntries),
					r.Language,
					strconv.FormatBool(r.Validated),
					r.Duration.Round(time.Millisecond).String(),
				})
			}
			table.Render()

			if servePort > 0 {
				endpoint := "/inspect"
				fmt.Fprintf(out, "\n🌐 Journal inspector at http://localhost:%d%s\n", servePort, endpoint)
				database.StartDebugServer(db, servePort, endpoint, runMapper)

				// Bloque jusqu'à Ctrl+C
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				<-ctx.Done()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", cfg.BadgerFilepath, "BadgerDB directory holding the run journal")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to display")
	cmd.Flags().IntVar(&servePort, "serve", 0, "Port for the HTTP journal inspector, 0 disables")
	return cmd
}

func runMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	var record repositories.RunRecord
	if err := json.Unmarshal(val, &record); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	row.Type = "RUN"
	row.Detail = fmt.Sprintf("%s -> %s", record.At.Format("15:04:05"), record.OutputPath)
	row.Scores = fmt.Sprintf("events:%d entries:%d", record.EventCount, record.ArchiveEntries)
	return row
}
