package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"rsmf-lab/domain/search"
	"rsmf-lab/internal"
	"rsmf-lab/repositories"
)

func newSearchCommand(log *slog.Logger, cfg internal.Config) *cobra.Command {
	var indexPath string

	cmd := &cobra.Command{
		Use:   "search <terms...>",
		Short: "Search indexed transcript bodies, supports --lang xx and --limit n",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if indexPath == "" {
				return fmt.Errorf("no index configured, set BLUGE_FILEPATH or --index")
			}

			query := search.NewSearchQuery(strings.Join(args, " "))
			log.Debug("Searching transcripts",
				"terms", query.Terms, "lang", query.Language, "limit", query.Limit)

			writer, err := repositories.OpenBlugeWriter(indexPath)
			if err != nil {
				return fmt.Errorf("failed to open bluge writer: %w", err)
			}
			defer func() {
				log.Debug("Closing Bluge...")
				_ = writer.Close()
			}()

			index := repositories.NewTranscriptIndex(writer, log)
			matches, err := index.Search(cmd.Context(), *query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, "No matches")
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Run", "Output", "At", "Score"})
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

			for _, m := range matches {
				table.Append([]string{
					m.RunID,
					m.OutputPath,
					m.At,
					fmt.Sprintf("%.3f", m.Score),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", cfg.BlugeFilepath, "Bluge directory holding the transcript index")
	// Everything after the first term belongs to the query grammar, not cobra
	cmd.Flags().SetInterspersed(false)
	return cmd
}
