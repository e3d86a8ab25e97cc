package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"rsmf-lab/archive"
	"rsmf-lab/domain/manifest"
	"rsmf-lab/transcript"
)

func newInspectCommand(log *slog.Logger) *cobra.Command {
	var termCount int

	cmd := &cobra.Command{
		Use:   "inspect <input-dir>",
		Short: "Preview what a directory would package, without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputDir := args[0]

			ar, err := archive.Build(inputDir)
			if err != nil {
				return err
			}
			m, err := manifest.ParseFile(filepath.Join(inputDir, manifest.Filename))
			if err != nil {
				return err
			}
			tl := transcript.NewTimeline(m)
			log.Debug("Inspection built", "entries", len(ar.Entries), "events", tl.Count())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Manifest version %s: %d participants, %d events\n",
				m.Version, len(m.Participants), tl.Count())
			if first, ok := tl.First(); ok && first.Timestamp != "" {
				fmt.Fprintf(out, "First event: %s\n", first.Timestamp)
			}
			if last, ok := tl.Last(); ok && last.Timestamp != "" {
				fmt.Fprintf(out, "Last event:  %s\n", last.Timestamp)
			}
			if lang := transcript.DetectLanguage(tl.Events()); lang != "" {
				fmt.Fprintf(out, "Language:    %s\n", lang)
			}
			fmt.Fprintln(out)

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Entry", "Type", "Size", "Sha256"})
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

			for _, e := range ar.Entries {
				// Les 12 premiers caractères suffisent pour comparer à l'oeil
				digest := e.Sha256
				if len(digest) > 12 {
					digest = digest[:12]
				}
				table.Append([]string{
					e.Name,
					string(e.MimeType),
					fmt.Sprintf("%d", e.Size),
					digest,
				})
			}
			table.Render()

			if termCount > 0 {
				terms := transcript.TopTerms(tl.Events(), termCount)
				if len(terms) > 0 {
					fmt.Fprintln(out, "\nFrequent terms:")
					for _, term := range terms {
						fmt.Fprintf(out, "  %s (%d)\n", term.Text, term.Count)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&termCount, "terms", 5, "Number of frequent terms to display, 0 disables")
	return cmd
}
