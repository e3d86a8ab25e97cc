package main

import (
	"fmt"
	"log/slog"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"rsmf-lab/contract"
	"rsmf-lab/generator"
	"rsmf-lab/internal"
	"rsmf-lab/moderation"
	"rsmf-lab/repositories"
	"rsmf-lab/validation"
)

func newGenerateCommand(log *slog.Logger, cfg internal.Config) *cobra.Command {
	var (
		validate         bool
		generatorLabel   string
		custodianDisplay string
		custodianEmail   string
		redactPath       string
		dbPath           string
		indexPath        string
	)

	cmd := &cobra.Command{
		Use:   "generate <input-dir> <output-file>",
		Short: "Build one container file from a transcript directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputDir, outputPath := args[0], args[1]

			mask, err := internal.CharacterRune(cfg.CharReplacement)
			if err != nil {
				return err
			}

			opts := generator.Options{
				Generator:        generatorLabel,
				CustodianDisplay: custodianDisplay,
				CustodianEmail:   custodianEmail,
				Validate:         validate,
				MaskRune:         mask,
			}
			if redactPath != "" {
				words, err := moderation.LoadWordlist(redactPath)
				if err != nil {
					return fmt.Errorf("wordlist %s: %w", redactPath, err)
				}
				opts.RedactionWords = words
			}

			var v contract.IValidator
			if validate {
				v = validation.NewStructural(log)
			}

			// Journal and index stay nil unless a path is configured
			var journal repositories.IJournalRepository
			var index repositories.ITranscriptIndex
			if dbPath != "" {
				db, err := repositories.OpenBadger(dbPath)
				if err != nil {
					return fmt.Errorf("database opening failed: %w", err)
				}
				defer func() {
					log.Debug("Closing BadgerDB...")
					_ = db.Close()
				}()
				journal = repositories.NewJournalRepository(db, log)
			}
			if indexPath != "" {
				writer, err := repositories.OpenBlugeWriter(indexPath)
				if err != nil {
					return fmt.Errorf("failed to open bluge writer: %w", err)
				}
				defer func() {
					log.Debug("Closing Bluge...")
					_ = writer.Close()
				}()
				index = repositories.NewTranscriptIndex(writer, log)
			}

			gen, err := generator.New(log, opts, v, journal, index)
			if err != nil {
				return err
			}

			result, err := gen.Generate(cmd.Context(), inputDir, outputPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, color.Green.Render("✅ Container written"))
			fmt.Fprintf(out, "  File:     %s\n", result.OutputPath)
			fmt.Fprintf(out, "  Sha256:   %s\n", result.OutputSha256)
			fmt.Fprintf(out, "  Events:   %d\n", result.EventCount)
			fmt.Fprintf(out, "  Archived: %d files\n", result.ArchiveEntries)
			if result.Language != "" {
				fmt.Fprintf(out, "  Language: %s\n", result.Language)
			}
			if len(result.RedactedTerms) > 0 {
				fmt.Fprintf(out, "  Redacted: %d terms\n", len(result.RedactedTerms))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", cfg.Validate, "Run the structural validator before writing")
	cmd.Flags().StringVar(&generatorLabel, "generator", cfg.Generator, "Generator label stamped into the container")
	cmd.Flags().StringVar(&custodianDisplay, "custodian-display", cfg.CustodianDisplay, "Custodian display name")
	cmd.Flags().StringVar(&custodianEmail, "custodian-email", cfg.CustodianEmail, "Custodian email address")
	cmd.Flags().StringVar(&redactPath, "redact", cfg.RedactionFilepath, "Path to a redaction wordlist, one word per line")
	cmd.Flags().StringVar(&dbPath, "db", cfg.BadgerFilepath, "BadgerDB directory for the run journal")
	cmd.Flags().StringVar(&indexPath, "index", cfg.BlugeFilepath, "Bluge directory for the transcript index")

	return cmd
}
