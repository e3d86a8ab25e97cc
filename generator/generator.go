// Package generator runs the full pipeline: package the input directory,
// gate it through validation, parse the manifest, render the timeline,
// and write the container. One call, one output file, or no file at all.
package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"rsmf-lab/archive"
	"rsmf-lab/contract"
	"rsmf-lab/domain/manifest"
	errs "rsmf-lab/errors"
	"rsmf-lab/moderation"
	"rsmf-lab/observability"
	"rsmf-lab/repositories"
	"rsmf-lab/rsmf"
	"rsmf-lab/transcript"
)

var validate = validator.New()

// Options is the immutable per-invocation configuration. One value per
// run, passed at construction, never mutated afterwards.
type Options struct {
	Generator        string `validate:"required"`
	CustodianDisplay string
	CustodianEmail   string `validate:"omitempty,email"`
	Validate         bool
	RedactionWords   []string
	MaskRune         rune
}

func DefaultOptions() Options {
	return Options{
		Generator: "rsmf-lab",
		MaskRune:  '*',
	}
}

// Result summarizes one successful run.
type Result struct {
	RunID          uuid.UUID
	OutputPath     string
	OutputSha256   string
	Version        string
	EventCount     int
	Participants   int
	ArchiveEntries int
	Language       string
	RedactedTerms  []string
	Duration       time.Duration
}

type Generator struct {
	log       *slog.Logger
	opts      Options
	validator contract.IValidator
	redactor  *moderation.Redactor
	journal   repositories.IJournalRepository
	index     repositories.ITranscriptIndex
}

// New builds a generator. The validator is only consulted when the
// validate option is on; journal and index are optional and may be nil.
func New(log *slog.Logger, opts Options, v contract.IValidator,
	journal repositories.IJournalRepository, index repositories.ITranscriptIndex) (*Generator, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	if opts.Validate && v == nil {
		return nil, fmt.Errorf("options: validation is on but no validator is wired")
	}

	g := &Generator{
		log:       log,
		opts:      opts,
		validator: v,
		journal:   journal,
		index:     index,
	}

	if len(opts.RedactionWords) > 0 {
		mask := opts.MaskRune
		if mask == 0 {
			mask = '*'
		}
		redactor, err := moderation.NewRedactor(opts.RedactionWords, mask, log)
		if err != nil {
			return nil, fmt.Errorf("redaction: %w", err)
		}
		g.redactor = &redactor
	}

	log.Debug("Generator ready",
		"generator", opts.Generator,
		"validate", opts.Validate,
		"validator", contract.GetValidatorName(v),
		"redaction_words", len(opts.RedactionWords))
	return g, nil
}

// Generate turns inputDir into one container file at outputPath. Every
// stage fails fast; nothing is written unless all of them succeed.
func (g *Generator) Generate(ctx context.Context, inputDir, outputPath string) (Result, error) {
	start := time.Now()
	runID := uuid.New()
	log := g.log.With("run_id", runID)
	log.Info("Starting run", "input", inputDir, "output", outputPath)

	// 1. Input contract: the directory and its manifest must exist, and the
	// output must not land inside the directory being packaged.
	if err := checkInput(inputDir, outputPath); err != nil {
		return Result{}, err
	}

	// 2. Archive the whole directory, manifest included
	ar, err := archive.Build(inputDir)
	if err != nil {
		return Result{}, err
	}
	log.Debug("Archive built", "entries", len(ar.Entries), "bytes", len(ar.Data))

	// 3. Validation gate. A Failed classification aborts the run with the
	// aggregated error lines; warnings are retained on the report only.
	if g.opts.Validate {
		report, err := g.validator.Validate(ctx, ar)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", errs.ErrValidation, err)
		}
		if !report.Passed() {
			return Result{}, fmt.Errorf("%w:\n%s", errs.ErrValidation, report.ErrorText())
		}
		if len(report.Warnings) > 0 {
			log.Debug("Validator warnings retained", "count", len(report.Warnings))
		}
	}

	// 4. Manifest
	m, err := manifest.ParseFile(filepath.Join(inputDir, manifest.Filename))
	if err != nil {
		return Result{}, err
	}

	// 5. Timeline and body text
	tl := transcript.NewTimeline(m)
	body := tl.Body()

	var redactedTerms []string
	if g.redactor != nil {
		body, redactedTerms = g.redactor.Redact(body)
		if len(redactedTerms) > 0 {
			log.Info("Body redacted", "terms", len(redactedTerms))
		}
	}

	// 6. Headers
	custodian := rsmf.Identity{Display: g.opts.CustodianDisplay, Email: g.opts.CustodianEmail}
	headers := rsmf.BuildHeaders(m, tl, g.opts.Generator, custodian)

	// 7. Container
	msg, err := rsmf.Assemble(headers, body, ar)
	if err != nil {
		return Result{}, err
	}
	data, err := msg.Serialize()
	if err != nil {
		return Result{}, err
	}

	// 8. Output file
	if err := rsmf.WriteFile(data, outputPath); err != nil {
		return Result{}, err
	}

	sum := sha256.Sum256(data)
	result := Result{
		RunID:          runID,
		OutputPath:     outputPath,
		OutputSha256:   hex.EncodeToString(sum[:]),
		Version:        m.Version,
		EventCount:     tl.Count(),
		Participants:   len(m.Participants),
		ArchiveEntries: len(ar.Entries),
		Language:       transcript.DetectLanguage(tl.Events()),
		RedactedTerms:  redactedTerms,
		Duration:       time.Since(start),
	}

	// 9. Journal and index are best-effort: the output file already exists,
	// a bookkeeping failure must not turn the run into an error.
	g.journalRun(result, inputDir, body)

	// 10. Self stats
	observability.LogSnapshot(log)

	log.Info("Run finished",
		"output", result.OutputPath,
		"events", result.EventCount,
		"entries", result.ArchiveEntries,
		"duration_ms", result.Duration.Milliseconds())
	return result, nil
}

func (g *Generator) journalRun(result Result, inputDir, body string) {
	if g.journal == nil && g.index == nil {
		return
	}

	record := repositories.RunRecord{
		ID:             result.RunID,
		InputDir:       inputDir,
		OutputPath:     result.OutputPath,
		Version:        result.Version,
		EventCount:     result.EventCount,
		Participants:   result.Participants,
		ArchiveEntries: result.ArchiveEntries,
		OutputSha256:   result.OutputSha256,
		Language:       result.Language,
		Validated:      g.opts.Validate,
		Duration:       result.Duration,
		At:             time.Now().UTC(),
	}

	if g.journal != nil {
		if err := g.journal.StoreRun(record); err != nil {
			g.log.Warn("Journal write failed", "run_id", record.ID, "err", err)
		}
	}
	if g.index != nil {
		if err := g.index.IndexRun(record, body); err != nil {
			g.log.Warn("Index write failed", "run_id", record.ID, "err", err)
		}
	}
}

func checkInput(inputDir, outputPath string) error {
	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", errs.ErrInput, inputDir)
	}
	if _, err := os.Stat(filepath.Join(inputDir, manifest.Filename)); err != nil {
		return fmt.Errorf("%w: %s misses %s", errs.ErrInput, inputDir, manifest.Filename)
	}

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInput, err)
	}
	absOutputDir, err := filepath.Abs(filepath.Dir(outputPath))
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInput, err)
	}
	// Writing into the packaged directory would make the archive pick up a
	// partially written output on the next run
	if absInput == absOutputDir {
		return fmt.Errorf("%w: output %s sits inside the input directory", errs.ErrInput, outputPath)
	}
	return nil
}
