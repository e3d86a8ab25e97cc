// Package validation ships the built-in archive validators.
package validation

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"rsmf-lab/archive"
	"rsmf-lab/contract"
	"rsmf-lab/domain/manifest"
)

// warn threshold for a single decompressed entry
const maxEntrySize = 1 << 30

type Structural struct {
	log *slog.Logger
}

func NewStructural(log *slog.Logger) *Structural {
	return &Structural{
		log: log,
	}
}

// Validate checks that the archive opens as a zip, carries the manifest,
// and that every entry decompresses cleanly to its recorded size. It
// classifies the archive without mutating it; an error return means the
// validator itself was interrupted, not that the archive is bad.
func (v *Structural) Validate(ctx context.Context, ar *archive.Archive) (contract.Report, error) {
	report := contract.Report{Status: contract.StatusPassed}

	zr, err := ar.Open()
	if err != nil {
		report.Status = contract.StatusFailed
		report.Errors = append(report.Errors, fmt.Sprintf("archive does not open as a zip: %v", err))
		return report, nil
	}

	if _, ok := ar.Entry(manifest.Filename); !ok {
		report.Status = contract.StatusFailed
		report.Errors = append(report.Errors, fmt.Sprintf("archive misses %s", manifest.Filename))
	}

	for _, zf := range zr.File {
		if err := ctx.Err(); err != nil {
			return contract.Report{}, err
		}

		rc, err := zf.Open()
		if err != nil {
			report.Status = contract.StatusFailed
			report.Errors = append(report.Errors, fmt.Sprintf("%s: entry does not open: %v", zf.Name, err))
			continue
		}
		// Reading to EOF forces the CRC check
		if _, err := io.Copy(io.Discard, rc); err != nil {
			report.Status = contract.StatusFailed
			report.Errors = append(report.Errors, fmt.Sprintf("%s: corrupt entry: %v", zf.Name, err))
		}
		_ = rc.Close()

		if zf.UncompressedSize64 > maxEntrySize {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s is larger than 1GB", zf.Name))
		}
	}

	if len(ar.Entries) == 1 && ar.Entries[0].Name == manifest.Filename {
		report.Warnings = append(report.Warnings, "archive holds only the manifest, no attachments")
	}

	v.log.Debug("Validation finished",
		"validator", contract.GetValidatorName(v),
		"status", report.Status.String(),
		"errors", len(report.Errors),
		"warnings", len(report.Warnings))

	return report, nil
}
