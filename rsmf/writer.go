package rsmf

import (
	"fmt"
	"os"
	"path/filepath"

	errs "rsmf-lab/errors"
)

// WriteFile lands the serialized container at outputPath through a
// temporary file in the destination directory plus one rename, so a
// failed run never leaves a partial output behind.
func WriteFile(data []byte, outputPath string) error {
	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, ".rsmf-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrOutput, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", errs.ErrOutput, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", errs.ErrOutput, err)
	}

	if err := os.Rename(tmpName, outputPath); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %v", errs.ErrOutput, err)
	}
	return nil
}
