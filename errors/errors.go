package errors

import "fmt"

var (
	ErrInput         = fmt.Errorf("input directory or manifest is missing")
	ErrManifestParse = fmt.Errorf("manifest cannot be parsed")
	ErrArchive       = fmt.Errorf("archive cannot be built")
	ErrValidation    = fmt.Errorf("archive failed validation")
	ErrSerialization = fmt.Errorf("container cannot be serialized")
	ErrOutput        = fmt.Errorf("output cannot be written")

	ErrEmptyWords      = fmt.Errorf("no words have been found")
	ErrJournalDisabled = fmt.Errorf("no journal path is configured")
)
