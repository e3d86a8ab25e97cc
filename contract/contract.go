//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"strings"

	"rsmf-lab/archive"
)

type Status int

const (
	StatusPassed Status = iota
	StatusFailed
)

func (s Status) String() string {
	if s == StatusPassed {
		return "Passed"
	}
	return "Failed"
}

// Report is the outcome of one validation pass.
// Warnings are retained for the record but nothing downstream reads them yet.
type Report struct {
	Status   Status
	Errors   []string
	Warnings []string
}

func (r Report) Passed() bool {
	return r.Status == StatusPassed
}

// ErrorText joins the errors one per line, ready to surface as a single failure.
func (r Report) ErrorText() string {
	return strings.Join(r.Errors, "\n")
}

// IValidator classifies a built archive before anything is written.
// A validator only decides Passed or Failed, it never mutates the archive.
type IValidator interface {
	Validate(ctx context.Context, ar *archive.Archive) (Report, error)
}

// GetValidatorName uses reflection to retrieve the type name of the validator.
// This is used for logging during pipeline construction, avoiding the need
// for manual naming in the IValidator interface.
func GetValidatorName(v IValidator) string {
	if v == nil {
		return "NilValidator"
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
