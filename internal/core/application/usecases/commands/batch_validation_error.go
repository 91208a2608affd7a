package commands

import (
	"fmt"
	"strings"

	"labeling/internal/pkg/errs"
)

// ItemValidation names the mandatory fields one batch item is missing.
type ItemValidation struct {
	Code          string
	MissingFields []string
}

// BatchValidationError refuses an entire batch because at least one item is
// missing a mandatory field. Unlike persistence failures, which are handled
// per item, validation failures reject the whole batch so the operator fixes
// the input once instead of chasing stragglers.
type BatchValidationError struct {
	Items []ItemValidation
}

func (e *BatchValidationError) Error() string {
	parts := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		parts = append(parts, fmt.Sprintf("%s: missing %s", item.Code, strings.Join(item.MissingFields, ", ")))
	}
	return fmt.Sprintf("batch refused, %d item(s) failed mandatory-field validation: %s",
		len(e.Items), strings.Join(parts, "; "))
}

func (e *BatchValidationError) Unwrap() error {
	return errs.ErrValueIsRequired
}
