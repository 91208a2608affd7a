package volume

import (
	"fmt"

	"labeling/internal/pkg/errs"
)

// Status represents the lifecycle state of a label record.
// It implements a state machine with defined transitions to ensure labels
// follow the correct print-production workflow.
//
// State transitions:
//
//	Generated ──┬──> Labeled ──┬──> Invalidated
//	            │      │  ▲    │
//	            │      └──┘    │
//	            │   (reprint)  │
//	            ├──────────────┴──> Invalidated
//	            └──> Consolidated
//
// Labeled can also reach Consolidated. Invalidated and Consolidated are
// terminal: no transition leaves either state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Generated is the initial status when volumes are decomposed from an
	// invoice. Generated labels may still be deleted.
	Generated

	// Labeled indicates the label has been printed at least once.
	// Labeled records can be reprinted, invalidated, or consolidated,
	// but never deleted.
	Labeled

	// Invalidated indicates the label was withdrawn with a justification.
	// This is a terminal state.
	Invalidated

	// Consolidated indicates the volume was absorbed into a master label.
	// This is a terminal state.
	Consolidated
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Generated:    "Generated",
		Labeled:      "Labeled",
		Invalidated:  "Invalidated",
		Consolidated: "Consolidated",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Generated:    "Generated",
		Labeled:      "Labeled",
		Invalidated:  "Invalidated",
		Consolidated: "Consolidated",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Generated, Labeled, Invalidated, and Consolidated.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Invalidated || s == Consolidated
}

// Print transitions the status to Labeled.
//
// Valid transitions:
//   - Generated -> Labeled (first print)
//   - Labeled -> Labeled (reprint; state-idempotent, a new physical copy)
//
// Returns the new status and whether the call was a reprint, or an error if
// the record is in a terminal state.
func (s Status) Print() (Status, bool, error) {
	switch s {
	case Generated:
		return Labeled, false, nil
	case Labeled:
		return Labeled, true, nil
	default:
		return 0, false, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to print", s.String()),
		)
	}
}

// Invalidate transitions the status to Invalidated.
//
// Valid transitions:
//   - Generated -> Invalidated
//   - Labeled -> Invalidated
//
// Invalidating twice is rejected, as is invalidating a consolidated record.
func (s Status) Invalidate() (Status, error) {
	if s != Generated && s != Labeled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to invalidate", s.String()),
		)
	}
	return Invalidated, nil
}

// Consolidate transitions the status to Consolidated.
//
// Valid transitions:
//   - Generated -> Consolidated
//   - Labeled -> Consolidated
func (s Status) Consolidate() (Status, error) {
	if s != Generated && s != Labeled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to consolidate", s.String()),
		)
	}
	return Consolidated, nil
}

// ValidateDelete checks whether a record in this status may be removed.
// Only Generated records are deletable; anything printed must be invalidated
// instead so the audit trail survives.
func (s Status) ValidateDelete() error {
	if s != Generated {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to delete", s.String()),
		)
	}
	return nil
}
