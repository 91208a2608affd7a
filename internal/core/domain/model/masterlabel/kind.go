package masterlabel

import (
	"fmt"

	"labeling/internal/pkg/errs"
)

// Kind distinguishes the two consolidation modes a master label supports.
// It is immutable once the master label is created.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindGeneral is a free-form consolidation unit: volumes may be linked
	// regardless of any previous consolidation they were released from.
	KindGeneral

	// KindPallet is a palletized consolidation unit: candidate volumes must
	// not belong to a different master label.
	KindPallet
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		KindGeneral: "General",
		KindPallet:  "Pallet",
	}
}

// KindFromString parses the persisted/wire form of a Kind.
// Accepts "general" and "pallet" (case-sensitive, matching storage).
func KindFromString(s string) (Kind, error) {
	switch s {
	case "general":
		return KindGeneral, nil
	case "pallet":
		return KindPallet, nil
	default:
		return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
			"master label kind",
			fmt.Errorf("%q is not a valid kind", s),
		)
	}
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k != KindGeneral && k != KindPallet {
		return errs.NewValueIsInvalidErrorWithCause(
			"master label kind",
			fmt.Errorf("%d is not a valid kind", k),
		)
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Storage returns the persisted form of the kind: "general" or "pallet".
func (k Kind) Storage() string {
	switch k {
	case KindGeneral:
		return "general"
	case KindPallet:
		return "pallet"
	default:
		return "unknown"
	}
}
