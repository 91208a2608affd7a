package kernel

import (
	"fmt"
	"strings"
	"time"

	"labeling/internal/pkg/errs"
)

// ErrVolumeCodeIsNotConstructed indicates that a VolumeCode was not created through
// AllocateVolumeCode or VolumeCodeFromString.
var ErrVolumeCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"VolumeCode must be created via AllocateVolumeCode or VolumeCodeFromString",
)

// codeStampLayout renders the generation instant as day, month, two-digit year
// and hour, with minutes and seconds deliberately dropped. Truncating to the
// hour keeps the code short enough to type from a thermal label while still
// telling apart reprint batches from different shifts.
const codeStampLayout = "02010615"

// VolumeCode is the stable, human-readable identity of one physical volume.
// It is a value object derived from the invoice number, the volume's sequence
// position within the invoice, and the generation instant:
//
//	<cleanedInvoiceNumber>-<seq, zero-padded to 3>-<ddmmyyHH>
//
// Example: invoice "12.345", volume 2, generated 2026-08-28 15:04 local time
// yields "12345-002-28082615".
//
// Allocation is deterministic and total over its inputs. Uniqueness within one
// generation batch follows from the distinct sequence numbers; uniqueness
// across batches generated for the same invoice within the same hour is not
// guaranteed here and is enforced by the labels table's unique code constraint
// at commit time.
type VolumeCode struct {
	value string
}

// AllocateVolumeCode derives the identity for one volume of an invoice.
//
// The invoice number is stripped of every non-alphanumeric character, the
// sequence number is zero-padded to three digits, and the generation instant
// is stamped truncated to the hour. The three parts are joined with hyphens.
//
// This function never fails: any invoice number (including an empty one) and
// any sequence produce a code. Callers that need batch-level uniqueness must
// enforce it themselves.
func AllocateVolumeCode(invoiceNumber string, sequence int, generatedAt time.Time) VolumeCode {
	return VolumeCode{
		value: fmt.Sprintf("%s-%03d-%s",
			cleanInvoiceNumber(invoiceNumber),
			sequence,
			generatedAt.Format(codeStampLayout),
		),
	}
}

// VolumeCodeFromString reconstructs a VolumeCode from its persisted string form.
// Returns an error if the string is empty.
func VolumeCodeFromString(s string) (VolumeCode, error) {
	if strings.TrimSpace(s) == "" {
		return VolumeCode{}, errs.NewValueIsRequiredError("volume code")
	}
	return VolumeCode{value: s}, nil
}

// String returns the code in its wire/display form.
func (c VolumeCode) String() string {
	return c.value
}

// IsEqual compares two codes for equality.
func (c VolumeCode) IsEqual(other VolumeCode) bool {
	return c.value == other.value
}

// Validate checks that the code was produced by a constructor.
// The zero value is invalid.
func (c VolumeCode) Validate() error {
	if c.value == "" {
		return ErrVolumeCodeIsNotConstructed
	}
	return nil
}

// cleanInvoiceNumber strips everything but letters and digits, so formatted
// invoice numbers ("12.345", "NF 12345/1") collapse to a compact code prefix.
func cleanInvoiceNumber(invoiceNumber string) string {
	var b strings.Builder
	b.Grow(len(invoiceNumber))
	for _, r := range invoiceNumber {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
