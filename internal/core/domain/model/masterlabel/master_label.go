package masterlabel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/pkg/errs"
	"labeling/internal/pkg/guard"
)

// Domain errors for master label operations.
var (
	// ErrMasterLabelIsNotConstructed is returned when using an improperly initialized MasterLabel.
	ErrMasterLabelIsNotConstructed = errors.New("MasterLabel must be created via NewMasterLabel constructor")
	// ErrMasterLabelIsTerminal is returned when mutating an invalidated or consolidated master label.
	ErrMasterLabelIsTerminal = errors.New("master label is in a terminal status")
	// ErrMasterLabelStillHoldsVolumes is returned when deleting a master label
	// that still has volumes linked to it.
	ErrMasterLabelStillHoldsVolumes = errors.New("master label still holds linked volumes")
	// ErrVolumeNotLinked is returned when unlinking a volume the master label does not hold.
	ErrVolumeNotLinked = errors.New("volume is not linked to this master label")
)

// MasterLabel is a consolidation unit: one label representing a group of
// volumes moved together, typically on a pallet. It is an aggregate root.
//
// Invariants:
//   - Kind is immutable once created
//   - The volume count always equals the number of distinct volume codes
//     currently linked, after any sequence of link/unlink operations
//   - A master label holding volumes cannot be deleted
//   - Status follows the same lifecycle as an ordinary label
//
// The master label owns weak references (codes) to its volumes; ownership of
// each volume's existence stays with the invoice decomposition.
type MasterLabel struct {
	code        string
	kind        Kind
	description string

	// linked holds the distinct codes of the volumes consolidated under this
	// master label, in link order.
	linked []kernel.VolumeCode

	status volume.Status

	createdAt time.Time

	guard guard.ConstructorGuard
}

// GenerateCode derives a fresh master label identifier. Pallet labels carry a
// PAL prefix, general ones EM (etiqueta mãe), both followed by a short unique
// suffix.
func GenerateCode(kind Kind, id string) string {
	prefix := "EM"
	if kind == KindPallet {
		prefix = "PAL"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("%s-%s", prefix, suffix)
}

// NewMasterLabel creates an empty consolidation unit in Generated status.
//
// Parameters:
//   - code: unique master label identifier (must be non-empty)
//   - kind: KindGeneral or KindPallet, immutable afterwards
//   - description: free-form operator text, may be empty
//   - createdAt: creation instant
func NewMasterLabel(code string, kind Kind, description string, createdAt time.Time) (*MasterLabel, error) {
	m := &MasterLabel{
		description: description,
		status:      volume.Generated,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setCode(code),
		m.setKind(kind),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMasterLabel reconstructs a MasterLabel aggregate from persistent
// storage, including its linked volume codes and lifecycle status.
func RestoreMasterLabel(
	code string,
	kind Kind,
	description string,
	linked []kernel.VolumeCode,
	status volume.Status,
	createdAt time.Time,
) (*MasterLabel, error) {
	m := &MasterLabel{
		description: description,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setCode(code),
		m.setKind(kind),
		m.setStatus(status),
		m.setLinked(linked),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the MasterLabel instance was properly constructed.
func (m *MasterLabel) Validate() error {
	if m == nil {
		return ErrMasterLabelIsNotConstructed
	}
	return m.guard.Validate(ErrMasterLabelIsNotConstructed)
}

// Code returns the master label's identifier.
func (m *MasterLabel) Code() string {
	return m.code
}

// Kind returns the consolidation mode. Immutable.
func (m *MasterLabel) Kind() Kind {
	return m.kind
}

// Description returns the operator-supplied description.
func (m *MasterLabel) Description() string {
	return m.description
}

// Status returns the current lifecycle status.
func (m *MasterLabel) Status() volume.Status {
	return m.status
}

// CreatedAt returns the creation instant.
func (m *MasterLabel) CreatedAt() time.Time {
	return m.createdAt
}

// VolumeCount returns the number of distinct volumes currently linked.
func (m *MasterLabel) VolumeCount() int {
	return len(m.linked)
}

// LinkedVolumes returns the codes of the linked volumes in link order.
func (m *MasterLabel) LinkedVolumes() []kernel.VolumeCode {
	out := make([]kernel.VolumeCode, len(m.linked))
	copy(out, m.linked)
	return out
}

// Holds reports whether the given volume code is linked to this master label.
func (m *MasterLabel) Holds(code kernel.VolumeCode) bool {
	for _, linked := range m.linked {
		if linked.IsEqual(code) {
			return true
		}
	}
	return false
}

// Link adds a volume code to the consolidation unit. Linking the same code
// twice is a no-op, which keeps the count equal to the distinct code set.
// Fails if the master label is in a terminal status.
func (m *MasterLabel) Link(code kernel.VolumeCode) error {
	if m.status.IsTerminal() {
		return ErrMasterLabelIsTerminal
	}
	if err := code.Validate(); err != nil {
		return err
	}
	if m.Holds(code) {
		return nil
	}

	m.linked = append(m.linked, code)
	return nil
}

// Unlink removes a volume code from the consolidation unit.
// Fails with ErrVolumeNotLinked if the code is not held.
func (m *MasterLabel) Unlink(code kernel.VolumeCode) error {
	if m.status.IsTerminal() {
		return ErrMasterLabelIsTerminal
	}

	for i, linked := range m.linked {
		if linked.IsEqual(code) {
			m.linked = append(m.linked[:i], m.linked[i+1:]...)
			return nil
		}
	}
	return ErrVolumeNotLinked
}

// Print marks the master label as printed, reporting reprints the same way
// an ordinary label does.
func (m *MasterLabel) Print() (bool, error) {
	newStatus, reprint, err := m.status.Print()
	if err != nil {
		return false, err
	}

	m.status = newStatus
	return reprint, nil
}

// Invalidate withdraws the master label with a mandatory justification.
func (m *MasterLabel) Invalidate(reason string) error {
	if m.status == volume.Invalidated {
		return volume.ErrLabelAlreadyInvalidated
	}
	if reason == "" {
		return volume.ErrJustificationIsRequired
	}

	newStatus, err := m.status.Invalidate()
	if err != nil {
		return err
	}

	m.status = newStatus
	return nil
}

// ValidateDelete checks that the master label may be removed.
// A master label still holding volumes cannot be deleted, regardless of status.
func (m *MasterLabel) ValidateDelete() error {
	if len(m.linked) > 0 {
		return ErrMasterLabelStillHoldsVolumes
	}
	return m.status.ValidateDelete()
}

func (m *MasterLabel) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("master label code")
	}
	m.code = code
	return nil
}

func (m *MasterLabel) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	m.kind = kind
	return nil
}

func (m *MasterLabel) setStatus(status volume.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	m.status = status
	return nil
}

func (m *MasterLabel) setLinked(linked []kernel.VolumeCode) error {
	for _, code := range linked {
		if err := code.Validate(); err != nil {
			return err
		}
		if m.Holds(code) {
			return errs.NewValueIsInvalidErrorWithCause(
				"linked volumes",
				fmt.Errorf("duplicate volume code %s", code),
			)
		}
		m.linked = append(m.linked, code)
	}
	return nil
}
