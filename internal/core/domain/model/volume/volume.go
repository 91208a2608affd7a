package volume

import (
	"errors"
	"fmt"
	"time"

	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/pkg/errs"
	"labeling/internal/pkg/guard"
)

// HazardUnclassified is the default chemical classification carried by volumes
// whose cargo was not classified as dangerous goods.
const HazardUnclassified = "nao_classificada"

// Domain errors for volume lifecycle operations.
var (
	// ErrVolumeIsNotConstructed is returned when using an improperly initialized Volume.
	ErrVolumeIsNotConstructed = errors.New("Volume must be created via NewVolume constructor")
	// ErrInvoiceNumberIsRequired is returned when a volume lacks its source invoice number.
	ErrInvoiceNumberIsRequired = errs.NewValueIsRequiredError("invoice number")
	// ErrJustificationIsRequired is returned when invalidating without a reason.
	ErrJustificationIsRequired = errs.NewValueIsRequiredError("justification")
	// ErrLabelAlreadyInvalidated is returned when invalidating an already invalidated label.
	// Callers surface it as a warning; the record is left unchanged.
	ErrLabelAlreadyInvalidated = errors.New("label is already invalidated")
	// ErrCannotDeletePrintedLabel is returned when deleting a label that has been
	// printed. Printed labels must be invalidated instead.
	ErrCannotDeletePrintedLabel = errors.New("cannot delete a printed label, invalidate it instead")
	// ErrVolumeAlreadyConsolidated is returned when linking a volume that already
	// belongs to a master label.
	ErrVolumeAlreadyConsolidated = errors.New("volume already belongs to a master label")
)

// Shipment bundles the metadata every volume of one invoice shares: parties,
// destination, carrier, and hazard classification. The decomposer copies it
// verbatim onto each volume; per-volume overrides happen later, via
// classification.
type Shipment struct {
	AccessKey   string
	OrderNumber string
	Sender      string
	Recipient   string
	Address     string
	City        string
	State       string
	Carrier     string
	UNNumber    string
	RiskCode    string
	HazardClass string
}

// Volume represents one physical parcel decomposed from an invoice.
// It is the aggregate root for the label lifecycle: a volume is generated,
// printed ("labeled"), possibly reprinted, and eventually invalidated or
// consolidated under a master label.
//
// Volume follows these invariants:
//   - Identity is the stable VolumeCode allocated at generation time
//   - Sequence is 1-based and never exceeds the total volume count
//   - Declared quantity is always 1: one record per physical parcel
//   - Status transitions follow the Status state machine
//   - A volume that has been printed can never be deleted, only invalidated
//   - The master-label back-reference is set exactly when status is Consolidated
type Volume struct {
	code          kernel.VolumeCode
	invoiceNumber string
	shipment      Shipment

	// quantity is the declared piece count; one physical volume is always 1.
	quantity int
	weight   kernel.Weight

	// sequence and totalVolumes render as "2 of 5" on the label.
	sequence     int
	totalVolumes int

	status             Status
	invalidationReason string

	// labeled records that the label has been printed; printed records that a
	// render artifact was produced. They move independently: a render batch
	// can succeed while the database marking partially fails.
	labeled bool
	printed bool

	masterLabelCode *string

	generatedAt time.Time

	guard guard.ConstructorGuard
}

// NewVolume creates a freshly generated volume.
//
// Parameters:
//   - code: identity allocated by kernel.AllocateVolumeCode
//   - invoiceNumber: source invoice number (must be non-empty)
//   - sequence: 1-based position within the invoice's volume set
//   - totalVolumes: declared volume count of the invoice
//   - weight: this volume's evenly split weight share
//   - shipment: shared shipment metadata copied from the invoice
//   - generatedAt: generation instant (also embedded in the code)
//
// The volume starts in Generated status with quantity 1 and no master-label
// reference. A blank hazard classification is normalized to HazardUnclassified.
func NewVolume(
	code kernel.VolumeCode,
	invoiceNumber string,
	sequence int,
	totalVolumes int,
	weight kernel.Weight,
	shipment Shipment,
	generatedAt time.Time,
) (*Volume, error) {
	v := &Volume{
		status:      Generated,
		quantity:    1,
		weight:      weight,
		shipment:    shipment,
		generatedAt: generatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if v.shipment.HazardClass == "" {
		v.shipment.HazardClass = HazardUnclassified
	}

	if err := errors.Join(
		v.setCode(code),
		v.setInvoiceNumber(invoiceNumber),
		v.setSequence(sequence, totalVolumes),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVolume reconstructs a Volume aggregate from persistent storage,
// including its lifecycle flags and master-label reference. The restored
// volume behaves identically to one created through normal domain operations.
func RestoreVolume(
	code kernel.VolumeCode,
	invoiceNumber string,
	sequence int,
	totalVolumes int,
	quantity int,
	weight kernel.Weight,
	shipment Shipment,
	status Status,
	invalidationReason string,
	labeled bool,
	printed bool,
	masterLabelCode *string,
	generatedAt time.Time,
) (*Volume, error) {
	v := &Volume{
		quantity:           quantity,
		weight:             weight,
		shipment:           shipment,
		invalidationReason: invalidationReason,
		labeled:            labeled,
		printed:            printed,
		masterLabelCode:    masterLabelCode,
		generatedAt:        generatedAt,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setCode(code),
		v.setInvoiceNumber(invoiceNumber),
		v.setSequence(sequence, totalVolumes),
		v.setStatus(status),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Volume instance was properly constructed.
func (v *Volume) Validate() error {
	if v == nil {
		return ErrVolumeIsNotConstructed
	}
	return v.guard.Validate(ErrVolumeIsNotConstructed)
}

// IsEqual compares two volumes by identity.
func (v *Volume) IsEqual(other *Volume) bool {
	return other != nil && v.code.IsEqual(other.code)
}

// Code returns the volume's stable identity.
func (v *Volume) Code() kernel.VolumeCode {
	return v.code
}

// InvoiceNumber returns the source invoice number.
func (v *Volume) InvoiceNumber() string {
	return v.invoiceNumber
}

// Shipment returns the shared shipment metadata.
func (v *Volume) Shipment() Shipment {
	return v.shipment
}

// Quantity returns the declared piece count, always 1 per physical volume.
func (v *Volume) Quantity() int {
	return v.quantity
}

// Weight returns this volume's weight share.
func (v *Volume) Weight() kernel.Weight {
	return v.weight
}

// Sequence returns the 1-based position of this volume within its invoice.
func (v *Volume) Sequence() int {
	return v.sequence
}

// TotalVolumes returns the invoice's declared volume count.
func (v *Volume) TotalVolumes() int {
	return v.totalVolumes
}

// SequenceLabel renders the position the way labels show it: "2/5".
func (v *Volume) SequenceLabel() string {
	return fmt.Sprintf("%d/%d", v.sequence, v.totalVolumes)
}

// Status returns the current lifecycle status.
func (v *Volume) Status() Status {
	return v.status
}

// InvalidationReason returns the justification captured at invalidation time,
// or the empty string if the volume was never invalidated.
func (v *Volume) InvalidationReason() string {
	return v.invalidationReason
}

// IsLabeled reports whether the label has been printed at least once.
func (v *Volume) IsLabeled() bool {
	return v.labeled
}

// IsPrinted reports whether a render artifact has been produced for this volume.
func (v *Volume) IsPrinted() bool {
	return v.printed
}

// MasterLabelCode returns the identifier of the owning master label,
// or nil when the volume is not consolidated.
func (v *Volume) MasterLabelCode() *string {
	return v.masterLabelCode
}

// GeneratedAt returns the generation instant.
func (v *Volume) GeneratedAt() time.Time {
	return v.generatedAt
}

// ValidatePrint checks whether the label can print and reports whether doing
// so would be a reprint, without changing any state. Callers that render
// before recording the print use this to vet the batch first, so a failed
// render leaves every label exactly as it was.
func (v *Volume) ValidatePrint() (bool, error) {
	_, reprint, err := v.status.Print()
	return reprint, err
}

// Print marks the label as printed and reports whether this was a reprint.
//
// A reprint does not change state: the record stays Labeled and the caller is
// expected to warn the operator that a duplicate physical copy now exists.
// Printing a terminal (invalidated or consolidated) record fails.
func (v *Volume) Print() (bool, error) {
	newStatus, reprint, err := v.status.Print()
	if err != nil {
		return false, err
	}

	v.status = newStatus
	v.labeled = true
	return reprint, nil
}

// MarkRendered records that a print artifact containing this volume was
// produced. Independent from Print: rendering and database marking are
// separate steps that can fail separately.
func (v *Volume) MarkRendered() {
	v.printed = true
}

// Invalidate withdraws the label with a mandatory justification.
//
// Invalidated is terminal: subsequent Print, Invalidate, or consolidation
// calls are rejected and the status stays Invalidated. Invalidating twice
// returns ErrLabelAlreadyInvalidated, which callers surface as a warning.
func (v *Volume) Invalidate(reason string) error {
	if v.status == Invalidated {
		return ErrLabelAlreadyInvalidated
	}
	if reason == "" {
		return ErrJustificationIsRequired
	}

	newStatus, err := v.status.Invalidate()
	if err != nil {
		return err
	}

	v.status = newStatus
	v.invalidationReason = reason
	return nil
}

// ValidateDelete checks that the volume may be removed outright.
// Permitted only while Generated and never printed; printed labels return
// ErrCannotDeletePrintedLabel and must be invalidated instead.
func (v *Volume) ValidateDelete() error {
	if v.labeled || v.printed {
		return ErrCannotDeletePrintedLabel
	}
	return v.status.ValidateDelete()
}

// AttachToMaster consolidates the volume under the given master label.
// The status transition and the back-reference move together.
func (v *Volume) AttachToMaster(masterLabelCode string) error {
	if masterLabelCode == "" {
		return errs.NewValueIsRequiredError("master label code")
	}
	if v.masterLabelCode != nil {
		if *v.masterLabelCode == masterLabelCode {
			return nil
		}
		return ErrVolumeAlreadyConsolidated
	}

	newStatus, err := v.status.Consolidate()
	if err != nil {
		return err
	}

	v.status = newStatus
	v.masterLabelCode = &masterLabelCode
	return nil
}

// ReleaseFromMaster reverses a consolidation. The volume returns to Generated,
// not Labeled: unlinking is a pre-print planning step and any prior print
// history is deliberately not restored.
func (v *Volume) ReleaseFromMaster() {
	v.masterLabelCode = nil
	v.status = Generated
	v.labeled = false
	v.printed = false
}

// Classify sets the dangerous-goods fields on the volume.
// A blank classification falls back to HazardUnclassified.
func (v *Volume) Classify(unNumber, riskCode, hazardClass string) {
	v.shipment.UNNumber = unNumber
	v.shipment.RiskCode = riskCode
	if hazardClass == "" {
		hazardClass = HazardUnclassified
	}
	v.shipment.HazardClass = hazardClass
}

// FillShipmentBlanks copies the given shipment fields into this volume's
// blanks, leaving explicit values untouched. Used by the classification
// resolver to enrich volumes from their invoice context; repeated application
// is a no-op.
func (v *Volume) FillShipmentBlanks(fallback Shipment) {
	if v.shipment.AccessKey == "" {
		v.shipment.AccessKey = fallback.AccessKey
	}
	if v.shipment.OrderNumber == "" {
		v.shipment.OrderNumber = fallback.OrderNumber
	}
	if v.shipment.Sender == "" {
		v.shipment.Sender = fallback.Sender
	}
	if v.shipment.Recipient == "" {
		v.shipment.Recipient = fallback.Recipient
	}
	if v.shipment.Address == "" {
		v.shipment.Address = fallback.Address
	}
	if v.shipment.City == "" {
		v.shipment.City = fallback.City
	}
	if v.shipment.State == "" {
		v.shipment.State = fallback.State
	}
	if v.shipment.Carrier == "" {
		v.shipment.Carrier = fallback.Carrier
	}
	if v.shipment.UNNumber == "" {
		v.shipment.UNNumber = fallback.UNNumber
	}
	if v.shipment.RiskCode == "" {
		v.shipment.RiskCode = fallback.RiskCode
	}
	if v.shipment.HazardClass == "" || v.shipment.HazardClass == HazardUnclassified {
		if fallback.HazardClass != "" {
			v.shipment.HazardClass = fallback.HazardClass
		}
	}
}

func (v *Volume) setCode(code kernel.VolumeCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	v.code = code
	return nil
}

func (v *Volume) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return ErrInvoiceNumberIsRequired
	}
	v.invoiceNumber = invoiceNumber
	return nil
}

func (v *Volume) setSequence(sequence, totalVolumes int) error {
	if sequence < 1 {
		return errs.NewValueIsOutOfRangeError("sequence", sequence, 1, totalVolumes)
	}
	if totalVolumes < sequence {
		return errs.NewValueIsInvalidErrorWithCause(
			"total volumes",
			fmt.Errorf("%d is less than sequence %d", totalVolumes, sequence),
		)
	}
	v.sequence = sequence
	v.totalVolumes = totalVolumes
	return nil
}

func (v *Volume) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}
