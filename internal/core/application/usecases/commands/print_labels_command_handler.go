package commands

import (
	"context"

	"labeling/internal/core/application/staging"
	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/render"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/core/ports"
)

// WarningReprint flags a label that was already printed before: the new copy
// is a legitimate duplicate, not a state change.
const WarningReprint = "label was already printed, producing a duplicate copy"

// PrintedLabels is the outcome of a print command: the rendered artifact plus
// the per-label fold of what happened to each requested code.
type PrintedLabels struct {
	Artifact ports.Artifact
	Result   *BatchResult
}

// PrintLabelsCommandHandler renders a batch of labels into one artifact and
// records the print on every label that made it onto a page. Labels are
// looked up in the staging arena first, then in durable storage, so "print
// now" works before a commit as well as after.
type PrintLabelsCommandHandler struct {
	uowFactory LabelUoWFactory
	arena      *staging.Arena
	renderer   ports.LabelRenderer
}

// NewPrintLabelsCommandHandler creates a handler for label printing.
func NewPrintLabelsCommandHandler(
	uowFactory LabelUoWFactory,
	arena *staging.Arena,
	renderer ports.LabelRenderer,
) PrintLabelsCommandHandler {
	return PrintLabelsCommandHandler{
		uowFactory: uowFactory,
		arena:      arena,
		renderer:   renderer,
	}
}

// Handle processes the print command. Labels that cannot print (unknown code,
// invalidated, consolidated) become failed items; the rest render into one
// artifact, one page per label, and carry a reprint warning when this is not
// their first copy. If no label can print, no artifact is produced.
func (h *PrintLabelsCommandHandler) Handle(ctx context.Context, cmd PrintLabelsCommand) (PrintedLabels, error) {
	if err := cmd.Validate(); err != nil {
		return PrintedLabels{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PrintedLabels{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result := &BatchResult{}

	var printable []*volume.Volume
	var persisted []*volume.Volume
	var inv invoice.Invoice

	for _, raw := range cmd.Codes() {
		code, err := kernel.VolumeCodeFromString(raw)
		if err != nil {
			result.Append(ItemResult{Code: raw, Err: err})
			continue
		}

		v, fromStore, entryInv, err := h.find(ctx, uow, code)
		if err != nil {
			result.Append(ItemResult{Code: raw, Err: err})
			continue
		}

		// Read-only check: the Labeled transition is applied only after
		// the render succeeds, so a failed render leaves every label
		// (staged ones share their arena pointer) untouched.
		reprint, err := v.ValidatePrint()
		if err != nil {
			result.Append(ItemResult{Code: raw, Err: err})
			continue
		}

		item := ItemResult{Code: raw}
		if reprint {
			item.Warning = WarningReprint
		}
		result.Append(item)

		printable = append(printable, v)
		if fromStore {
			persisted = append(persisted, v)
		}
		if inv.Number == "" {
			inv = entryInv
		}
	}

	if len(printable) == 0 {
		return PrintedLabels{Result: result}, nil
	}

	job, err := render.NewJob(printable, cmd.Format(), cmd.Style())
	if err != nil {
		return PrintedLabels{}, err
	}

	artifact, err := h.renderer.Render(ctx, job, inv)
	if err != nil {
		return PrintedLabels{}, err
	}

	for _, v := range printable {
		if _, err = v.Print(); err != nil {
			return PrintedLabels{}, err
		}
		v.MarkRendered()
	}

	for _, v := range persisted {
		if err = uow.LabelRepository().Update(ctx, v); err != nil {
			return PrintedLabels{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return PrintedLabels{}, err
	}

	return PrintedLabels{Artifact: artifact, Result: result}, nil
}

// find resolves a code against the staging arena first and durable storage
// second. The boolean reports whether the volume came from storage and so
// needs its print recorded there.
func (h *PrintLabelsCommandHandler) find(
	ctx context.Context,
	uow LabelUoW,
	code kernel.VolumeCode,
) (*volume.Volume, bool, invoice.Invoice, error) {
	if entry, ok := h.arena.Get(code); ok {
		return entry.Volume, false, entry.Invoice, nil
	}

	v, err := uow.LabelRepository().Get(ctx, code)
	if err != nil {
		return nil, false, invoice.Invoice{}, err
	}

	shipment := v.Shipment()
	inv := invoice.Invoice{
		Number:    v.InvoiceNumber(),
		AccessKey: shipment.AccessKey,
	}

	return v, true, inv, nil
}
