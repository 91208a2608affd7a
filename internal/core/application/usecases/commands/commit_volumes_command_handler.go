package commands

import (
	"context"

	"labeling/internal/core/application/staging"
	"labeling/internal/pkg/errs"
)

// ErrNothingStaged is returned when a commit finds no staged volumes for the
// invoice.
var ErrNothingStaged = errs.NewObjectNotFoundError("staged volumes", nil)

// CommitVolumesCommandHandler moves an invoice's staged volumes into durable
// storage. Every volume is committed in its own transaction so one bad item
// (typically a duplicate code from a batch committed within the same hour)
// does not take the rest of the batch down with it.
//
// Example:
//
//	handler := NewCommitVolumesCommandHandler(uowFactory, arena)
//	cmd, _ := NewCommitVolumesCommand("12345")
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	summary := result.Summarize()
//	fmt.Printf("%d committed, %d failed", summary.Succeeded, summary.Failed)
type CommitVolumesCommandHandler struct {
	uowFactory LabelUoWFactory
	arena      *staging.Arena
}

// NewCommitVolumesCommandHandler creates a handler for volume commits.
func NewCommitVolumesCommandHandler(uowFactory LabelUoWFactory, arena *staging.Arena) CommitVolumesCommandHandler {
	return CommitVolumesCommandHandler{
		uowFactory: uowFactory,
		arena:      arena,
	}
}

// Handle persists the staged volumes of the command's invoice. Committed
// volumes leave the arena; failed ones stay staged so the operator can fix
// and retry. The per-item outcomes fold into the returned BatchResult.
func (h *CommitVolumesCommandHandler) Handle(ctx context.Context, cmd CommitVolumesCommand) (*BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	entries := h.arena.ByInvoice(cmd.InvoiceNumber())
	if len(entries) == 0 {
		return nil, ErrNothingStaged
	}

	if err := validateMandatoryFields(entries); err != nil {
		return nil, err
	}

	result := &BatchResult{}
	for _, entry := range entries {
		code := entry.Volume.Code()

		if err := h.commitOne(ctx, entry); err != nil {
			result.Append(ItemResult{Code: code.String(), Err: err})
			continue
		}

		h.arena.Remove(code)
		result.Append(ItemResult{Code: code.String()})
	}

	return result, nil
}

// validateMandatoryFields checks every staged item's identity fields before
// anything touches the database. One bad item refuses the whole batch, which
// is stricter than the per-item policy used for persistence failures.
func validateMandatoryFields(entries []staging.Entry) error {
	var invalid []ItemValidation
	for _, entry := range entries {
		var missing []string
		if entry.Volume.Code().String() == "" {
			missing = append(missing, "volume code")
		}
		if entry.Volume.InvoiceNumber() == "" {
			missing = append(missing, "invoice number")
		}
		if len(missing) > 0 {
			invalid = append(invalid, ItemValidation{
				Code:          entry.Volume.Code().String(),
				MissingFields: missing,
			})
		}
	}

	if len(invalid) > 0 {
		return &BatchValidationError{Items: invalid}
	}
	return nil
}

func (h *CommitVolumesCommandHandler) commitOne(ctx context.Context, entry staging.Entry) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LabelRepository().Add(ctx, entry.Volume); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
