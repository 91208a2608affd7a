package commands

import (
	"context"
)

// InvalidateMasterLabelCommandHandler applies the invalidation transition to
// a master label. Linked volumes are not touched: they stay consolidated
// under the withdrawn master until explicitly unlinked, so the physical
// pallet keeps matching the records.
type InvalidateMasterLabelCommandHandler struct {
	uowFactory MasterLabelUoWFactory
}

// NewInvalidateMasterLabelCommandHandler creates a handler for master-label
// invalidation.
func NewInvalidateMasterLabelCommandHandler(uowFactory MasterLabelUoWFactory) InvalidateMasterLabelCommandHandler {
	return InvalidateMasterLabelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle invalidates the master label. An already invalidated master label
// returns volume.ErrLabelAlreadyInvalidated, surfaced as a warning by the
// transport layer.
func (h *InvalidateMasterLabelCommandHandler) Handle(ctx context.Context, cmd InvalidateMasterLabelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	masterRepo := uow.MasterLabelRepository()
	master, err := masterRepo.Get(ctx, cmd.MasterLabelCode())
	if err != nil {
		return err
	}

	if err = master.Invalidate(cmd.Reason()); err != nil {
		return err
	}

	if err = masterRepo.Update(ctx, master); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
