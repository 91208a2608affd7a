package commands

import (
	"context"
)

// DeleteMasterLabelCommandHandler removes an empty master label. A master
// label still holding volumes returns
// masterlabel.ErrMasterLabelStillHoldsVolumes and nothing is removed.
type DeleteMasterLabelCommandHandler struct {
	uowFactory MasterLabelUoWFactory
}

// NewDeleteMasterLabelCommandHandler creates a handler for master-label deletion.
func NewDeleteMasterLabelCommandHandler(uowFactory MasterLabelUoWFactory) DeleteMasterLabelCommandHandler {
	return DeleteMasterLabelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the master label after the aggregate's delete validation
// passes.
func (h *DeleteMasterLabelCommandHandler) Handle(ctx context.Context, cmd DeleteMasterLabelCommand) error {
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

	if err = master.ValidateDelete(); err != nil {
		return err
	}

	if err = masterRepo.Delete(ctx, master.Code()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
