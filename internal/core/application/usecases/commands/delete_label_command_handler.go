package commands

import (
	"context"

	"labeling/internal/core/application/staging"
	"labeling/internal/core/domain/model/kernel"
)

// DeleteLabelCommandHandler removes a label that has never been printed.
// Staged labels simply leave the arena; committed labels are removed from
// storage after the aggregate's delete validation passes.
type DeleteLabelCommandHandler struct {
	uowFactory LabelUoWFactory
	arena      *staging.Arena
}

// NewDeleteLabelCommandHandler creates a handler for label deletion.
func NewDeleteLabelCommandHandler(uowFactory LabelUoWFactory, arena *staging.Arena) DeleteLabelCommandHandler {
	return DeleteLabelCommandHandler{
		uowFactory: uowFactory,
		arena:      arena,
	}
}

// Handle deletes the label. A printed label returns
// volume.ErrCannotDeletePrintedLabel and nothing is removed.
func (h *DeleteLabelCommandHandler) Handle(ctx context.Context, cmd DeleteLabelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code, err := kernel.VolumeCodeFromString(cmd.Code())
	if err != nil {
		return err
	}

	if entry, ok := h.arena.Get(code); ok {
		if err = entry.Volume.ValidateDelete(); err != nil {
			return err
		}

		h.arena.Remove(code)
		return nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	labelRepo := uow.LabelRepository()
	v, err := labelRepo.Get(ctx, code)
	if err != nil {
		return err
	}

	if err = v.ValidateDelete(); err != nil {
		return err
	}

	if err = labelRepo.Delete(ctx, code); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
