package commands

import (
	"context"

	"labeling/internal/core/application/staging"
	"labeling/internal/core/domain/model/kernel"
)

// InvalidateLabelCommandHandler applies the invalidation transition to a
// label, whether it is still staged or already committed.
type InvalidateLabelCommandHandler struct {
	uowFactory LabelUoWFactory
	arena      *staging.Arena
}

// NewInvalidateLabelCommandHandler creates a handler for label invalidation.
func NewInvalidateLabelCommandHandler(uowFactory LabelUoWFactory, arena *staging.Arena) InvalidateLabelCommandHandler {
	return InvalidateLabelCommandHandler{
		uowFactory: uowFactory,
		arena:      arena,
	}
}

// Handle invalidates the label. An already invalidated label returns
// volume.ErrLabelAlreadyInvalidated, which the transport layer surfaces as a
// warning rather than a hard failure.
func (h *InvalidateLabelCommandHandler) Handle(ctx context.Context, cmd InvalidateLabelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code, err := kernel.VolumeCodeFromString(cmd.Code())
	if err != nil {
		return err
	}

	if entry, ok := h.arena.Get(code); ok {
		return entry.Volume.Invalidate(cmd.Reason())
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

	if err = v.Invalidate(cmd.Reason()); err != nil {
		return err
	}

	if err = labelRepo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
