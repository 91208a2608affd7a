package commands

import (
	"context"

	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/core/domain/services"
)

// LinkVolumesCommandHandler consolidates volumes under a master label within
// one transaction spanning both aggregates. The domain linker enforces the
// all-or-nothing contract; the handler only loads, delegates and persists.
type LinkVolumesCommandHandler struct {
	uowFactory UoWFactory
	linker     services.MasterLabelLinker
}

// NewLinkVolumesCommandHandler creates a handler for volume consolidation.
func NewLinkVolumesCommandHandler(uowFactory UoWFactory, linker services.MasterLabelLinker) LinkVolumesCommandHandler {
	return LinkVolumesCommandHandler{
		uowFactory: uowFactory,
		linker:     linker,
	}
}

// Handle links the command's volumes to its master label. A services.LinkError
// names every offending volume and leaves both sides untouched.
func (h *LinkVolumesCommandHandler) Handle(ctx context.Context, cmd LinkVolumesCommand) error {
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

	master, err := uow.MasterLabelRepository().Get(ctx, cmd.MasterLabelCode())
	if err != nil {
		return err
	}

	labelRepo := uow.LabelRepository()
	volumes := make([]*volume.Volume, 0, len(cmd.Codes()))
	for _, raw := range cmd.Codes() {
		code, err := kernel.VolumeCodeFromString(raw)
		if err != nil {
			return err
		}

		v, err := labelRepo.Get(ctx, code)
		if err != nil {
			return err
		}

		volumes = append(volumes, v)
	}

	if err = h.linker.Link(master, volumes); err != nil {
		return err
	}

	for _, v := range volumes {
		if err = labelRepo.Update(ctx, v); err != nil {
			return err
		}
	}

	if err = uow.MasterLabelRepository().Update(ctx, master); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
