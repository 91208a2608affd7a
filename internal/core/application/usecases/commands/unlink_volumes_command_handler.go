package commands

import (
	"context"

	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/core/domain/services"
)

// UnlinkVolumesCommandHandler releases volumes from a master label. Released
// volumes re-enter the pool as freshly generated: their print history is not
// restored.
type UnlinkVolumesCommandHandler struct {
	uowFactory UoWFactory
	linker     services.MasterLabelLinker
}

// NewUnlinkVolumesCommandHandler creates a handler for volume release.
func NewUnlinkVolumesCommandHandler(uowFactory UoWFactory, linker services.MasterLabelLinker) UnlinkVolumesCommandHandler {
	return UnlinkVolumesCommandHandler{
		uowFactory: uowFactory,
		linker:     linker,
	}
}

// Handle unlinks the command's volumes from its master label.
func (h *UnlinkVolumesCommandHandler) Handle(ctx context.Context, cmd UnlinkVolumesCommand) error {
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

	if err = h.linker.Unlink(master, volumes); err != nil {
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
