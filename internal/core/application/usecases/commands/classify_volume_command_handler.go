package commands

import (
	"context"

	"labeling/internal/core/application/staging"
	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/services"
)

// ClassifyVolumeCommandHandler records dangerous-goods classification on a
// staged or committed volume, backed by the hazard catalog.
type ClassifyVolumeCommandHandler struct {
	uowFactory LabelUoWFactory
	arena      *staging.Arena
	catalog    services.HazardCatalog
}

// NewClassifyVolumeCommandHandler creates a handler for volume classification.
func NewClassifyVolumeCommandHandler(
	uowFactory LabelUoWFactory,
	arena *staging.Arena,
	catalog services.HazardCatalog,
) ClassifyVolumeCommandHandler {
	return ClassifyVolumeCommandHandler{
		uowFactory: uowFactory,
		arena:      arena,
		catalog:    catalog,
	}
}

// Handle classifies the volume.
func (h *ClassifyVolumeCommandHandler) Handle(ctx context.Context, cmd ClassifyVolumeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code, err := kernel.VolumeCodeFromString(cmd.Code())
	if err != nil {
		return err
	}

	if entry, ok := h.arena.Get(code); ok {
		h.catalog.Classify(entry.Volume, cmd.UNNumber(), cmd.RiskCode(), cmd.HazardClass())
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

	h.catalog.Classify(v, cmd.UNNumber(), cmd.RiskCode(), cmd.HazardClass())

	if err = labelRepo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
