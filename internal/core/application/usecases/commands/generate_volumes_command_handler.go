package commands

import (
	"context"
	"time"

	"labeling/internal/core/application/staging"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/core/domain/services"
)

// GenerateVolumesCommandHandler handles the business logic for volume
// generation. Decomposes the invoice, enriches every volume with its invoice
// context and stages the batch in the arena. Nothing touches durable storage
// until a commit.
type GenerateVolumesCommandHandler struct {
	decomposer services.VolumeDecomposer
	resolver   services.ClassificationResolver
	arena      *staging.Arena
	now        func() time.Time
}

// NewGenerateVolumesCommandHandler creates a handler for volume generation.
func NewGenerateVolumesCommandHandler(
	decomposer services.VolumeDecomposer,
	resolver services.ClassificationResolver,
	arena *staging.Arena,
) GenerateVolumesCommandHandler {
	return GenerateVolumesCommandHandler{
		decomposer: decomposer,
		resolver:   resolver,
		arena:      arena,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the generation command and returns the staged volumes in
// sequence order. Regenerating an invoice replaces its previously staged
// batch: an abandoned generation never blocks a new one.
func (h *GenerateVolumesCommandHandler) Handle(_ context.Context, cmd GenerateVolumesCommand) ([]*volume.Volume, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	generatedAt := h.now()

	volumes, err := h.decomposer.Decompose(cmd.Invoice(), generatedAt)
	if err != nil {
		return nil, err
	}

	for _, v := range volumes {
		h.resolver.Enrich(v, cmd.Invoice())
	}

	h.arena.RemoveInvoice(cmd.Invoice().Number)
	h.arena.Put(volumes, cmd.Invoice(), generatedAt)

	return volumes, nil
}
