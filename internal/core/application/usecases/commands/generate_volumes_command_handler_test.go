package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labeling/internal/core/application/staging"
	"labeling/internal/core/application/usecases/commands"
	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/core/domain/services"
)

func newGenerateHandler(arena *staging.Arena) commands.GenerateVolumesCommandHandler {
	return commands.NewGenerateVolumesCommandHandler(
		services.NewVolumeDecomposer(),
		services.NewClassificationResolver(),
		arena,
	)
}

func TestNewGenerateVolumesCommand_RequiresInvoiceNumber(t *testing.T) {
	_, err := commands.NewGenerateVolumesCommand(invoice.Invoice{})
	require.ErrorIs(t, err, commands.ErrInvoiceNumberIsRequired)
}

func TestGenerateVolumesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	arena := staging.NewArena()
	h := newGenerateHandler(arena)

	inv := invoice.Invoice{
		Number:              "12345",
		DeclaredVolumeCount: 3,
		DeclaredGrossWeight: "9,60",
		Sender:              "ACME Ltda",
	}
	cmd, err := commands.NewGenerateVolumesCommand(inv)
	require.NoError(t, err)

	volumes, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, volumes, 3)
	assert.Equal(t, 3, arena.Len())
	assert.Equal(t, volume.Generated, volumes[0].Status())
	assert.Equal(t, "ACME Ltda", volumes[2].Shipment().Sender)
}

func TestGenerateVolumesCommandHandler_Handle_ReplacesStagedBatch(t *testing.T) {
	ctx := t.Context()
	arena := staging.NewArena()
	h := newGenerateHandler(arena)

	inv := invoice.Invoice{Number: "12345", DeclaredVolumeCount: 4}
	cmd, err := commands.NewGenerateVolumesCommand(inv)
	require.NoError(t, err)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	inv.DeclaredVolumeCount = 2
	cmd, err = commands.NewGenerateVolumesCommand(inv)
	require.NoError(t, err)
	volumes, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, volumes, 2)
	assert.Equal(t, 2, arena.Len())
}

func TestGenerateVolumesCommandHandler_Handle_ValidationError(t *testing.T) {
	h := newGenerateHandler(staging.NewArena())

	_, err := h.Handle(t.Context(), commands.GenerateVolumesCommand{})
	require.Error(t, err)
}
