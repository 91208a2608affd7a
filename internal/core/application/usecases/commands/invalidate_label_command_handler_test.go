package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labeling/internal/core/application/staging"
	"labeling/internal/core/application/usecases/commands"
	"labeling/internal/core/domain/model/volume"
)

func TestNewInvalidateLabelCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewInvalidateLabelCommand("12345-001-28082615", "")
	require.ErrorIs(t, err, commands.ErrReasonIsRequired)
}

func TestInvalidateLabelCommandHandler_Handle_StagedLabel(t *testing.T) {
	arena := staging.NewArena()
	volumes := stage(t, arena, "12345", 1)

	factory := new(MockLabelUoWFactory)
	h := commands.NewInvalidateLabelCommandHandler(factory, arena)
	cmd, err := commands.NewInvalidateLabelCommand(volumes[0].Code().String(), "embalagem danificada")
	require.NoError(t, err)

	require.NoError(t, h.Handle(t.Context(), cmd))
	assert.Equal(t, volume.Invalidated, volumes[0].Status())
	assert.Equal(t, "embalagem danificada", volumes[0].InvalidationReason())
}

func TestInvalidateLabelCommandHandler_Handle_AlreadyInvalidated(t *testing.T) {
	arena := staging.NewArena()
	volumes := stage(t, arena, "12345", 1)
	require.NoError(t, volumes[0].Invalidate("avaria"))

	factory := new(MockLabelUoWFactory)
	h := commands.NewInvalidateLabelCommandHandler(factory, arena)
	cmd, err := commands.NewInvalidateLabelCommand(volumes[0].Code().String(), "outra razao")
	require.NoError(t, err)

	err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, volume.ErrLabelAlreadyInvalidated)
	assert.Equal(t, "avaria", volumes[0].InvalidationReason())
}

func TestDeleteLabelCommandHandler_Handle_StagedLabel(t *testing.T) {
	arena := staging.NewArena()
	volumes := stage(t, arena, "12345", 1)

	factory := new(MockLabelUoWFactory)
	h := commands.NewDeleteLabelCommandHandler(factory, arena)
	cmd, err := commands.NewDeleteLabelCommand(volumes[0].Code().String())
	require.NoError(t, err)

	require.NoError(t, h.Handle(t.Context(), cmd))
	assert.Equal(t, 0, arena.Len())
}

func TestDeleteLabelCommandHandler_Handle_PrintedLabelIsRejected(t *testing.T) {
	arena := staging.NewArena()
	volumes := stage(t, arena, "12345", 1)
	_, err := volumes[0].Print()
	require.NoError(t, err)

	factory := new(MockLabelUoWFactory)
	h := commands.NewDeleteLabelCommandHandler(factory, arena)
	cmd, err := commands.NewDeleteLabelCommand(volumes[0].Code().String())
	require.NoError(t, err)

	err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, volume.ErrCannotDeletePrintedLabel)
	assert.Equal(t, 1, arena.Len())
}
