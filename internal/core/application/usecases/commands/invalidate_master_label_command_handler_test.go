package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"labeling/internal/core/application/usecases/commands"
	"labeling/internal/core/domain/model/volume"
)

func TestInvalidateMasterLabelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	master := newTestMaster(t)

	masterRepo := new(MockMasterLabelRepository)
	masterRepo.On("Get", mock.Anything, master.Code()).Return(master, nil).Once()
	masterRepo.On("Update", mock.Anything, master).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MasterLabelRepository").Return(masterRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMasterLabelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInvalidateMasterLabelCommandHandler(factory)
	cmd, err := commands.NewInvalidateMasterLabelCommand(master.Code(), "pallet desfeito")
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, volume.Invalidated, master.Status())
	masterRepo.AssertExpectations(t)
}

func TestInvalidateMasterLabelCommandHandler_Handle_AlreadyInvalidated(t *testing.T) {
	ctx := t.Context()
	master := newTestMaster(t)
	require.NoError(t, master.Invalidate("avaria"))

	masterRepo := new(MockMasterLabelRepository)
	masterRepo.On("Get", mock.Anything, master.Code()).Return(master, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MasterLabelRepository").Return(masterRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMasterLabelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInvalidateMasterLabelCommandHandler(factory)
	cmd, err := commands.NewInvalidateMasterLabelCommand(master.Code(), "avaria")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, volume.ErrLabelAlreadyInvalidated)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewInvalidateMasterLabelCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewInvalidateMasterLabelCommand("EM-0A1B2C3D", "")
	assert.ErrorIs(t, err, commands.ErrReasonIsRequired)
}
