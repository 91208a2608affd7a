package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"labeling/internal/core/application/usecases/commands"
	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/masterlabel"
	"labeling/internal/core/domain/model/render"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/core/ports"
)

type MockLabelRepository struct{ mock.Mock }

func (m *MockLabelRepository) Add(ctx context.Context, v *volume.Volume) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockLabelRepository) Update(ctx context.Context, v *volume.Volume) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockLabelRepository) Get(ctx context.Context, code kernel.VolumeCode) (*volume.Volume, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*volume.Volume), args.Error(1)
}
func (m *MockLabelRepository) GetByInvoice(ctx context.Context, invoiceNumber string) ([]*volume.Volume, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*volume.Volume), args.Error(1)
}
func (m *MockLabelRepository) GetByMasterLabel(ctx context.Context, masterLabelCode string) ([]*volume.Volume, error) {
	args := m.Called(ctx, masterLabelCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*volume.Volume), args.Error(1)
}
func (m *MockLabelRepository) Delete(ctx context.Context, code kernel.VolumeCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockMasterLabelRepository struct{ mock.Mock }

func (m *MockMasterLabelRepository) Add(ctx context.Context, ml *masterlabel.MasterLabel) error {
	args := m.Called(ctx, ml)
	return args.Error(0)
}
func (m *MockMasterLabelRepository) Update(ctx context.Context, ml *masterlabel.MasterLabel) error {
	args := m.Called(ctx, ml)
	return args.Error(0)
}
func (m *MockMasterLabelRepository) Get(ctx context.Context, code string) (*masterlabel.MasterLabel, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterlabel.MasterLabel), args.Error(1)
}
func (m *MockMasterLabelRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) LabelRepository() ports.LabelRepository {
	args := m.Called()
	return args.Get(0).(ports.LabelRepository)
}
func (m *MockUoW) MasterLabelRepository() ports.MasterLabelRepository {
	args := m.Called()
	return args.Get(0).(ports.MasterLabelRepository)
}

type MockLabelUoWFactory struct{ mock.Mock }

func (m *MockLabelUoWFactory) Create() commands.LabelUoW {
	args := m.Called()
	return args.Get(0).(commands.LabelUoW)
}

type MockMasterLabelUoWFactory struct{ mock.Mock }

func (m *MockMasterLabelUoWFactory) Create() commands.MasterLabelUoW {
	args := m.Called()
	return args.Get(0).(commands.MasterLabelUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockLabelRenderer struct{ mock.Mock }

func (m *MockLabelRenderer) Render(ctx context.Context, job render.Job, inv invoice.Invoice) (ports.Artifact, error) {
	args := m.Called(ctx, job, inv)
	return args.Get(0).(ports.Artifact), args.Error(1)
}

func newTestVolume(t *testing.T, invoiceNumber string, sequence int) *volume.Volume {
	t.Helper()

	generatedAt := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	code := kernel.AllocateVolumeCode(invoiceNumber, sequence, generatedAt)
	v, err := volume.NewVolume(code, invoiceNumber, sequence, 5, kernel.ZeroWeight(), volume.Shipment{}, generatedAt)
	require.NoError(t, err)

	return v
}
