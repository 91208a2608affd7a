package masterlabel_test

import (
	"testing"
	"time"

	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/masterlabel"
	"labeling/internal/core/domain/model/volume"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2026, time.August, 28, 15, 0, 0, 0, time.UTC)

func testCode(t *testing.T, seq int) kernel.VolumeCode {
	t.Helper()
	return kernel.AllocateVolumeCode("12345", seq, testCreatedAt)
}

func TestGenerateCode(t *testing.T) {
	t.Run("general labels carry EM prefix", func(t *testing.T) {
		code := masterlabel.GenerateCode(masterlabel.KindGeneral, uuid.NewString())

		assert.Regexp(t, `^EM-[0-9A-F]{8}$`, code)
	})

	t.Run("pallet labels carry PAL prefix", func(t *testing.T) {
		code := masterlabel.GenerateCode(masterlabel.KindPallet, uuid.NewString())

		assert.Regexp(t, `^PAL-[0-9A-F]{8}$`, code)
	})
}

func TestKindFromString(t *testing.T) {
	t.Run("parses storage forms", func(t *testing.T) {
		general, err := masterlabel.KindFromString("general")
		require.NoError(t, err)
		assert.Equal(t, masterlabel.KindGeneral, general)

		pallet, err := masterlabel.KindFromString("pallet")
		require.NoError(t, err)
		assert.Equal(t, masterlabel.KindPallet, pallet)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := masterlabel.KindFromString("box")

		require.Error(t, err)
	})

	t.Run("round-trips through Storage", func(t *testing.T) {
		for _, k := range []masterlabel.Kind{masterlabel.KindGeneral, masterlabel.KindPallet} {
			parsed, err := masterlabel.KindFromString(k.Storage())
			require.NoError(t, err)
			assert.Equal(t, k, parsed)
		}
	})
}

func TestNewMasterLabel(t *testing.T) {
	t.Run("should create an empty generated master label", func(t *testing.T) {
		m, err := masterlabel.NewMasterLabel("EM-1", masterlabel.KindGeneral, "pallet A", testCreatedAt)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "EM-1", m.Code())
		assert.Equal(t, masterlabel.KindGeneral, m.Kind())
		assert.Equal(t, "pallet A", m.Description())
		assert.Equal(t, volume.Generated, m.Status())
		assert.Equal(t, 0, m.VolumeCount())
	})

	t.Run("should fail with empty code", func(t *testing.T) {
		_, err := masterlabel.NewMasterLabel("", masterlabel.KindGeneral, "", testCreatedAt)

		require.Error(t, err)
	})

	t.Run("should fail with unknown kind", func(t *testing.T) {
		_, err := masterlabel.NewMasterLabel("EM-1", masterlabel.KindUnknown, "", testCreatedAt)

		require.Error(t, err)
	})
}

func TestMasterLabel_LinkUnlink(t *testing.T) {
	t.Run("count equals distinct linked codes", func(t *testing.T) {
		m, err := masterlabel.NewMasterLabel("EM-1", masterlabel.KindPallet, "", testCreatedAt)
		require.NoError(t, err)

		require.NoError(t, m.Link(testCode(t, 1)))
		require.NoError(t, m.Link(testCode(t, 2)))
		require.NoError(t, m.Link(testCode(t, 1))) // duplicate, no-op

		assert.Equal(t, 2, m.VolumeCount())

		require.NoError(t, m.Unlink(testCode(t, 1)))
		assert.Equal(t, 1, m.VolumeCount())
		assert.False(t, m.Holds(testCode(t, 1)))
		assert.True(t, m.Holds(testCode(t, 2)))
	})

	t.Run("unlinking an unknown volume fails", func(t *testing.T) {
		m, err := masterlabel.NewMasterLabel("EM-1", masterlabel.KindGeneral, "", testCreatedAt)
		require.NoError(t, err)

		assert.ErrorIs(t, m.Unlink(testCode(t, 9)), masterlabel.ErrVolumeNotLinked)
	})

	t.Run("terminal master labels reject linking", func(t *testing.T) {
		m, err := masterlabel.NewMasterLabel("EM-1", masterlabel.KindGeneral, "", testCreatedAt)
		require.NoError(t, err)
		require.NoError(t, m.Invalidate("created by mistake"))

		assert.ErrorIs(t, m.Link(testCode(t, 1)), masterlabel.ErrMasterLabelIsTerminal)
		assert.ErrorIs(t, m.Unlink(testCode(t, 1)), masterlabel.ErrMasterLabelIsTerminal)
	})
}

func TestMasterLabel_Print(t *testing.T) {
	t.Run("first print labels, second is a reprint", func(t *testing.T) {
		m, err := masterlabel.NewMasterLabel("EM-1", masterlabel.KindGeneral, "", testCreatedAt)
		require.NoError(t, err)

		reprint, err := m.Print()
		require.NoError(t, err)
		assert.False(t, reprint)

		reprint, err = m.Print()
		require.NoError(t, err)
		assert.True(t, reprint)
		assert.Equal(t, volume.Labeled, m.Status())
	})
}

func TestMasterLabel_ValidateDelete(t *testing.T) {
	t.Run("cannot delete while holding volumes", func(t *testing.T) {
		m, err := masterlabel.NewMasterLabel("EM-1", masterlabel.KindPallet, "", testCreatedAt)
		require.NoError(t, err)
		require.NoError(t, m.Link(testCode(t, 1)))

		assert.ErrorIs(t, m.ValidateDelete(), masterlabel.ErrMasterLabelStillHoldsVolumes)
	})

	t.Run("empty generated master label may be deleted", func(t *testing.T) {
		m, err := masterlabel.NewMasterLabel("EM-1", masterlabel.KindPallet, "", testCreatedAt)
		require.NoError(t, err)

		require.NoError(t, m.ValidateDelete())
	})

	t.Run("printed master label may not be deleted even when empty", func(t *testing.T) {
		m, err := masterlabel.NewMasterLabel("EM-1", masterlabel.KindPallet, "", testCreatedAt)
		require.NoError(t, err)
		_, err = m.Print()
		require.NoError(t, err)

		require.Error(t, m.ValidateDelete())
	})
}

func TestRestoreMasterLabel(t *testing.T) {
	t.Run("restores linked volumes and status", func(t *testing.T) {
		linked := []kernel.VolumeCode{testCode(t, 1), testCode(t, 2)}

		m, err := masterlabel.RestoreMasterLabel(
			"EM-1", masterlabel.KindPallet, "pallet A", linked, volume.Labeled, testCreatedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, 2, m.VolumeCount())
		assert.Equal(t, volume.Labeled, m.Status())
	})

	t.Run("rejects duplicate linked codes", func(t *testing.T) {
		linked := []kernel.VolumeCode{testCode(t, 1), testCode(t, 1)}

		_, err := masterlabel.RestoreMasterLabel(
			"EM-1", masterlabel.KindGeneral, "", linked, volume.Generated, testCreatedAt,
		)

		require.Error(t, err)
	})
}
