package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/volume"
)

func Test_VolumeDecomposer(t *testing.T) {
	generatedAt := time.Date(2026, 8, 28, 15, 42, 0, 0, time.UTC)

	t.Run("should produce one volume per declared count in sequence order", func(t *testing.T) {
		inv := invoice.Invoice{
			Number:              "12345",
			DeclaredVolumeCount: 5,
			DeclaredGrossWeight: "16,00",
			Sender:              "ACME Ltda",
			Recipient:           "Beta Corp",
		}

		volumes, err := NewVolumeDecomposer().Decompose(inv, generatedAt)

		require.NoError(t, err)
		require.Len(t, volumes, 5)
		for i, v := range volumes {
			assert.Equal(t, i+1, v.Sequence())
			assert.Equal(t, 5, v.TotalVolumes())
			assert.Equal(t, volume.Generated, v.Status())
			assert.Equal(t, "3.20", v.Weight().String())
		}
		assert.Equal(t, "2/5", volumes[1].SequenceLabel())
	})

	t.Run("should embed the generation instant in every code", func(t *testing.T) {
		inv := invoice.Invoice{Number: "12345", DeclaredVolumeCount: 2}

		volumes, err := NewVolumeDecomposer().Decompose(inv, generatedAt)

		require.NoError(t, err)
		assert.Equal(t, "12345-001-28082615", volumes[0].Code().String())
		assert.Equal(t, "12345-002-28082615", volumes[1].Code().String())
	})

	t.Run("should default a missing volume count to one", func(t *testing.T) {
		inv := invoice.Invoice{Number: "12345"}

		volumes, err := NewVolumeDecomposer().Decompose(inv, generatedAt)

		require.NoError(t, err)
		require.Len(t, volumes, 1)
		assert.Equal(t, "1/1", volumes[0].SequenceLabel())
	})

	t.Run("should decompose an unparseable weight as zero", func(t *testing.T) {
		inv := invoice.Invoice{Number: "12345", DeclaredVolumeCount: 3, DeclaredGrossWeight: "abc"}

		volumes, err := NewVolumeDecomposer().Decompose(inv, generatedAt)

		require.NoError(t, err)
		for _, v := range volumes {
			assert.True(t, v.Weight().IsZero())
		}
	})

	t.Run("should parse a locale-formatted gross weight", func(t *testing.T) {
		inv := invoice.Invoice{Number: "12345", DeclaredVolumeCount: 2, DeclaredGrossWeight: "1.234,56"}

		volumes, err := NewVolumeDecomposer().Decompose(inv, generatedAt)

		require.NoError(t, err)
		assert.Equal(t, "617.28", volumes[0].Weight().String())
	})

	t.Run("should copy shipment metadata onto every volume", func(t *testing.T) {
		inv := invoice.Invoice{
			Number:              "777",
			AccessKey:           "35260812345678000190550010000000011000000017",
			DeclaredVolumeCount: 2,
			Sender:              "ACME Ltda",
			Recipient:           "Beta Corp",
			Carrier:             "Rodonaves",
			City:                "Joinville",
			State:               "SC",
		}

		volumes, err := NewVolumeDecomposer().Decompose(inv, generatedAt)

		require.NoError(t, err)
		shipment := volumes[1].Shipment()
		assert.Equal(t, inv.AccessKey, shipment.AccessKey)
		assert.Equal(t, "Rodonaves", shipment.Carrier)
		assert.Equal(t, "Joinville", shipment.City)
		assert.Equal(t, volume.HazardUnclassified, shipment.HazardClass)
	})

	t.Run("should fail without an invoice number", func(t *testing.T) {
		_, err := NewVolumeDecomposer().Decompose(invoice.Invoice{}, generatedAt)

		assert.Error(t, err)
	})

	t.Run("shares of a large run should stay two decimal places", func(t *testing.T) {
		inv := invoice.Invoice{Number: "12345", DeclaredVolumeCount: 3, DeclaredGrossWeight: "10,00"}

		volumes, err := NewVolumeDecomposer().Decompose(inv, generatedAt)

		require.NoError(t, err)
		expected, err := kernel.ParseWeight("3.33")
		require.NoError(t, err)
		assert.True(t, volumes[0].Weight().IsEqual(expected))
	})
}
