package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/render"
	"labeling/internal/core/domain/model/volume"
)

func makeResolverVolume(t *testing.T, shipment volume.Shipment, weight kernel.Weight) *volume.Volume {
	t.Helper()

	generatedAt := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	code := kernel.AllocateVolumeCode("900", 1, generatedAt)
	v, err := volume.NewVolume(code, "900", 1, 1, weight, shipment, generatedAt)
	require.NoError(t, err)

	return v
}

func Test_ClassificationResolver_Resolve(t *testing.T) {
	resolver := NewClassificationResolver()

	t.Run("should prefer the volume's own values", func(t *testing.T) {
		v := makeResolverVolume(t, volume.Shipment{Sender: "ACME Ltda", Carrier: "Rodonaves"}, kernel.ZeroWeight())
		inv := invoice.Invoice{Sender: "Outro Remetente", Carrier: "Outra Transportadora"}

		fields := resolver.Resolve(v, inv, render.StyleDefault)

		assert.Equal(t, "ACME Ltda", fields.Sender)
		assert.Equal(t, "Rodonaves", fields.Carrier)
	})

	t.Run("should fall back to the invoice when the volume is blank", func(t *testing.T) {
		v := makeResolverVolume(t, volume.Shipment{}, kernel.ZeroWeight())
		inv := invoice.Invoice{Sender: "ACME Ltda", Recipient: "Beta Corp", City: "Joinville"}

		fields := resolver.Resolve(v, inv, render.StyleDefault)

		assert.Equal(t, "ACME Ltda", fields.Sender)
		assert.Equal(t, "Beta Corp", fields.Recipient)
		assert.Equal(t, "Joinville", fields.City)
	})

	t.Run("should degrade to literal defaults instead of failing", func(t *testing.T) {
		v := makeResolverVolume(t, volume.Shipment{}, kernel.ZeroWeight())

		fields := resolver.Resolve(v, invoice.Invoice{}, render.StyleDefault)

		assert.Equal(t, DefaultFieldValue, fields.Sender)
		assert.Equal(t, DefaultFieldValue, fields.Recipient)
		assert.Equal(t, DefaultFieldValue, fields.Carrier)
		assert.Equal(t, volume.HazardUnclassified, fields.HazardClass)
		assert.Equal(t, DefaultStorageArea, fields.Area)
		assert.Equal(t, "0.00 Kg", fields.Weight)
	})

	t.Run("branded layout should pin the carrier over all data", func(t *testing.T) {
		v := makeResolverVolume(t, volume.Shipment{Carrier: "Rodonaves"}, kernel.ZeroWeight())
		inv := invoice.Invoice{Carrier: "Outra Transportadora"}

		fields := resolver.Resolve(v, inv, render.StyleBranded)

		assert.Equal(t, render.BrandedCarrierName, fields.Carrier)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		v := makeResolverVolume(t, volume.Shipment{Sender: "ACME Ltda"}, kernel.ZeroWeight())
		inv := invoice.Invoice{Recipient: "Beta Corp"}

		first := resolver.Resolve(v, inv, render.StyleDefault)
		second := resolver.Resolve(v, inv, render.StyleDefault)

		assert.Equal(t, first, second)
	})

	t.Run("should use the volume weight when present", func(t *testing.T) {
		weight, err := kernel.ParseWeight("3,20")
		require.NoError(t, err)
		v := makeResolverVolume(t, volume.Shipment{}, weight)

		fields := resolver.Resolve(v, invoice.Invoice{DeclaredGrossWeight: "99,00"}, render.StyleDefault)

		assert.Equal(t, "3.20 Kg", fields.Weight)
	})
}

func Test_ClassificationResolver_Enrich(t *testing.T) {
	resolver := NewClassificationResolver()

	t.Run("should fill blanks without touching explicit values", func(t *testing.T) {
		v := makeResolverVolume(t, volume.Shipment{Sender: "ACME Ltda"}, kernel.ZeroWeight())
		inv := invoice.Invoice{Sender: "Outro Remetente", Recipient: "Beta Corp"}

		resolver.Enrich(v, inv)

		assert.Equal(t, "ACME Ltda", v.Shipment().Sender)
		assert.Equal(t, "Beta Corp", v.Shipment().Recipient)
	})

	t.Run("enriching twice should change nothing", func(t *testing.T) {
		v := makeResolverVolume(t, volume.Shipment{}, kernel.ZeroWeight())
		inv := invoice.Invoice{Sender: "ACME Ltda", Carrier: "Rodonaves"}

		resolver.Enrich(v, inv)
		once := v.Shipment()
		resolver.Enrich(v, inv)

		assert.Equal(t, once, v.Shipment())
	})
}
