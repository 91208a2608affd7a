package services

import (
	"time"

	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/volume"
)

// VolumeDecomposer is a domain service responsible for breaking an invoice
// into its individual volumes, each with a stable identity and an even share
// of the declared gross weight.
//
// Key responsibilities:
//   - Deriving the volume count from the invoice (never less than one)
//   - Splitting the declared gross weight evenly across the volumes
//   - Allocating a deterministic code for every volume
//
// Business rules:
//   - An invoice declaring zero or a negative volume count yields one volume
//   - Weight shares are rounded to two decimal places
//   - An unparseable declared weight decomposes as zero, never as an error
//   - Volumes come out ordered by sequence, 1..N
//
// Example usage:
//
//	decomposer := NewVolumeDecomposer()
//	volumes, err := decomposer.Decompose(inv, time.Now())
//	if err != nil {
//	    // invoice number missing or another constructor violation
//	    return
//	}
//	// volumes[0].SequenceLabel() == "1/5", etc.
type VolumeDecomposer struct{}

// NewVolumeDecomposer creates a new VolumeDecomposer instance.
func NewVolumeDecomposer() VolumeDecomposer {
	return VolumeDecomposer{}
}

// Decompose breaks the invoice into its volumes at the given generation
// instant. All volumes of one call share the same instant, so their codes
// differ only in the sequence segment.
func (d VolumeDecomposer) Decompose(inv invoice.Invoice, generatedAt time.Time) ([]*volume.Volume, error) {
	count := inv.DeclaredVolumeCount
	if count <= 0 {
		count = 1
	}

	gross := kernel.ParseWeightOrZero(inv.DeclaredGrossWeight)
	share := gross.Split(count)

	shipment := volume.Shipment{
		AccessKey:   inv.AccessKey,
		OrderNumber: inv.OrderNumber,
		Sender:      inv.Sender,
		Recipient:   inv.Recipient,
		Address:     inv.Address,
		City:        inv.City,
		State:       inv.State,
		Carrier:     inv.Carrier,
		UNNumber:    inv.UNNumber,
		RiskCode:    inv.RiskCode,
		HazardClass: inv.HazardClass,
	}

	volumes := make([]*volume.Volume, 0, count)
	for sequence := 1; sequence <= count; sequence++ {
		code := kernel.AllocateVolumeCode(inv.Number, sequence, generatedAt)

		v, err := volume.NewVolume(code, inv.Number, sequence, count, share, shipment, generatedAt)
		if err != nil {
			return nil, err
		}

		volumes = append(volumes, v)
	}

	return volumes, nil
}
