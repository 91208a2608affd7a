// Package labelrepo provides data transfer objects and mapping functions for
// volume persistence. This package implements the repository pattern for the
// volume aggregate, handling the conversion between domain entities and
// database representations.
package labelrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/volume"
)

// LabelDTO represents the database structure for persisting volume aggregates.
// The code is the natural primary key; a unique index on it is what turns a
// same-hour regeneration clash into a per-item conflict at commit time.
type LabelDTO struct {
	Code               string `gorm:"primaryKey"`
	InvoiceNumber      string `gorm:"index"`
	AccessKey          string
	OrderNumber        string
	Sender             string
	Recipient          string
	Address            string
	City               string
	State              string
	Carrier            string
	UNNumber           string `gorm:"column:un_number"`
	RiskCode           string
	HazardClass        string
	Quantity           int
	WeightKg           decimal.Decimal `gorm:"type:numeric(12,2)"`
	Sequence           int
	TotalVolumes       int
	Status             int `gorm:"index"`
	InvalidationReason string
	Labeled            bool
	Printed            bool
	MasterLabelCode    *string `gorm:"index"`
	GeneratedAt        time.Time
}

// TableName specifies the database table name for volume entities.
// Overrides GORM's default naming convention to use "labels".
func (LabelDTO) TableName() string {
	return "labels"
}

// fromDomain converts a volume domain aggregate to its database representation.
func fromDomain(v *volume.Volume) LabelDTO {
	shipment := v.Shipment()

	return LabelDTO{
		Code:               v.Code().String(),
		InvoiceNumber:      v.InvoiceNumber(),
		AccessKey:          shipment.AccessKey,
		OrderNumber:        shipment.OrderNumber,
		Sender:             shipment.Sender,
		Recipient:          shipment.Recipient,
		Address:            shipment.Address,
		City:               shipment.City,
		State:              shipment.State,
		Carrier:            shipment.Carrier,
		UNNumber:           shipment.UNNumber,
		RiskCode:           shipment.RiskCode,
		HazardClass:        shipment.HazardClass,
		Quantity:           v.Quantity(),
		WeightKg:           v.Weight().Kilograms(),
		Sequence:           v.Sequence(),
		TotalVolumes:       v.TotalVolumes(),
		Status:             int(v.Status()),
		InvalidationReason: v.InvalidationReason(),
		Labeled:            v.IsLabeled(),
		Printed:            v.IsPrinted(),
		MasterLabelCode:    v.MasterLabelCode(),
		GeneratedAt:        v.GeneratedAt(),
	}
}

// toDomain converts a database DTO to a volume domain aggregate using
// RestoreVolume.
func toDomain(dto LabelDTO) (*volume.Volume, error) {
	code, err := kernel.VolumeCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.WeightKg)
	if err != nil {
		return nil, err
	}

	shipment := volume.Shipment{
		AccessKey:   dto.AccessKey,
		OrderNumber: dto.OrderNumber,
		Sender:      dto.Sender,
		Recipient:   dto.Recipient,
		Address:     dto.Address,
		City:        dto.City,
		State:       dto.State,
		Carrier:     dto.Carrier,
		UNNumber:    dto.UNNumber,
		RiskCode:    dto.RiskCode,
		HazardClass: dto.HazardClass,
	}

	return volume.RestoreVolume(
		code,
		dto.InvoiceNumber,
		dto.Sequence,
		dto.TotalVolumes,
		dto.Quantity,
		weight,
		shipment,
		volume.Status(dto.Status),
		dto.InvalidationReason,
		dto.Labeled,
		dto.Printed,
		dto.MasterLabelCode,
		dto.GeneratedAt,
	)
}
