// Package masterlabelrepo provides the GORM persistence adapter for the
// MasterLabel aggregate. Linked volumes are not stored here: each label row
// carries a back-reference to its master label, and the repository rehydrates
// the linked set from those references on read.
package masterlabelrepo

import (
	"time"

	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/masterlabel"
	"labeling/internal/core/domain/model/volume"
)

// MasterLabelDTO is the database representation of a MasterLabel aggregate.
type MasterLabelDTO struct {
	Code        string `gorm:"primaryKey"`
	Kind        string `gorm:"index"`
	Description string
	Status      int `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for GORM.
func (MasterLabelDTO) TableName() string {
	return "master_labels"
}

func fromDomain(m *masterlabel.MasterLabel) MasterLabelDTO {
	return MasterLabelDTO{
		Code:        m.Code(),
		Kind:        m.Kind().Storage(),
		Description: m.Description(),
		Status:      int(m.Status()),
		CreatedAt:   m.CreatedAt(),
	}
}

func toDomain(dto MasterLabelDTO, linkedCodes []string) (*masterlabel.MasterLabel, error) {
	kind, err := masterlabel.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	linked := make([]kernel.VolumeCode, 0, len(linkedCodes))
	for _, raw := range linkedCodes {
		code, err := kernel.VolumeCodeFromString(raw)
		if err != nil {
			return nil, err
		}
		linked = append(linked, code)
	}

	return masterlabel.RestoreMasterLabel(
		dto.Code,
		kind,
		dto.Description,
		linked,
		volume.Status(dto.Status),
		dto.CreatedAt,
	)
}
