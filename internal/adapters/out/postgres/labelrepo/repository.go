package labelrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/pkg/errs"
)

// GormLabelRepository implements LabelRepository using GORM.
type GormLabelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormLabelRepository creates a new GORM label repository.
func NewGormLabelRepository(db *gorm.DB, tracker aggregateTracker) *GormLabelRepository {
	return &GormLabelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new volume to the database. A duplicate code violates the
// primary key and comes back as the driver's conflict error.
func (r *GormLabelRepository) Add(ctx context.Context, aggregate *volume.Volume) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.Code, aggregate)
	return nil
}

// Update saves an existing volume to the database.
func (r *GormLabelRepository) Update(ctx context.Context, aggregate *volume.Volume) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LabelDTO{}).
		Where("code = ?", dto.Code).
		Select("*").Omit("code").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(dto.Code, aggregate)
	return nil
}

// Get retrieves a volume by its code.
func (r *GormLabelRepository) Get(ctx context.Context, code kernel.VolumeCode) (*volume.Volume, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto LabelDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("label", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByInvoice retrieves every volume of an invoice ordered by sequence.
func (r *GormLabelRepository) GetByInvoice(ctx context.Context, invoiceNumber string) ([]*volume.Volume, error) {
	var dtos []LabelDTO
	err := r.db.WithContext(ctx).
		Order("sequence").
		Find(&dtos, "invoice_number = ?", invoiceNumber).Error
	if err != nil {
		return nil, err
	}

	return r.toVolumes(dtos)
}

// GetByMasterLabel retrieves every volume consolidated under a master label.
func (r *GormLabelRepository) GetByMasterLabel(ctx context.Context, masterLabelCode string) ([]*volume.Volume, error) {
	var dtos []LabelDTO
	err := r.db.WithContext(ctx).
		Order("code").
		Find(&dtos, "master_label_code = ?", masterLabelCode).Error
	if err != nil {
		return nil, err
	}

	return r.toVolumes(dtos)
}

// Delete removes a volume row. The caller is responsible for the aggregate's
// delete validation; the repository only enforces existence.
func (r *GormLabelRepository) Delete(ctx context.Context, code kernel.VolumeCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LabelDTO{}, "code = ?", code.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("label", code.String())
	}

	return nil
}

func (r *GormLabelRepository) toVolumes(dtos []LabelDTO) ([]*volume.Volume, error) {
	volumes := make([]*volume.Volume, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		volumes = append(volumes, v)
	}

	return volumes, nil
}
