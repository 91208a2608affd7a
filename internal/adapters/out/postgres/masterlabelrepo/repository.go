package masterlabelrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"labeling/internal/core/domain/model/masterlabel"
	"labeling/internal/pkg/errs"
)

// GormMasterLabelRepository implements MasterLabelRepository using GORM.
type GormMasterLabelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormMasterLabelRepository creates a new GORM master label repository.
func NewGormMasterLabelRepository(db *gorm.DB, tracker aggregateTracker) *GormMasterLabelRepository {
	return &GormMasterLabelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new master label to the database.
func (r *GormMasterLabelRepository) Add(ctx context.Context, aggregate *masterlabel.MasterLabel) error {
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

// Update saves an existing master label to the database. The linked volume
// set lives on the label rows and is persisted through the label repository.
func (r *GormMasterLabelRepository) Update(ctx context.Context, aggregate *masterlabel.MasterLabel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MasterLabelDTO{}).
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

// Get retrieves a master label by its code, rehydrating the linked volume
// codes from the label back-references.
func (r *GormMasterLabelRepository) Get(ctx context.Context, code string) (*masterlabel.MasterLabel, error) {
	var dto MasterLabelDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("master label", code)
		}
		return nil, err
	}

	linked, err := r.linkedCodes(ctx, dto.Code)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, linked)
}

// Delete removes a master label row. The aggregate's ValidateDelete already
// rejects masters still holding volumes; the repository only enforces existence.
func (r *GormMasterLabelRepository) Delete(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Delete(&MasterLabelDTO{}, "code = ?", code)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("master label", code)
	}

	return nil
}

func (r *GormMasterLabelRepository) linkedCodes(ctx context.Context, masterLabelCode string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Table("labels").
		Where("master_label_code = ?", masterLabelCode).
		Order("code").
		Pluck("code", &codes).Error
	if err != nil {
		return nil, err
	}

	return codes, nil
}
