package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"labeling/internal/core/domain/model/volume"
	"labeling/internal/pkg/errs"
)

// GetLabelByCodeQueryHandler reads one label row by its code.
type GetLabelByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetLabelByCodeQueryHandler creates a handler for single-label lookups.
func NewGetLabelByCodeQueryHandler(db *gorm.DB) GetLabelByCodeQueryHandler {
	return GetLabelByCodeQueryHandler{db: db}
}

// Handle executes the lookup. An unknown code returns errs.ObjectNotFoundError.
func (h GetLabelByCodeQueryHandler) Handle(
	ctx context.Context,
	query GetLabelByCodeQuery,
) (LabelResponse, error) {
	if err := query.Validate(); err != nil {
		return LabelResponse{}, err
	}

	var label LabelResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			invoice_number,
			access_key,
			sender,
			recipient,
			city,
			state,
			carrier,
			weight_kg,
			sequence,
			total_volumes,
			status,
			invalidation_reason,
			master_label_code,
			generated_at
		FROM labels
		WHERE code = ?
	`, query.Code()).Row()

	err := row.Scan(
		&label.Code,
		&label.InvoiceNumber,
		&label.AccessKey,
		&label.Sender,
		&label.Recipient,
		&label.City,
		&label.State,
		&label.Carrier,
		&label.WeightKg,
		&label.Sequence,
		&label.TotalVolumes,
		&status,
		&label.InvalidationReason,
		&label.MasterLabelCode,
		&label.GeneratedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return LabelResponse{}, errs.NewObjectNotFoundError("code", query.Code())
	}
	if err != nil {
		return LabelResponse{}, err
	}

	label.Status = volume.Status(status).String()
	return label, nil
}
