package queries

import (
	"context"

	"gorm.io/gorm"

	"labeling/internal/core/domain/model/volume"
)

// GetLabelsByInvoiceQueryHandler reads one invoice's labels from the
// database, ordered by sequence.
type GetLabelsByInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetLabelsByInvoiceQueryHandler creates a handler for invoice label queries.
// Requires a GORM database connection for query execution.
func NewGetLabelsByInvoiceQueryHandler(db *gorm.DB) GetLabelsByInvoiceQueryHandler {
	return GetLabelsByInvoiceQueryHandler{db: db}
}

// Handle executes the query. Only committed labels are returned; staged
// volumes live in memory until their commit and are not visible here.
func (h GetLabelsByInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetLabelsByInvoiceQuery,
) ([]LabelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	labels := make([]LabelResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE invoice_number = ?
		ORDER BY sequence
	`, query.InvoiceNumber()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var label LabelResponse
		var status int

		err = rows.Scan(
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
		if err != nil {
			return nil, err
		}

		label.Status = volume.Status(status).String()
		labels = append(labels, label)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return labels, nil
}
