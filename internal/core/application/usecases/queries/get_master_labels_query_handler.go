package queries

import (
	"context"

	"gorm.io/gorm"

	"labeling/internal/core/domain/model/volume"
)

// GetMasterLabelsQueryHandler reads all master labels newest first, counting
// linked volumes from the labels table so the count can never drift from the
// back-references.
type GetMasterLabelsQueryHandler struct {
	db *gorm.DB
}

// NewGetMasterLabelsQueryHandler creates a handler for master-label queries.
func NewGetMasterLabelsQueryHandler(db *gorm.DB) GetMasterLabelsQueryHandler {
	return GetMasterLabelsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetMasterLabelsQueryHandler) Handle(
	ctx context.Context,
	query GetMasterLabelsQuery,
) ([]MasterLabelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	masters := make([]MasterLabelResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.code,
			m.kind,
			m.description,
			m.status,
			COUNT(l.code) AS volume_count,
			m.created_at
		FROM master_labels m
		LEFT JOIN labels l ON l.master_label_code = m.code
		GROUP BY m.code, m.kind, m.description, m.status, m.created_at
		ORDER BY m.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var master MasterLabelResponse
		var status int

		err = rows.Scan(
			&master.Code,
			&master.Kind,
			&master.Description,
			&status,
			&master.VolumeCount,
			&master.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		master.Status = volume.Status(status).String()
		masters = append(masters, master)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return masters, nil
}
