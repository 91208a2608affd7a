package ports

import (
	"context"

	"labeling/internal/core/domain/model/masterlabel"
)

// MasterLabelRepository defines the persistence contract for master-label
// aggregates, including their linked volume sets.
type MasterLabelRepository interface {
	// Add persists a new master label to storage.
	Add(ctx context.Context, aggregate *masterlabel.MasterLabel) error

	// Update persists changes to an existing master label, including
	// additions to and removals from its linked volume set.
	Update(ctx context.Context, aggregate *masterlabel.MasterLabel) error

	// Get retrieves a master label by its code.
	Get(ctx context.Context, code string) (*masterlabel.MasterLabel, error)

	// Delete removes a master label from storage. Only master labels
	// that passed the aggregate's delete validation may be handed here.
	Delete(ctx context.Context, code string) error
}
