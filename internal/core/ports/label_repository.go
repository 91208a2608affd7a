// Package ports defines repository and rendering interfaces for the labeling
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"labeling/internal/core/domain/model/kernel"
	"labeling/internal/core/domain/model/volume"
)

// LabelRepository defines the persistence contract for volume aggregates.
// Provides methods for storing, retrieving, and querying volumes with their
// complete lifecycle state.
type LabelRepository interface {
	// Add persists a new volume aggregate to storage.
	// The volume must be valid and its code must not already exist; a
	// duplicate code surfaces as a conflict error from the adapter.
	Add(ctx context.Context, aggregate *volume.Volume) error

	// Update persists changes to an existing volume aggregate.
	Update(ctx context.Context, aggregate *volume.Volume) error

	// Get retrieves a volume aggregate by its code.
	Get(ctx context.Context, code kernel.VolumeCode) (*volume.Volume, error)

	// GetByInvoice retrieves every volume generated for an invoice,
	// ordered by sequence.
	GetByInvoice(ctx context.Context, invoiceNumber string) ([]*volume.Volume, error)

	// GetByMasterLabel retrieves every volume consolidated under the
	// given master label.
	GetByMasterLabel(ctx context.Context, masterLabelCode string) ([]*volume.Volume, error)

	// Delete removes a volume from storage. Only volumes that passed the
	// aggregate's delete validation may be handed to this method.
	Delete(ctx context.Context, code kernel.VolumeCode) error
}
