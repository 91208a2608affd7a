package queries

import (
	"errors"
	"time"

	"labeling/internal/pkg/guard"
)

var ErrGetMasterLabelsQueryIsNotConstructed = errors.New(
	"GetMasterLabelsQuery must be created via NewGetMasterLabelsQuery constructor",
)

// GetMasterLabelsQuery retrieves all master labels with their volume counts.
// This is a parameterless query used by the consolidation screens.
type GetMasterLabelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMasterLabelsQuery creates a query to retrieve all master labels.
func NewGetMasterLabelsQuery() GetMasterLabelsQuery {
	return GetMasterLabelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMasterLabelsQuery) Validate() error {
	return q.guard.Validate(ErrGetMasterLabelsQueryIsNotConstructed)
}

// MasterLabelResponse is the read-side projection of one master label.
type MasterLabelResponse struct {
	Code        string
	Kind        string
	Description string
	Status      string
	VolumeCount int
	CreatedAt   time.Time
}
