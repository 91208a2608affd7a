package queries

import (
	"errors"

	"labeling/internal/pkg/guard"
)

var (
	ErrGetLabelByCodeQueryIsNotConstructed = errors.New(
		"GetLabelByCodeQuery must be created via NewGetLabelByCodeQuery constructor",
	)
	ErrCodeIsRequired = errors.New("label code is required")
)

// GetLabelByCodeQuery retrieves one label by its code, typically from a
// barcode scan at a conference or addressing station.
type GetLabelByCodeQuery struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewGetLabelByCodeQuery creates a query for one label.
func NewGetLabelByCodeQuery(code string) (GetLabelByCodeQuery, error) {
	query := GetLabelByCodeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCode(code); err != nil {
		return GetLabelByCodeQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLabelByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetLabelByCodeQueryIsNotConstructed)
}

// Code returns the label code being queried.
func (q GetLabelByCodeQuery) Code() string {
	return q.code
}

func (q *GetLabelByCodeQuery) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	q.code = code
	return nil
}
