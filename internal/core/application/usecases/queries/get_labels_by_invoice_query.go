// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the domain model and read projection-shaped rows
// straight from the database.
package queries

import (
	"errors"
	"time"

	"labeling/internal/pkg/guard"
)

var (
	ErrGetLabelsByInvoiceQueryIsNotConstructed = errors.New(
		"GetLabelsByInvoiceQuery must be created via NewGetLabelsByInvoiceQuery constructor",
	)
	ErrInvoiceNumberIsRequired = errors.New("invoice number is required")
)

// GetLabelsByInvoiceQuery retrieves every committed label of one invoice.
//
// Example:
//
//	query, _ := NewGetLabelsByInvoiceQuery("12345")
//	handler := NewGetLabelsByInvoiceQueryHandler(db)
//
//	labels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get labels: %w", err)
//	}
//	fmt.Printf("invoice has %d labels\n", len(labels))
type GetLabelsByInvoiceQuery struct { //nolint:recvcheck //using for validation
	invoiceNumber string

	guard guard.ConstructorGuard
}

// NewGetLabelsByInvoiceQuery creates a query for one invoice's labels.
func NewGetLabelsByInvoiceQuery(invoiceNumber string) (GetLabelsByInvoiceQuery, error) {
	query := GetLabelsByInvoiceQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setInvoiceNumber(invoiceNumber); err != nil {
		return GetLabelsByInvoiceQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLabelsByInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetLabelsByInvoiceQueryIsNotConstructed)
}

// InvoiceNumber returns the invoice being queried.
func (q GetLabelsByInvoiceQuery) InvoiceNumber() string {
	return q.invoiceNumber
}

func (q *GetLabelsByInvoiceQuery) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return ErrInvoiceNumberIsRequired
	}

	q.invoiceNumber = invoiceNumber
	return nil
}

// LabelResponse is the read-side projection of one label row.
type LabelResponse struct {
	Code               string
	InvoiceNumber      string
	AccessKey          string
	Sender             string
	Recipient          string
	City               string
	State              string
	Carrier            string
	WeightKg           string
	Sequence           int
	TotalVolumes       int
	Status             string
	InvalidationReason string
	MasterLabelCode    *string
	GeneratedAt        time.Time
}
