package commands

import (
	"errors"

	"labeling/internal/pkg/guard"
)

var ErrCommitVolumesCommandIsNotConstructed = errors.New(
	"CommitVolumesCommand must be created via NewCommitVolumesCommand constructor",
)

// CommitVolumesCommand represents a request to persist an invoice's staged
// volumes to durable storage.
type CommitVolumesCommand struct { //nolint:recvcheck //using for validation
	invoiceNumber string

	guard guard.ConstructorGuard
}

// NewCommitVolumesCommand creates a command to commit the staged volumes of
// the given invoice.
func NewCommitVolumesCommand(invoiceNumber string) (CommitVolumesCommand, error) {
	cmd := CommitVolumesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInvoiceNumber(invoiceNumber); err != nil {
		return CommitVolumesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CommitVolumesCommand) Validate() error {
	return c.guard.Validate(ErrCommitVolumesCommandIsNotConstructed)
}

// InvoiceNumber returns the invoice whose staged volumes are committed.
func (c CommitVolumesCommand) InvoiceNumber() string {
	return c.invoiceNumber
}

func (c *CommitVolumesCommand) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return ErrInvoiceNumberIsRequired
	}

	c.invoiceNumber = invoiceNumber
	return nil
}
