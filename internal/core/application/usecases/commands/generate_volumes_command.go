package commands

import (
	"errors"

	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/pkg/guard"
)

var (
	ErrGenerateVolumesCommandIsNotConstructed = errors.New(
		"GenerateVolumesCommand must be created via NewGenerateVolumesCommand constructor",
	)
	ErrInvoiceNumberIsRequired = errors.New("invoice number is required")
)

// GenerateVolumesCommand represents a request to decompose an invoice into
// its individual volumes and stage them for printing or committing.
//
// Example:
//
//	cmd, err := NewGenerateVolumesCommand(inv)
//	if err != nil {
//	    return fmt.Errorf("invalid invoice data: %w", err)
//	}
//
//	handler := NewGenerateVolumesCommandHandler(decomposer, resolver, arena)
//	volumes, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to generate volumes: %w", err)
//	}
//	fmt.Printf("%d volumes staged for invoice %s", len(volumes), inv.Number)
type GenerateVolumesCommand struct { //nolint:recvcheck //using for validation
	invoice invoice.Invoice

	guard guard.ConstructorGuard
}

// NewGenerateVolumesCommand creates a command to generate volumes from an
// invoice. Validates that the invoice carries a number.
func NewGenerateVolumesCommand(inv invoice.Invoice) (GenerateVolumesCommand, error) {
	cmd := GenerateVolumesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInvoice(inv); err != nil {
		return GenerateVolumesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateVolumesCommand) Validate() error {
	return c.guard.Validate(ErrGenerateVolumesCommandIsNotConstructed)
}

// Invoice returns the source invoice snapshot.
func (c GenerateVolumesCommand) Invoice() invoice.Invoice {
	return c.invoice
}

func (c *GenerateVolumesCommand) setInvoice(inv invoice.Invoice) error {
	if inv.Number == "" {
		return ErrInvoiceNumberIsRequired
	}

	c.invoice = inv
	return nil
}
