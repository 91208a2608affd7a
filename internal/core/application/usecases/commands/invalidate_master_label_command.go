package commands

import (
	"errors"

	"labeling/internal/pkg/guard"
)

var ErrInvalidateMasterLabelCommandIsNotConstructed = errors.New(
	"InvalidateMasterLabelCommand must be created via NewInvalidateMasterLabelCommand constructor",
)

// InvalidateMasterLabelCommand represents a request to withdraw a master
// label from circulation with a justification.
type InvalidateMasterLabelCommand struct { //nolint:recvcheck //using for validation
	masterLabelCode string
	reason          string

	guard guard.ConstructorGuard
}

// NewInvalidateMasterLabelCommand creates a command to invalidate a master
// label. Requires both the code and a non-empty reason.
func NewInvalidateMasterLabelCommand(masterLabelCode, reason string) (InvalidateMasterLabelCommand, error) {
	cmd := InvalidateMasterLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMasterLabelCode(masterLabelCode),
		cmd.setReason(reason),
	); err != nil {
		return InvalidateMasterLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InvalidateMasterLabelCommand) Validate() error {
	return c.guard.Validate(ErrInvalidateMasterLabelCommandIsNotConstructed)
}

// MasterLabelCode returns the code of the master label to invalidate.
func (c InvalidateMasterLabelCommand) MasterLabelCode() string {
	return c.masterLabelCode
}

// Reason returns the audit reason.
func (c InvalidateMasterLabelCommand) Reason() string {
	return c.reason
}

func (c *InvalidateMasterLabelCommand) setMasterLabelCode(code string) error {
	if code == "" {
		return ErrMasterLabelCodeIsRequired
	}

	c.masterLabelCode = code
	return nil
}

func (c *InvalidateMasterLabelCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
