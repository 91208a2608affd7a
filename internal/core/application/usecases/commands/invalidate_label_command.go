package commands

import (
	"errors"

	"labeling/internal/pkg/guard"
)

var (
	ErrInvalidateLabelCommandIsNotConstructed = errors.New(
		"InvalidateLabelCommand must be created via NewInvalidateLabelCommand constructor",
	)
	ErrReasonIsRequired = errors.New("invalidation reason is required")
)

// InvalidateLabelCommand represents a request to permanently take a label
// out of circulation, with the reason kept for audit.
type InvalidateLabelCommand struct { //nolint:recvcheck //using for validation
	code   string
	reason string

	guard guard.ConstructorGuard
}

// NewInvalidateLabelCommand creates a command to invalidate a label.
// Requires both the code and a non-empty reason.
func NewInvalidateLabelCommand(code, reason string) (InvalidateLabelCommand, error) {
	cmd := InvalidateLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setReason(reason),
	); err != nil {
		return InvalidateLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InvalidateLabelCommand) Validate() error {
	return c.guard.Validate(ErrInvalidateLabelCommandIsNotConstructed)
}

// Code returns the volume code to invalidate.
func (c InvalidateLabelCommand) Code() string {
	return c.code
}

// Reason returns the audit reason.
func (c InvalidateLabelCommand) Reason() string {
	return c.reason
}

func (c *InvalidateLabelCommand) setCode(code string) error {
	if code == "" {
		return ErrVolumeCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *InvalidateLabelCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
