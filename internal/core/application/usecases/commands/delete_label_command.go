package commands

import (
	"errors"

	"labeling/internal/pkg/guard"
)

var ErrDeleteLabelCommandIsNotConstructed = errors.New(
	"DeleteLabelCommand must be created via NewDeleteLabelCommand constructor",
)

// DeleteLabelCommand represents a request to remove a never-printed label.
// Printed labels cannot be deleted; they must be invalidated so the audit
// trail survives.
type DeleteLabelCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewDeleteLabelCommand creates a command to delete a label.
func NewDeleteLabelCommand(code string) (DeleteLabelCommand, error) {
	cmd := DeleteLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCode(code); err != nil {
		return DeleteLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLabelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLabelCommandIsNotConstructed)
}

// Code returns the volume code to delete.
func (c DeleteLabelCommand) Code() string {
	return c.code
}

func (c *DeleteLabelCommand) setCode(code string) error {
	if code == "" {
		return ErrVolumeCodeIsRequired
	}

	c.code = code
	return nil
}
