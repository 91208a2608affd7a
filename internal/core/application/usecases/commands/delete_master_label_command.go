package commands

import (
	"errors"

	"labeling/internal/pkg/guard"
)

var ErrDeleteMasterLabelCommandIsNotConstructed = errors.New(
	"DeleteMasterLabelCommand must be created via NewDeleteMasterLabelCommand constructor",
)

// DeleteMasterLabelCommand represents a request to remove a consolidation
// unit. Only empty master labels can go: one still holding volumes must be
// unlinked first.
type DeleteMasterLabelCommand struct { //nolint:recvcheck //using for validation
	masterLabelCode string

	guard guard.ConstructorGuard
}

// NewDeleteMasterLabelCommand creates a command to delete a master label.
func NewDeleteMasterLabelCommand(masterLabelCode string) (DeleteMasterLabelCommand, error) {
	cmd := DeleteMasterLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMasterLabelCode(masterLabelCode); err != nil {
		return DeleteMasterLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMasterLabelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMasterLabelCommandIsNotConstructed)
}

// MasterLabelCode returns the code of the master label to delete.
func (c DeleteMasterLabelCommand) MasterLabelCode() string {
	return c.masterLabelCode
}

func (c *DeleteMasterLabelCommand) setMasterLabelCode(code string) error {
	if code == "" {
		return ErrMasterLabelCodeIsRequired
	}

	c.masterLabelCode = code
	return nil
}
