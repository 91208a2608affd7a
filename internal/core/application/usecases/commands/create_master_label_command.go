package commands

import (
	"errors"

	"labeling/internal/core/domain/model/masterlabel"
	"labeling/internal/pkg/guard"
)

var ErrCreateMasterLabelCommandIsNotConstructed = errors.New(
	"CreateMasterLabelCommand must be created via NewCreateMasterLabelCommand constructor",
)

// CreateMasterLabelCommand represents a request to open a new consolidation
// unit: a general grouping or a physical pallet.
type CreateMasterLabelCommand struct { //nolint:recvcheck //using for validation
	kind        masterlabel.Kind
	description string

	guard guard.ConstructorGuard
}

// NewCreateMasterLabelCommand creates a command to register a master label
// of the given kind. The description is optional free text.
func NewCreateMasterLabelCommand(kindKey, description string) (CreateMasterLabelCommand, error) {
	cmd := CreateMasterLabelCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setKind(kindKey); err != nil {
		return CreateMasterLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMasterLabelCommand) Validate() error {
	return c.guard.Validate(ErrCreateMasterLabelCommandIsNotConstructed)
}

// Kind returns the consolidation kind.
func (c CreateMasterLabelCommand) Kind() masterlabel.Kind {
	return c.kind
}

// Description returns the free-text description.
func (c CreateMasterLabelCommand) Description() string {
	return c.description
}

func (c *CreateMasterLabelCommand) setKind(kindKey string) error {
	kind, err := masterlabel.KindFromString(kindKey)
	if err != nil {
		return err
	}

	c.kind = kind
	return nil
}
