package commands

import (
	"errors"

	"labeling/internal/pkg/guard"
)

var (
	ErrLinkVolumesCommandIsNotConstructed = errors.New(
		"LinkVolumesCommand must be created via NewLinkVolumesCommand constructor",
	)
	ErrMasterLabelCodeIsRequired = errors.New("master label code is required")
)

// LinkVolumesCommand represents a request to consolidate a set of committed
// volumes under a master label. The whole set links or none of it does.
type LinkVolumesCommand struct { //nolint:recvcheck //using for validation
	masterLabelCode string
	codes           []string

	guard guard.ConstructorGuard
}

// NewLinkVolumesCommand creates a command to link volumes to a master label.
func NewLinkVolumesCommand(masterLabelCode string, codes []string) (LinkVolumesCommand, error) {
	cmd := LinkVolumesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMasterLabelCode(masterLabelCode),
		cmd.setCodes(codes),
	); err != nil {
		return LinkVolumesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LinkVolumesCommand) Validate() error {
	return c.guard.Validate(ErrLinkVolumesCommandIsNotConstructed)
}

// MasterLabelCode returns the target master label's code.
func (c LinkVolumesCommand) MasterLabelCode() string {
	return c.masterLabelCode
}

// Codes returns the volume codes to link.
func (c LinkVolumesCommand) Codes() []string {
	return c.codes
}

func (c *LinkVolumesCommand) setMasterLabelCode(masterLabelCode string) error {
	if masterLabelCode == "" {
		return ErrMasterLabelCodeIsRequired
	}

	c.masterLabelCode = masterLabelCode
	return nil
}

func (c *LinkVolumesCommand) setCodes(codes []string) error {
	if len(codes) == 0 {
		return ErrVolumeCodesAreRequired
	}

	c.codes = codes
	return nil
}
