package commands

import (
	"errors"

	"labeling/internal/pkg/guard"
)

var ErrUnlinkVolumesCommandIsNotConstructed = errors.New(
	"UnlinkVolumesCommand must be created via NewUnlinkVolumesCommand constructor",
)

// UnlinkVolumesCommand represents a request to release volumes from a master
// label back into the generated pool.
type UnlinkVolumesCommand struct { //nolint:recvcheck //using for validation
	masterLabelCode string
	codes           []string

	guard guard.ConstructorGuard
}

// NewUnlinkVolumesCommand creates a command to unlink volumes from a master label.
func NewUnlinkVolumesCommand(masterLabelCode string, codes []string) (UnlinkVolumesCommand, error) {
	cmd := UnlinkVolumesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMasterLabelCode(masterLabelCode),
		cmd.setCodes(codes),
	); err != nil {
		return UnlinkVolumesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnlinkVolumesCommand) Validate() error {
	return c.guard.Validate(ErrUnlinkVolumesCommandIsNotConstructed)
}

// MasterLabelCode returns the master label's code.
func (c UnlinkVolumesCommand) MasterLabelCode() string {
	return c.masterLabelCode
}

// Codes returns the volume codes to release.
func (c UnlinkVolumesCommand) Codes() []string {
	return c.codes
}

func (c *UnlinkVolumesCommand) setMasterLabelCode(masterLabelCode string) error {
	if masterLabelCode == "" {
		return ErrMasterLabelCodeIsRequired
	}

	c.masterLabelCode = masterLabelCode
	return nil
}

func (c *UnlinkVolumesCommand) setCodes(codes []string) error {
	if len(codes) == 0 {
		return ErrVolumeCodesAreRequired
	}

	c.codes = codes
	return nil
}
