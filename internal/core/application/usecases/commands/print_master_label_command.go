package commands

import (
	"errors"

	"labeling/internal/core/domain/model/render"
	"labeling/internal/pkg/guard"
)

var ErrPrintMasterLabelCommandIsNotConstructed = errors.New(
	"PrintMasterLabelCommand must be created via NewPrintMasterLabelCommand constructor",
)

// PrintMasterLabelCommand represents a request to render a master label.
type PrintMasterLabelCommand struct { //nolint:recvcheck //using for validation
	masterLabelCode string
	format          render.Format
	style           render.LayoutStyle

	guard guard.ConstructorGuard
}

// NewPrintMasterLabelCommand creates a command to print a master label.
func NewPrintMasterLabelCommand(masterLabelCode, formatKey, styleKey string) (PrintMasterLabelCommand, error) {
	cmd := PrintMasterLabelCommand{
		format: render.FormatFromKey(formatKey),
		style:  render.LayoutStyleFromKey(styleKey),
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setMasterLabelCode(masterLabelCode); err != nil {
		return PrintMasterLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PrintMasterLabelCommand) Validate() error {
	return c.guard.Validate(ErrPrintMasterLabelCommandIsNotConstructed)
}

// MasterLabelCode returns the master label's code.
func (c PrintMasterLabelCommand) MasterLabelCode() string {
	return c.masterLabelCode
}

// Format returns the resolved page geometry.
func (c PrintMasterLabelCommand) Format() render.Format {
	return c.format
}

// Style returns the resolved layout style.
func (c PrintMasterLabelCommand) Style() render.LayoutStyle {
	return c.style
}

func (c *PrintMasterLabelCommand) setMasterLabelCode(masterLabelCode string) error {
	if masterLabelCode == "" {
		return ErrMasterLabelCodeIsRequired
	}

	c.masterLabelCode = masterLabelCode
	return nil
}
