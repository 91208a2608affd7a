package commands

import (
	"errors"

	"labeling/internal/core/domain/model/render"
	"labeling/internal/pkg/guard"
)

var (
	ErrReprintLabelCommandIsNotConstructed = errors.New(
		"ReprintLabelCommand must be created via NewReprintLabelCommand constructor",
	)
	ErrVolumeCodeIsRequired = errors.New("volume code is required")
)

// ReprintLabelCommand represents a request for a duplicate copy of one label.
type ReprintLabelCommand struct { //nolint:recvcheck //using for validation
	code   string
	format render.Format
	style  render.LayoutStyle

	guard guard.ConstructorGuard
}

// NewReprintLabelCommand creates a command to reprint a single label.
func NewReprintLabelCommand(code, formatKey, styleKey string) (ReprintLabelCommand, error) {
	cmd := ReprintLabelCommand{
		format: render.FormatFromKey(formatKey),
		style:  render.LayoutStyleFromKey(styleKey),
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setCode(code); err != nil {
		return ReprintLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReprintLabelCommand) Validate() error {
	return c.guard.Validate(ErrReprintLabelCommandIsNotConstructed)
}

// Code returns the volume code to reprint.
func (c ReprintLabelCommand) Code() string {
	return c.code
}

// Format returns the resolved page geometry.
func (c ReprintLabelCommand) Format() render.Format {
	return c.format
}

// Style returns the resolved layout style.
func (c ReprintLabelCommand) Style() render.LayoutStyle {
	return c.style
}

func (c *ReprintLabelCommand) setCode(code string) error {
	if code == "" {
		return ErrVolumeCodeIsRequired
	}

	c.code = code
	return nil
}
