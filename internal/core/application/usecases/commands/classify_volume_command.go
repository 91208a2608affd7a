package commands

import (
	"errors"

	"labeling/internal/pkg/guard"
)

var ErrClassifyVolumeCommandIsNotConstructed = errors.New(
	"ClassifyVolumeCommand must be created via NewClassifyVolumeCommand constructor",
)

// ClassifyVolumeCommand represents a request to record dangerous-goods data
// on a volume: its UN number, risk code and chemical classification.
type ClassifyVolumeCommand struct { //nolint:recvcheck //using for validation
	code        string
	unNumber    string
	riskCode    string
	hazardClass string

	guard guard.ConstructorGuard
}

// NewClassifyVolumeCommand creates a command to classify a volume. All hazard
// fields are optional: a cataloged UN number fills in the blanks and a blank
// classification stays unclassified.
func NewClassifyVolumeCommand(code, unNumber, riskCode, hazardClass string) (ClassifyVolumeCommand, error) {
	cmd := ClassifyVolumeCommand{
		unNumber:    unNumber,
		riskCode:    riskCode,
		hazardClass: hazardClass,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setCode(code); err != nil {
		return ClassifyVolumeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClassifyVolumeCommand) Validate() error {
	return c.guard.Validate(ErrClassifyVolumeCommandIsNotConstructed)
}

// Code returns the volume code to classify.
func (c ClassifyVolumeCommand) Code() string {
	return c.code
}

// UNNumber returns the UN number input.
func (c ClassifyVolumeCommand) UNNumber() string {
	return c.unNumber
}

// RiskCode returns the explicit risk code input.
func (c ClassifyVolumeCommand) RiskCode() string {
	return c.riskCode
}

// HazardClass returns the explicit chemical classification input.
func (c ClassifyVolumeCommand) HazardClass() string {
	return c.hazardClass
}

func (c *ClassifyVolumeCommand) setCode(code string) error {
	if code == "" {
		return ErrVolumeCodeIsRequired
	}

	c.code = code
	return nil
}
