package commands

import (
	"errors"

	"labeling/internal/core/domain/model/render"
	"labeling/internal/pkg/guard"
)

var (
	ErrPrintLabelsCommandIsNotConstructed = errors.New(
		"PrintLabelsCommand must be created via NewPrintLabelsCommand constructor",
	)
	ErrVolumeCodesAreRequired = errors.New("at least one volume code is required")
)

// PrintLabelsCommand represents a request to render a batch of volume labels
// into one printable artifact.
//
// Example:
//
//	cmd, err := NewPrintLabelsCommand([]string{"12345-001-28082615"}, "50x100", "enhanced")
//	if err != nil {
//	    return fmt.Errorf("invalid print request: %w", err)
//	}
//
//	handler := NewPrintLabelsCommandHandler(uowFactory, arena, renderer)
//	printed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("print failed: %w", err)
//	}
//	os.WriteFile(printed.Artifact.Name, printed.Artifact.Content, 0o644)
type PrintLabelsCommand struct { //nolint:recvcheck //using for validation
	codes  []string
	format render.Format
	style  render.LayoutStyle

	guard guard.ConstructorGuard
}

// NewPrintLabelsCommand creates a command to print the given volume codes.
// Unknown format and style keys fall back to their defaults rather than
// failing: printing must keep working with a stale client configuration.
func NewPrintLabelsCommand(codes []string, formatKey, styleKey string) (PrintLabelsCommand, error) {
	cmd := PrintLabelsCommand{
		format: render.FormatFromKey(formatKey),
		style:  render.LayoutStyleFromKey(styleKey),
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setCodes(codes); err != nil {
		return PrintLabelsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PrintLabelsCommand) Validate() error {
	return c.guard.Validate(ErrPrintLabelsCommandIsNotConstructed)
}

// Codes returns the volume codes to print, in request order.
func (c PrintLabelsCommand) Codes() []string {
	return c.codes
}

// Format returns the resolved page geometry.
func (c PrintLabelsCommand) Format() render.Format {
	return c.format
}

// Style returns the resolved layout style.
func (c PrintLabelsCommand) Style() render.LayoutStyle {
	return c.style
}

func (c *PrintLabelsCommand) setCodes(codes []string) error {
	if len(codes) == 0 {
		return ErrVolumeCodesAreRequired
	}

	c.codes = codes
	return nil
}
