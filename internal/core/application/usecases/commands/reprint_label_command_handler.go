package commands

import (
	"context"
)

// ReprintLabelCommandHandler produces a duplicate copy of one label. A
// reprint is a print of a single code with the same transition rules, so the
// handler delegates to the batch print handler and surfaces its outcome.
type ReprintLabelCommandHandler struct {
	printHandler PrintLabelsCommandHandler
}

// NewReprintLabelCommandHandler creates a handler for label reprints.
func NewReprintLabelCommandHandler(printHandler PrintLabelsCommandHandler) ReprintLabelCommandHandler {
	return ReprintLabelCommandHandler{
		printHandler: printHandler,
	}
}

// Handle renders the duplicate copy. The result carries the reprint warning
// when the label had been printed before; a first print through this path is
// allowed and simply carries no warning.
func (h *ReprintLabelCommandHandler) Handle(ctx context.Context, cmd ReprintLabelCommand) (PrintedLabels, error) {
	if err := cmd.Validate(); err != nil {
		return PrintedLabels{}, err
	}

	printCmd, err := NewPrintLabelsCommand([]string{cmd.Code()}, cmd.Format().Key(), cmd.Style().String())
	if err != nil {
		return PrintedLabels{}, err
	}

	return h.printHandler.Handle(ctx, printCmd)
}
