package commands

import (
	"context"

	"labeling/internal/core/domain/model/invoice"
	"labeling/internal/core/domain/model/render"
	"labeling/internal/core/ports"
)

// PrintMasterLabelCommandHandler renders a master label to a single-page
// artifact summarizing the volumes it holds.
type PrintMasterLabelCommandHandler struct {
	uowFactory UoWFactory
	renderer   ports.LabelRenderer
}

// NewPrintMasterLabelCommandHandler creates a handler for master-label printing.
func NewPrintMasterLabelCommandHandler(uowFactory UoWFactory, renderer ports.LabelRenderer) PrintMasterLabelCommandHandler {
	return PrintMasterLabelCommandHandler{
		uowFactory: uowFactory,
		renderer:   renderer,
	}
}

// Handle renders the master label. The result's single item carries the
// reprint warning when the master label had been printed before.
func (h *PrintMasterLabelCommandHandler) Handle(ctx context.Context, cmd PrintMasterLabelCommand) (PrintedLabels, error) {
	if err := cmd.Validate(); err != nil {
		return PrintedLabels{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PrintedLabels{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	master, err := uow.MasterLabelRepository().Get(ctx, cmd.MasterLabelCode())
	if err != nil {
		return PrintedLabels{}, err
	}

	linked, err := uow.LabelRepository().GetByMasterLabel(ctx, master.Code())
	if err != nil {
		return PrintedLabels{}, err
	}

	reprint, err := master.Print()
	if err != nil {
		return PrintedLabels{}, err
	}

	job, err := render.NewMasterJob(master, linked, cmd.Format(), cmd.Style())
	if err != nil {
		return PrintedLabels{}, err
	}

	artifact, err := h.renderer.Render(ctx, job, invoice.Invoice{})
	if err != nil {
		return PrintedLabels{}, err
	}

	if err = uow.MasterLabelRepository().Update(ctx, master); err != nil {
		return PrintedLabels{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PrintedLabels{}, err
	}

	result := &BatchResult{}
	item := ItemResult{Code: master.Code()}
	if reprint {
		item.Warning = WarningReprint
	}
	result.Append(item)

	return PrintedLabels{Artifact: artifact, Result: result}, nil
}
