package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"labeling/internal/core/domain/model/masterlabel"
)

// CreateMasterLabelCommandHandler registers a new master label with a
// generated code and persists it in Generated status.
//
// Example:
//
//	handler := NewCreateMasterLabelCommandHandler(uowFactory)
//	cmd, _ := NewCreateMasterLabelCommand("pallet", "carga SP")
//
//	master, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("created %s", master.Code()) // e.g. PAL-3F2A9C01
type CreateMasterLabelCommandHandler struct {
	uowFactory MasterLabelUoWFactory
}

// NewCreateMasterLabelCommandHandler creates a handler for master-label creation.
func NewCreateMasterLabelCommandHandler(uowFactory MasterLabelUoWFactory) CreateMasterLabelCommandHandler {
	return CreateMasterLabelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates and persists the master label, returning the new aggregate.
func (h *CreateMasterLabelCommandHandler) Handle(ctx context.Context, cmd CreateMasterLabelCommand) (*masterlabel.MasterLabel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	code := masterlabel.GenerateCode(cmd.Kind(), uuid.NewString())

	master, err := masterlabel.NewMasterLabel(code, cmd.Kind(), cmd.Description(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MasterLabelRepository().Add(ctx, master); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return master, nil
}
