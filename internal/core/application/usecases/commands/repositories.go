// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"labeling/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LabelRepoFactory provides access to the label repository within a transaction.
	LabelRepoFactory interface {
		LabelRepository() ports.LabelRepository
	}

	// MasterLabelRepoFactory provides access to the master-label repository within a transaction.
	MasterLabelRepoFactory interface {
		MasterLabelRepository() ports.MasterLabelRepository
	}

	// LabelUoW manages transactions for volume-only operations.
	LabelUoW interface {
		TxManager
		LabelRepoFactory
	}

	// LabelUoWFactory creates new label unit of work instances.
	LabelUoWFactory interface {
		Create() LabelUoW
	}

	// MasterLabelUoW manages transactions for master-label-only operations.
	MasterLabelUoW interface {
		TxManager
		MasterLabelRepoFactory
	}

	// MasterLabelUoWFactory creates new master-label unit of work instances.
	MasterLabelUoWFactory interface {
		Create() MasterLabelUoW
	}

	// UoW manages transactions across both volume and master-label aggregates.
	// Used for commands that coordinate changes between multiple aggregate types,
	// such as linking volumes under a master label.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   labelRepo := uow.LabelRepository()
	//   masterRepo := uow.MasterLabelRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		LabelRepoFactory
		MasterLabelRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
