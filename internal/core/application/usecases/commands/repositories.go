// Package commands contains the operations that change carrier and slot state.
// Every command follows the same pattern: constructor validation, one
// transaction, one instant from the time authority, and at most one history
// event appended inside that transaction.
package commands

import (
	"context"
	"time"

	"tracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// ProcessSlotRepoFactory provides access to the slot repository within a transaction.
	ProcessSlotRepoFactory interface {
		ProcessSlotRepository() ports.ProcessSlotRepository
	}

	// HistoryRepoFactory provides access to the event log within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// CarrierUoW serves commands that touch a carrier and record an event.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
		HistoryRepoFactory
	}

	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// SlotUoW serves provisioning, which writes slots only.
	SlotUoW interface {
		TxManager
		ProcessSlotRepoFactory
	}

	SlotUoWFactory interface {
		Create() SlotUoW
	}

	// UoW spans carriers, slots and history for the transitions.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   slots, err := uow.ProcessSlotRepository().GetForUpdate(ctx, in, out)
	//   source, err := uow.CarrierRepository().GetForUpdate(ctx, carrier)
	//   // ... mutate, update, append
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CarrierRepoFactory
		ProcessSlotRepoFactory
		HistoryRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// TimeAuthority is the only clock commands read.
type TimeAuthority interface {
	Now() time.Time
	ToDisplay(t time.Time) string
	Duration(start, end *time.Time) *int64
}
