package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tracking/internal/core/domain/model/history"
	"tracking/internal/pkg/errs"
)

// ClearCarrierCommandHandler resets a carrier to EMPTY and records the payload it
// held in a carrier_cleared event.
type ClearCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
	clock      TimeAuthority
	logger     *slog.Logger
}

func NewClearCarrierCommandHandler(
	uowFactory CarrierUoWFactory,
	clock TimeAuthority,
	logger *slog.Logger,
) ClearCarrierCommandHandler {
	return ClearCarrierCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     loggerOrDefault(logger, OpClearCarrier),
	}
}

func (h ClearCarrierCommandHandler) Handle(ctx context.Context, cmd ClearCarrierCommand) (ClearCarrierResult, error) {
	if err := cmd.Validate(); err != nil {
		return ClearCarrierResult{}, err
	}

	barcode := cmd.Carrier()
	attrs := []any{"carrier", barcode.String()}
	fail := func(err error) (ClearCarrierResult, error) {
		return ClearCarrierResult{}, transactionFailed(ctx, h.logger, OpClearCarrier, err, attrs...)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fail(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	carrierRepo := uow.CarrierRepository()

	target, err := carrierRepo.GetForUpdate(ctx, barcode)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ClearCarrierResult{}, reject(ctx, h.logger, errs.NewPreconditionFailedError(CodeCarrierNotFound,
			fmt.Sprintf("carrier %s not found", barcode)), attrs...)
	}
	if err != nil {
		return fail(err)
	}
	if !target.IsFull() {
		return ClearCarrierResult{}, reject(ctx, h.logger, errs.NewPreconditionFailedError(CodeCarrierEmpty,
			fmt.Sprintf("carrier %s is already empty", barcode)), attrs...)
	}

	cleared, err := target.Release()
	if err != nil {
		return ClearCarrierResult{}, err
	}
	if err = carrierRepo.Update(ctx, target); err != nil {
		return fail(err)
	}

	event, err := history.NewCarrierClearedEvent(barcode, cleared, now)
	if err != nil {
		return ClearCarrierResult{}, err
	}
	if err = uow.HistoryRepository().Append(ctx, event); err != nil {
		return fail(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fail(err)
	}

	h.logger.InfoContext(ctx, "carrier cleared", attrs...)

	return ClearCarrierResult{
		Carrier:          barcode.String(),
		State:            target.State().String(),
		ClearedPayload:   cleared,
		Timestamp:        now,
		DisplayTimestamp: h.clock.ToDisplay(now),
	}, nil
}
