package commands

import (
	"context"
	"errors"
	"log/slog"

	"tracking/internal/core/domain/model/carrier"
	"tracking/internal/core/domain/model/history"
	"tracking/internal/pkg/errs"
)

// AttachPayloadCommandHandler upserts a carrier as FULL with the given payload.
// A repeated attach replaces the previous payload field for field.
type AttachPayloadCommandHandler struct {
	uowFactory CarrierUoWFactory
	clock      TimeAuthority
	logger     *slog.Logger
}

func NewAttachPayloadCommandHandler(
	uowFactory CarrierUoWFactory,
	clock TimeAuthority,
	logger *slog.Logger,
) AttachPayloadCommandHandler {
	return AttachPayloadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     loggerOrDefault(logger, OpAttachPayload),
	}
}

// Handle attaches the payload and appends one carrier_attached event.
func (h AttachPayloadCommandHandler) Handle(ctx context.Context, cmd AttachPayloadCommand) (AttachPayloadResult, error) {
	if err := cmd.Validate(); err != nil {
		return AttachPayloadResult{}, err
	}

	barcode := cmd.Carrier()
	attrs := []any{"carrier", barcode.String()}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AttachPayloadResult{}, transactionFailed(ctx, h.logger, OpAttachPayload, err, attrs...)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	carrierRepo := uow.CarrierRepository()

	created := false
	target, err := carrierRepo.GetForUpdate(ctx, barcode)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if target, err = carrier.NewCarrier(barcode, now); err != nil {
			return AttachPayloadResult{}, err
		}
		created = true
	case err != nil:
		return AttachPayloadResult{}, transactionFailed(ctx, h.logger, OpAttachPayload, err, attrs...)
	}

	if err = target.Attach(cmd.Payload(), now); err != nil {
		return AttachPayloadResult{}, err
	}

	if created {
		err = carrierRepo.Add(ctx, target)
	} else {
		err = carrierRepo.Update(ctx, target)
	}
	if err != nil {
		return AttachPayloadResult{}, transactionFailed(ctx, h.logger, OpAttachPayload, err, attrs...)
	}

	event, err := history.NewCarrierAttachedEvent(barcode, cmd.Payload(), now)
	if err != nil {
		return AttachPayloadResult{}, err
	}
	if err = uow.HistoryRepository().Append(ctx, event); err != nil {
		return AttachPayloadResult{}, transactionFailed(ctx, h.logger, OpAttachPayload, err, attrs...)
	}

	if err = uow.Commit(ctx); err != nil {
		return AttachPayloadResult{}, transactionFailed(ctx, h.logger, OpAttachPayload, err, attrs...)
	}

	h.logger.InfoContext(ctx, "payload attached", append(attrs, "created", created)...)

	return AttachPayloadResult{
		Carrier:          barcode.String(),
		State:            target.State().String(),
		Payload:          cmd.Payload(),
		Created:          created,
		Timestamp:        now,
		DisplayTimestamp: h.clock.ToDisplay(now),
	}, nil
}
