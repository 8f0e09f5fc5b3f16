package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tracking/internal/core/domain/model/carrier"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/slot"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"
)

// CarrierToProcessorCommandHandler moves a carrier payload into an input slot and
// its recorded output sibling.
//
// Lock order is slots first, then the carrier. The pairing is read without a
// lock because it never changes after provisioning.
type CarrierToProcessorCommandHandler struct {
	uowFactory UoWFactory
	clock      TimeAuthority
	flow       services.ProcessFlow
	logger     *slog.Logger
}

func NewCarrierToProcessorCommandHandler(
	uowFactory UoWFactory,
	clock TimeAuthority,
	logger *slog.Logger,
) CarrierToProcessorCommandHandler {
	return CarrierToProcessorCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		flow:       services.NewProcessFlow(clock),
		logger:     loggerOrDefault(logger, OpCarrierToProcessor),
	}
}

// Handle returns CARRIER_EMPTY, PROCESSOR_NOT_FOUND or PROCESSOR_BUSY without
// writing anything when a precondition does not hold.
func (h CarrierToProcessorCommandHandler) Handle(
	ctx context.Context,
	cmd CarrierToProcessorCommand,
) (CarrierToProcessorResult, error) {
	if err := cmd.Validate(); err != nil {
		return CarrierToProcessorResult{}, err
	}

	attrs := []any{"carrier", cmd.Carrier().String(), "slot", cmd.InputSlot().String()}
	fail := func(err error) (CarrierToProcessorResult, error) {
		return CarrierToProcessorResult{}, transactionFailed(ctx, h.logger, OpCarrierToProcessor, err, attrs...)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fail(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	slotRepo := uow.ProcessSlotRepository()
	carrierRepo := uow.CarrierRepository()

	toLock := []kernel.Barcode{cmd.InputSlot()}
	var paired *kernel.Barcode
	probe, err := slotRepo.Get(ctx, cmd.InputSlot())
	switch {
	case err == nil:
		if paired = probe.PairedBarcode(); paired != nil {
			toLock = append(toLock, *paired)
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return fail(err)
	}

	locked, err := slotRepo.GetForUpdate(ctx, toLock...)
	if err != nil {
		return fail(err)
	}
	input := findSlot(locked, cmd.InputSlot())
	var output *slot.ProcessSlot
	if paired != nil {
		output = findSlot(locked, *paired)
	}

	source, err := carrierRepo.GetForUpdate(ctx, cmd.Carrier())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return fail(err)
	}

	if rejection := checkFeed(cmd, source, input, paired, output); rejection != nil {
		return CarrierToProcessorResult{}, reject(ctx, h.logger, rejection, attrs...)
	}

	event, err := h.flow.Feed(source, input, output, cmd.ProcessName(), now)
	if err != nil {
		return CarrierToProcessorResult{}, err
	}

	if err = carrierRepo.Update(ctx, source); err != nil {
		return fail(err)
	}
	if err = slotRepo.Update(ctx, input); err != nil {
		return fail(err)
	}
	if output != nil {
		if err = slotRepo.Update(ctx, output); err != nil {
			return fail(err)
		}
	}
	if err = uow.HistoryRepository().Append(ctx, event); err != nil {
		return fail(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fail(err)
	}

	h.logger.InfoContext(ctx, "carrier fed into process", append(attrs, "process", input.ProcessName())...)

	result := CarrierToProcessorResult{
		Source:           cmd.Carrier().String(),
		Destination:      input.Barcode().String(),
		ProcessName:      input.ProcessName(),
		State:            input.State().String(),
		Timestamp:        now,
		DisplayTimestamp: h.clock.ToDisplay(now),
	}
	if output != nil {
		mirror := output.Barcode().String()
		result.Mirror = &mirror
	}
	return result, nil
}

func checkFeed(
	cmd CarrierToProcessorCommand,
	source *carrier.Carrier,
	input *slot.ProcessSlot,
	paired *kernel.Barcode,
	output *slot.ProcessSlot,
) *errs.PreconditionFailedError {
	switch {
	case source == nil || !source.IsFull():
		return errs.NewPreconditionFailedError(CodeCarrierEmpty,
			fmt.Sprintf("carrier %s is empty or does not exist", cmd.Carrier()))
	case input == nil || input.ProcessType() != slot.Input:
		return errs.NewPreconditionFailedError(CodeProcessorNotFound,
			fmt.Sprintf("input processor %s not found", cmd.InputSlot()))
	case !input.IsEmpty():
		return errs.NewPreconditionFailedError(CodeProcessorBusy,
			fmt.Sprintf("processor %s is busy", cmd.InputSlot()))
	case paired != nil && output == nil:
		return errs.NewPreconditionFailedError(CodeProcessorNotFound,
			fmt.Sprintf("paired processor %s of %s not found", paired, cmd.InputSlot()))
	}
	return nil
}

func findSlot(slots []*slot.ProcessSlot, barcode kernel.Barcode) *slot.ProcessSlot {
	for _, s := range slots {
		if s.Barcode().IsEqual(barcode) {
			return s
		}
	}
	return nil
}
