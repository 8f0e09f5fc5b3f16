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

// ProcessorToCarrierCommandHandler completes a process: the output slot payload
// moves into the target carrier and both slots of the pair are reset with the
// same instant.
type ProcessorToCarrierCommandHandler struct {
	uowFactory UoWFactory
	clock      TimeAuthority
	flow       services.ProcessFlow
	logger     *slog.Logger
}

func NewProcessorToCarrierCommandHandler(
	uowFactory UoWFactory,
	clock TimeAuthority,
	logger *slog.Logger,
) ProcessorToCarrierCommandHandler {
	return ProcessorToCarrierCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		flow:       services.NewProcessFlow(clock),
		logger:     loggerOrDefault(logger, OpProcessorToCarrier),
	}
}

// Handle returns PROCESSOR_EMPTY without writing anything when the output slot
// is missing, is not an output slot, or is not IN_PROCESS.
func (h ProcessorToCarrierCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessorToCarrierCommand,
) (ProcessorToCarrierResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessorToCarrierResult{}, err
	}

	attrs := []any{"slot", cmd.OutputSlot().String(), "carrier", cmd.Carrier().String()}
	fail := func(err error) (ProcessorToCarrierResult, error) {
		return ProcessorToCarrierResult{}, transactionFailed(ctx, h.logger, OpProcessorToCarrier, err, attrs...)
	}
	empty := func() (ProcessorToCarrierResult, error) {
		return ProcessorToCarrierResult{}, reject(ctx, h.logger, errs.NewPreconditionFailedError(CodeProcessorEmpty,
			fmt.Sprintf("processor %s is empty or does not exist", cmd.OutputSlot())), attrs...)
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

	probe, err := slotRepo.Get(ctx, cmd.OutputSlot())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return empty()
	}
	if err != nil {
		return fail(err)
	}

	toLock := []kernel.Barcode{cmd.OutputSlot()}
	paired := probe.PairedBarcode()
	if paired != nil {
		toLock = append(toLock, *paired)
	}

	locked, err := slotRepo.GetForUpdate(ctx, toLock...)
	if err != nil {
		return fail(err)
	}
	output := findSlot(locked, cmd.OutputSlot())
	if output == nil || output.ProcessType() != slot.Output || !output.IsInProcess() {
		return empty()
	}

	var input *slot.ProcessSlot
	if paired != nil {
		if input = findSlot(locked, *paired); input == nil {
			h.logger.WarnContext(ctx, "recorded input sibling is missing", append(attrs, "paired", paired.String())...)
		}
	}

	provisioned := false
	target, err := carrierRepo.GetForUpdate(ctx, cmd.Carrier())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if target, err = carrier.NewCarrier(cmd.Carrier(), now); err != nil {
			return ProcessorToCarrierResult{}, err
		}
		provisioned = true
	case err != nil:
		return fail(err)
	}

	event, err := h.flow.Drain(output, input, target, now)
	if err != nil {
		return ProcessorToCarrierResult{}, err
	}

	if err = slotRepo.Update(ctx, output); err != nil {
		return fail(err)
	}
	if input != nil {
		if err = slotRepo.Update(ctx, input); err != nil {
			return fail(err)
		}
	}
	if provisioned {
		err = carrierRepo.Add(ctx, target)
	} else {
		err = carrierRepo.Update(ctx, target)
	}
	if err != nil {
		return fail(err)
	}
	if err = uow.HistoryRepository().Append(ctx, event); err != nil {
		return fail(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fail(err)
	}

	h.logger.InfoContext(ctx, "process completed into carrier", append(attrs, "provisioned", provisioned)...)

	result := ProcessorToCarrierResult{
		Source:           cmd.OutputSlot().String(),
		Destination:      cmd.Carrier().String(),
		ProcessName:      event.ProcessName(),
		DurationSeconds:  event.DurationSeconds(),
		State:            string(output.Phase()),
		Provisioned:      provisioned,
		Timestamp:        now,
		DisplayTimestamp: h.clock.ToDisplay(now),
	}
	if original := event.References().InputCarrier; original != nil {
		s := original.String()
		result.OriginalCarrier = &s
	}
	return result, nil
}
