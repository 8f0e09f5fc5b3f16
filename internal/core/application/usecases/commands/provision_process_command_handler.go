package commands

import (
	"context"
	"fmt"
	"log/slog"

	"tracking/internal/core/domain/model/slot"
	"tracking/internal/pkg/errs"
)

// ProvisionProcessCommandHandler registers a new EMPTY slot pair. It records no
// history event.
type ProvisionProcessCommandHandler struct {
	uowFactory SlotUoWFactory
	logger     *slog.Logger
}

func NewProvisionProcessCommandHandler(uowFactory SlotUoWFactory, logger *slog.Logger) ProvisionProcessCommandHandler {
	return ProvisionProcessCommandHandler{
		uowFactory: uowFactory,
		logger:     loggerOrDefault(logger, OpProvisionProcess),
	}
}

// Handle returns PROCESSOR_EXISTS if either slot barcode is taken.
func (h ProvisionProcessCommandHandler) Handle(
	ctx context.Context,
	cmd ProvisionProcessCommand,
) (ProvisionProcessResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProvisionProcessResult{}, err
	}

	in, out := cmd.InputSlot(), cmd.OutputSlot()
	attrs := []any{"process", cmd.ProcessCode()}
	fail := func(err error) (ProvisionProcessResult, error) {
		return ProvisionProcessResult{}, transactionFailed(ctx, h.logger, OpProvisionProcess, err, attrs...)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fail(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	slotRepo := uow.ProcessSlotRepository()

	existing, err := slotRepo.GetForUpdate(ctx, in, out)
	if err != nil {
		return fail(err)
	}
	if len(existing) > 0 {
		return ProvisionProcessResult{}, reject(ctx, h.logger, errs.NewPreconditionFailedError(CodeProcessorExists,
			fmt.Sprintf("processor %s already exists", existing[0].Barcode())), attrs...)
	}

	input, err := slot.NewProcessSlot(in, slot.Input, &out)
	if err != nil {
		return ProvisionProcessResult{}, err
	}
	output, err := slot.NewProcessSlot(out, slot.Output, &in)
	if err != nil {
		return ProvisionProcessResult{}, err
	}

	if err = slotRepo.Add(ctx, input); err != nil {
		return fail(err)
	}
	if err = slotRepo.Add(ctx, output); err != nil {
		return fail(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fail(err)
	}

	h.logger.InfoContext(ctx, "process provisioned", attrs...)

	return ProvisionProcessResult{
		ProcessCode: cmd.ProcessCode(),
		InputSlot:   in.String(),
		OutputSlot:  out.String(),
	}, nil
}
