package http

import (
	"context"
	"log/slog"
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/clock"

	"github.com/labstack/echo/v4"
)

// Use case ports of the boundary, one per operation.
type (
	AttachPayloadHandler interface {
		Handle(ctx context.Context, cmd commands.AttachPayloadCommand) (commands.AttachPayloadResult, error)
	}
	ClearCarrierHandler interface {
		Handle(ctx context.Context, cmd commands.ClearCarrierCommand) (commands.ClearCarrierResult, error)
	}
	CarrierToProcessorHandler interface {
		Handle(ctx context.Context, cmd commands.CarrierToProcessorCommand) (commands.CarrierToProcessorResult, error)
	}
	ProcessorToCarrierHandler interface {
		Handle(ctx context.Context, cmd commands.ProcessorToCarrierCommand) (commands.ProcessorToCarrierResult, error)
	}
	ProvisionProcessHandler interface {
		Handle(ctx context.Context, cmd commands.ProvisionProcessCommand) (commands.ProvisionProcessResult, error)
	}
	ResolveBarcodeHandler interface {
		Handle(ctx context.Context, query queries.ResolveBarcodeQuery) (queries.ResolveBarcodeResponse, error)
	}
	ListHistoryHandler interface {
		Handle(ctx context.Context, query queries.ListHistoryQuery) (queries.ListHistoryResponse, error)
	}
	SearchHistoryHandler interface {
		Handle(ctx context.Context, query queries.SearchHistoryQuery) ([]queries.HistoryEntry, error)
	}
	ProcessHistoryHandler interface {
		Handle(ctx context.Context, query queries.ProcessHistoryQuery) ([]queries.HistoryEntry, error)
	}
	CarrierJourneyHandler interface {
		Handle(ctx context.Context, query queries.CarrierJourneyQuery) ([]queries.HistoryEntry, error)
	}
	HistoryStatsHandler interface {
		Handle(ctx context.Context, query queries.HistoryStatsQuery) (queries.HistoryStatsResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	AttachPayload      AttachPayloadHandler
	ClearCarrier       ClearCarrierHandler
	CarrierToProcessor CarrierToProcessorHandler
	ProcessorToCarrier ProcessorToCarrierHandler
	ProvisionProcess   ProvisionProcessHandler

	ResolveBarcode ResolveBarcodeHandler
	ListHistory    ListHistoryHandler
	SearchHistory  SearchHistoryHandler
	ProcessHistory ProcessHistoryHandler
	CarrierJourney CarrierJourneyHandler
	HistoryStats   HistoryStatsHandler
}

// Server implements servers.ServerInterface. Every response uses the
// {success, message, errorType, data} envelope.
type Server struct {
	handlers Handlers
	metrics  *Metrics
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, metrics *Metrics, logger *slog.Logger) *Server {
	if metrics == nil {
		metrics = NewMetrics()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		logger:   logger.With("component", "http"),
	}
}

// fail maps a use case error to the envelope. Server faults are logged with
// their cause; rejections were already logged by the use case.
func (s *Server) fail(ctx echo.Context, operation string, err error) error {
	f := classify(err)
	s.metrics.transition(operation, string(f.tag))
	if f.status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"operation", operation, "path", ctx.Path(), "error", err)
	}
	return respondFailure(ctx, f)
}

// AttachPayload handles POST /api/v1/carriers/{barcode}/payload.
func (s *Server) AttachPayload(ctx echo.Context, barcode string) error {
	var body servers.AttachPayloadJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAttachPayloadCommand(barcode, toPayload(body))
	if err != nil {
		return s.fail(ctx, commands.OpAttachPayload, err)
	}

	result, err := s.handlers.AttachPayload.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, commands.OpAttachPayload, err)
	}
	s.metrics.transition(commands.OpAttachPayload, tagOK)

	return respond(ctx, http.StatusOK, "Payload attached to "+result.Carrier, servers.CarrierAttached{
		Carrier:          result.Carrier,
		State:            result.State,
		Created:          result.Created,
		Payload:          fromPayload(result.Payload),
		Timestamp:        result.Timestamp,
		DisplayTimestamp: result.DisplayTimestamp,
	})
}

// ClearCarrier handles POST /api/v1/carriers/{barcode}/clear.
func (s *Server) ClearCarrier(ctx echo.Context, barcode string) error {
	cmd, err := commands.NewClearCarrierCommand(barcode)
	if err != nil {
		return s.fail(ctx, commands.OpClearCarrier, err)
	}

	result, err := s.handlers.ClearCarrier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, commands.OpClearCarrier, err)
	}
	s.metrics.transition(commands.OpClearCarrier, tagOK)

	return respond(ctx, http.StatusOK, "Carrier "+result.Carrier+" cleared", servers.CarrierCleared{
		Carrier:          result.Carrier,
		State:            result.State,
		ClearedPayload:   fromPayload(result.ClearedPayload),
		Timestamp:        result.Timestamp,
		DisplayTimestamp: result.DisplayTimestamp,
	})
}

// CarrierToProcessor handles POST /api/v1/transitions/carrier-to-processor.
func (s *Server) CarrierToProcessor(ctx echo.Context) error {
	var body servers.CarrierToProcessorJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCarrierToProcessorCommand(body.Carrier, body.InputSlot, value(body.ProcessName))
	if err != nil {
		return s.fail(ctx, commands.OpCarrierToProcessor, err)
	}

	result, err := s.handlers.CarrierToProcessor.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, commands.OpCarrierToProcessor, err)
	}
	s.metrics.transition(commands.OpCarrierToProcessor, tagOK)

	return respond(ctx, http.StatusOK, "Carrier "+result.Source+" moved to "+result.Destination, servers.ProcessStarted{
		Source:           result.Source,
		Destination:      result.Destination,
		Mirror:           result.Mirror,
		ProcessName:      result.ProcessName,
		State:            result.State,
		Timestamp:        result.Timestamp,
		DisplayTimestamp: result.DisplayTimestamp,
	})
}

// ProcessorToCarrier handles POST /api/v1/transitions/processor-to-carrier.
func (s *Server) ProcessorToCarrier(ctx echo.Context) error {
	var body servers.ProcessorToCarrierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewProcessorToCarrierCommand(body.OutputSlot, body.Carrier)
	if err != nil {
		return s.fail(ctx, commands.OpProcessorToCarrier, err)
	}

	result, err := s.handlers.ProcessorToCarrier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, commands.OpProcessorToCarrier, err)
	}
	s.metrics.transition(commands.OpProcessorToCarrier, tagOK)
	s.metrics.processCompleted(result.DurationSeconds)

	return respond(ctx, http.StatusOK, "Process output moved to "+result.Destination, servers.ProcessCompleted{
		Source:           result.Source,
		Destination:      result.Destination,
		OriginalCarrier:  result.OriginalCarrier,
		ProcessName:      result.ProcessName,
		DurationSeconds:  result.DurationSeconds,
		DisplayDuration:  clock.FormatDuration(result.DurationSeconds),
		State:            result.State,
		Provisioned:      result.Provisioned,
		Timestamp:        result.Timestamp,
		DisplayTimestamp: result.DisplayTimestamp,
	})
}

// ProvisionProcess handles POST /api/v1/processes.
func (s *Server) ProvisionProcess(ctx echo.Context) error {
	var body servers.ProvisionProcessJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewProvisionProcessCommand(body.ProcessCode)
	if err != nil {
		return s.fail(ctx, commands.OpProvisionProcess, err)
	}

	result, err := s.handlers.ProvisionProcess.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, commands.OpProvisionProcess, err)
	}
	s.metrics.transition(commands.OpProvisionProcess, tagOK)

	return respond(ctx, http.StatusCreated, "Process "+result.ProcessCode+" created", servers.ProcessProvisioned{
		ProcessCode: result.ProcessCode,
		InputSlot:   result.InputSlot,
		OutputSlot:  result.OutputSlot,
	})
}
