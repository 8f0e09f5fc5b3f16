package http

import (
	"net/http"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Read-side operation names used in logs and metrics.
const (
	opResolveBarcode = "resolve_barcode"
	opListHistory    = "list_history"
	opSearchHistory  = "search_history"
	opProcessHistory = "process_history"
	opCarrierJourney = "carrier_journey"
	opHistoryStats   = "history_stats"
)

// ResolveBarcode handles GET /api/v1/barcodes/{code}.
func (s *Server) ResolveBarcode(ctx echo.Context, code string) error {
	query, err := queries.NewResolveBarcodeQuery(code)
	if err != nil {
		return s.fail(ctx, opResolveBarcode, err)
	}

	result, err := s.handlers.ResolveBarcode.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, opResolveBarcode, err)
	}

	message := "Barcode found"
	if !result.Found {
		message = "Barcode is empty or not found"
	}
	history := fromHistory(result.History)
	return respond(ctx, http.StatusOK, message, servers.BarcodeResolution{
		Code:         result.Code,
		Kind:         result.Kind,
		Found:        result.Found,
		Carrier:      fromCarrierView(result.Carrier),
		Slot:         fromSlotView(result.Slot),
		ActiveSlot:   fromSlotView(result.ActiveSlot),
		History:      history,
		HistoryCount: len(history),
	})
}

// ListHistory handles GET /api/v1/history.
func (s *Server) ListHistory(ctx echo.Context, params servers.ListHistoryParams) error {
	page, limit := 0, 0
	if params.Page != nil {
		page = *params.Page
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListHistoryQuery(page, limit)
	if err != nil {
		return s.fail(ctx, opListHistory, err)
	}

	result, err := s.handlers.ListHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, opListHistory, err)
	}

	return respond(ctx, http.StatusOK, "History retrieved", servers.HistoryPage{
		Events: fromHistory(result.Entries),
		Page:   result.Page,
		Limit:  result.Limit,
		Total:  result.Total,
		Pages:  result.Pages,
	})
}

// SearchHistory handles GET /api/v1/history/search.
func (s *Server) SearchHistory(ctx echo.Context, params servers.SearchHistoryParams) error {
	query, err := queries.NewSearchHistoryQuery(params.Q)
	if err != nil {
		return s.fail(ctx, opSearchHistory, err)
	}

	entries, err := s.handlers.SearchHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, opSearchHistory, err)
	}

	return respond(ctx, http.StatusOK, "Search completed", fromHistory(entries))
}

// GetProcessHistory handles GET /api/v1/history/processes/{processCode}.
func (s *Server) GetProcessHistory(ctx echo.Context, processCode string) error {
	query, err := queries.NewProcessHistoryQuery(processCode)
	if err != nil {
		return s.fail(ctx, opProcessHistory, err)
	}

	entries, err := s.handlers.ProcessHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, opProcessHistory, err)
	}

	return respond(ctx, http.StatusOK, "Process history retrieved", fromHistory(entries))
}

// GetCarrierJourney handles GET /api/v1/history/carriers/{barcode}.
func (s *Server) GetCarrierJourney(ctx echo.Context, barcode string) error {
	query, err := queries.NewCarrierJourneyQuery(barcode)
	if err != nil {
		return s.fail(ctx, opCarrierJourney, err)
	}

	entries, err := s.handlers.CarrierJourney.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, opCarrierJourney, err)
	}

	return respond(ctx, http.StatusOK, "Carrier journey retrieved", fromHistory(entries))
}

// GetHistoryStats handles GET /api/v1/history/stats.
func (s *Server) GetHistoryStats(ctx echo.Context) error {
	result, err := s.handlers.HistoryStats.Handle(ctx.Request().Context(), queries.NewHistoryStatsQuery())
	if err != nil {
		return s.fail(ctx, opHistoryStats, err)
	}

	return respond(ctx, http.StatusOK, "Statistics retrieved", servers.HistoryStats{
		TotalEvents:            result.TotalEvents,
		ActiveProcesses:        result.ActiveProcesses,
		FullCarriers:           result.FullCarriers,
		EventsByType:           result.EventsByType,
		AverageDurationSeconds: result.AverageDuration,
		MinDurationSeconds:     result.MinDuration,
		MaxDurationSeconds:     result.MaxDuration,
		DisplayAverage:         result.DisplayAverage,
		DisplayMinimum:         result.DisplayMinimum,
		DisplayMaximum:         result.DisplayMaximum,
	})
}
