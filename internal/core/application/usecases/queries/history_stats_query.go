package queries

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var ErrHistoryStatsQueryIsNotConstructed = errors.New(
	"HistoryStatsQuery must be created via NewHistoryStatsQuery constructor",
)

// HistoryStatsQuery summarizes the event log and the current line state.
type HistoryStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewHistoryStatsQuery() HistoryStatsQuery {
	return HistoryStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q HistoryStatsQuery) Validate() error {
	return q.guard.Validate(ErrHistoryStatsQueryIsNotConstructed)
}

// HistoryStatsResponse durations cover completed processes only; they are nil
// when none has completed.
type HistoryStatsResponse struct {
	TotalEvents     int64
	ActiveProcesses int64
	FullCarriers    int64
	EventsByType    map[string]int64
	AverageDuration *int64
	MinDuration     *int64
	MaxDuration     *int64
	DisplayAverage  string
	DisplayMinimum  string
	DisplayMaximum  string
}
