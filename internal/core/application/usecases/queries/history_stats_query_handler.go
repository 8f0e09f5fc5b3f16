package queries

import (
	"context"
	"math"

	"tracking/internal/pkg/clock"

	"gorm.io/gorm"
)

type HistoryStatsQueryHandler struct {
	db *gorm.DB
}

func NewHistoryStatsQueryHandler(db *gorm.DB) HistoryStatsQueryHandler {
	return HistoryStatsQueryHandler{db: db}
}

func (h HistoryStatsQueryHandler) Handle(ctx context.Context, query HistoryStatsQuery) (HistoryStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return HistoryStatsResponse{}, err
	}

	db := h.db.WithContext(ctx)
	response := HistoryStatsResponse{EventsByType: make(map[string]int64)}

	rows, err := db.Raw(`
		SELECT event_type, COUNT(*)
		FROM history_events
		GROUP BY event_type
	`).Rows()
	if err != nil {
		return HistoryStatsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var eventType string
		var count int64
		if err = rows.Scan(&eventType, &count); err != nil {
			return HistoryStatsResponse{}, err
		}
		response.EventsByType[eventType] = count
		response.TotalEvents += count
	}
	if err = rows.Err(); err != nil {
		return HistoryStatsResponse{}, err
	}

	err = db.Raw(`
		SELECT COUNT(*) FROM process_slots
		WHERE process_type = 'INPUT' AND state = 'IN_PROCESS'
	`).Scan(&response.ActiveProcesses).Error
	if err != nil {
		return HistoryStatsResponse{}, err
	}

	err = db.Raw(`SELECT COUNT(*) FROM carriers WHERE state = 'FULL'`).Scan(&response.FullCarriers).Error
	if err != nil {
		return HistoryStatsResponse{}, err
	}

	var durations durationRow
	err = db.Raw(`
		SELECT
			AVG(duration_seconds)::float8 AS average,
			MIN(duration_seconds) AS minimum,
			MAX(duration_seconds) AS maximum
		FROM history_events
		WHERE duration_seconds IS NOT NULL
	`).Scan(&durations).Error
	if err != nil {
		return HistoryStatsResponse{}, err
	}

	if durations.Average != nil {
		avg := int64(math.Round(*durations.Average))
		response.AverageDuration = &avg
	}
	response.MinDuration = durations.Minimum
	response.MaxDuration = durations.Maximum
	response.DisplayAverage = clock.FormatDuration(response.AverageDuration)
	response.DisplayMinimum = clock.FormatDuration(response.MinDuration)
	response.DisplayMaximum = clock.FormatDuration(response.MaxDuration)

	return response, nil
}

type durationRow struct {
	Average *float64
	Minimum *int64
	Maximum *int64
}
