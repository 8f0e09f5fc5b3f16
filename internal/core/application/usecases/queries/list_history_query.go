package queries

import (
	"errors"
	"math"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrListHistoryQueryIsNotConstructed = errors.New(
	"ListHistoryQuery must be created via NewListHistoryQuery constructor",
)

// ListHistoryQuery pages through the whole event log, newest first.
type ListHistoryQuery struct {
	page  int
	limit int
	guard guard.ConstructorGuard
}

// NewListHistoryQuery accepts page >= 1. A zero limit means DefaultPageLimit and
// larger limits are capped at MaxPageLimit.
func NewListHistoryQuery(page, limit int) (ListHistoryQuery, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return ListHistoryQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt)
	}
	switch {
	case limit == 0:
		limit = DefaultPageLimit
	case limit < 0:
		return ListHistoryQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	return ListHistoryQuery{page: page, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListHistoryQuery) Validate() error {
	return q.guard.Validate(ErrListHistoryQueryIsNotConstructed)
}

func (q ListHistoryQuery) Page() int   { return q.page }
func (q ListHistoryQuery) Limit() int  { return q.limit }
func (q ListHistoryQuery) Offset() int { return (q.page - 1) * q.limit }

// ListHistoryResponse is one page of the log.
type ListHistoryResponse struct {
	Entries []HistoryEntry
	Page    int
	Limit   int
	Total   int64
	Pages   int64
}
