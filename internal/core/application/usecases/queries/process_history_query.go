package queries

import (
	"errors"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrProcessHistoryQueryIsNotConstructed = errors.New(
	"ProcessHistoryQuery must be created via NewProcessHistoryQuery constructor",
)

// ProcessHistoryQuery lists the events of one process code, such as "PR-01".
type ProcessHistoryQuery struct {
	processCode string
	guard       guard.ConstructorGuard
}

func NewProcessHistoryQuery(processCode string) (ProcessHistoryQuery, error) {
	processCode = strings.TrimSpace(processCode)
	if processCode == "" {
		return ProcessHistoryQuery{}, errs.NewValueIsRequiredError("processCode")
	}
	return ProcessHistoryQuery{processCode: processCode, guard: guard.NewConstructorGuard()}, nil
}

func (q ProcessHistoryQuery) Validate() error {
	return q.guard.Validate(ErrProcessHistoryQueryIsNotConstructed)
}

func (q ProcessHistoryQuery) ProcessCode() string { return q.processCode }
