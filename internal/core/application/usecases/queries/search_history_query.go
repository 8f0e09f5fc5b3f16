package queries

import (
	"errors"
	"strings"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrSearchHistoryQueryIsNotConstructed = errors.New(
	"SearchHistoryQuery must be created via NewSearchHistoryQuery constructor",
)

// SearchHistoryQuery is a case-insensitive substring search over the reference
// roles, customer, lot, process name and process code.
type SearchHistoryQuery struct {
	text  string
	guard guard.ConstructorGuard
}

func NewSearchHistoryQuery(text string) (SearchHistoryQuery, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SearchHistoryQuery{}, errs.NewValueIsRequiredError("q")
	}
	return SearchHistoryQuery{text: text, guard: guard.NewConstructorGuard()}, nil
}

func (q SearchHistoryQuery) Validate() error {
	return q.guard.Validate(ErrSearchHistoryQueryIsNotConstructed)
}

func (q SearchHistoryQuery) Text() string { return q.text }

// Pattern is the ILIKE argument with LIKE metacharacters escaped.
func (q SearchHistoryQuery) Pattern() string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q.text)
	return "%" + escaped + "%"
}
