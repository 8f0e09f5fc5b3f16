package queries_test

import (
	"strings"
	"testing"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolveBarcodeQuery(t *testing.T) {
	query, err := queries.NewResolveBarcodeQuery("  PR-01-in ")
	require.NoError(t, err)
	assert.Equal(t, "PR-01-in", query.Code().String())
	require.NoError(t, query.Validate())

	_, err = queries.NewResolveBarcodeQuery(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewResolveBarcodeQuery(strings.Repeat("x", 65))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestResolveBarcodeQuery_ZeroValueIsNotConstructed(t *testing.T) {
	var query queries.ResolveBarcodeQuery

	require.ErrorIs(t, query.Validate(), queries.ErrResolveBarcodeQueryIsNotConstructed)
}

func TestNewListHistoryQuery(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
		wantErr    error
	}{
		{name: "defaults", wantPage: 1, wantLimit: queries.DefaultPageLimit},
		{name: "explicit", page: 3, limit: 20, wantPage: 3, wantLimit: 20, wantOffset: 40},
		{name: "capped", page: 1, limit: 500, wantPage: 1, wantLimit: queries.MaxPageLimit},
		{name: "negative page", page: -1, wantErr: errs.ErrValueIsOutOfRange},
		{name: "negative limit", page: 1, limit: -5, wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewListHistoryQuery(tt.page, tt.limit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, query.Page())
			assert.Equal(t, tt.wantLimit, query.Limit())
			assert.Equal(t, tt.wantOffset, query.Offset())
		})
	}
}

func TestNewSearchHistoryQuery(t *testing.T) {
	query, err := queries.NewSearchHistoryQuery(" 50%_off ")
	require.NoError(t, err)
	assert.Equal(t, "50%_off", query.Text())
	assert.Equal(t, `%50\%\_off%`, query.Pattern())

	_, err = queries.NewSearchHistoryQuery("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewProcessHistoryQuery(t *testing.T) {
	query, err := queries.NewProcessHistoryQuery(" PR-01 ")
	require.NoError(t, err)
	assert.Equal(t, "PR-01", query.ProcessCode())

	_, err = queries.NewProcessHistoryQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCarrierJourneyQuery(t *testing.T) {
	query, err := queries.NewCarrierJourneyQuery("TR-01")
	require.NoError(t, err)
	assert.Equal(t, "TR-01", query.Carrier().String())

	var zero queries.CarrierJourneyQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrCarrierJourneyQueryIsNotConstructed)
}

func TestHistoryStatsQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewHistoryStatsQuery().Validate())

	var zero queries.HistoryStatsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrHistoryStatsQueryIsNotConstructed)
}
