package history_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/history"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	at      = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	payload = kernel.Payload{CustomerName: "Acme", DesignName: "Paisley"}
)

func bc(t *testing.T, raw string) kernel.Barcode {
	t.Helper()
	b, err := kernel.NewBarcode(raw)
	require.NoError(t, err)
	return b
}

func TestNewCarrierAttachedEvent(t *testing.T) {
	e, err := history.NewCarrierAttachedEvent(bc(t, "TR-01"), payload, at)

	require.NoError(t, err)
	require.NoError(t, e.Validate())
	require.NoError(t, e.ID().Validate())
	assert.Equal(t, history.CarrierAttached, e.Type())
	assert.Equal(t, history.StatusInitiated, e.Status())
	assert.Equal(t, "TR-01", e.References().Carrier.String())
	assert.Equal(t, "TR-01", e.References().InputCarrier.String())
	assert.Empty(t, e.ProcessCode())
	assert.Equal(t, payload, *e.Payload())
	assert.Equal(t, at, e.CreatedAt())
}

func TestNewCarrierClearedEvent(t *testing.T) {
	e, err := history.NewCarrierClearedEvent(bc(t, "TR-01"), payload, at)

	require.NoError(t, err)
	assert.Equal(t, history.CarrierCleared, e.Type())
	assert.Equal(t, history.StatusCleared, e.Status())
	assert.True(t, e.Mentions("TR-01"))
}

func TestNewProcessInputEvent(t *testing.T) {
	out := bc(t, "PR-01-out")

	e, err := history.NewProcessInputEvent(history.ProcessInputFacts{
		Carrier:     bc(t, "TR-01"),
		InputSlot:   bc(t, "PR-01-in"),
		OutputSlot:  &out,
		ProcessName: "Dyeing",
		Payload:     payload,
		At:          at,
	})

	require.NoError(t, err)
	refs := e.References()
	assert.Equal(t, history.ProcessInput, e.Type())
	assert.Equal(t, history.StatusInProgress, e.Status())
	assert.Equal(t, "PR-01", e.ProcessCode())
	assert.Equal(t, "Dyeing", e.ProcessName())
	assert.Equal(t, "TR-01", refs.From.String())
	assert.Equal(t, "PR-01-in", refs.To.String())
	assert.Equal(t, "PR-01-in", refs.Slot.String())
	assert.Equal(t, "PR-01-in", refs.InputSlot.String())
	assert.Equal(t, "PR-01-out", refs.OutputSlot.String())
	assert.Nil(t, refs.OutputCarrier)
	assert.Equal(t, at, *e.ProcessStartTime())
	assert.Nil(t, e.DurationSeconds())
}

func TestNewProcessOutputEvent(t *testing.T) {
	in, source := bc(t, "PR-01-in"), bc(t, "TR-01")
	started := at.Add(-90 * time.Second)
	duration := int64(90)

	e, err := history.NewProcessOutputEvent(history.ProcessOutputFacts{
		OutputSlot:      bc(t, "PR-01-out"),
		InputSlot:       &in,
		SourceCarrier:   &source,
		TargetCarrier:   bc(t, "TR-02"),
		ProcessName:     "Dyeing",
		Payload:         payload,
		StartedAt:       &started,
		At:              at,
		DurationSeconds: &duration,
	})

	require.NoError(t, err)
	refs := e.References()
	assert.Equal(t, history.ProcessOutput, e.Type())
	assert.Equal(t, history.StatusCompleted, e.Status())
	assert.Equal(t, "PR-01", e.ProcessCode())
	assert.Equal(t, "TR-01", refs.InputCarrier.String())
	assert.Equal(t, "TR-02", refs.OutputCarrier.String())
	assert.Equal(t, "TR-02", refs.Carrier.String())
	assert.Equal(t, "PR-01-out", refs.From.String())
	assert.Equal(t, "TR-02", refs.To.String())
	assert.Equal(t, int64(90), *e.DurationSeconds())
	assert.Equal(t, at, *e.ProcessEndTime())

	for _, code := range []string{"PR-01-in", "PR-01-out", "TR-01", "TR-02"} {
		assert.True(t, e.Mentions(code), code)
	}
	assert.False(t, e.Mentions("PR-01"))
}

func TestRestoreEvent(t *testing.T) {
	original, err := history.NewCarrierAttachedEvent(bc(t, "TR-01"), payload, at)
	require.NoError(t, err)

	restored, err := history.RestoreEvent(history.Record{
		ID:         original.ID(),
		Type:       original.Type(),
		Payload:    original.Payload(),
		References: original.References(),
		Status:     original.Status(),
		CreatedAt:  original.CreatedAt(),
	})

	require.NoError(t, err)
	assert.True(t, original.ID().IsEqual(restored.ID()))
	assert.Equal(t, original.References(), restored.References())

	t.Run("unknown type", func(t *testing.T) {
		_, err := history.RestoreEvent(history.Record{
			ID: kernel.NewUUID(), Type: "trolley_teleported", Status: history.StatusCompleted, CreatedAt: at,
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := history.RestoreEvent(history.Record{Type: history.CarrierAttached})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestBuild_RequiresTimestamp(t *testing.T) {
	_, err := history.NewCarrierAttachedEvent(bc(t, "TR-01"), payload, time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
