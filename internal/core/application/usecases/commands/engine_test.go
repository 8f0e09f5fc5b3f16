package commands_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tracking/internal/adapters/out/memory"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/history"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/clock"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryFactory adapts the memory store to every command-side factory.
type memoryFactory struct {
	inner *memory.UnitOfWorkFactory
}

func (f memoryFactory) Create() commands.UoW { return f.inner.Create() }

type memoryCarrierFactory struct{ memoryFactory }

func (f memoryCarrierFactory) Create() commands.CarrierUoW { return f.inner.Create() }

type memorySlotFactory struct{ memoryFactory }

func (f memorySlotFactory) Create() commands.SlotUoW { return f.inner.Create() }

// steppingClock advances one second per reading.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) read() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type engine struct {
	store     *memory.Store
	clock     *clock.Authority
	attach    commands.AttachPayloadCommandHandler
	feed      commands.CarrierToProcessorCommandHandler
	drain     commands.ProcessorToCarrierCommandHandler
	clear     commands.ClearCarrierCommandHandler
	provision commands.ProvisionProcessCommandHandler
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	store := memory.NewStore()
	base := memoryFactory{inner: memory.NewUnitOfWorkFactory(store)}
	source := &steppingClock{now: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}
	authority := clock.NewWithSource(nil, source.read)

	e := &engine{
		store:     store,
		clock:     authority,
		attach:    commands.NewAttachPayloadCommandHandler(memoryCarrierFactory{base}, authority, nil),
		feed:      commands.NewCarrierToProcessorCommandHandler(base, authority, nil),
		drain:     commands.NewProcessorToCarrierCommandHandler(base, authority, nil),
		clear:     commands.NewClearCarrierCommandHandler(memoryCarrierFactory{base}, authority, nil),
		provision: commands.NewProvisionProcessCommandHandler(memorySlotFactory{base}, nil),
	}
	return e
}

func (e *engine) mustProvision(t *testing.T, code string) {
	t.Helper()
	cmd, err := commands.NewProvisionProcessCommand(code)
	require.NoError(t, err)
	_, err = e.provision.Handle(t.Context(), cmd)
	require.NoError(t, err)
}

func (e *engine) mustAttach(t *testing.T, barcode string, payload kernel.Payload) commands.AttachPayloadResult {
	t.Helper()
	cmd, err := commands.NewAttachPayloadCommand(barcode, payload)
	require.NoError(t, err)
	result, err := e.attach.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return result
}

func (e *engine) feedCarrier(ctx context.Context, t *testing.T, carrier, slot, name string) (commands.CarrierToProcessorResult, error) {
	t.Helper()
	cmd, err := commands.NewCarrierToProcessorCommand(carrier, slot, name)
	require.NoError(t, err)
	return e.feed.Handle(ctx, cmd)
}

func (e *engine) drainSlot(t *testing.T, slot, carrier string) (commands.ProcessorToCarrierResult, error) {
	t.Helper()
	cmd, err := commands.NewProcessorToCarrierCommand(slot, carrier)
	require.NoError(t, err)
	return e.drain.Handle(t.Context(), cmd)
}

func TestEngine_FullScenario(t *testing.T) {
	e := newEngine(t)
	e.mustProvision(t, "PR-01")
	acme := kernel.Payload{CustomerName: "Acme"}

	attached := e.mustAttach(t, "TR-01", acme)
	assert.True(t, attached.Created)
	assert.Equal(t, "FULL", attached.State)

	fed, err := e.feedCarrier(t.Context(), t, "TR-01", "PR-01-in", "Dyeing")
	require.NoError(t, err)
	assert.Equal(t, "TR-01", fed.Source)
	assert.Equal(t, "PR-01-in", fed.Destination)
	require.NotNil(t, fed.Mirror)
	assert.Equal(t, "PR-01-out", *fed.Mirror)
	assert.Equal(t, "IN_PROCESS", fed.State)
	assert.Equal(t, e.clock.ToDisplay(fed.Timestamp), fed.DisplayTimestamp)

	trolley, _ := e.store.Carrier("TR-01")
	assert.False(t, trolley.IsFull())
	assert.Nil(t, trolley.Payload())
	input, _ := e.store.Slot("PR-01-in")
	output, _ := e.store.Slot("PR-01-out")
	assert.True(t, input.IsInProcess())
	assert.True(t, output.IsInProcess())
	assert.Equal(t, acme, *input.Payload())
	assert.Equal(t, *input.Payload(), *output.Payload())

	events := e.store.Events()
	require.Len(t, events, 2)
	assert.Equal(t, history.ProcessInput, events[1].Type())

	drained, err := e.drainSlot(t, "PR-01-out", "TR-02")
	require.NoError(t, err)
	assert.True(t, drained.Provisioned)
	assert.Equal(t, "COMPLETED", drained.State)
	assert.Equal(t, "Dyeing", drained.ProcessName)
	require.NotNil(t, drained.OriginalCarrier)
	assert.Equal(t, "TR-01", *drained.OriginalCarrier)
	require.NotNil(t, drained.DurationSeconds)
	assert.GreaterOrEqual(t, *drained.DurationSeconds, int64(0))
	assert.Equal(t, int64(drained.Timestamp.Sub(fed.Timestamp).Seconds()), *drained.DurationSeconds)

	target, ok := e.store.Carrier("TR-02")
	require.True(t, ok)
	assert.True(t, target.IsFull())
	assert.Equal(t, acme, *target.Payload())

	input, _ = e.store.Slot("PR-01-in")
	output, _ = e.store.Slot("PR-01-out")
	for _, s := range []string{"PR-01-in", "PR-01-out"} {
		ps, _ := e.store.Slot(s)
		assert.True(t, ps.IsCompleted(), s)
		assert.Nil(t, ps.Payload())
		assert.Equal(t, drained.Timestamp, *ps.ProcessEndTime())
	}
	assert.Equal(t, *input.ProcessEndTime(), *output.ProcessEndTime())

	events = e.store.Events()
	require.Len(t, events, 3)
	last := events[2]
	assert.Equal(t, history.ProcessOutput, last.Type())
	assert.Equal(t, "TR-02", last.References().OutputCarrier.String())
	assert.Equal(t, "TR-01", last.References().InputCarrier.String())
}

func TestEngine_AttachIsIdempotentPerCarrier(t *testing.T) {
	e := newEngine(t)

	e.mustAttach(t, "TR-01", kernel.Payload{CustomerName: "Acme", Remarks: "rush", Meters: "100"})
	second := e.mustAttach(t, "TR-01", kernel.Payload{DesignName: "Paisley"})

	assert.False(t, second.Created)
	stored, _ := e.store.Carrier("TR-01")
	assert.Equal(t, kernel.Payload{DesignName: "Paisley"}, *stored.Payload())
	assert.Len(t, e.store.Events(), 2)
}

func TestEngine_FeedingAResetCarrierFailsWithCarrierEmpty(t *testing.T) {
	e := newEngine(t)
	e.mustProvision(t, "PR-01")
	e.mustProvision(t, "PR-02")
	e.mustAttach(t, "TR-01", kernel.Payload{CustomerName: "Acme"})

	_, err := e.feedCarrier(t.Context(), t, "TR-01", "PR-01-in", "Dyeing")
	require.NoError(t, err)
	before := len(e.store.Events())

	_, err = e.feedCarrier(t.Context(), t, "TR-01", "PR-02-in", "Dyeing")

	require.ErrorIs(t, err, commands.ErrCarrierEmpty)
	assert.Len(t, e.store.Events(), before)
	untouched, _ := e.store.Slot("PR-02-in")
	assert.True(t, untouched.IsEmpty())
}

func TestEngine_FeedPreconditions(t *testing.T) {
	e := newEngine(t)
	e.mustProvision(t, "PR-01")

	_, err := e.feedCarrier(t.Context(), t, "TR-404", "PR-01-in", "Dyeing")
	require.ErrorIs(t, err, commands.ErrCarrierEmpty)

	e.mustAttach(t, "TR-01", kernel.Payload{CustomerName: "Acme"})

	_, err = e.feedCarrier(t.Context(), t, "TR-01", "PR-404-in", "Dyeing")
	require.ErrorIs(t, err, commands.ErrProcessorNotFound)

	_, err = e.feedCarrier(t.Context(), t, "TR-01", "PR-01-out", "Dyeing")
	require.ErrorIs(t, err, commands.ErrProcessorNotFound, "an output slot is not a valid input")

	e.mustAttach(t, "TR-02", kernel.Payload{CustomerName: "Beta"})
	_, err = e.feedCarrier(t.Context(), t, "TR-02", "PR-01-in", "Dyeing")
	require.NoError(t, err)

	_, err = e.feedCarrier(t.Context(), t, "TR-01", "PR-01-in", "Dyeing")
	require.ErrorIs(t, err, commands.ErrProcessorBusy)

	stillFull, _ := e.store.Carrier("TR-01")
	assert.True(t, stillFull.IsFull())
}

func TestEngine_DrainEmptySlotChangesNothing(t *testing.T) {
	e := newEngine(t)
	e.mustProvision(t, "PR-01")
	e.mustAttach(t, "TR-02", kernel.Payload{CustomerName: "Beta"})
	events := len(e.store.Events())

	_, err := e.drainSlot(t, "PR-01-out", "TR-02")
	require.ErrorIs(t, err, commands.ErrProcessorEmpty)

	_, err = e.drainSlot(t, "PR-404-out", "TR-02")
	require.ErrorIs(t, err, commands.ErrProcessorEmpty)

	assert.Len(t, e.store.Events(), events)
	target, _ := e.store.Carrier("TR-02")
	assert.Equal(t, "Beta", target.Payload().CustomerName)
	output, _ := e.store.Slot("PR-01-out")
	assert.Nil(t, output.ProcessEndTime())
	_, created := e.store.Carrier("TR-404")
	assert.False(t, created)
}

func TestEngine_PersistenceFailureWritesNothing(t *testing.T) {
	e := newEngine(t)
	e.mustProvision(t, "PR-01")
	e.mustAttach(t, "TR-01", kernel.Payload{CustomerName: "Acme"})
	events := len(e.store.Events())

	e.store.FailNextCommit(errors.New("connection reset"))
	_, err := e.feedCarrier(t.Context(), t, "TR-01", "PR-01-in", "Dyeing")

	require.ErrorIs(t, err, errs.ErrTransactionFailed)
	stored, _ := e.store.Carrier("TR-01")
	assert.True(t, stored.IsFull())
	input, _ := e.store.Slot("PR-01-in")
	assert.True(t, input.IsEmpty())
	assert.Len(t, e.store.Events(), events)
}

func TestEngine_ClearCarrier(t *testing.T) {
	e := newEngine(t)

	_, err := e.clear.Handle(t.Context(), mustClear(t, "TR-01"))
	require.ErrorIs(t, err, commands.ErrCarrierNotFound)

	e.mustAttach(t, "TR-01", kernel.Payload{CustomerName: "Acme"})
	result, err := e.clear.Handle(t.Context(), mustClear(t, "TR-01"))
	require.NoError(t, err)
	assert.Equal(t, "EMPTY", result.State)
	assert.Equal(t, "Acme", result.ClearedPayload.CustomerName)

	_, err = e.clear.Handle(t.Context(), mustClear(t, "TR-01"))
	require.ErrorIs(t, err, commands.ErrCarrierEmpty)

	events := e.store.Events()
	require.Len(t, events, 2)
	assert.Equal(t, history.CarrierCleared, events[1].Type())
	assert.Equal(t, history.StatusCleared, events[1].Status())
}

func TestEngine_ProvisionRejectsDuplicates(t *testing.T) {
	e := newEngine(t)
	e.mustProvision(t, "PR-01")

	cmd, err := commands.NewProvisionProcessCommand("PR-01")
	require.NoError(t, err)
	_, err = e.provision.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, commands.ErrProcessorExists)
	assert.Empty(t, e.store.Events())
}

func TestEngine_ConcurrentFeedsIntoOneSlot(t *testing.T) {
	e := newEngine(t)
	e.mustProvision(t, "PR-01")
	const operators = 8
	for i := range operators {
		e.mustAttach(t, trolley(i), kernel.Payload{CustomerName: trolley(i)})
	}
	before := len(e.store.Events())

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		busy      atomic.Int32
		start     = make(chan struct{})
	)
	for i := range operators {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := e.feedCarrier(context.Background(), t, trolley(i), "PR-01-in", "Dyeing")
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, commands.ErrProcessorBusy):
				busy.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(operators-1), busy.Load())
	assert.Len(t, e.store.Events(), before+1)

	input, _ := e.store.Slot("PR-01-in")
	full := 0
	for _, code := range e.store.CarrierBarcodes() {
		c, _ := e.store.Carrier(code)
		if c.IsFull() {
			full++
			continue
		}
		assert.Equal(t, code, input.SourceCarrier().String(), "only the winning carrier is emptied")
	}
	assert.Equal(t, operators-1, full)
}

func mustClear(t *testing.T, barcode string) commands.ClearCarrierCommand {
	t.Helper()
	cmd, err := commands.NewClearCarrierCommand(barcode)
	require.NoError(t, err)
	return cmd
}

func trolley(i int) string {
	return "TR-" + string(rune('A'+i))
}
