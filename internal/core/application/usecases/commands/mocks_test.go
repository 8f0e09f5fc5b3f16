package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/carrier"
	"tracking/internal/core/domain/model/history"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/slot"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/clock"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, barcode kernel.Barcode) (*carrier.Carrier, error) {
	args := m.Called(ctx, barcode)
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetForUpdate(ctx context.Context, barcode kernel.Barcode) (*carrier.Carrier, error) {
	args := m.Called(ctx, barcode)
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

type MockProcessSlotRepository struct {
	mock.Mock
}

func (m *MockProcessSlotRepository) Add(ctx context.Context, aggregate *slot.ProcessSlot) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProcessSlotRepository) Update(ctx context.Context, aggregate *slot.ProcessSlot) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProcessSlotRepository) Get(ctx context.Context, barcode kernel.Barcode) (*slot.ProcessSlot, error) {
	args := m.Called(ctx, barcode)
	return args.Get(0).(*slot.ProcessSlot), args.Error(1)
}

func (m *MockProcessSlotRepository) GetForUpdate(
	ctx context.Context,
	barcodes ...kernel.Barcode,
) ([]*slot.ProcessSlot, error) {
	args := m.Called(ctx, barcodes)
	return args.Get(0).([]*slot.ProcessSlot), args.Error(1)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, event *history.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

func (m *MockUoW) ProcessSlotRepository() ports.ProcessSlotRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessSlotRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCarrierUoWFactory struct {
	mock.Mock
}

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	args := m.Called()
	return args.Get(0).(commands.CarrierUoW)
}

type MockSlotUoWFactory struct {
	mock.Mock
}

func (m *MockSlotUoWFactory) Create() commands.SlotUoW {
	args := m.Called()
	return args.Get(0).(commands.SlotUoW)
}

func fixedClock() *clock.Authority {
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	return clock.NewWithSource(nil, func() time.Time { return at })
}

func TestAttachPayloadCommandHandler_Handle_CreatesCarrier(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAttachPayloadCommand("TR-01", kernel.Payload{CustomerName: "Acme"})
	require.NoError(t, err)
	notFound := errs.NewObjectNotFoundError("barcode", "TR-01")

	mockCarriers := new(MockCarrierRepository)
	mockHistory := new(MockHistoryRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCarrierUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CarrierRepository").Return(mockCarriers).Once(),
		mockCarriers.On("GetForUpdate", ctx, cmd.Carrier()).Return((*carrier.Carrier)(nil), notFound).Once(),
		mockCarriers.On("Add", ctx, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		mockUoW.On("HistoryRepository").Return(mockHistory).Once(),
		mockHistory.On("Append", ctx, mock.MatchedBy(func(e *history.Event) bool {
			return e.Type() == history.CarrierAttached && e.Status() == history.StatusInitiated
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAttachPayloadCommandHandler(mockFactory, fixedClock(), nil)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "FULL", result.State)
	assert.Equal(t, "2025-03-01 13:00:00", result.DisplayTimestamp)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCarriers.AssertExpectations(t)
	mockHistory.AssertExpectations(t)
}

func TestAttachPayloadCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.AttachPayloadCommand

	mockFactory := new(MockCarrierUoWFactory)
	handler := commands.NewAttachPayloadCommandHandler(mockFactory, fixedClock(), nil)

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrAttachPayloadCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestAttachPayloadCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAttachPayloadCommand("TR-01", kernel.Payload{CustomerName: "Acme"})
	require.NoError(t, err)
	beginErr := errors.New("begin transaction failed")

	mockUoW := new(MockUoW)
	mockFactory := new(MockCarrierUoWFactory)
	mockUoW.On("Begin", ctx).Return(beginErr).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAttachPayloadCommandHandler(mockFactory, fixedClock(), nil)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrTransactionFailed)
	require.ErrorIs(t, err, beginErr)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestAttachPayloadCommandHandler_Handle_RepositoryError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAttachPayloadCommand("TR-01", kernel.Payload{CustomerName: "Acme"})
	require.NoError(t, err)
	repoErr := errors.New("connection refused")

	mockCarriers := new(MockCarrierRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCarrierUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CarrierRepository").Return(mockCarriers).Once(),
		mockCarriers.On("GetForUpdate", ctx, cmd.Carrier()).Return((*carrier.Carrier)(nil), repoErr).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAttachPayloadCommandHandler(mockFactory, fixedClock(), nil)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrTransactionFailed)
	require.ErrorContains(t, err, commands.OpAttachPayload)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
	mockUoW.AssertExpectations(t)
	mockCarriers.AssertExpectations(t)
}

func TestAttachPayloadCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAttachPayloadCommand("TR-01", kernel.Payload{CustomerName: "Acme"})
	require.NoError(t, err)
	existing, err := carrier.NewCarrier(cmd.Carrier(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	commitErr := errors.New("serialization failure")

	mockCarriers := new(MockCarrierRepository)
	mockHistory := new(MockHistoryRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCarrierUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CarrierRepository").Return(mockCarriers).Once(),
		mockCarriers.On("GetForUpdate", ctx, cmd.Carrier()).Return(existing, nil).Once(),
		mockCarriers.On("Update", ctx, existing).Return(nil).Once(),
		mockUoW.On("HistoryRepository").Return(mockHistory).Once(),
		mockHistory.On("Append", ctx, mock.AnythingOfType("*history.Event")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(commitErr).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAttachPayloadCommandHandler(mockFactory, fixedClock(), nil)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrTransactionFailed)
	require.ErrorContains(t, err, "serialization failure")
	mockUoW.AssertExpectations(t)
	mockCarriers.AssertExpectations(t)
	mockHistory.AssertExpectations(t)
}

func TestCarrierToProcessorCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCarrierToProcessorCommand("TR-01", "PR-01-in", "Dyeing")
	require.NoError(t, err)

	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)
	mockUoW.On("Begin", ctx).Return(ports.ErrLockTimeout).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCarrierToProcessorCommandHandler(mockFactory, fixedClock(), nil)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrTransactionFailed)
	require.ErrorIs(t, err, ports.ErrLockTimeout)
	mockUoW.AssertExpectations(t)
}

func TestProcessorToCarrierCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.ProcessorToCarrierCommand

	mockFactory := new(MockUoWFactory)
	handler := commands.NewProcessorToCarrierCommandHandler(mockFactory, fixedClock(), nil)

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrProcessorToCarrierCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestProvisionProcessCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewProvisionProcessCommand("PR-01")
	require.NoError(t, err)

	mockSlots := new(MockProcessSlotRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockSlotUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProcessSlotRepository").Return(mockSlots).Once(),
		mockSlots.On("GetForUpdate", ctx, []kernel.Barcode{cmd.InputSlot(), cmd.OutputSlot()}).
			Return([]*slot.ProcessSlot{}, nil).Once(),
		mockSlots.On("Add", ctx, mock.MatchedBy(func(s *slot.ProcessSlot) bool {
			return s.ProcessType() == slot.Input && s.Barcode().String() == "PR-01-in"
		})).Return(nil).Once(),
		mockSlots.On("Add", ctx, mock.MatchedBy(func(s *slot.ProcessSlot) bool {
			return s.ProcessType() == slot.Output && s.Barcode().String() == "PR-01-out"
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewProvisionProcessCommandHandler(mockFactory, nil)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "PR-01", result.ProcessCode)
	assert.Equal(t, "PR-01-in", result.InputSlot)
	assert.Equal(t, "PR-01-out", result.OutputSlot)
	mockUoW.AssertExpectations(t)
	mockSlots.AssertExpectations(t)
}

func TestProvisionProcessCommandHandler_Handle_AddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewProvisionProcessCommand("PR-01")
	require.NoError(t, err)

	mockSlots := new(MockProcessSlotRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockSlotUoWFactory)

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ProcessSlotRepository").Return(mockSlots).Once()
	mockSlots.On("GetForUpdate", ctx, mock.Anything).Return([]*slot.ProcessSlot{}, nil).Once()
	mockSlots.On("Add", ctx, mock.Anything).Return(ports.ErrConflict).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewProvisionProcessCommandHandler(mockFactory, nil)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrTransactionFailed)
	require.ErrorIs(t, err, ports.ErrConflict)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
	mockUoW.AssertExpectations(t)
}
