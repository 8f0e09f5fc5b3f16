package commands_test

import (
	"strings"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachPayloadCommand(t *testing.T) {
	t.Run("valid input is trimmed", func(t *testing.T) {
		cmd, err := commands.NewAttachPayloadCommand(" TR-01 ", kernel.Payload{CustomerName: "  Acme "})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "TR-01", cmd.Carrier().String())
		assert.Equal(t, "Acme", cmd.Payload().CustomerName)
	})

	t.Run("blank barcode", func(t *testing.T) {
		_, err := commands.NewAttachPayloadCommand("  ", kernel.Payload{CustomerName: "Acme"})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := commands.NewAttachPayloadCommand("TR-01", kernel.Payload{Remarks: "   "})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := commands.NewAttachPayloadCommand("TR-01", kernel.Payload{CustomerName: "Acme", OrderReceiveDate: "01/02/2025"})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.AttachPayloadCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAttachPayloadCommandIsNotConstructed)
	})
}

func TestNewCarrierToProcessorCommand(t *testing.T) {
	cmd, err := commands.NewCarrierToProcessorCommand("TR-01", "PR-01-in", "  Dyeing ")
	require.NoError(t, err)
	assert.Equal(t, "TR-01", cmd.Carrier().String())
	assert.Equal(t, "PR-01-in", cmd.InputSlot().String())
	assert.Equal(t, "Dyeing", cmd.ProcessName())

	_, err = commands.NewCarrierToProcessorCommand("", "", "Dyeing")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.CarrierToProcessorCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrCarrierToProcessorCommandIsNotConstructed)
}

func TestNewProcessorToCarrierCommand(t *testing.T) {
	cmd, err := commands.NewProcessorToCarrierCommand("PR-01-out", "TR-02")
	require.NoError(t, err)
	assert.Equal(t, "PR-01-out", cmd.OutputSlot().String())
	assert.Equal(t, "TR-02", cmd.Carrier().String())

	_, err = commands.NewProcessorToCarrierCommand("PR-01-out", strings.Repeat("x", kernel.MaxBarcodeLength+1))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var zero commands.ProcessorToCarrierCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrProcessorToCarrierCommandIsNotConstructed)
}

func TestNewClearCarrierCommand(t *testing.T) {
	cmd, err := commands.NewClearCarrierCommand("TR-01")
	require.NoError(t, err)
	assert.Equal(t, "TR-01", cmd.Carrier().String())

	_, err = commands.NewClearCarrierCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.ClearCarrierCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrClearCarrierCommandIsNotConstructed)
}

func TestNewProvisionProcessCommand(t *testing.T) {
	cmd, err := commands.NewProvisionProcessCommand(" PR-07 ")
	require.NoError(t, err)
	assert.Equal(t, "PR-07", cmd.ProcessCode())
	assert.Equal(t, "PR-07-in", cmd.InputSlot().String())
	assert.Equal(t, "PR-07-out", cmd.OutputSlot().String())
	assert.Equal(t, "PR-07", cmd.InputSlot().ProcessCode())

	_, err = commands.NewProvisionProcessCommand(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewProvisionProcessCommand(strings.Repeat("p", kernel.MaxBarcodeLength))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var zero commands.ProvisionProcessCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrProvisionProcessCommandIsNotConstructed)
}
