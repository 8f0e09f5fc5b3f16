package kernel_test

import (
	"strings"
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBarcode(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		b, err := kernel.NewBarcode("  TR-01\n")

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, "TR-01", b.String())
	})

	t.Run("empty is required", func(t *testing.T) {
		_, err := kernel.NewBarcode("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := kernel.NewBarcode(strings.Repeat("X", kernel.MaxBarcodeLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var b kernel.Barcode

		require.ErrorIs(t, b.Validate(), errs.ErrValueIsRequired)
	})
}

func TestBarcode_ProcessCode(t *testing.T) {
	cases := []struct {
		barcode string
		want    string
	}{
		{"PR-01-in", "PR-01"},
		{"PR-01-out", "PR-01"},
		{"DYE-A", "DYE"},
		{"PR01", "PR01"},
		{"PR-", "PR"},
		{"-in", ""},
	}
	for _, tc := range cases {
		t.Run(tc.barcode, func(t *testing.T) {
			b, err := kernel.NewBarcode(tc.barcode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.ProcessCode())
		})
	}
}

func TestBarcode_IsEqual(t *testing.T) {
	a, _ := kernel.NewBarcode("TR-01")
	b, _ := kernel.NewBarcode(" TR-01 ")
	c, _ := kernel.NewBarcode("tr-01")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
