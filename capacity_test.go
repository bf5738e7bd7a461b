package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalModulesVersion1(t *testing.T) {
	assert.Equal(t, 208, totalModules(1))
}

func TestTotalModulesVersion7HasVersionInfo(t *testing.T) {
	// Versions >= 7 subtract the 2*18-bit version-info blocks on top of the
	// version-1 style deductions.
	assert.Less(t, totalModules(7), (4*7+17)*(4*7+17)-3*8*8-2*15-1)
}

func TestCapacityNumericVersion1Low(t *testing.T) {
	c, err := capacity(1, Low, ModeNumeric)
	require.NoError(t, err)
	assert.Equal(t, 41, c)
}

// TestVersionSelectionUpgradesECC pins the opportunistic-upgrade behavior
// from original_source: a short input at a low version can end up at a
// higher ECC level than requested, never at a lower version than
// necessary.
func TestVersionSelectionUpgradesECC(t *testing.T) {
	version, level, err := selectVersion(ModeByte, 1, Low)
	require.NoError(t, err)

	assert.Equal(t, 1, version)
	assert.Equal(t, High, level)
}

func TestVersionSelectionMonotoneInECCFloor(t *testing.T) {
	length := 100

	vHigh, _, err := selectVersion(ModeByte, length, High)
	require.NoError(t, err)

	vLow, _, err := selectVersion(ModeByte, length, Low)
	require.NoError(t, err)

	assert.LessOrEqual(t, vLow, vHigh)
}

func TestNumericCapacityAtVersion1LowBoundary(t *testing.T) {
	version, _, err := selectVersion(ModeNumeric, 41, Low)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	version, _, err = selectVersion(ModeNumeric, 42, Low)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestSelectVersionFailsWhenNothingFits(t *testing.T) {
	_, _, err := selectVersion(ModeByte, 1<<20, High)
	require.Error(t, err)

	var tooLong *InputTooLongError
	assert.ErrorAs(t, err, &tooLong)
}
