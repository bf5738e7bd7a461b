package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helloWorldReferenceGrid is the module grid for "HELLO WORLD" encoded at
// version 1, ECC level Quartile, mask 0 — the classic worked example
// reproduced across QR tutorials, '#' dark and '.' light. It was derived
// independently (mode/char-count/payload packing, Reed-Solomon over
// GF(256), zig-zag placement, mask 0) to check the whole pipeline end to
// end, not just the metadata New returns.
var helloWorldReferenceGrid = []string{
	"#######.##....#######",
	"#.....#.#..#..#.....#",
	"#.###.#.#..##.#.###.#",
	"#.###.#.#.....#.###.#",
	"#.###.#.#.#...#.###.#",
	"#.....#...#...#.....#",
	"#######.#.#.#.#######",
	"........#............",
	".##.#.##....#.#.#####",
	".#......####....#...#",
	"..##.###.##...#.##...",
	".##.##.#..##.#.#.###.",
	"#...#.#.#.###.###.#.#",
	"........##.#..#...#.#",
	"#######.#.#....#.##..",
	"#.....#..#.##.##.#...",
	"#.###.#.#.#...#######",
	"#.###.#..#.#.#.#...#.",
	"#.###.#.#..#.###.#..#",
	"#.....#.#.####...#.##",
	"#######....#.###....#",
}

func gridFromStrings(rows []string) [][]bool {
	grid := make([][]bool, len(rows))
	for y, row := range rows {
		grid[y] = make([]bool, len(row))
		for x, c := range row {
			grid[y][x] = c == '#'
		}
	}

	return grid
}

func TestHelloWorldAlphanumericVersion1(t *testing.T) {
	sym, err := New("HELLO WORLD", Options{MinECC: Quartile, Mask: 0})
	require.NoError(t, err)

	assert.Equal(t, ModeAlphanumeric, sym.Mode())
	assert.Equal(t, 1, sym.Version())
	assert.Equal(t, 21, sym.Size())
	assert.Equal(t, gridFromStrings(helloWorldReferenceGrid), sym.Bitmap())
}

func TestNumericVersion1(t *testing.T) {
	sym, err := New("01234567", Options{MinECC: Medium, Mask: 2})
	require.NoError(t, err)

	assert.Equal(t, ModeNumeric, sym.Mode())
	assert.Equal(t, 1, sym.Version())
	assert.Equal(t, 21, sym.Size())
	assert.Equal(t, 2, sym.Mask())
}

func TestSingleLowercaseCharIsByteMode(t *testing.T) {
	sym, err := New("a", Options{MinECC: Low, Mask: 0})
	require.NoError(t, err)

	assert.Equal(t, ModeByte, sym.Mode())
	assert.Equal(t, 1, sym.Version())
	assert.Equal(t, 21, sym.Size())
}

func TestNumericCapacityBoundaryAtVersion1Low(t *testing.T) {
	sym, err := New(repeatDigits(41), Options{MinECC: Low, Mask: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Version())

	sym, err = New(repeatDigits(42), Options{MinECC: Low, Mask: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, sym.Version())
}

func TestHighECCMixedCaseReachesVersionInfo(t *testing.T) {
	sym, err := New("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyzABCDEFGHIJ", Options{MinECC: High, Mask: 7})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, sym.Version(), 7)
}

func TestEmptyStringProducesWellFormedMatrix(t *testing.T) {
	sym, err := New("", Options{MinECC: Low, Mask: 0})
	require.NoError(t, err)

	assert.Equal(t, 1, sym.Version())
	assert.Equal(t, 21, sym.Size())

	bitmap := sym.Bitmap()
	require.Len(t, bitmap, 21)

	for _, row := range bitmap {
		require.Len(t, row, 21)
	}
}

func TestOutOfRangeMaskClampsToZero(t *testing.T) {
	clamped, err := New("a", Options{MinECC: Low, Mask: 9})
	require.NoError(t, err)

	unclamped, err := New("a", Options{MinECC: Low, Mask: 0})
	require.NoError(t, err)

	assert.Equal(t, unclamped.Mask(), clamped.Mask())
}

func TestAutoMaskPicksLowestPenalty(t *testing.T) {
	sym, err := New("HELLO WORLD", Options{MinECC: Quartile, AutoMask: true})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, sym.Mask(), 0)
	assert.LessOrEqual(t, sym.Mask(), 7)
}

func TestUnsupportedCharacterRejected(t *testing.T) {
	_, err := New(string([]byte{0x01, 0x02}), Options{MinECC: Low})
	require.Error(t, err)

	var unsupported *UnsupportedCharacterError
	assert.ErrorAs(t, err, &unsupported)
}

func repeatDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + i%10)
	}

	return string(digits)
}
