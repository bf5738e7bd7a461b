// Package qrcode builds QR Code Model 2 symbols: it turns an input string
// into a square matrix of dark and light modules conforming to versions 1
// through 40 of the standard.
package qrcode

import (
	"github.com/go-qrcode/qrcode/internal/bitset"
)

// Symbol is a fully constructed QR Code. It is immutable once returned by
// New and safe for concurrent reads.
type Symbol struct {
	text string

	version int
	level   RecoveryLevel
	mode    Mode
	mask    int

	size    int
	modules [][]bool

	codewords []byte

	options Options
}

// New builds a Symbol encoding text under the given options. The input is
// classified into exactly one mode (Numeric, Alphanumeric, or Byte), the
// smallest version admitting it at or above opts.MinECC is selected, and
// the full construction pipeline (segment encode -> EC + interleave ->
// build matrix -> mask) runs to completion before returning.
func New(text string, opts Options) (*Symbol, error) {
	opts = opts.withDefaults()

	raw := []byte(text)

	mode, err := classify(raw)
	if err != nil {
		return nil, err
	}

	version, level, err := selectVersion(mode, len(raw), opts.MinECC)
	if err != nil {
		return nil, err
	}

	opts.Logger.WithFields(logFields(version, level, mode, len(raw))).Debug("version and ECC level selected")

	buf := bitset.New()

	if err := encodeSegment(buf, raw, mode, version); err != nil {
		return nil, err
	}

	dataCodewords, err := totalCodewords(version, level)
	if err != nil {
		return nil, err
	}

	if err := appendTerminatorAndPadding(buf, dataCodewords*8); err != nil {
		return nil, err
	}

	codewords, err := splitAndInterleave(buf, version, level)
	if err != nil {
		return nil, err
	}

	modules, chosenMask, err := buildMatrix(version, level, opts.Mask, opts.AutoMask, codewords)
	if err != nil {
		return nil, err
	}

	if opts.AutoMask {
		opts.Logger.WithFields(map[string]interface{}{"mask": chosenMask}).Debug("mask chosen automatically")
	}

	return &Symbol{
		text:      text,
		version:   version,
		level:     level,
		mode:      mode,
		mask:      chosenMask,
		size:      version*4 + 17,
		modules:   modules,
		codewords: codewords,
		options:   opts,
	}, nil
}

// Version returns the chosen symbol version, 1-40.
func (s *Symbol) Version() int { return s.version }

// Level returns the chosen error-correction level, which may be higher
// than the caller's requested floor if the version admitted it for free.
func (s *Symbol) Level() RecoveryLevel { return s.level }

// Mode returns the chosen encoding mode.
func (s *Symbol) Mode() Mode { return s.mode }

// Mask returns the applied data-mask index, 0-7.
func (s *Symbol) Mask() int { return s.mask }

// Size returns the side length of the module grid, in modules.
func (s *Symbol) Size() int { return s.size }

// CharCountBits returns the character-count field width used for this
// symbol's mode and version.
func (s *Symbol) CharCountBits() int {
	bits, _ := charCountBits(s.mode, s.version)
	return bits
}

// Text returns the original input text.
func (s *Symbol) Text() string { return s.text }

// Codewords returns the final interleaved codeword stream, for debugging.
func (s *Symbol) Codewords() []byte { return s.codewords }

// At reports whether the module at (x, y) is dark. x and y are zero-based
// column and row indices.
func (s *Symbol) At(x, y int) bool {
	return s.modules[y][x]
}

// Bitmap returns a read-only row-major view of the module grid: row y,
// column x, true meaning dark. Callers must not mutate the result.
func (s *Symbol) Bitmap() [][]bool {
	return s.modules
}

func logFields(version int, level RecoveryLevel, mode Mode, length int) map[string]interface{} {
	return map[string]interface{}{
		"version": version,
		"level":   level.String(),
		"mode":    mode.String(),
		"length":  length,
	}
}
