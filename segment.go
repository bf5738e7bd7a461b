package qrcode

import (
	"github.com/go-qrcode/qrcode/internal/bitset"
)

// alphanumericAlphabet is the 45-character alphabet Alphanumeric mode can
// express; a character's position in the string is its encoded value.
const alphanumericAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// classify scans text once and returns the smallest mode able to express
// it: Numeric, then Alphanumeric, then Byte. A single mode covers the
// entire input; there is no mixed-mode segmentation.
func classify(text []byte) (Mode, error) {
	if isNumeric(text) {
		return ModeNumeric, nil
	}

	if isAlphanumeric(text) {
		return ModeAlphanumeric, nil
	}

	if isByte(text) {
		return ModeByte, nil
	}

	return 0, &UnsupportedCharacterError{Mode: ModeByte, Char: firstUnsupported(text)}
}

func isNumeric(text []byte) bool {
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func isAlphanumeric(text []byte) bool {
	for _, c := range text {
		if alphanumericValue(c) < 0 {
			return false
		}
	}

	return true
}

func isByte(text []byte) bool {
	for _, c := range text {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}

	return true
}

func firstUnsupported(text []byte) byte {
	for _, c := range text {
		if c < 0x20 || c > 0x7E {
			return c
		}
	}

	if len(text) > 0 {
		return text[len(text)-1]
	}

	return 0
}

// alphanumericValue returns c's position in alphanumericAlphabet, or -1 if
// c is not a member.
func alphanumericValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c == ' ':
		return 36
	case c == '$':
		return 37
	case c == '%':
		return 38
	case c == '*':
		return 39
	case c == '+':
		return 40
	case c == '-':
		return 41
	case c == '.':
		return 42
	case c == '/':
		return 43
	case c == ':':
		return 44
	default:
		return -1
	}
}

// charCountBits returns the character-count field width for mode at
// version, banded v1-9, v10-26, v27-40.
func charCountBits(mode Mode, version int) (int, error) {
	if version < 1 || version > 40 {
		return 0, &InvalidVersionError{Version: version}
	}

	var band int

	switch {
	case version <= 9:
		band = 0
	case version <= 26:
		band = 1
	default:
		band = 2
	}

	switch mode {
	case ModeNumeric:
		return [3]int{10, 12, 14}[band], nil
	case ModeAlphanumeric:
		return [3]int{9, 11, 13}[band], nil
	case ModeByte:
		return [3]int{8, 16, 16}[band], nil
	case ModeKanji:
		return [3]int{8, 10, 12}[band], nil
	default:
		return 0, &UnsupportedCharacterError{Mode: mode}
	}
}

// encodeSegment appends the mode indicator, character count, and payload
// bits for text under mode at version to buf.
func encodeSegment(buf *bitset.Bitset, text []byte, mode Mode, version int) error {
	if err := buf.AppendUint32(uint32(mode), 4); err != nil {
		return err
	}

	bits, err := charCountBits(mode, version)
	if err != nil {
		return err
	}

	if err := buf.AppendUint32(uint32(len(text)), bits); err != nil {
		return err
	}

	switch mode {
	case ModeNumeric:
		return encodeNumeric(buf, text)
	case ModeAlphanumeric:
		return encodeAlphanumeric(buf, text)
	case ModeByte:
		return encodeByte(buf, text)
	default:
		return &UnsupportedCharacterError{Mode: mode}
	}
}

// encodeNumeric packs digits in groups of 3 into 10 bits. A 2-digit tail
// uses 7 bits, a 1-digit tail uses 4 bits — the standard widths, not the
// `1 + 3*n` formula a literal reading of some source trees uses.
func encodeNumeric(buf *bitset.Bitset, text []byte) error {
	for i := 0; i < len(text); i += 3 {
		group := text[i:min(i+3, len(text))]

		var value uint32

		for _, c := range group {
			if c < '0' || c > '9' {
				return &UnsupportedCharacterError{Mode: ModeNumeric, Char: c}
			}

			value = value*10 + uint32(c-'0')
		}

		bits := 10

		switch len(group) {
		case 1:
			bits = 4
		case 2:
			bits = 7
		}

		if err := buf.AppendUint32(value, bits); err != nil {
			return err
		}
	}

	return nil
}

// encodeAlphanumeric packs characters in groups of 2 as `first*45+second`
// into 11 bits; a 1-character tail uses 6 bits.
func encodeAlphanumeric(buf *bitset.Bitset, text []byte) error {
	for i := 0; i < len(text); i += 2 {
		group := text[i:min(i+2, len(text))]

		var value uint32

		for _, c := range group {
			v := alphanumericValue(c)
			if v < 0 {
				return &UnsupportedCharacterError{Mode: ModeAlphanumeric, Char: c}
			}

			value = value*45 + uint32(v)
		}

		bits := 6
		if len(group) == 2 {
			bits = 11
		}

		if err := buf.AppendUint32(value, bits); err != nil {
			return err
		}
	}

	return nil
}

func encodeByte(buf *bitset.Bitset, text []byte) error {
	for _, c := range text {
		if err := buf.AppendByte(c, 8); err != nil {
			return err
		}
	}

	return nil
}

// appendTerminatorAndPadding finishes the bit buffer: up to 4 zero
// terminator bits, clamped so a buffer that is already full gets none
// rather than underflowing, zero-fill to the next byte boundary, then
// alternating 0xEC/0x11 pad bytes out to capacityBits.
func appendTerminatorAndPadding(buf *bitset.Bitset, capacityBits int) error {
	remaining := capacityBits - buf.Len()

	numTerminatorBits := 4
	if remaining < numTerminatorBits {
		numTerminatorBits = remaining
	}

	if numTerminatorBits < 0 {
		numTerminatorBits = 0
	}

	buf.AppendNumBools(numTerminatorBits, false)

	if mod := buf.Len() % 8; mod != 0 {
		buf.AppendNumBools(8-mod, false)
	}

	padBytes := [2]byte{0xEC, 0x11}

	for i := 0; capacityBits-buf.Len() >= 8; i++ {
		if err := buf.AppendByte(padBytes[i%2], 8); err != nil {
			return err
		}
	}

	return nil
}
