package qrcode

import "fmt"

// InputTooLongError is returned when no version in [1,40] admits the input
// text at the requested minimum ECC level.
type InputTooLongError struct {
	Length int
	MinECC RecoveryLevel
}

func (e *InputTooLongError) Error() string {
	return fmt.Sprintf("qrcode: input of %d characters does not fit any version at ECC level %v", e.Length, e.MinECC)
}

// UnsupportedCharacterError is returned when classification finds a
// character that none of Numeric, Alphanumeric, or Byte mode can express,
// or when the encoder reaches a character outside its chosen mode's
// alphabet. Classification runs over the whole input before encoding
// starts, so the encoder case means classification and encoding disagreed
// about the mode's alphabet.
type UnsupportedCharacterError struct {
	Mode Mode
	Char byte
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("qrcode: character %q is not valid in mode %v", e.Char, e.Mode)
}

// InvalidMaskError is returned when a mask index outside [0,7] reaches the
// matrix mask-application stage directly, bypassing the clamp-to-0 policy
// applied at the constructor boundary.
type InvalidMaskError struct {
	Mask int
}

func (e *InvalidMaskError) Error() string {
	return fmt.Sprintf("qrcode: mask index %d out of range [0,7]", e.Mask)
}

// InvalidECLevelError is returned when an unknown ECC level reaches the
// format-bit lookup.
type InvalidECLevelError struct {
	Level RecoveryLevel
}

func (e *InvalidECLevelError) Error() string {
	return fmt.Sprintf("qrcode: unknown ECC level %v", e.Level)
}

// InvalidVersionError is returned when a version outside [1,40] reaches the
// character-count-bits lookup.
type InvalidVersionError struct {
	Version int
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("qrcode: version %d out of range [1,40]", e.Version)
}
