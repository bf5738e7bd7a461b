package qrcode

import (
	"image/color"
	"io"

	"github.com/sirupsen/logrus"
)

// RecoveryLevel is the error-correction level. Wire codes are not in enum
// order: Low=1, Medium=0, Quartile=3, High=2.
type RecoveryLevel int

const (
	Low RecoveryLevel = iota
	Medium
	Quartile
	High
)

func (l RecoveryLevel) String() string {
	switch l {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case Quartile:
		return "Quartile"
	case High:
		return "High"
	default:
		return "Unknown"
	}
}

// formatBits is the wire code used in the 15-bit format-information field.
func (l RecoveryLevel) formatBits() (int, error) {
	switch l {
	case Low:
		return 1, nil
	case Medium:
		return 0, nil
	case Quartile:
		return 3, nil
	case High:
		return 2, nil
	default:
		return 0, &InvalidECLevelError{Level: l}
	}
}

// Mode is the encoding mode chosen for the symbol's payload.
type Mode int

const (
	ModeNumeric      Mode = 1
	ModeAlphanumeric Mode = 2
	ModeByte         Mode = 4
	ModeECI          Mode = 7
	ModeKanji        Mode = 8
)

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "Numeric"
	case ModeAlphanumeric:
		return "Alphanumeric"
	case ModeByte:
		return "Byte"
	case ModeECI:
		return "ECI"
	case ModeKanji:
		return "Kanji"
	default:
		return "Unknown"
	}
}

// Options configures symbol construction. The zero value is valid: it
// requests ECC level Low, mask 0, a discard logger, and black-on-white
// rendering defaults.
type Options struct {
	// MinECC is the error-correction floor the version/ECC selector must
	// meet or exceed. The selector may opportunistically choose a higher
	// level within the chosen version at no extra cost.
	MinECC RecoveryLevel

	// Mask is the data-mask index applied to non-reserved modules. Values
	// outside [0,7] are clamped to 0 at construction time; ignored when
	// AutoMask is set.
	Mask int

	// AutoMask, when true, searches all 8 masks and keeps the one with the
	// lowest penalty score instead of using Mask. Off by default: callers
	// who already know which mask they want pay nothing for the search.
	AutoMask bool

	// Logger receives structured Debug-level events after version/ECC
	// selection and, when AutoMask is set, after the automatic mask choice.
	// Defaults to a discard logger.
	Logger *logrus.Logger

	// ForegroundColor and BackgroundColor drive the convenience renderers.
	ForegroundColor color.Color
	BackgroundColor color.Color

	// Margin is a light-border width in modules. It is stored with the
	// options only: the convenience renderers do not read it and draw no
	// border around the module matrix, and it does not affect the core
	// module matrix.
	Margin int

	// Base64 wraps convenience-renderer output in a data: URI.
	Base64 bool
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logrus.New()
		o.Logger.SetOutput(io.Discard)
	}

	if o.ForegroundColor == nil {
		o.ForegroundColor = color.Black
	}

	if o.BackgroundColor == nil {
		o.BackgroundColor = color.White
	}

	if o.Mask < 0 || o.Mask > 7 {
		o.Mask = 0
	}

	return o
}
