package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpLogRoundTrip(t *testing.T) {
	for v := 1; v < 256; v++ {
		i := Log(Element(v))
		require.Equal(t, Element(v), Exp(i))
	}
}

func TestMultiplyByZero(t *testing.T) {
	assert.Equal(t, Zero, Multiply(0, 42))
	assert.Equal(t, Zero, Multiply(42, 0))
}

func TestMultiplyByOneIsIdentity(t *testing.T) {
	for v := 1; v < 256; v++ {
		assert.Equal(t, Element(v), Multiply(Element(v), One))
	}
}

// TestDivideSubtractsLogs checks that division subtracts logs mod 255
// rather than adding them: Divide(a,b) multiplied back by b must recover
// a for every nonzero pair.
func TestDivideSubtractsLogs(t *testing.T) {
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			got := Multiply(Divide(Element(a), Element(b)), Element(b))
			assert.Equal(t, Element(a), got, "a=%d b=%d", a, b)
		}
	}
}

func TestMultiplyDivideIdentity(t *testing.T) {
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			assert.Equal(t, Divide(Element(a), Element(b)), Multiply(Element(a), Divide(One, Element(b))))
		}
	}
}
