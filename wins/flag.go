package wins

import (
	"math/bits"
	"strconv"
	"strings"
)

// Flag marks which participants placed first in one contest.
// Bit i is participant i (0-based).
type Flag uint16

// MaxPlayers is the number of participants a Flag can represent.
const MaxPlayers = 16

const (
	First      Flag = 0b0000_0000_0000_0001
	Second     Flag = 0b0000_0000_0000_0010
	Third      Flag = 0b0000_0000_0000_0100
	Fourth     Flag = 0b0000_0000_0000_1000
	Fifth      Flag = 0b0000_0000_0001_0000
	Sixth      Flag = 0b0000_0000_0010_0000
	Seventh    Flag = 0b0000_0000_0100_0000
	Eighth     Flag = 0b0000_0000_1000_0000
	Ninth      Flag = 0b0000_0001_0000_0000
	Tenth      Flag = 0b0000_0010_0000_0000
	Eleventh   Flag = 0b0000_0100_0000_0000
	Twelfth    Flag = 0b0000_1000_0000_0000
	Thirteenth Flag = 0b0001_0000_0000_0000
	Fourteenth Flag = 0b0010_0000_0000_0000
	Fifteenth  Flag = 0b0100_0000_0000_0000
	Sixteenth  Flag = 0b1000_0000_0000_0000
)

// FromIndex returns the flag for a 0-based participant index.
// Indices outside [0, MaxPlayers) return the zero flag.
func FromIndex(i int) Flag {
	if i < 0 || i >= MaxPlayers {
		return 0
	}
	return Flag(1) << i
}

// FlagOf combines the flags of several participant indices.
func FlagOf(indices ...int) Flag {
	var f Flag
	for _, i := range indices {
		f |= FromIndex(i)
	}
	return f
}

// Or returns the union of two flags.
func Or(a, b Flag) Flag {
	return a | b
}

// Or returns the union of f and other.
func (f Flag) Or(other Flag) Flag {
	return f | other
}

// Count returns the number of participants in the flag.
func (f Flag) Count() int {
	return bits.OnesCount16(uint16(f))
}

// IsTie reports whether more than one participant placed first.
func (f Flag) IsTie() bool {
	return f.Count() > 1
}

// WinsFor reports whether every participant in target is also in f.
// A single-bit target asks "did this participant win or tie"; a multi-bit
// target asks whether that exact group shared first place.
func (f Flag) WinsFor(target Flag) bool {
	return f&target == target
}

// Players returns the 0-based indices set in f, ascending.
func (f Flag) Players() []int {
	players := make([]int, 0, f.Count())
	for v := uint16(f); v != 0; v &= v - 1 {
		players = append(players, bits.TrailingZeros16(v))
	}
	return players
}

// String renders the 1-based seats joined by "+", e.g. "1+2".
func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var sb strings.Builder
	for i, p := range f.Players() {
		if i > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.Itoa(p + 1))
	}
	return sb.String()
}
