package metrical

import (
	"cmp"
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned when a duration cannot be parsed or has a
// non-positive denominator.
var ErrInvalidDuration = errors.New("invalid duration")

// ErrDurationOverflow is returned when an exact result has a numerator or
// denominator outside int64.
var ErrDurationOverflow = errors.New("duration out of range")

// Duration is a point or span of musical time measured in whole notes,
// held as an exact fraction. The zero value is 0.
type Duration struct {
	num int64
	den int64
}

// NewDuration returns num/den in lowest terms.
func NewDuration(num, den int64) (Duration, error) {
	if den == 0 {
		return Duration{}, fmt.Errorf("%w: zero denominator", ErrInvalidDuration)
	}
	return fromRat(new(big.Rat).SetFrac64(num, den))
}

// MustDuration is NewDuration that panics on error. For tests and constants.
func MustDuration(num, den int64) Duration {
	d, err := NewDuration(num, den)
	if err != nil {
		panic(err)
	}
	return d
}

// Whole returns n whole notes.
func Whole(n int64) Duration {
	if n == 0 {
		return Duration{}
	}
	return Duration{num: n, den: 1}
}

// ParseDuration parses "n" or "n/d".
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, hasDen := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	den := int64(1)
	if hasDen {
		den, err = strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
		if err != nil {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		if den <= 0 {
			return Duration{}, fmt.Errorf("%w: %q: denominator must be positive", ErrInvalidDuration, s)
		}
	}
	return NewDuration(num, den)
}

// Num returns the numerator in lowest terms.
func (d Duration) Num() int64 { return d.num }

// Den returns the denominator in lowest terms. The zero Duration reports 1.
func (d Duration) Den() int64 {
	if d.den == 0 {
		return 1
	}
	return d.den
}

// Compare returns -1, 0 or +1. It is exact for every representable
// Duration: the cross products are formed in 128 bits.
func (d Duration) Compare(o Duration) int {
	ds, osgn := sign(d.num), sign(o.num)
	if ds != osgn || ds == 0 {
		return cmp.Compare(ds, osgn)
	}
	lhi, llo := bits.Mul64(magnitude(d.num), uint64(o.Den()))
	rhi, rlo := bits.Mul64(magnitude(o.num), uint64(d.Den()))
	c := cmp.Compare(lhi, rhi)
	if c == 0 {
		c = cmp.Compare(llo, rlo)
	}
	return c * ds
}

// Less reports whether d < o.
func (d Duration) Less(o Duration) bool { return d.Compare(o) < 0 }

// Add returns d + o, or ErrDurationOverflow if the sum is not representable.
func (d Duration) Add(o Duration) (Duration, error) {
	return fromRat(new(big.Rat).Add(d.rat(), o.rat()))
}

// Sub returns d - o, or ErrDurationOverflow if the difference is not
// representable.
func (d Duration) Sub(o Duration) (Duration, error) {
	return fromRat(new(big.Rat).Sub(d.rat(), o.rat()))
}

// String renders "n" for whole values and "n/d" otherwise.
func (d Duration) String() string {
	if d.Den() == 1 {
		return strconv.FormatInt(d.num, 10)
	}
	return fmt.Sprintf("%d/%d", d.num, d.den)
}

func (d Duration) rat() *big.Rat {
	return big.NewRat(d.num, d.Den())
}

// fromRat converts a normalized big.Rat, keeping 0 as the zero Duration.
func fromRat(r *big.Rat) (Duration, error) {
	if r.Sign() == 0 {
		return Duration{}, nil
	}
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Duration{}, fmt.Errorf("%w: %s", ErrDurationOverflow, r.RatString())
	}
	return Duration{num: r.Num().Int64(), den: r.Denom().Int64()}, nil
}

func sign(n int64) int {
	return cmp.Compare(n, 0)
}

// magnitude returns |n| without overflowing on math.MinInt64.
func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}
