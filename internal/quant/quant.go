// Package quant provides totally-ordered decimal quantities for price and
// volume. All comparison is exact: there is no NaN-like state, and every
// pair of values is comparable.
package quant

import "github.com/shopspring/decimal"

// Price is a non-negative decimal quantity denominated in quote currency.
type Price struct {
	d decimal.Decimal
}

// Volume is a non-negative decimal quantity denominated in base currency.
type Volume struct {
	d decimal.Decimal
}

// NewPrice constructs a Price from a decimal literal such as "65290.1".
func NewPrice(literal string) (Price, error) {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return Price{}, err
	}
	return Price{d: d}, nil
}

// NewVolume constructs a Volume from a decimal literal such as "0.5".
func NewVolume(literal string) (Volume, error) {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return Volume{}, err
	}
	return Volume{d: d}, nil
}

// PriceFromFloat constructs a Price from a float64, used at RPC boundaries
// where the wire type carries a float rather than a decimal string.
func PriceFromFloat(f float64) Price {
	return Price{d: decimal.NewFromFloat(f)}
}

// VolumeFromFloat constructs a Volume from a float64.
func VolumeFromFloat(f float64) Volume {
	return Volume{d: decimal.NewFromFloat(f)}
}

// ZeroPrice is the additive identity for Price.
var ZeroPrice = Price{d: decimal.Zero}

// ZeroVolume is the additive identity for Volume.
var ZeroVolume = Volume{d: decimal.Zero}

// Float64 returns an inexact float64 representation, used only for display
// and for the RPC wire format, never for comparison or arithmetic.
func (p Price) Float64() float64 { return p.d.InexactFloat64() }

// Float64 returns an inexact float64 representation of a Volume.
func (v Volume) Float64() float64 { return v.d.InexactFloat64() }

// String renders the exact decimal literal.
func (p Price) String() string { return p.d.String() }

// String renders the exact decimal literal.
func (v Volume) String() string { return v.d.String() }

// Cmp returns -1, 0, or 1 as p is less than, equal to, or greater than other.
func (p Price) Cmp(other Price) int { return p.d.Cmp(other.d) }

// GreaterThan reports whether p > other.
func (p Price) GreaterThan(other Price) bool { return p.d.GreaterThan(other.d) }

// LessThan reports whether p < other.
func (p Price) LessThan(other Price) bool { return p.d.LessThan(other.d) }

// GreaterThanOrEqual reports whether p >= other.
func (p Price) GreaterThanOrEqual(other Price) bool { return p.d.GreaterThanOrEqual(other.d) }

// LessThanOrEqual reports whether p <= other.
func (p Price) LessThanOrEqual(other Price) bool { return p.d.LessThanOrEqual(other.d) }

// Equal reports whether p == other.
func (p Price) Equal(other Price) bool { return p.d.Equal(other.d) }

// Cmp returns -1, 0, or 1 as v is less than, equal to, or greater than other.
func (v Volume) Cmp(other Volume) int { return v.d.Cmp(other.d) }

// Sub returns v - other. Callers are responsible for not letting a resting
// order's volume go negative; the matcher only ever subtracts a matched
// amount bounded by Min.
func (v Volume) Sub(other Volume) Volume { return Volume{d: v.d.Sub(other.d)} }

// Min returns the smaller of two volumes.
func Min(a, b Volume) Volume {
	if a.d.LessThan(b.d) {
		return a
	}
	return b
}

// IsZero reports whether v is exactly zero.
func (v Volume) IsZero() bool { return v.d.IsZero() }

// IsPositive reports whether v > 0.
func (v Volume) IsPositive() bool { return v.d.IsPositive() }

// LessThanOrEqualZero reports whether v <= 0, the condition under which a
// resting order must be removed from the book.
func (v Volume) LessThanOrEqualZero() bool { return !v.d.IsPositive() }
