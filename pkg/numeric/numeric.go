// Package numeric provides the integer arithmetic used by the oracle.
//
// Token amounts are cosmossdk.io/math Int values. No floating point is used anywhere.
package numeric

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
)

// MaxAmountBits bounds every amount accepted by the oracle so that products of three
// amounts and a 10^18 scale stay inside math.Int's 256-bit range.
const MaxAmountBits = 64

// Rounding represents the rounding mode for division.
type Rounding int

const (
	RoundingUp Rounding = iota
	RoundingDown
)

// Pow10 returns 10^n.
func Pow10(n uint) math.Int {
	return math.NewIntWithDecimal(1, int(n))
}

// CheckAmount validates that v is a usable token amount.
func CheckAmount(name string, v math.Int) error {
	if v.IsNil() {
		return errs.InvalidArgument("%s is nil", name)
	}
	if v.IsNegative() {
		return errs.InvalidArgument("%s is negative: %s", name, v)
	}
	if v.BigInt().BitLen() > MaxAmountBits {
		return errs.InvalidArgument("%s exceeds %d bits: %s", name, MaxAmountBits, v)
	}
	return nil
}

// Sqrt returns floor(sqrt(n)).
//
// The search keeps lo*lo <= n < (hi+1)*(hi+1) and halves the interval on every step.
func Sqrt(n math.Int) (math.Int, error) {
	if n.IsNil() || n.IsNegative() {
		return math.Int{}, errs.InvalidArgument("square root of negative number")
	}
	if n.LT(math.NewInt(2)) {
		return n, nil
	}
	lo := math.OneInt()
	// 2^ceil(bits/2) is always above the root
	hi := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(n.BigInt().BitLen()+1)/2))
	for lo.LT(hi) {
		mid := lo.Add(hi).AddRaw(1).QuoRaw(2)
		if mid.Mul(mid).LTE(n) {
			lo = mid
		} else {
			hi = mid.SubRaw(1)
		}
	}
	return lo, nil
}

// ScaledDiv computes numerator * 10^precision / denominator, truncating.
func ScaledDiv(numerator, denominator math.Int, precision uint) (math.Int, error) {
	if denominator.IsZero() {
		return math.Int{}, errs.DivisionByZero("scaled division of %s by zero", numerator)
	}
	return numerator.Mul(Pow10(precision)).Quo(denominator), nil
}

// MulDiv computes x * y / denominator with the given rounding.
func MulDiv(x, y, denominator math.Int, rounding Rounding) (math.Int, error) {
	if denominator.IsZero() {
		return math.Int{}, errs.DivisionByZero("mul div by zero")
	}
	prod := x.Mul(y)
	div := prod.Quo(denominator)
	if rounding == RoundingUp && !prod.Mod(denominator).IsZero() {
		return div.AddRaw(1), nil
	}
	return div, nil
}

// CeilDiv computes ceil(x / y) for non-negative operands.
func CeilDiv(x, y math.Int) (math.Int, error) {
	return MulDiv(x, math.OneInt(), y, RoundingUp)
}
