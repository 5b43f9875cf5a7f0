// Package oracle pre-computes swap and liquidity outcomes of the swap program off-chain.
//
// Every function is a pure transform over reserve integers. Fee and tax ratios are
// expressed in parts per FeeDecimals. Divisions truncate toward zero unless a function
// documents otherwise.
package oracle

import (
	"cosmossdk.io/math"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/numeric"
)

const (
	// FeeDecimals is the denominator of fee and tax ratios (10^9).
	FeeDecimals uint64 = 1_000_000_000
	// Precision is log10(FeeDecimals).
	Precision uint = 9
)

// Scale is FeeDecimals as a math.Int.
var Scale = math.NewIntFromUint64(FeeDecimals)

// SwapResult is the outcome of a single swap against a pool.
type SwapResult struct {
	// AskAmount is what the trader receives.
	AskAmount math.Int
	// FeeAmount stays in the ask reserve.
	FeeAmount math.Int
	// TaxAmount leaves the pool to the taxman.
	TaxAmount     math.Int
	NewBidReserve math.Int
	NewAskReserve math.Int
}

func checkReserves(bidReserve, askReserve math.Int) error {
	if err := numeric.CheckAmount("bid reserve", bidReserve); err != nil {
		return err
	}
	if err := numeric.CheckAmount("ask reserve", askReserve); err != nil {
		return err
	}
	if bidReserve.IsZero() || askReserve.IsZero() {
		return errs.EmptyPool("reserves %s/%s", bidReserve, askReserve)
	}
	return nil
}

// CheckRatios validates a fee/tax pair: fee + tax < FeeDecimals.
func CheckRatios(fee, tax math.Int) error {
	if err := numeric.CheckAmount("fee", fee); err != nil {
		return err
	}
	if err := numeric.CheckAmount("tax", tax); err != nil {
		return err
	}
	if fee.Add(tax).GTE(Scale) {
		return errs.InvalidArgument("fee %s + tax %s must be below %d", fee, tax, FeeDecimals)
	}
	return nil
}

// newAskReserve returns the ask reserve left after bidAmount enters the pool.
// It never reaches zero, so a pool cannot be drained by a single trade.
func newAskReserve(bidAmount, bidReserve, askReserve math.Int) math.Int {
	k := bidReserve.Mul(askReserve)
	next := k.Quo(bidReserve.Add(bidAmount))
	if next.IsZero() {
		return math.OneInt()
	}
	return next
}

// Curve returns the constant-product output for bidAmount, before fee and tax:
// askReserve - bidReserve*askReserve/(bidReserve+bidAmount).
func Curve(bidAmount, bidReserve, askReserve math.Int) (math.Int, error) {
	if err := numeric.CheckAmount("bid amount", bidAmount); err != nil {
		return math.Int{}, err
	}
	if err := checkReserves(bidReserve, askReserve); err != nil {
		return math.Int{}, err
	}
	return askReserve.Sub(newAskReserve(bidAmount, bidReserve, askReserve)), nil
}

// Swap computes the outcome of selling bidAmount into the pool.
//
// The fee is taken from the gross curve output first and stays in the ask reserve;
// the tax is then taken from what remains and is routed out of the pool.
func Swap(bidAmount, bidReserve, askReserve, fee, tax math.Int) (SwapResult, error) {
	if err := CheckRatios(fee, tax); err != nil {
		return SwapResult{}, err
	}
	gross, err := Curve(bidAmount, bidReserve, askReserve)
	if err != nil {
		return SwapResult{}, err
	}
	feeAmount := gross.Mul(fee).Quo(Scale)
	afterFee := gross.Sub(feeAmount)
	taxAmount := afterFee.Mul(tax).Quo(Scale)
	return SwapResult{
		AskAmount:     afterFee.Sub(taxAmount),
		FeeAmount:     feeAmount,
		TaxAmount:     taxAmount,
		NewBidReserve: bidReserve.Add(bidAmount),
		NewAskReserve: askReserve.Sub(gross).Add(feeAmount),
	}, nil
}

// minimalGross returns the least v with v - floor(v*ratio/Scale) >= target.
//
// v - floor(v*r/S) == ceil(v*(S-r)/S), so the bound is floor((target-1)*S/(S-r)) + 1.
func minimalGross(target, ratio math.Int) math.Int {
	if target.IsZero() {
		return math.ZeroInt()
	}
	return target.SubRaw(1).Mul(Scale).Quo(Scale.Sub(ratio)).AddRaw(1)
}

// InverseSwap returns the minimum bidAmount for which Swap pays at least askAmount.
//
// Each step (tax, fee, curve) is inverted exactly, so Swap(result) >= askAmount and
// Swap(result-1) < askAmount.
func InverseSwap(askAmount, bidReserve, askReserve, fee, tax math.Int) (math.Int, error) {
	if err := numeric.CheckAmount("ask amount", askAmount); err != nil {
		return math.Int{}, err
	}
	if err := checkReserves(bidReserve, askReserve); err != nil {
		return math.Int{}, err
	}
	if err := CheckRatios(fee, tax); err != nil {
		return math.Int{}, err
	}
	if askAmount.IsZero() {
		return math.ZeroInt(), nil
	}
	afterFee := minimalGross(askAmount, tax)
	gross := minimalGross(afterFee, fee)
	if gross.GTE(askReserve) {
		return math.Int{}, errs.InvalidArgument("ask amount %s exceeds pool capacity %s", askAmount, askReserve)
	}
	// askReserve - max(floor(k/(bidReserve+x)), 1) >= gross
	// <=> bidReserve + x >= floor(k/(askReserve-gross+1)) + 1
	k := bidReserve.Mul(askReserve)
	bidAmount := k.Quo(askReserve.Sub(gross).AddRaw(1)).AddRaw(1).Sub(bidReserve)
	if bidAmount.IsNegative() {
		return math.ZeroInt(), nil
	}
	return bidAmount, nil
}

// Slippage returns the relative shortfall of the actual swap output against the spot
// price extrapolation bidAmount*askReserve/bidReserve, in parts per FeeDecimals.
// Fee and tax are part of the shortfall.
func Slippage(bidAmount, bidReserve, askReserve, fee, tax math.Int) (math.Int, error) {
	res, err := Swap(bidAmount, bidReserve, askReserve, fee, tax)
	if err != nil {
		return math.Int{}, err
	}
	ideal := bidAmount.Mul(askReserve).Quo(bidReserve)
	if ideal.IsZero() {
		return math.ZeroInt(), nil
	}
	rate, err := numeric.ScaledDiv(res.AskAmount, ideal, Precision)
	if err != nil {
		return math.Int{}, err
	}
	if rate.GTE(Scale) {
		return math.ZeroInt(), nil
	}
	return Scale.Sub(rate), nil
}

// MinimumOutput returns the least acceptable output for an expected askAmount given a
// tolerance in parts per FeeDecimals. It is the limit argument of swap instructions.
func MinimumOutput(askAmount, tolerance math.Int) (math.Int, error) {
	if err := numeric.CheckAmount("ask amount", askAmount); err != nil {
		return math.Int{}, err
	}
	if err := numeric.CheckAmount("tolerance", tolerance); err != nil {
		return math.Int{}, err
	}
	if tolerance.GT(Scale) {
		return math.Int{}, errs.InvalidArgument("tolerance %s above %d", tolerance, FeeDecimals)
	}
	return askAmount.Mul(Scale.Sub(tolerance)).Quo(Scale), nil
}
