package oracle

import (
	"cosmossdk.io/math"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
)

// RakeResult splits an unbalanced deposit into an implicit swap leg and a balanced
// remainder.
type RakeResult struct {
	// AToB is true when the implicit swap sells side A for side B.
	AToB bool
	// Bid is the amount sold by the implicit swap. Zero when the deposit is balanced.
	Bid math.Int
	// Swap is the implicit swap leg. Zero-valued when Bid is zero.
	Swap SwapResult
	// DeltaA and DeltaB are the balanced amounts left for the proportional deposit.
	DeltaA math.Int
	DeltaB math.Int
	// ReserveA and ReserveB are the pool reserves after the implicit swap.
	ReserveA math.Int
	ReserveB math.Int
}

// SidedDepositResult is the outcome of a deposit in an arbitrary ratio.
type SidedDepositResult struct {
	Rake    RakeResult
	Deposit DepositResult
	// RefundA and RefundB are the balanced amounts the proportional deposit did not consume.
	RefundA math.Int
	RefundB math.Int
}

// Rake settles fee and tax for a deposit whose ratio differs from the pool's.
//
// The excess side is partly sold through the pool (fee and tax apply to that leg only)
// so that what remains matches the post-swap reserve ratio. The sold amount is the
// largest one that keeps the remainder at or above the new ratio on the excess side.
func Rake(deltaA, deltaB, reserveA, reserveB, fee, tax math.Int) (RakeResult, error) {
	if err := checkAmounts(
		amount{"delta a", deltaA}, amount{"delta b", deltaB},
		amount{"reserve a", reserveA}, amount{"reserve b", reserveB},
	); err != nil {
		return RakeResult{}, err
	}
	if err := CheckRatios(fee, tax); err != nil {
		return RakeResult{}, err
	}
	if reserveA.IsZero() || reserveB.IsZero() {
		return RakeResult{}, errs.EmptyPool("rake against reserves %s/%s", reserveA, reserveB)
	}

	left := deltaA.Mul(reserveB)
	right := deltaB.Mul(reserveA)
	switch {
	case left.GT(right):
		bid, swap, err := rakeLeg(deltaA, deltaB, reserveA, reserveB, fee, tax)
		if err != nil {
			return RakeResult{}, err
		}
		if bid.IsZero() {
			break
		}
		return RakeResult{
			AToB:     true,
			Bid:      bid,
			Swap:     swap,
			DeltaA:   deltaA.Sub(bid),
			DeltaB:   deltaB.Add(swap.AskAmount),
			ReserveA: swap.NewBidReserve,
			ReserveB: swap.NewAskReserve,
		}, nil
	case right.GT(left):
		bid, swap, err := rakeLeg(deltaB, deltaA, reserveB, reserveA, fee, tax)
		if err != nil {
			return RakeResult{}, err
		}
		if bid.IsZero() {
			break
		}
		return RakeResult{
			Bid:      bid,
			Swap:     swap,
			DeltaA:   deltaA.Add(swap.AskAmount),
			DeltaB:   deltaB.Sub(bid),
			ReserveA: swap.NewAskReserve,
			ReserveB: swap.NewBidReserve,
		}, nil
	}

	return RakeResult{
		Bid:      math.ZeroInt(),
		DeltaA:   deltaA,
		DeltaB:   deltaB,
		ReserveA: reserveA,
		ReserveB: reserveB,
	}, nil
}

// rakeLeg finds the largest s in [0, bidDelta] with
// (bidDelta-s) * newAskReserve(s) >= (askDelta+askAmount(s)) * newBidReserve(s).
// The left side shrinks and the right side grows with s, so bisection applies.
func rakeLeg(bidDelta, askDelta, bidReserve, askReserve, fee, tax math.Int) (math.Int, SwapResult, error) {
	excess := func(s math.Int) (bool, SwapResult, error) {
		res, err := Swap(s, bidReserve, askReserve, fee, tax)
		if err != nil {
			return false, SwapResult{}, err
		}
		lhs := bidDelta.Sub(s).Mul(res.NewAskReserve)
		rhs := askDelta.Add(res.AskAmount).Mul(res.NewBidReserve)
		return lhs.GTE(rhs), res, nil
	}

	lo, hi := math.ZeroInt(), bidDelta
	for lo.LT(hi) {
		mid := lo.Add(hi).AddRaw(1).QuoRaw(2)
		ok, _, err := excess(mid)
		if err != nil {
			return math.Int{}, SwapResult{}, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid.SubRaw(1)
		}
	}
	if lo.IsZero() {
		return lo, SwapResult{}, nil
	}
	_, res, err := excess(lo)
	if err != nil {
		return math.Int{}, SwapResult{}, err
	}
	return lo, res, nil
}

// SidedDeposit deposits (deltaA, deltaB) in any ratio, including a single side.
//
// It runs as two steps: Rake converts the excess through an implicit swap, then
// Deposit adds the balanced remainder against the post-swap reserves. The first deposit
// of a pool defines its ratio and skips the swap step.
func SidedDeposit(deltaA, deltaB, reserveA, reserveB, liquidity, fee, tax math.Int) (SidedDepositResult, error) {
	var rake RakeResult
	if liquidity.IsZero() {
		rake = RakeResult{
			Bid:      math.ZeroInt(),
			DeltaA:   deltaA,
			DeltaB:   deltaB,
			ReserveA: reserveA,
			ReserveB: reserveB,
		}
	} else {
		var err error
		rake, err = Rake(deltaA, deltaB, reserveA, reserveB, fee, tax)
		if err != nil {
			return SidedDepositResult{}, err
		}
	}

	dep, err := Deposit(rake.DeltaA, rake.DeltaB, rake.ReserveA, rake.ReserveB, liquidity)
	if err != nil {
		return SidedDepositResult{}, err
	}
	return SidedDepositResult{
		Rake:    rake,
		Deposit: dep,
		RefundA: rake.DeltaA.Sub(dep.DeltaA),
		RefundB: rake.DeltaB.Sub(dep.DeltaB),
	}, nil
}
