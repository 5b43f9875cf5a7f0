package oracle

import (
	"cosmossdk.io/math"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/numeric"
)

// DepositResult is the outcome of a proportional deposit.
type DepositResult struct {
	// LPT is the amount of liquidity tokens minted.
	LPT math.Int
	// DeltaA and DeltaB are the amounts actually consumed by the pool.
	DeltaA       math.Int
	DeltaB       math.Int
	NewReserveA  math.Int
	NewReserveB  math.Int
	NewLiquidity math.Int
}

// WithdrawResult is the outcome of burning liquidity tokens.
type WithdrawResult struct {
	DeltaA       math.Int
	DeltaB       math.Int
	NewReserveA  math.Int
	NewReserveB  math.Int
	NewLiquidity math.Int
}

type amount struct {
	name  string
	value math.Int
}

func checkAmounts(amounts ...amount) error {
	for _, a := range amounts {
		if err := numeric.CheckAmount(a.name, a.value); err != nil {
			return err
		}
	}
	return nil
}

// Deposit adds (deltaA, deltaB) to a pool.
//
// The first deposit (liquidity == 0) mints sqrt(deltaA*deltaB) and sets the reserves to
// the deltas. Later deposits mint min(deltaA*L/reserveA, deltaB*L/reserveB) and consume
// only the amounts backing that mint, rounded up in favor of the pool, so the reserve
// ratio does not drift.
func Deposit(deltaA, deltaB, reserveA, reserveB, liquidity math.Int) (DepositResult, error) {
	if err := checkAmounts(
		amount{"delta a", deltaA}, amount{"delta b", deltaB},
		amount{"reserve a", reserveA}, amount{"reserve b", reserveB},
		amount{"liquidity", liquidity},
	); err != nil {
		return DepositResult{}, err
	}

	if liquidity.IsZero() {
		if !reserveA.IsZero() || !reserveB.IsZero() {
			return DepositResult{}, errs.InvalidArgument("reserves %s/%s without liquidity", reserveA, reserveB)
		}
		lpt, err := numeric.Sqrt(deltaA.Mul(deltaB))
		if err != nil {
			return DepositResult{}, err
		}
		if lpt.IsZero() {
			return DepositResult{}, errs.InvalidArgument("initial deposit %s/%s mints no liquidity", deltaA, deltaB)
		}
		return DepositResult{
			LPT:          lpt,
			DeltaA:       deltaA,
			DeltaB:       deltaB,
			NewReserveA:  deltaA,
			NewReserveB:  deltaB,
			NewLiquidity: lpt,
		}, nil
	}

	if reserveA.IsZero() || reserveB.IsZero() {
		return DepositResult{}, errs.EmptyPool("reserves %s/%s with liquidity %s", reserveA, reserveB, liquidity)
	}
	lpt := math.MinInt(
		deltaA.Mul(liquidity).Quo(reserveA),
		deltaB.Mul(liquidity).Quo(reserveB),
	)
	// lpt*reserve/L <= delta, so the ceiling never exceeds what the caller offered
	consumedA, err := numeric.MulDiv(lpt, reserveA, liquidity, numeric.RoundingUp)
	if err != nil {
		return DepositResult{}, err
	}
	consumedB, err := numeric.MulDiv(lpt, reserveB, liquidity, numeric.RoundingUp)
	if err != nil {
		return DepositResult{}, err
	}
	return DepositResult{
		LPT:          lpt,
		DeltaA:       consumedA,
		DeltaB:       consumedB,
		NewReserveA:  reserveA.Add(consumedA),
		NewReserveB:  reserveB.Add(consumedB),
		NewLiquidity: liquidity.Add(lpt),
	}, nil
}

// Withdraw burns lpt out of liquidity and returns the proportional reserves.
// Burning the whole supply returns the whole reserves.
func Withdraw(lpt, liquidity, reserveA, reserveB math.Int) (WithdrawResult, error) {
	if err := checkAmounts(
		amount{"lpt", lpt}, amount{"liquidity", liquidity},
		amount{"reserve a", reserveA}, amount{"reserve b", reserveB},
	); err != nil {
		return WithdrawResult{}, err
	}
	if liquidity.IsZero() {
		return WithdrawResult{}, errs.EmptyPool("withdraw from zero liquidity")
	}
	if lpt.GT(liquidity) {
		return WithdrawResult{}, errs.InvalidArgument("lpt %s exceeds liquidity %s", lpt, liquidity)
	}

	if lpt.Equal(liquidity) {
		return WithdrawResult{
			DeltaA:       reserveA,
			DeltaB:       reserveB,
			NewReserveA:  math.ZeroInt(),
			NewReserveB:  math.ZeroInt(),
			NewLiquidity: math.ZeroInt(),
		}, nil
	}

	deltaA := reserveA.Mul(lpt).Quo(liquidity)
	deltaB := reserveB.Mul(lpt).Quo(liquidity)
	return WithdrawResult{
		DeltaA:       deltaA,
		DeltaB:       deltaB,
		NewReserveA:  reserveA.Sub(deltaA),
		NewReserveB:  reserveB.Sub(deltaB),
		NewLiquidity: liquidity.Sub(lpt),
	}, nil
}
