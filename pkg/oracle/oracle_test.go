package oracle

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
)

var (
	testFee = math.NewInt(2_500_000) // 0.25%
	testTax = math.NewInt(500_000)   // 0.05%
)

func mustInt(t *testing.T, s string) math.Int {
	t.Helper()
	v, ok := math.NewIntFromString(s)
	require.True(t, ok, "bad integer %q", s)
	return v
}

func TestSwapFixture(t *testing.T) {
	res, err := Swap(
		math.NewInt(1_000_000_000),
		mustInt(t, "1000000000000000"),
		mustInt(t, "300000000000000000"),
		testFee, testTax,
	)
	require.NoError(t, err)
	assert.Equal(t, "299100075901", res.AskAmount.String())
	assert.Equal(t, "749999250", res.FeeAmount.String())
	assert.Equal(t, "149624850", res.TaxAmount.String())
	assert.Equal(t, "1000001000000000", res.NewBidReserve.String())
	assert.Equal(t, "299999700750299249", res.NewAskReserve.String())
}

func TestSwapNeverDrains(t *testing.T) {
	reserves := [][2]int64{{1, 1}, {10, 1_000}, {1_000_000, 7}, {1_000_000_000, 1_000_000_000}}
	amounts := []int64{0, 1, 9, 1_000, 1_000_000_000_000}
	for _, r := range reserves {
		for _, a := range amounts {
			res, err := Swap(math.NewInt(a), math.NewInt(r[0]), math.NewInt(r[1]), math.ZeroInt(), math.ZeroInt())
			require.NoError(t, err)
			assert.True(t, res.AskAmount.LT(math.NewInt(r[1])), "amount %d reserves %v", a, r)
			assert.True(t, res.NewAskReserve.IsPositive())
		}
	}
}

func TestSwapMonotonic(t *testing.T) {
	bidReserve := math.NewInt(5_000_000_000)
	askReserve := math.NewInt(2_000_000_000)
	prev := math.ZeroInt()
	for a := int64(0); a <= 20_000_000_000; a += 333_333_337 {
		res, err := Swap(math.NewInt(a), bidReserve, askReserve, testFee, testTax)
		require.NoError(t, err)
		assert.True(t, res.AskAmount.GTE(prev), "amount %d", a)
		prev = res.AskAmount
	}
}

func TestSwapErrors(t *testing.T) {
	_, err := Swap(math.NewInt(1), math.ZeroInt(), math.NewInt(1), testFee, testTax)
	assert.True(t, errors.Is(err, errs.ErrEmptyPool))

	_, err = Swap(math.NewInt(-1), math.NewInt(1), math.NewInt(1), testFee, testTax)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	_, err = Swap(math.NewInt(1), math.NewInt(1), math.NewInt(1), Scale, math.ZeroInt())
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	_, err = Swap(math.NewInt(1), math.NewInt(1), math.NewInt(1), math.NewInt(600_000_000), math.NewInt(400_000_000))
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestInverseSwapFixture(t *testing.T) {
	bidReserve := mustInt(t, "1000000000000000")
	askReserve := mustInt(t, "300000000000000000")
	bid, err := InverseSwap(mustInt(t, "299100075901"), bidReserve, askReserve, testFee, testTax)
	require.NoError(t, err)
	assert.Equal(t, "1000000000", bid.String())
}

func TestInverseSwapMinimal(t *testing.T) {
	pools := [][2]int64{
		{5_000_000_000, 2_000_000_000},
		{2_000_000_000, 5_000_000_000},
		{1_000, 1_000_000_000_000},
		{1_000_000_000_000, 1_000},
	}
	for _, p := range pools {
		bidReserve, askReserve := math.NewInt(p[0]), math.NewInt(p[1])
		for _, frac := range []int64{1_000_000, 1_000, 100, 10, 3, 2} {
			ask := askReserve.QuoRaw(frac)
			if ask.IsZero() {
				continue
			}
			bid, err := InverseSwap(ask, bidReserve, askReserve, testFee, testTax)
			require.NoError(t, err)

			res, err := Swap(bid, bidReserve, askReserve, testFee, testTax)
			require.NoError(t, err)
			assert.True(t, res.AskAmount.GTE(ask), "pool %v ask %s bid %s got %s", p, ask, bid, res.AskAmount)

			if bid.IsPositive() {
				less, err := Swap(bid.SubRaw(1), bidReserve, askReserve, testFee, testTax)
				require.NoError(t, err)
				assert.True(t, less.AskAmount.LT(ask), "pool %v ask %s bid-1 still pays %s", p, ask, less.AskAmount)
			}
		}
	}
}

func TestInverseSwapEdges(t *testing.T) {
	bid, err := InverseSwap(math.ZeroInt(), math.NewInt(10), math.NewInt(10), testFee, testTax)
	require.NoError(t, err)
	assert.True(t, bid.IsZero())

	_, err = InverseSwap(math.NewInt(10), math.NewInt(10), math.NewInt(10), testFee, testTax)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	_, err = InverseSwap(math.NewInt(1), math.ZeroInt(), math.NewInt(10), testFee, testTax)
	assert.True(t, errors.Is(err, errs.ErrEmptyPool))
}

func TestSlippage(t *testing.T) {
	bidReserve := math.NewInt(1_000_000_000_000)
	askReserve := math.NewInt(1_000_000_000_000)

	// a tiny trade only pays fee and tax
	small, err := Slippage(math.NewInt(1_000_000), bidReserve, askReserve, testFee, testTax)
	require.NoError(t, err)
	assert.True(t, small.GTE(math.NewInt(2_998_000)) && small.LTE(math.NewInt(3_002_000)), "got %s", small)

	// a trade of 10% of the reserve moves the price by roughly 9%
	large, err := Slippage(math.NewInt(100_000_000_000), bidReserve, askReserve, math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
	assert.Equal(t, "90909091", large.String())

	zero, err := Slippage(math.ZeroInt(), bidReserve, askReserve, testFee, testTax)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestMinimumOutput(t *testing.T) {
	got, err := MinimumOutput(math.NewInt(1_000_000), math.NewInt(10_000_000))
	require.NoError(t, err)
	assert.Equal(t, int64(990_000), got.Int64())

	_, err = MinimumOutput(math.NewInt(1), Scale.AddRaw(1))
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}
