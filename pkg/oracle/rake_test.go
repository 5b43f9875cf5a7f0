package oracle

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
)

func TestRakeSingleSided(t *testing.T) {
	res, err := Rake(
		math.NewInt(1_000_000_000), math.ZeroInt(),
		math.NewInt(5_000_000_000), math.NewInt(2_000_000_000),
		testFee, testTax,
	)
	require.NoError(t, err)
	assert.True(t, res.AToB)
	assert.Equal(t, "477999263", res.Bid.String())
	assert.Equal(t, "173992673", res.Swap.AskAmount.String())
	assert.Equal(t, "436290", res.Swap.FeeAmount.String())
	assert.Equal(t, "87039", res.Swap.TaxAmount.String())
	assert.Equal(t, "522000737", res.DeltaA.String())
	assert.Equal(t, "173992673", res.DeltaB.String())
	assert.Equal(t, "5477999263", res.ReserveA.String())
	assert.Equal(t, "1825920288", res.ReserveB.String())
}

func TestRakeMirrored(t *testing.T) {
	res, err := Rake(
		math.ZeroInt(), math.NewInt(1_000_000_000),
		math.NewInt(2_000_000_000), math.NewInt(5_000_000_000),
		testFee, testTax,
	)
	require.NoError(t, err)
	assert.False(t, res.AToB)
	assert.Equal(t, "477999263", res.Bid.String())
	assert.Equal(t, "173992673", res.DeltaA.String())
	assert.Equal(t, "522000737", res.DeltaB.String())
	assert.Equal(t, "1825920288", res.ReserveA.String())
	assert.Equal(t, "5477999263", res.ReserveB.String())
}

func TestRakeBalanced(t *testing.T) {
	res, err := Rake(
		math.NewInt(500), math.NewInt(200),
		math.NewInt(5_000), math.NewInt(2_000),
		testFee, testTax,
	)
	require.NoError(t, err)
	assert.True(t, res.Bid.IsZero())
	assert.Equal(t, int64(500), res.DeltaA.Int64())
	assert.Equal(t, int64(200), res.DeltaB.Int64())
	assert.Equal(t, int64(5_000), res.ReserveA.Int64())
}

func TestRakeEmptyPool(t *testing.T) {
	_, err := Rake(math.NewInt(1), math.ZeroInt(), math.ZeroInt(), math.NewInt(1), testFee, testTax)
	assert.True(t, errors.Is(err, errs.ErrEmptyPool))
}

func TestSidedDeposit(t *testing.T) {
	res, err := SidedDeposit(
		math.NewInt(1_000_000_000), math.ZeroInt(),
		math.NewInt(5_000_000_000), math.NewInt(2_000_000_000),
		math.NewInt(3_000_000_000),
		testFee, testTax,
	)
	require.NoError(t, err)
	assert.Equal(t, "285871197", res.Deposit.LPT.String())
	assert.Equal(t, "522000736", res.Deposit.DeltaA.String())
	assert.Equal(t, "173992673", res.Deposit.DeltaB.String())
	assert.Equal(t, "5999999999", res.Deposit.NewReserveA.String())
	assert.Equal(t, "1999912961", res.Deposit.NewReserveB.String())
	assert.Equal(t, "3285871197", res.Deposit.NewLiquidity.String())
	assert.Equal(t, int64(1), res.RefundA.Int64())
	assert.True(t, res.RefundB.IsZero())
}

func TestSidedDepositInitial(t *testing.T) {
	res, err := SidedDeposit(
		math.NewInt(2_000_000_000), math.NewInt(3_000_000_000),
		math.ZeroInt(), math.ZeroInt(), math.ZeroInt(),
		testFee, testTax,
	)
	require.NoError(t, err)
	assert.True(t, res.Rake.Bid.IsZero())
	assert.Equal(t, "2449489742", res.Deposit.LPT.String())
	assert.True(t, res.RefundA.IsZero())
	assert.True(t, res.RefundB.IsZero())
}
