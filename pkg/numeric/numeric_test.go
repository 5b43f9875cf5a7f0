package numeric

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
)

func TestSqrt(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{15, 3},
		{16, 4},
		{17, 4},
		{999_999, 999},
		{1_000_000, 1000},
	}
	for _, tc := range cases {
		got, err := Sqrt(math.NewInt(tc.in))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Int64(), "sqrt(%d)", tc.in)
	}
}

func TestSqrtLarge(t *testing.T) {
	got, err := Sqrt(math.NewInt(2_000_000_000).Mul(math.NewInt(3_000_000_000)))
	require.NoError(t, err)
	assert.Equal(t, "2449489742", got.String())

	// perfect square of a 64-bit value
	root := math.NewIntFromUint64(18_446_744_073_709_551_615)
	got, err = Sqrt(root.Mul(root))
	require.NoError(t, err)
	assert.True(t, got.Equal(root))

	got, err = Sqrt(root.Mul(root).SubRaw(1))
	require.NoError(t, err)
	assert.True(t, got.Equal(root.SubRaw(1)))
}

func TestSqrtNegative(t *testing.T) {
	_, err := Sqrt(math.NewInt(-4))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestScaledDiv(t *testing.T) {
	got, err := ScaledDiv(math.NewInt(1), math.NewInt(3), 9)
	require.NoError(t, err)
	assert.Equal(t, "333333333", got.String())

	got, err = ScaledDiv(math.NewInt(2), math.NewInt(2), 9)
	require.NoError(t, err)
	assert.Equal(t, "1000000000", got.String())

	_, err = ScaledDiv(math.NewInt(1), math.ZeroInt(), 9)
	assert.True(t, errors.Is(err, errs.ErrDivisionByZero))
}

func TestMulDivRounding(t *testing.T) {
	down, err := MulDiv(math.NewInt(7), math.NewInt(3), math.NewInt(4), RoundingDown)
	require.NoError(t, err)
	assert.Equal(t, int64(5), down.Int64())

	up, err := MulDiv(math.NewInt(7), math.NewInt(3), math.NewInt(4), RoundingUp)
	require.NoError(t, err)
	assert.Equal(t, int64(6), up.Int64())

	exact, err := MulDiv(math.NewInt(8), math.NewInt(3), math.NewInt(4), RoundingUp)
	require.NoError(t, err)
	assert.Equal(t, int64(6), exact.Int64())

	_, err = CeilDiv(math.NewInt(1), math.ZeroInt())
	assert.True(t, errors.Is(err, errs.ErrDivisionByZero))
}

func TestCheckAmount(t *testing.T) {
	assert.NoError(t, CheckAmount("x", math.ZeroInt()))
	assert.NoError(t, CheckAmount("x", math.NewIntFromUint64(^uint64(0))))
	assert.True(t, errors.Is(CheckAmount("x", math.NewInt(-1)), errs.ErrInvalidArgument))
	assert.True(t, errors.Is(CheckAmount("x", math.Int{}), errs.ErrInvalidArgument))
	assert.True(t, errors.Is(CheckAmount("x", math.NewIntFromUint64(^uint64(0)).AddRaw(1)), errs.ErrInvalidArgument))
}
