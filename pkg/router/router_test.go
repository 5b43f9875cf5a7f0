package router

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DescartesNetwork/sen-js-sub001/pkg"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/swap"
)

func newPool(mintA, mintB solana.PublicKey, reserveA, reserveB uint64) *swap.Pool {
	return &swap.Pool{
		Address:   solana.NewWallet().PublicKey(),
		Owner:     solana.NewWallet().PublicKey(),
		State:     swap.PoolStateInitialized,
		MintLPT:   solana.NewWallet().PublicKey(),
		Taxman:    solana.NewWallet().PublicKey(),
		MintA:     mintA,
		TreasuryA: solana.NewWallet().PublicKey(),
		ReserveA:  reserveA,
		MintB:     mintB,
		TreasuryB: solana.NewWallet().PublicKey(),
		ReserveB:  reserveB,
		FeeRatio:  2_500_000,
		TaxRatio:  500_000,
	}
}

type staticProtocol struct {
	markets []pkg.Market
	err     error
}

func (p staticProtocol) FetchPoolsByPair(ctx context.Context, baseMint, quoteMint string) ([]pkg.Market, error) {
	return p.markets, p.err
}

func (p staticProtocol) FetchPoolByID(ctx context.Context, poolID string) (pkg.Market, error) {
	for _, m := range p.markets {
		if m.GetID() == poolID {
			return m, nil
		}
	}
	return nil, errors.New("not found")
}

func TestGetBestPool(t *testing.T) {
	mintA, mintB := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	deep := newPool(mintA, mintB, 1_000_000_000_000_000, 300_000_000_000_000_000)
	shallow := newPool(mintA, mintB, 1_000_000_000_000, 300_000_000_000_000)
	frozen := newPool(mintA, mintB, 1_000_000_000_000_000, 300_000_000_000_000_000)
	frozen.State = swap.PoolStateFrozen
	other := newPool(mintA, solana.NewWallet().PublicKey(), 1_000_000_000_000_000, 900_000_000_000_000_000)

	r := NewSimpleRouter(nil,
		staticProtocol{markets: []pkg.Market{shallow, frozen}},
		staticProtocol{err: errors.New("rpc down")},
		staticProtocol{markets: []pkg.Market{deep, other}},
	)
	markets, err := r.QueryAllPools(context.Background(), mintA.String(), mintB.String())
	require.NoError(t, err)
	assert.Len(t, markets, 4)

	best, out, err := r.GetBestPool(context.Background(), mintA.String(), mintB.String(), math.NewInt(1_000_000_000))
	require.NoError(t, err)
	assert.Equal(t, deep.GetID(), best.GetID())
	assert.Equal(t, "299100075901", out.String())

	_, _, err = r.GetBestPool(context.Background(), mintB.String(), solana.NewWallet().PublicKey().String(), math.NewInt(1))
	assert.Error(t, err)
}

func TestGetBestPoolNoMarkets(t *testing.T) {
	r := NewSimpleRouter(nil)
	_, out, err := r.GetBestPool(context.Background(), "a", "b", math.NewInt(1))
	assert.Error(t, err)
	assert.True(t, out.IsZero())
}

func TestRouteFold(t *testing.T) {
	mintA, mintB, mintC := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	first := newPool(mintA, mintB, 1_000_000_000_000_000, 300_000_000_000_000_000)
	second := newPool(mintC, mintB, 5_000_000_000_000, 2_000_000_000_000_000)

	res, err := Route([]*swap.Pool{first, second}, mintA.String(), math.NewInt(1_000_000_000))
	require.NoError(t, err)
	require.Len(t, res.Legs, 2)
	assert.Equal(t, "299100075901", res.Legs[0].Result.AskAmount.String())
	assert.Equal(t, mintB.String(), res.Legs[0].OutputMint)
	assert.Equal(t, mintB.String(), res.Legs[1].InputMint)
	assert.Equal(t, mintC.String(), res.Legs[1].OutputMint)

	want, err := second.Quote(context.Background(), mintB.String(), res.Legs[0].Result.AskAmount)
	require.NoError(t, err)
	assert.True(t, want.Equal(res.OutputAmount))
	assert.True(t, res.OutputAmount.IsPositive())
}

func TestRouteRevisitsPool(t *testing.T) {
	mintA, mintB := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	pool := newPool(mintA, mintB, 1_000_000_000_000, 3_000_000_000_000)

	res, err := Route([]*swap.Pool{pool, pool}, mintA.String(), math.NewInt(1_000_000_000))
	require.NoError(t, err)

	first, err := pool.SimulateSwap(mintA.String(), math.NewInt(1_000_000_000))
	require.NoError(t, err)
	after, err := pool.Apply(true, first)
	require.NoError(t, err)
	want, err := after.Quote(context.Background(), mintB.String(), first.AskAmount)
	require.NoError(t, err)
	assert.True(t, want.Equal(res.OutputAmount))

	// a round trip through one pool never returns more than it started with
	assert.True(t, res.OutputAmount.LT(math.NewInt(1_000_000_000)))
}

func TestRouteErrors(t *testing.T) {
	_, err := Route(nil, "a", math.NewInt(1))
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	mintA, mintB := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	pool := newPool(mintA, mintB, 1_000_000, 1_000_000)
	_, err = Route([]*swap.Pool{pool}, solana.NewWallet().PublicKey().String(), math.NewInt(1))
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestRouteReserveOverflow(t *testing.T) {
	mintA, mintB := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	pool := newPool(mintA, mintB, ^uint64(0)-5, 1_000_000)

	var err error
	assert.NotPanics(t, func() {
		_, err = Route([]*swap.Pool{pool}, mintA.String(), math.NewInt(1_000))
	})
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "leg 0")
}

func TestBuildRouteInstruction(t *testing.T) {
	mintA, mintB, mintC := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	first := newPool(mintA, mintB, 1_000_000_000_000, 3_000_000_000_000)
	second := newPool(mintB, mintC, 3_000_000_000_000, 1_000_000_000_000)
	user := solana.NewWallet().PublicKey()

	res, err := Route([]*swap.Pool{first, second}, mintA.String(), math.NewInt(1_000_000))
	require.NoError(t, err)
	inst, err := BuildRouteInstruction(swap.SENSWAP_PROGRAM_ID, user, res, math.NewInt(1))
	require.NoError(t, err)
	assert.Len(t, inst.Accounts(), 2+2*7)

	data, err := inst.Data()
	require.NoError(t, err)
	v, err := swap.DecodeInstruction(data)
	require.NoError(t, err)
	assert.Equal(t, swap.Route{Amount: 1_000_000, Limit: 1}, v)

	_, err = BuildRouteInstruction(swap.SENSWAP_PROGRAM_ID, user, res, math.NewIntWithDecimal(1, 20))
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}
