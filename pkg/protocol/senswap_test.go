package protocol

import (
	"bytes"
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/swap"
)

// memProgram answers getProgramAccounts by evaluating the filters locally.
type memProgram struct {
	accounts []*rpc.KeyedAccount
	calls    int
}

func (m *memProgram) GetProgramAccountsWithOpts(ctx context.Context, publicKey solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error) {
	m.calls++
	var out rpc.GetProgramAccountsResult
	for _, acc := range m.accounts {
		if acc.Account.Owner != publicKey {
			continue
		}
		if matches(acc.Account.Data.GetBinary(), opts.Filters) {
			out = append(out, acc)
		}
	}
	return out, nil
}

func matches(data []byte, filters []rpc.RPCFilter) bool {
	for _, f := range filters {
		if f.DataSize != 0 && uint64(len(data)) != f.DataSize {
			return false
		}
		if f.Memcmp != nil {
			end := int(f.Memcmp.Offset) + len(f.Memcmp.Bytes)
			if end > len(data) || !bytes.Equal(data[f.Memcmp.Offset:end], f.Memcmp.Bytes) {
				return false
			}
		}
	}
	return true
}

func keyed(t *testing.T, owner solana.PublicKey, pool *swap.Pool) *rpc.KeyedAccount {
	data, err := pool.Encode()
	require.NoError(t, err)
	return &rpc.KeyedAccount{
		Pubkey:  pool.Address,
		Account: &rpc.Account{Owner: owner, Data: rpc.DataBytesOrJSONFromBytes(data)},
	}
}

func pool(mintA, mintB solana.PublicKey, state swap.PoolState, reserve uint64) *swap.Pool {
	return &swap.Pool{
		Address:  solana.NewWallet().PublicKey(),
		State:    state,
		MintA:    mintA,
		MintB:    mintB,
		ReserveA: reserve,
		ReserveB: reserve,
	}
}

func TestPoolFilters(t *testing.T) {
	mintA, mintB := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	filters := poolFilters(mintA, mintB)
	require.Len(t, filters, 3)
	assert.Equal(t, uint64(257), filters[0].DataSize)
	assert.Equal(t, uint64(97), filters[1].Memcmp.Offset)
	assert.Equal(t, uint64(169), filters[2].Memcmp.Offset)
}

func TestFetchPoolsByPair(t *testing.T) {
	sol, usdc, other := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	programID := swap.SENSWAP_PROGRAM_ID

	forward := pool(sol, usdc, swap.PoolStateInitialized, 1_000)
	reverse := pool(usdc, sol, swap.PoolStateInitialized, 1_000)
	frozen := pool(sol, usdc, swap.PoolStateFrozen, 1_000)
	empty := pool(sol, usdc, swap.PoolStateInitialized, 0)
	unrelated := pool(sol, other, swap.PoolStateInitialized, 1_000)
	foreign := pool(sol, usdc, swap.PoolStateInitialized, 1_000)

	reader := &memProgram{accounts: []*rpc.KeyedAccount{
		keyed(t, programID, forward),
		keyed(t, programID, reverse),
		keyed(t, programID, frozen),
		keyed(t, programID, empty),
		keyed(t, programID, unrelated),
		keyed(t, solana.NewWallet().PublicKey(), foreign),
	}}
	p := &SenSwapProtocol{ProgramID: programID, accounts: reader, logger: zap.NewNop()}

	markets, err := p.FetchPoolsByPair(context.Background(), sol.String(), usdc.String())
	require.NoError(t, err)
	assert.Equal(t, 2, reader.calls)

	ids := make([]string, 0, len(markets))
	for _, m := range markets {
		ids = append(ids, m.GetID())
		assert.Equal(t, programID, m.GetProgramID())
	}
	assert.ElementsMatch(t, []string{forward.GetID(), reverse.GetID()}, ids)
}

func TestFetchPoolsByPairBadMint(t *testing.T) {
	p := &SenSwapProtocol{accounts: &memProgram{}, logger: zap.NewNop()}
	_, err := p.FetchPoolsByPair(context.Background(), "not-a-key", solana.NewWallet().PublicKey().String())
	assert.Error(t, err)
}
