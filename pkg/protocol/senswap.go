package protocol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/DescartesNetwork/sen-js-sub001/pkg"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/swap"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/sol"
)

// ProgramAccountsReader is the slice of the RPC API used to list pools.
type ProgramAccountsReader interface {
	GetProgramAccountsWithOpts(ctx context.Context, publicKey solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error)
}

// SenSwapProtocol loads swap pools of one program deployment.
type SenSwapProtocol struct {
	SolClient *sol.Client
	ProgramID solana.PublicKey

	accounts ProgramAccountsReader
	logger   *zap.Logger
}

func NewSenSwap(solClient *sol.Client, programID solana.PublicKey, logger *zap.Logger) *SenSwapProtocol {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SenSwapProtocol{
		SolClient: solClient,
		ProgramID: programID,
		accounts:  solClient.RpcClient,
		logger:    logger,
	}
}

// FetchPoolsByPair returns the tradable pools between the two mints in either order.
func (p *SenSwapProtocol) FetchPoolsByPair(ctx context.Context, baseMint string, quoteMint string) ([]pkg.Market, error) {
	baseKey, err := solana.PublicKeyFromBase58(baseMint)
	if err != nil {
		return nil, fmt.Errorf("invalid base mint address: %w", err)
	}
	quoteKey, err := solana.PublicKeyFromBase58(quoteMint)
	if err != nil {
		return nil, fmt.Errorf("invalid quote mint address: %w", err)
	}

	accounts := make([]*rpc.KeyedAccount, 0)
	for _, pair := range [][2]solana.PublicKey{{baseKey, quoteKey}, {quoteKey, baseKey}} {
		found, err := p.getPoolAccountsByTokenPair(ctx, pair[0], pair[1])
		if err != nil {
			return nil, fmt.Errorf("failed to fetch pools with mint a %s: %w", pair[0], err)
		}
		accounts = append(accounts, found...)
	}

	res := make([]pkg.Market, 0, len(accounts))
	for _, v := range accounts {
		pool, err := swap.DecodePool(v.Pubkey, v.Account.Data.GetBinary())
		if err != nil {
			p.logger.Warn("skipping undecodable pool", zap.Stringer("pool", v.Pubkey), zap.Error(err))
			continue
		}
		if pool.State != swap.PoolStateInitialized {
			p.logger.Debug("skipping pool", zap.Stringer("pool", v.Pubkey), zap.Stringer("state", pool.State))
			continue
		}
		if pool.ReserveA == 0 || pool.ReserveB == 0 {
			p.logger.Debug("skipping empty pool", zap.Stringer("pool", v.Pubkey))
			continue
		}
		res = append(res, pool.Market(p.ProgramID))
	}
	return res, nil
}

// poolFilters matches pool accounts with mintA on side A and mintB on side B.
func poolFilters(mintA, mintB solana.PublicKey) []rpc.RPCFilter {
	offsetA, _ := swap.PoolSchema.Offset("mint_a")
	offsetB, _ := swap.PoolSchema.Offset("mint_b")
	return []rpc.RPCFilter{
		{DataSize: uint64(swap.PoolSchema.Span())},
		{Memcmp: &rpc.RPCFilterMemcmp{Offset: uint64(offsetA), Bytes: mintA.Bytes()}},
		{Memcmp: &rpc.RPCFilterMemcmp{Offset: uint64(offsetB), Bytes: mintB.Bytes()}},
	}
}

func (p *SenSwapProtocol) getPoolAccountsByTokenPair(ctx context.Context, mintA, mintB solana.PublicKey) (rpc.GetProgramAccountsResult, error) {
	result, err := p.accounts.GetProgramAccountsWithOpts(ctx, p.ProgramID, &rpc.GetProgramAccountsOpts{
		Encoding: solana.EncodingBase64,
		Filters:  poolFilters(mintA, mintB),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pools: %w", err)
	}
	return result, nil
}

// FetchPoolByID loads a single pool.
func (p *SenSwapProtocol) FetchPoolByID(ctx context.Context, poolID string) (pkg.Market, error) {
	poolKey, err := solana.PublicKeyFromBase58(poolID)
	if err != nil {
		return nil, fmt.Errorf("invalid pool id: %w", err)
	}
	pool, err := p.SolClient.GetPool(ctx, p.ProgramID, poolKey)
	if err != nil {
		return nil, err
	}
	return pool.Market(p.ProgramID), nil
}
