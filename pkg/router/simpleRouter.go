package router

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"go.uber.org/zap"

	"github.com/DescartesNetwork/sen-js-sub001/pkg"
)

// SimpleRouter picks the single market paying the most for a trade.
type SimpleRouter struct {
	protocols []pkg.Protocol
	markets   []pkg.Market
	logger    *zap.Logger
}

func NewSimpleRouter(logger *zap.Logger, protocols ...pkg.Protocol) *SimpleRouter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimpleRouter{
		protocols: protocols,
		markets:   []pkg.Market{},
		logger:    logger,
	}
}

// AddMarkets registers markets loaded elsewhere.
func (r *SimpleRouter) AddMarkets(markets ...pkg.Market) {
	r.markets = append(r.markets, markets...)
}

// Markets returns every market known to the router.
func (r *SimpleRouter) Markets() []pkg.Market {
	return r.markets
}

// QueryAllPools loads the markets of every protocol for the pair. A failing protocol is
// logged and skipped.
func (r *SimpleRouter) QueryAllPools(ctx context.Context, baseMint, quoteMint string) ([]pkg.Market, error) {
	for _, proto := range r.protocols {
		markets, err := proto.FetchPoolsByPair(ctx, baseMint, quoteMint)
		if err != nil {
			r.logger.Warn("fetch pools failed",
				zap.String("base", baseMint),
				zap.String("quote", quoteMint),
				zap.Error(err))
			continue
		}
		r.markets = append(r.markets, markets...)
	}
	return r.markets, nil
}

// GetBestPool quotes amountIn of tokenIn on every market trading tokenIn against tokenOut
// and returns the one with the largest output.
func (r *SimpleRouter) GetBestPool(ctx context.Context, tokenIn, tokenOut string, amountIn math.Int) (pkg.Market, math.Int, error) {
	var best pkg.Market
	maxOut := math.ZeroInt()
	for _, market := range r.markets {
		if !trades(market, tokenIn, tokenOut) {
			continue
		}
		outAmount, err := market.Quote(ctx, tokenIn, amountIn)
		if err != nil {
			r.logger.Debug("quote failed", zap.String("market", market.GetID()), zap.Error(err))
			continue
		}
		if outAmount.GT(maxOut) {
			maxOut = outAmount
			best = market
		}
	}
	if best == nil {
		return nil, math.ZeroInt(), fmt.Errorf("no route found for %s -> %s", tokenIn, tokenOut)
	}
	r.logger.Info("best market",
		zap.String("market", best.GetID()),
		zap.String("in", amountIn.String()),
		zap.String("out", maxOut.String()))
	return best, maxOut, nil
}

func trades(market pkg.Market, tokenIn, tokenOut string) bool {
	a, b := market.GetTokens()
	return (a == tokenIn && b == tokenOut) || (a == tokenOut && b == tokenIn)
}
