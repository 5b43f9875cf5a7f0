package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/DescartesNetwork/sen-js-sub001/internal/config"
	"github.com/DescartesNetwork/sen-js-sub001/internal/logging"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/oracle"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/protocol"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/router"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/sol"
)

const defaultAmountIn = 10_000_000 // 0.01 sol (9 decimals)

func main() {
	cfgFile := flag.String("config", "", "config file (default ./sen.yaml)")
	outMint := flag.String("mint", "", "mint bought with wrapped SOL")
	amount := flag.Uint64("amount", defaultAmountIn, "lamports to sell")
	stakePool := flag.String("stake-pool", "", "farm stake pool to report the wallet's debt in")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	outKey, err := solana.PublicKeyFromBase58(*outMint)
	if err != nil {
		logger.Fatal("invalid -mint", zap.Error(err))
	}
	if cfg.PrivateKey == "" {
		logger.Fatal("SEN_PRIVATE_KEY is required")
	}
	privateKey, err := solana.PrivateKeyFromBase58(cfg.PrivateKey)
	if err != nil {
		logger.Fatal("invalid private key", zap.Error(err))
	}
	user := privateKey.PublicKey()
	logger.Info("wallet", zap.Stringer("public_key", user), zap.String("rpc", cfg.RPC))

	ctx := context.Background()
	solClient := sol.NewClient(cfg.RPC, logger)
	solClient.TokenProgramID = cfg.TokenProgram
	defer solClient.Close()

	if *stakePool != "" {
		reportFarm(ctx, solClient, cfg.FarmProgram, *stakePool, user, logger)
	}

	balance, err := solClient.GetUserTokenBalance(ctx, user, sol.WSOL)
	if err != nil {
		logger.Fatal("failed to get wsol balance", zap.Error(err))
	}
	logger.Info("wsol balance", zap.Uint64("amount", balance))
	if balance < *amount {
		if err := solClient.CoverWsol(ctx, privateKey, *amount-balance); err != nil {
			logger.Fatal("failed to cover wsol", zap.Error(err))
		}
	}

	if _, err := solClient.SelectOrCreateSPLTokenAccount(ctx, privateKey, outKey); err != nil {
		logger.Fatal("failed to prepare output account", zap.Error(err))
	}

	r := router.NewSimpleRouter(logger, protocol.NewSenSwap(solClient, cfg.SwapProgram, logger))
	markets, err := r.QueryAllPools(ctx, sol.WSOL.String(), outKey.String())
	if err != nil {
		logger.Fatal("failed to query pools", zap.Error(err))
	}
	for _, m := range markets {
		logger.Info("found pool", zap.String("pool", m.GetID()))
	}

	amountIn := math.NewIntFromUint64(*amount)
	best, amountOut, err := r.GetBestPool(ctx, sol.WSOL.String(), outKey.String(), amountIn)
	if err != nil {
		logger.Fatal("failed to get best pool", zap.Error(err))
	}

	minAmountOut, err := oracle.MinimumOutput(amountOut, math.NewIntFromUint64(cfg.Slippage))
	if err != nil {
		logger.Fatal("failed to compute limit", zap.Error(err))
	}
	logger.Info("quote",
		zap.String("pool", best.GetID()),
		zap.String("out", amountOut.String()),
		zap.String("limit", minAmountOut.String()))

	instructions, err := best.BuildSwapInstructions(ctx, user, sol.WSOL.String(), amountIn, minAmountOut)
	if err != nil {
		logger.Fatal("failed to build swap", zap.Error(err))
	}

	sig, err := solClient.SendInstructions(ctx, []solana.PrivateKey{privateKey}, instructions, cfg.Simulate)
	if err != nil {
		logger.Fatal("failed to send transaction", zap.Error(err))
	}
	if cfg.Simulate {
		logger.Info("simulation succeeded")
		return
	}
	logger.Info("transaction sent", zap.String("explorer", "https://solscan.io/tx/"+sig.String()+"?cluster=devnet"))
}

func reportFarm(ctx context.Context, c *sol.Client, programID solana.PublicKey, address string, user solana.PublicKey, logger *zap.Logger) {
	key, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		logger.Fatal("invalid -stake-pool", zap.Error(err))
	}
	pool, err := c.GetStakePool(ctx, programID, key)
	if err != nil {
		logger.Fatal("failed to get stake pool", zap.Error(err))
	}
	logger.Info("stake pool",
		zap.Stringer("address", key),
		zap.Stringer("mint_share", pool.MintShare),
		zap.Uint64("reward", pool.Reward),
		zap.Uint64("period", pool.Period))

	debt, err := c.GetDebt(ctx, programID, key, user)
	if errors.Is(err, rpc.ErrNotFound) {
		logger.Info("no debt account in stake pool")
		return
	}
	if err != nil {
		logger.Fatal("failed to get debt", zap.Error(err))
	}
	logger.Info("farm debt", zap.Uint64("debt", debt.Debt))
}
