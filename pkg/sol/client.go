package sol

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/farm"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/swap"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/token"
)

// AccountReader is the slice of the RPC API used to load single accounts.
type AccountReader interface {
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
}

// Client wraps a Solana RPC connection with typed account fetches.
type Client struct {
	RpcClient *rpc.Client
	// TokenProgramID must own every mint and token account the client loads.
	TokenProgramID solana.PublicKey
	accounts       AccountReader
	logger         *zap.Logger
}

// NewClient creates a client for the RPC endpoint. A nil logger discards output.
func NewClient(endpoint string, logger *zap.Logger) *Client {
	c := rpc.New(endpoint)
	return newClient(c, c, logger)
}

func newClient(c *rpc.Client, accounts AccountReader, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{RpcClient: c, TokenProgramID: solana.TokenProgramID, accounts: accounts, logger: logger}
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.RpcClient != nil {
		return c.RpcClient.Close()
	}
	return nil
}

// GetAccountData returns the raw data and owner of address.
func (c *Client) GetAccountData(ctx context.Context, address solana.PublicKey) ([]byte, solana.PublicKey, error) {
	out, err := c.accounts.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: rpc.CommitmentConfirmed,
	})
	if errors.Is(err, rpc.ErrNotFound) || (err == nil && (out == nil || out.Value == nil)) {
		return nil, solana.PublicKey{}, fmt.Errorf("account %s: %w", address, rpc.ErrNotFound)
	}
	if err != nil {
		return nil, solana.PublicKey{}, fmt.Errorf("failed to get account %s: %w", address, err)
	}
	data := out.Value.Data.GetBinary()
	c.logger.Debug("account loaded",
		zap.Stringer("address", address),
		zap.Stringer("owner", out.Value.Owner),
		zap.Int("size", len(data)))
	return data, out.Value.Owner, nil
}

func (c *Client) ownedData(ctx context.Context, address, programID solana.PublicKey) ([]byte, error) {
	data, owner, err := c.GetAccountData(ctx, address)
	if err != nil {
		return nil, err
	}
	if !owner.Equals(programID) {
		return nil, fmt.Errorf("account %s is owned by %s, not %s", address, owner, programID)
	}
	return data, nil
}

// GetPool loads a swap pool owned by programID.
func (c *Client) GetPool(ctx context.Context, programID, address solana.PublicKey) (*swap.Pool, error) {
	data, err := c.ownedData(ctx, address, programID)
	if err != nil {
		return nil, err
	}
	pool, err := swap.DecodePool(address, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pool %s: %w", address, err)
	}
	return pool, nil
}

// GetMint loads a token mint owned by c.TokenProgramID.
func (c *Client) GetMint(ctx context.Context, address solana.PublicKey) (*token.Mint, error) {
	data, err := c.ownedData(ctx, address, c.TokenProgramID)
	if err != nil {
		return nil, err
	}
	mint, err := token.DecodeMint(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode mint %s: %w", address, err)
	}
	return mint, nil
}

// GetTokenAccount loads a token account owned by c.TokenProgramID.
func (c *Client) GetTokenAccount(ctx context.Context, address solana.PublicKey) (*token.Account, error) {
	data, err := c.ownedData(ctx, address, c.TokenProgramID)
	if err != nil {
		return nil, err
	}
	acc, err := token.DecodeAccount(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token account %s: %w", address, err)
	}
	return acc, nil
}

// GetStakePool loads a farming stake pool owned by programID.
func (c *Client) GetStakePool(ctx context.Context, programID, address solana.PublicKey) (*farm.StakePool, error) {
	data, err := c.ownedData(ctx, address, programID)
	if err != nil {
		return nil, err
	}
	pool, err := farm.DecodeStakePool(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stake pool %s: %w", address, err)
	}
	return pool, nil
}

// GetDebt loads the debt account of owner in stakePool.
func (c *Client) GetDebt(ctx context.Context, programID, stakePool, owner solana.PublicKey) (*farm.Debt, error) {
	address, _, err := farm.DeriveDebtAddress(programID, stakePool, owner)
	if err != nil {
		return nil, fmt.Errorf("derive debt: %w", err)
	}
	data, err := c.ownedData(ctx, address, programID)
	if err != nil {
		return nil, err
	}
	debt, err := farm.DecodeDebt(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode debt %s: %w", address, err)
	}
	return debt, nil
}
