package sol

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// GetUserTokenBalance returns the balance of the user's associated account of mint, or 0
// when that account does not exist.
func (c *Client) GetUserTokenBalance(ctx context.Context, user, mint solana.PublicKey) (uint64, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(user, mint)
	if err != nil {
		return 0, fmt.Errorf("find associated account: %w", err)
	}
	acc, err := c.GetTokenAccount(ctx, ata)
	if errors.Is(err, rpc.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return acc.Amount, nil
}

// SelectOrCreateSPLTokenAccount returns the user's associated account of tokenMint and
// creates it first when it is missing.
func (c *Client) SelectOrCreateSPLTokenAccount(ctx context.Context, privateKey solana.PrivateKey, tokenMint solana.PublicKey) (solana.PublicKey, error) {
	user := privateKey.PublicKey()
	ataAddress, _, err := solana.FindAssociatedTokenAddress(user, tokenMint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("find associated account: %w", err)
	}

	_, _, err = c.GetAccountData(ctx, ataAddress)
	if err == nil {
		return ataAddress, nil
	}
	if !errors.Is(err, rpc.ErrNotFound) {
		return solana.PublicKey{}, err
	}

	createAtaInst, err := associatedtokenaccount.NewCreateInstruction(
		user,
		user,
		tokenMint,
	).ValidateAndBuild()
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("build create account: %w", err)
	}
	c.logger.Info("creating token account",
		zap.Stringer("mint", tokenMint),
		zap.Stringer("account", ataAddress))
	if _, err := c.SendInstructions(ctx, []solana.PrivateKey{privateKey}, []solana.Instruction{createAtaInst}, false); err != nil {
		return solana.PublicKey{}, err
	}
	return ataAddress, nil
}
