package sol

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/token"
)

// CoverWsolInstructions moves amount lamports into the user's wrapped SOL account and
// syncs its token balance. The account is created first when createAccount is set.
func CoverWsolInstructions(user solana.PublicKey, amount uint64, createAccount bool) ([]solana.Instruction, error) {
	wsolAccount, _, err := solana.FindAssociatedTokenAddress(user, WSOL)
	if err != nil {
		return nil, fmt.Errorf("find wsol account: %w", err)
	}

	insts := make([]solana.Instruction, 0, 3)
	if createAccount {
		createAtaInst, err := associatedtokenaccount.NewCreateInstruction(user, user, WSOL).ValidateAndBuild()
		if err != nil {
			return nil, fmt.Errorf("build create account: %w", err)
		}
		insts = append(insts, createAtaInst)
	}

	transferInst, err := system.NewTransferInstruction(amount, user, wsolAccount).ValidateAndBuild()
	if err != nil {
		return nil, fmt.Errorf("build transfer: %w", err)
	}
	insts = append(insts, transferInst)

	syncNativeInst, err := token.NewSyncNativeInstruction(wsolAccount)
	if err != nil {
		return nil, err
	}
	return append(insts, syncNativeInst), nil
}

func (c *Client) CoverWsol(ctx context.Context, privateKey solana.PrivateKey, amount uint64) error {
	user := privateKey.PublicKey()
	wsolAccount, _, err := solana.FindAssociatedTokenAddress(user, WSOL)
	if err != nil {
		return fmt.Errorf("find wsol account: %w", err)
	}
	_, _, err = c.GetAccountData(ctx, wsolAccount)
	missing := errors.Is(err, rpc.ErrNotFound)
	if err != nil && !missing {
		return err
	}

	insts, err := CoverWsolInstructions(user, amount, missing)
	if err != nil {
		return err
	}
	c.logger.Info("wrapping sol", zap.Uint64("lamports", amount), zap.Bool("create", missing))
	_, err = c.SendInstructions(ctx, []solana.PrivateKey{privateKey}, insts, false)
	return err
}

// CloseWsol closes the user's wrapped SOL account and returns its lamports to the user.
func (c *Client) CloseWsol(ctx context.Context, privateKey solana.PrivateKey) error {
	user := privateKey.PublicKey()
	wsolAccount, _, err := solana.FindAssociatedTokenAddress(user, WSOL)
	if err != nil {
		return fmt.Errorf("find wsol account: %w", err)
	}
	closeInst, err := token.NewCloseAccountInstruction(wsolAccount, user, user)
	if err != nil {
		return err
	}
	_, err = c.SendInstructions(ctx, []solana.PrivateKey{privateKey}, []solana.Instruction{closeInst}, false)
	return err
}
