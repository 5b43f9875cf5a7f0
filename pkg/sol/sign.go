package sol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// signTransaction creates and signs a new transaction with the given instructions.
// The first signer pays.
func signTransaction(blockhash solana.Hash, signers []solana.PrivateKey, instrs ...solana.Instruction) (*solana.Transaction, error) {
	if len(signers) == 0 {
		return nil, fmt.Errorf("at least one signer is required")
	}

	tx, err := solana.NewTransaction(
		instrs,
		blockhash,
		solana.TransactionPayer(signers[0].PublicKey()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = tx.Sign(
		func(key solana.PublicKey) *solana.PrivateKey {
			for _, payer := range signers {
				if payer.PublicKey().Equals(key) {
					return &payer
				}
			}
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return tx, nil
}

// SendTx sends or simulates a transaction based on the isSimulate flag
func (c *Client) SendTx(ctx context.Context, blockhash solana.Hash, signers []solana.PrivateKey, insts []solana.Instruction, isSimulate bool) (solana.Signature, error) {
	tx, err := signTransaction(blockhash, signers, insts...)
	if err != nil {
		return solana.Signature{}, err
	}

	if isSimulate {
		res, err := c.RpcClient.SimulateTransaction(ctx, tx)
		if err != nil {
			return solana.Signature{}, fmt.Errorf("failed to simulate transaction: %w", err)
		}
		if res != nil && res.Value != nil {
			for _, line := range res.Value.Logs {
				c.logger.Debug("simulation", zap.String("log", line))
			}
			if res.Value.Err != nil {
				return solana.Signature{}, fmt.Errorf("simulation failed: %v", res.Value.Err)
			}
		}
		// simulations have no signature
		return solana.Signature{}, nil
	}

	sig, err := c.RpcClient.SendTransactionWithOpts(
		ctx, tx,
		rpc.TransactionOpts{
			SkipPreflight:       true,
			PreflightCommitment: rpc.CommitmentProcessed,
		},
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	c.logger.Info("transaction sent", zap.Stringer("signature", sig))
	return sig, nil
}

// SendInstructions fetches a recent blockhash and sends insts signed by signers.
func (c *Client) SendInstructions(ctx context.Context, signers []solana.PrivateKey, insts []solana.Instruction, isSimulate bool) (solana.Signature, error) {
	recent, err := c.RpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get blockhash: %w", err)
	}
	return c.SendTx(ctx, recent.Value.Blockhash, signers, insts, isSimulate)
}
