package swap

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/layout"
)

// InitializePoolAccounts lists the accounts of InitializePool. Pool and MintLPT are
// fresh keypairs and must sign.
type InitializePoolAccounts struct {
	Payer      solana.PublicKey
	Owner      solana.PublicKey
	Pool       solana.PublicKey
	MintLPT    solana.PublicKey
	Taxman     solana.PublicKey
	LPTAccount solana.PublicKey
	SrcA       solana.PublicKey
	MintA      solana.PublicKey
	TreasuryA  solana.PublicKey
	SrcB       solana.PublicKey
	MintB      solana.PublicKey
	TreasuryB  solana.PublicKey
}

// LiquidityAccounts lists the accounts of AddLiquidity, AddSidedLiquidity and
// RemoveLiquidity. A and B are the caller's token accounts on each side.
type LiquidityAccounts struct {
	Payer      solana.PublicKey
	Pool       solana.PublicKey
	MintLPT    solana.PublicKey
	LPTAccount solana.PublicKey
	A          solana.PublicKey
	TreasuryA  solana.PublicKey
	B          solana.PublicKey
	TreasuryB  solana.PublicKey
}

// HopAccounts lists the pool side accounts of one swap.
type HopAccounts struct {
	Pool        solana.PublicKey
	SrcAccount  solana.PublicKey
	TreasuryBid solana.PublicKey
	DstAccount  solana.PublicKey
	TreasuryAsk solana.PublicKey
	// TaxmanAsk is the taxman's token account for the ask mint.
	TaxmanAsk solana.PublicKey
}

// SwapAccounts lists the accounts of Swap.
type SwapAccounts struct {
	Payer solana.PublicKey
	HopAccounts
}

// AdminAccounts lists the accounts of owner-only instructions.
type AdminAccounts struct {
	Owner solana.PublicKey
	Pool  solana.PublicKey
}

func buildInstruction(programID solana.PublicKey, v layout.Variant, metas solana.AccountMetaSlice) (solana.Instruction, error) {
	data, err := EncodeInstruction(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", v.Name(), err)
	}
	return solana.NewInstruction(programID, metas, data), nil
}

func treasurer(programID, pool solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := DeriveTreasurerAddress(programID, pool)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive treasurer of %s: %w", pool, err)
	}
	return addr, nil
}

func NewInitializePoolInstruction(programID solana.PublicKey, args InitializePool, accts InitializePoolAccounts) (solana.Instruction, error) {
	treasurerAddr, err := treasurer(programID, accts.Pool)
	if err != nil {
		return nil, err
	}
	return buildInstruction(programID, args, solana.AccountMetaSlice{
		solana.NewAccountMeta(accts.Payer, true, true),
		solana.NewAccountMeta(accts.Owner, false, false),
		solana.NewAccountMeta(accts.Pool, true, true),
		solana.NewAccountMeta(accts.MintLPT, true, true),
		solana.NewAccountMeta(accts.Taxman, false, false),
		solana.NewAccountMeta(accts.LPTAccount, true, false),
		solana.NewAccountMeta(accts.SrcA, true, false),
		solana.NewAccountMeta(accts.MintA, false, false),
		solana.NewAccountMeta(accts.TreasuryA, true, false),
		solana.NewAccountMeta(accts.SrcB, true, false),
		solana.NewAccountMeta(accts.MintB, false, false),
		solana.NewAccountMeta(accts.TreasuryB, true, false),
		solana.NewAccountMeta(treasurerAddr, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	})
}

func liquidityMetas(programID solana.PublicKey, accts LiquidityAccounts) (solana.AccountMetaSlice, error) {
	treasurerAddr, err := treasurer(programID, accts.Pool)
	if err != nil {
		return nil, err
	}
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(accts.Payer, true, true),
		solana.NewAccountMeta(accts.Pool, true, false),
		solana.NewAccountMeta(accts.MintLPT, true, false),
		solana.NewAccountMeta(accts.LPTAccount, true, false),
		solana.NewAccountMeta(accts.A, true, false),
		solana.NewAccountMeta(accts.TreasuryA, true, false),
		solana.NewAccountMeta(accts.B, true, false),
		solana.NewAccountMeta(accts.TreasuryB, true, false),
		solana.NewAccountMeta(treasurerAddr, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	}, nil
}

func NewAddLiquidityInstruction(programID solana.PublicKey, args AddLiquidity, accts LiquidityAccounts) (solana.Instruction, error) {
	metas, err := liquidityMetas(programID, accts)
	if err != nil {
		return nil, err
	}
	return buildInstruction(programID, args, metas)
}

func NewAddSidedLiquidityInstruction(programID solana.PublicKey, args AddSidedLiquidity, accts LiquidityAccounts) (solana.Instruction, error) {
	metas, err := liquidityMetas(programID, accts)
	if err != nil {
		return nil, err
	}
	return buildInstruction(programID, args, metas)
}

func NewRemoveLiquidityInstruction(programID solana.PublicKey, args RemoveLiquidity, accts LiquidityAccounts) (solana.Instruction, error) {
	metas, err := liquidityMetas(programID, accts)
	if err != nil {
		return nil, err
	}
	return buildInstruction(programID, args, metas)
}

func hopMetas(programID solana.PublicKey, hop HopAccounts) (solana.AccountMetaSlice, error) {
	treasurerAddr, err := treasurer(programID, hop.Pool)
	if err != nil {
		return nil, err
	}
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(hop.Pool, true, false),
		solana.NewAccountMeta(hop.SrcAccount, true, false),
		solana.NewAccountMeta(hop.TreasuryBid, true, false),
		solana.NewAccountMeta(hop.DstAccount, true, false),
		solana.NewAccountMeta(hop.TreasuryAsk, true, false),
		solana.NewAccountMeta(hop.TaxmanAsk, true, false),
		solana.NewAccountMeta(treasurerAddr, false, false),
	}, nil
}

func NewSwapInstruction(programID solana.PublicKey, args Swap, accts SwapAccounts) (solana.Instruction, error) {
	metas, err := hopMetas(programID, accts.HopAccounts)
	if err != nil {
		return nil, err
	}
	metas = append(solana.AccountMetaSlice{solana.NewAccountMeta(accts.Payer, true, true)}, metas...)
	metas = append(metas, solana.NewAccountMeta(solana.TokenProgramID, false, false))
	return buildInstruction(programID, args, metas)
}

// NewRouteInstruction chains hops in order. The destination of each hop must be the
// source of the next one.
func NewRouteInstruction(programID solana.PublicKey, args Route, payer solana.PublicKey, hops []HopAccounts) (solana.Instruction, error) {
	if len(hops) == 0 {
		return nil, fmt.Errorf("route needs at least one hop")
	}
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(payer, true, true),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	}
	for i, hop := range hops {
		if i > 0 && !hops[i-1].DstAccount.Equals(hop.SrcAccount) {
			return nil, fmt.Errorf("hop %d source %s does not continue hop %d destination %s", i, hop.SrcAccount, i-1, hops[i-1].DstAccount)
		}
		hm, err := hopMetas(programID, hop)
		if err != nil {
			return nil, err
		}
		metas = append(metas, hm...)
	}
	return buildInstruction(programID, args, metas)
}

func adminMetas(accts AdminAccounts) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(accts.Owner, false, true),
		solana.NewAccountMeta(accts.Pool, true, false),
	}
}

func NewFreezePoolInstruction(programID solana.PublicKey, accts AdminAccounts) (solana.Instruction, error) {
	return buildInstruction(programID, FreezePool{}, adminMetas(accts))
}

func NewThawPoolInstruction(programID solana.PublicKey, accts AdminAccounts) (solana.Instruction, error) {
	return buildInstruction(programID, ThawPool{}, adminMetas(accts))
}

func NewUpdateFeeInstruction(programID solana.PublicKey, args UpdateFee, accts AdminAccounts) (solana.Instruction, error) {
	return buildInstruction(programID, args, adminMetas(accts))
}

func NewTransferOwnershipInstruction(programID solana.PublicKey, accts AdminAccounts, newOwner solana.PublicKey) (solana.Instruction, error) {
	metas := append(adminMetas(accts), solana.NewAccountMeta(newOwner, false, false))
	return buildInstruction(programID, TransferOwnership{}, metas)
}

// NewWrapInstruction wraps lamports of payer into its wrapped SOL account, creating it
// when missing.
func NewWrapInstruction(programID solana.PublicKey, args Wrap, payer, wrappedAccount solana.PublicKey) (solana.Instruction, error) {
	return buildInstruction(programID, args, solana.AccountMetaSlice{
		solana.NewAccountMeta(payer, true, true),
		solana.NewAccountMeta(wrappedAccount, true, false),
		solana.NewAccountMeta(WSOL_MINT, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	})
}

// NewUnwrapInstruction closes the wrapped SOL account of payer and returns its lamports.
func NewUnwrapInstruction(programID solana.PublicKey, payer, wrappedAccount solana.PublicKey) (solana.Instruction, error) {
	return buildInstruction(programID, Unwrap{}, solana.AccountMetaSlice{
		solana.NewAccountMeta(payer, true, true),
		solana.NewAccountMeta(wrappedAccount, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	})
}
