package farm

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/layout"
)

// StakePoolAccounts are the pool side accounts shared by most instructions.
type StakePoolAccounts struct {
	StakePool     solana.PublicKey
	MintShare     solana.PublicKey
	TreasuryToken solana.PublicKey
	TreasurySen   solana.PublicKey
}

// StakerAccounts are the caller side accounts of stake, unstake and harvest.
type StakerAccounts struct {
	Owner solana.PublicKey
	// Token is the caller's account of the staked mint.
	Token solana.PublicKey
	// Share is the caller's account of the share mint.
	Share solana.PublicKey
	// Sen receives harvested rewards.
	Sen solana.PublicKey
}

func build(programID solana.PublicKey, v layout.Variant, metas solana.AccountMetaSlice) (solana.Instruction, error) {
	data, err := EncodeInstruction(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", v.Name(), err)
	}
	return solana.NewInstruction(programID, metas, data), nil
}

func NewInitializeStakePoolInstruction(
	programID solana.PublicKey,
	args InitializeStakePool,
	owner, mintToken, mintSen solana.PublicKey,
	pool StakePoolAccounts,
) (solana.Instruction, error) {
	treasurer, _, err := DeriveTreasurerAddress(programID, pool.StakePool)
	if err != nil {
		return nil, fmt.Errorf("derive treasurer: %w", err)
	}
	return build(programID, args, solana.AccountMetaSlice{
		solana.NewAccountMeta(owner, true, true),
		solana.NewAccountMeta(pool.StakePool, true, true),
		solana.NewAccountMeta(pool.MintShare, true, true),
		solana.NewAccountMeta(mintToken, false, false),
		solana.NewAccountMeta(pool.TreasuryToken, true, false),
		solana.NewAccountMeta(mintSen, false, false),
		solana.NewAccountMeta(pool.TreasurySen, true, false),
		solana.NewAccountMeta(treasurer, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	})
}

func NewInitializeAccountsInstruction(programID solana.PublicKey, owner solana.PublicKey, pool StakePoolAccounts, share solana.PublicKey) (solana.Instruction, error) {
	debt, _, err := DeriveDebtAddress(programID, pool.StakePool, owner)
	if err != nil {
		return nil, fmt.Errorf("derive debt: %w", err)
	}
	return build(programID, InitializeAccounts{}, solana.AccountMetaSlice{
		solana.NewAccountMeta(owner, true, true),
		solana.NewAccountMeta(pool.StakePool, false, false),
		solana.NewAccountMeta(pool.MintShare, false, false),
		solana.NewAccountMeta(share, true, false),
		solana.NewAccountMeta(debt, true, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	})
}

func stakerMetas(programID solana.PublicKey, pool StakePoolAccounts, staker StakerAccounts) (solana.AccountMetaSlice, error) {
	treasurer, _, err := DeriveTreasurerAddress(programID, pool.StakePool)
	if err != nil {
		return nil, fmt.Errorf("derive treasurer: %w", err)
	}
	debt, _, err := DeriveDebtAddress(programID, pool.StakePool, staker.Owner)
	if err != nil {
		return nil, fmt.Errorf("derive debt: %w", err)
	}
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(staker.Owner, false, true),
		solana.NewAccountMeta(pool.StakePool, true, false),
		solana.NewAccountMeta(pool.MintShare, true, false),
		solana.NewAccountMeta(staker.Token, true, false),
		solana.NewAccountMeta(pool.TreasuryToken, true, false),
		solana.NewAccountMeta(staker.Share, true, false),
		solana.NewAccountMeta(debt, true, false),
		solana.NewAccountMeta(staker.Sen, true, false),
		solana.NewAccountMeta(pool.TreasurySen, true, false),
		solana.NewAccountMeta(treasurer, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	}, nil
}

func NewStakeInstruction(programID solana.PublicKey, args Stake, pool StakePoolAccounts, staker StakerAccounts) (solana.Instruction, error) {
	metas, err := stakerMetas(programID, pool, staker)
	if err != nil {
		return nil, err
	}
	return build(programID, args, metas)
}

func NewUnstakeInstruction(programID solana.PublicKey, args Unstake, pool StakePoolAccounts, staker StakerAccounts) (solana.Instruction, error) {
	metas, err := stakerMetas(programID, pool, staker)
	if err != nil {
		return nil, err
	}
	return build(programID, args, metas)
}

func NewHarvestInstruction(programID solana.PublicKey, pool StakePoolAccounts, staker StakerAccounts) (solana.Instruction, error) {
	metas, err := stakerMetas(programID, pool, staker)
	if err != nil {
		return nil, err
	}
	return build(programID, Harvest{}, metas)
}

func ownerMetas(owner, stakePool solana.PublicKey) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(owner, false, true),
		solana.NewAccountMeta(stakePool, true, false),
	}
}

func NewFreezeStakePoolInstruction(programID, owner, stakePool solana.PublicKey) (solana.Instruction, error) {
	return build(programID, FreezeStakePool{}, ownerMetas(owner, stakePool))
}

func NewThawStakePoolInstruction(programID, owner, stakePool solana.PublicKey) (solana.Instruction, error) {
	return build(programID, ThawStakePool{}, ownerMetas(owner, stakePool))
}

func NewTransferStakePoolOwnershipInstruction(programID, owner, stakePool, newOwner solana.PublicKey) (solana.Instruction, error) {
	metas := append(ownerMetas(owner, stakePool), solana.NewAccountMeta(newOwner, false, false))
	return build(programID, TransferStakePoolOwnership{}, metas)
}

// NewSeedInstruction moves amount from the owner's SEN account into the reward treasury.
func NewSeedInstruction(programID solana.PublicKey, args Seed, owner, stakePool, src, treasurySen solana.PublicKey) (solana.Instruction, error) {
	metas, err := seedMetas(programID, owner, stakePool, src, treasurySen)
	if err != nil {
		return nil, err
	}
	return build(programID, args, metas)
}

// NewUnseedInstruction moves amount from the reward treasury back to the owner.
func NewUnseedInstruction(programID solana.PublicKey, args Unseed, owner, stakePool, dst, treasurySen solana.PublicKey) (solana.Instruction, error) {
	metas, err := seedMetas(programID, owner, stakePool, dst, treasurySen)
	if err != nil {
		return nil, err
	}
	return build(programID, args, metas)
}

func seedMetas(programID, owner, stakePool, account, treasurySen solana.PublicKey) (solana.AccountMetaSlice, error) {
	treasurer, _, err := DeriveTreasurerAddress(programID, stakePool)
	if err != nil {
		return nil, fmt.Errorf("derive treasurer: %w", err)
	}
	return append(ownerMetas(owner, stakePool),
		solana.NewAccountMeta(account, true, false),
		solana.NewAccountMeta(treasurySen, true, false),
		solana.NewAccountMeta(treasurer, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	), nil
}
