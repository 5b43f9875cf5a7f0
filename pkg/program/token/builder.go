package token

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/layout"
)

func build(v layout.Variant, metas ...*solana.AccountMeta) (solana.Instruction, error) {
	data, err := EncodeInstruction(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", v.Name(), err)
	}
	return solana.NewInstruction(solana.TokenProgramID, metas, data), nil
}

func NewInitializeMintInstruction(args InitializeMint, mint solana.PublicKey) (solana.Instruction, error) {
	return build(args,
		solana.NewAccountMeta(mint, true, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	)
}

func NewInitializeAccountInstruction(account, mint, owner solana.PublicKey) (solana.Instruction, error) {
	return build(InitializeAccount{},
		solana.NewAccountMeta(account, true, false),
		solana.NewAccountMeta(mint, false, false),
		solana.NewAccountMeta(owner, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	)
}

func NewTransferInstruction(amount uint64, src, dst, owner solana.PublicKey) (solana.Instruction, error) {
	return build(Transfer{Amount: amount},
		solana.NewAccountMeta(src, true, false),
		solana.NewAccountMeta(dst, true, false),
		solana.NewAccountMeta(owner, false, true),
	)
}

func NewApproveInstruction(amount uint64, src, delegate, owner solana.PublicKey) (solana.Instruction, error) {
	return build(Approve{Amount: amount},
		solana.NewAccountMeta(src, true, false),
		solana.NewAccountMeta(delegate, false, false),
		solana.NewAccountMeta(owner, false, true),
	)
}

func NewRevokeInstruction(src, owner solana.PublicKey) (solana.Instruction, error) {
	return build(Revoke{},
		solana.NewAccountMeta(src, true, false),
		solana.NewAccountMeta(owner, false, true),
	)
}

func NewMintToInstruction(amount uint64, mint, dst, authority solana.PublicKey) (solana.Instruction, error) {
	return build(MintTo{Amount: amount},
		solana.NewAccountMeta(mint, true, false),
		solana.NewAccountMeta(dst, true, false),
		solana.NewAccountMeta(authority, false, true),
	)
}

func NewBurnInstruction(amount uint64, account, mint, owner solana.PublicKey) (solana.Instruction, error) {
	return build(Burn{Amount: amount},
		solana.NewAccountMeta(account, true, false),
		solana.NewAccountMeta(mint, true, false),
		solana.NewAccountMeta(owner, false, true),
	)
}

func NewCloseAccountInstruction(account, dst, owner solana.PublicKey) (solana.Instruction, error) {
	return build(CloseAccount{},
		solana.NewAccountMeta(account, true, false),
		solana.NewAccountMeta(dst, true, false),
		solana.NewAccountMeta(owner, false, true),
	)
}

func NewFreezeAccountInstruction(account, mint, authority solana.PublicKey) (solana.Instruction, error) {
	return build(FreezeAccount{},
		solana.NewAccountMeta(account, true, false),
		solana.NewAccountMeta(mint, false, false),
		solana.NewAccountMeta(authority, false, true),
	)
}

func NewThawAccountInstruction(account, mint, authority solana.PublicKey) (solana.Instruction, error) {
	return build(ThawAccount{},
		solana.NewAccountMeta(account, true, false),
		solana.NewAccountMeta(mint, false, false),
		solana.NewAccountMeta(authority, false, true),
	)
}

func NewSyncNativeInstruction(account solana.PublicKey) (solana.Instruction, error) {
	return build(SyncNative{}, solana.NewAccountMeta(account, true, false))
}
