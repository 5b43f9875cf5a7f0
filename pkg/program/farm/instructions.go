// Package farm encodes instructions and decodes accounts of the Sen farming program.
package farm

import (
	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/layout"
)

var (
	// SENFARM_PROGRAM_ID is the devnet deployment.
	SENFARM_PROGRAM_ID = solana.MustPublicKeyFromBase58("CUZmmgAaH8JzJVF1L8ZwLXdRg7iWNNsN6p8fgEwsGN3y")
)

// Instruction tags
const (
	TagInitializeStakePool uint8 = iota
	TagInitializeAccounts
	TagStake
	TagUnstake
	TagHarvest
	TagFreezeStakePool
	TagThawStakePool
	TagSeed
	TagUnseed
	TagTransferStakePoolOwnership
)

func amountSchema(name string) layout.Schema {
	return layout.NewSchema(name, layout.Field{Name: "amount", Kind: layout.U64})
}

// Instructions is the instruction table of the farming program.
var Instructions = layout.MustNewRegistry("farm",
	layout.Entry{Tag: TagInitializeStakePool, Schema: layout.NewSchema("initialize_stake_pool",
		layout.Field{Name: "reward", Kind: layout.U64},
		layout.Field{Name: "period", Kind: layout.U64},
	)},
	layout.Entry{Tag: TagInitializeAccounts, Schema: layout.NewSchema("initialize_accounts")},
	layout.Entry{Tag: TagStake, Schema: amountSchema("stake")},
	layout.Entry{Tag: TagUnstake, Schema: amountSchema("unstake")},
	layout.Entry{Tag: TagHarvest, Schema: layout.NewSchema("harvest")},
	layout.Entry{Tag: TagFreezeStakePool, Schema: layout.NewSchema("freeze_stake_pool")},
	layout.Entry{Tag: TagThawStakePool, Schema: layout.NewSchema("thaw_stake_pool")},
	layout.Entry{Tag: TagSeed, Schema: amountSchema("seed")},
	layout.Entry{Tag: TagUnseed, Schema: amountSchema("unseed")},
	layout.Entry{Tag: TagTransferStakePoolOwnership, Schema: layout.NewSchema("transfer_stake_pool_ownership")},
)

// InitializeStakePool pays Reward SEN per Period seconds to the whole pool.
type InitializeStakePool struct {
	Reward uint64
	Period uint64
}

func (InitializeStakePool) Name() string { return "initialize_stake_pool" }

func (ix InitializeStakePool) Record() layout.Record {
	return layout.Record{"reward": ix.Reward, "period": ix.Period}
}

type InitializeAccounts struct{}

func (InitializeAccounts) Name() string { return "initialize_accounts" }
func (InitializeAccounts) Record() layout.Record { return layout.Record{} }

type Stake struct {
	Amount uint64
}

func (Stake) Name() string { return "stake" }

func (ix Stake) Record() layout.Record { return layout.Record{"amount": ix.Amount} }

type Unstake struct {
	Amount uint64
}

func (Unstake) Name() string { return "unstake" }

func (ix Unstake) Record() layout.Record { return layout.Record{"amount": ix.Amount} }

type Harvest struct{}

func (Harvest) Name() string { return "harvest" }
func (Harvest) Record() layout.Record { return layout.Record{} }

type FreezeStakePool struct{}

func (FreezeStakePool) Name() string { return "freeze_stake_pool" }
func (FreezeStakePool) Record() layout.Record { return layout.Record{} }

type ThawStakePool struct{}

func (ThawStakePool) Name() string { return "thaw_stake_pool" }
func (ThawStakePool) Record() layout.Record { return layout.Record{} }

// Seed funds the reward treasury.
type Seed struct {
	Amount uint64
}

func (Seed) Name() string { return "seed" }

func (ix Seed) Record() layout.Record { return layout.Record{"amount": ix.Amount} }

type Unseed struct {
	Amount uint64
}

func (Unseed) Name() string { return "unseed" }

func (ix Unseed) Record() layout.Record { return layout.Record{"amount": ix.Amount} }

type TransferStakePoolOwnership struct{}

func (TransferStakePoolOwnership) Name() string { return "transfer_stake_pool_ownership" }
func (TransferStakePoolOwnership) Record() layout.Record { return layout.Record{} }

// EncodeInstruction serializes a farming instruction.
func EncodeInstruction(v layout.Variant) ([]byte, error) {
	return Instructions.EncodeVariant(v)
}

// DecodeInstruction parses instruction data into its typed variant.
func DecodeInstruction(data []byte) (layout.Variant, error) {
	e, rec, err := Instructions.Decode(data)
	if err != nil {
		return nil, err
	}
	f := rec.Fields()
	var v layout.Variant
	switch e.Tag {
	case TagInitializeStakePool:
		v = InitializeStakePool{Reward: f.Uint64("reward"), Period: f.Uint64("period")}
	case TagInitializeAccounts:
		v = InitializeAccounts{}
	case TagStake:
		v = Stake{Amount: f.Uint64("amount")}
	case TagUnstake:
		v = Unstake{Amount: f.Uint64("amount")}
	case TagHarvest:
		v = Harvest{}
	case TagFreezeStakePool:
		v = FreezeStakePool{}
	case TagThawStakePool:
		v = ThawStakePool{}
	case TagSeed:
		v = Seed{Amount: f.Uint64("amount")}
	case TagUnseed:
		v = Unseed{Amount: f.Uint64("amount")}
	case TagTransferStakePoolOwnership:
		v = TransferStakePoolOwnership{}
	default:
		return nil, errs.UnknownInstruction("farm: tag %d has no variant", e.Tag)
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return v, nil
}
