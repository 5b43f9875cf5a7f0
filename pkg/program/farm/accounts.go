package farm

import (
	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/layout"
)

// StakePoolState is the state byte of a stake pool.
type StakePoolState uint8

const (
	StakePoolStateUninitialized StakePoolState = iota
	StakePoolStateInitialized
	StakePoolStateFrozen
)

// StakePoolSchema is the stake pool account. Compensation is a u128 reward accumulator.
var StakePoolSchema = layout.NewSchema("stake_pool",
	layout.Field{Name: "owner", Kind: layout.PublicKey},
	layout.Field{Name: "state", Kind: layout.U8},
	layout.Field{Name: "mint_share", Kind: layout.PublicKey},
	layout.Field{Name: "mint_token", Kind: layout.PublicKey},
	layout.Field{Name: "treasury_token", Kind: layout.PublicKey},
	layout.Field{Name: "reward", Kind: layout.U64},
	layout.Field{Name: "period", Kind: layout.U64},
	layout.Field{Name: "genesis_timestamp", Kind: layout.U64},
	layout.Field{Name: "compensation", Kind: layout.U128},
	layout.Field{Name: "treasury_sen", Kind: layout.PublicKey},
)

// DebtSchema is the per-staker debt account.
var DebtSchema = layout.NewSchema("debt",
	layout.Field{Name: "stake_pool", Kind: layout.PublicKey},
	layout.Field{Name: "owner", Kind: layout.PublicKey},
	layout.Field{Name: "account", Kind: layout.PublicKey},
	layout.Field{Name: "debt", Kind: layout.U64},
	layout.Field{Name: "is_initialized", Kind: layout.U8},
)

// Accounts holds the account schemas of the farming program.
var Accounts = layout.MustNewAccountRegistry(StakePoolSchema, DebtSchema)

type StakePool struct {
	Owner            solana.PublicKey
	State            StakePoolState
	MintShare        solana.PublicKey
	MintToken        solana.PublicKey
	TreasuryToken    solana.PublicKey
	Reward           uint64
	Period           uint64
	GenesisTimestamp uint64
	Compensation     math.Int
	TreasurySen      solana.PublicKey
}

func DecodeStakePool(data []byte) (*StakePool, error) {
	rec, err := StakePoolSchema.Decode(data)
	if err != nil {
		return nil, err
	}
	f := rec.Fields()
	p := &StakePool{
		Owner:            f.PublicKey("owner"),
		State:            StakePoolState(f.Uint8("state")),
		MintShare:        f.PublicKey("mint_share"),
		MintToken:        f.PublicKey("mint_token"),
		TreasuryToken:    f.PublicKey("treasury_token"),
		Reward:           f.Uint64("reward"),
		Period:           f.Uint64("period"),
		GenesisTimestamp: f.Uint64("genesis_timestamp"),
		Compensation:     f.Int("compensation"),
		TreasurySen:      f.PublicKey("treasury_sen"),
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *StakePool) Record() layout.Record {
	compensation := p.Compensation
	if compensation.IsNil() {
		compensation = math.ZeroInt()
	}
	return layout.Record{
		"owner":             p.Owner,
		"state":             uint8(p.State),
		"mint_share":        p.MintShare,
		"mint_token":        p.MintToken,
		"treasury_token":    p.TreasuryToken,
		"reward":            p.Reward,
		"period":            p.Period,
		"genesis_timestamp": p.GenesisTimestamp,
		"compensation":      compensation,
		"treasury_sen":      p.TreasurySen,
	}
}

func (p *StakePool) Encode() ([]byte, error) {
	return StakePoolSchema.Encode(p.Record())
}

type Debt struct {
	StakePool     solana.PublicKey
	Owner         solana.PublicKey
	Account       solana.PublicKey
	Debt          uint64
	IsInitialized bool
}

func DecodeDebt(data []byte) (*Debt, error) {
	rec, err := DebtSchema.Decode(data)
	if err != nil {
		return nil, err
	}
	f := rec.Fields()
	d := &Debt{
		StakePool:     f.PublicKey("stake_pool"),
		Owner:         f.PublicKey("owner"),
		Account:       f.PublicKey("account"),
		Debt:          f.Uint64("debt"),
		IsInitialized: f.Uint8("is_initialized") != 0,
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Debt) Record() layout.Record {
	var initialized uint8
	if d.IsInitialized {
		initialized = 1
	}
	return layout.Record{
		"stake_pool":     d.StakePool,
		"owner":          d.Owner,
		"account":        d.Account,
		"debt":           d.Debt,
		"is_initialized": initialized,
	}
}

func (d *Debt) Encode() ([]byte, error) {
	return DebtSchema.Encode(d.Record())
}

// DeriveTreasurerAddress returns the program authority over the treasuries of stakePool.
func DeriveTreasurerAddress(programID, stakePool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{stakePool.Bytes()}, programID)
}

// DeriveDebtAddress returns the debt account of owner in stakePool.
func DeriveDebtAddress(programID, stakePool, owner solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{owner.Bytes(), stakePool.Bytes(), programID.Bytes()}, programID)
}
