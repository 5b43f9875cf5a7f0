package token

import (
	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/layout"
)

// AccountState is the state byte of a token account.
type AccountState uint8

const (
	AccountStateUninitialized AccountState = iota
	AccountStateInitialized
	AccountStateFrozen
)

// AccountSchema is the 165-byte token account. Options are a u32 tag followed by the value.
var AccountSchema = layout.NewSchema("account",
	layout.Field{Name: "mint", Kind: layout.PublicKey},
	layout.Field{Name: "owner", Kind: layout.PublicKey},
	layout.Field{Name: "amount", Kind: layout.U64},
	layout.Field{Name: "delegate_option", Kind: layout.U32},
	layout.Field{Name: "delegate", Kind: layout.PublicKey},
	layout.Field{Name: "state", Kind: layout.U8},
	layout.Field{Name: "is_native_option", Kind: layout.U32},
	layout.Field{Name: "is_native", Kind: layout.U64},
	layout.Field{Name: "delegated_amount", Kind: layout.U64},
	layout.Field{Name: "close_authority_option", Kind: layout.U32},
	layout.Field{Name: "close_authority", Kind: layout.PublicKey},
)

// MintSchema is the 82-byte mint account.
var MintSchema = layout.NewSchema("mint",
	layout.Field{Name: "mint_authority_option", Kind: layout.U32},
	layout.Field{Name: "mint_authority", Kind: layout.PublicKey},
	layout.Field{Name: "supply", Kind: layout.U64},
	layout.Field{Name: "decimals", Kind: layout.U8},
	layout.Field{Name: "is_initialized", Kind: layout.U8},
	layout.Field{Name: "freeze_authority_option", Kind: layout.U32},
	layout.Field{Name: "freeze_authority", Kind: layout.PublicKey},
)

// Accounts holds the account schemas of the token program.
var Accounts = layout.MustNewAccountRegistry(AccountSchema, MintSchema)

// Account is a decoded token account.
type Account struct {
	Mint     solana.PublicKey
	Owner    solana.PublicKey
	Amount   uint64
	Delegate *solana.PublicKey
	State    AccountState
	// IsNative holds the rent-exempt reserve of a wrapped SOL account.
	IsNative        *uint64
	DelegatedAmount uint64
	CloseAuthority  *solana.PublicKey
}

func DecodeAccount(data []byte) (*Account, error) {
	rec, err := AccountSchema.Decode(data)
	if err != nil {
		return nil, err
	}
	f := rec.Fields()
	acc := &Account{
		Mint:            f.PublicKey("mint"),
		Owner:           f.PublicKey("owner"),
		Amount:          f.Uint64("amount"),
		Delegate:        someKey(f.Uint32("delegate_option"), f.PublicKey("delegate")),
		State:           AccountState(f.Uint8("state")),
		DelegatedAmount: f.Uint64("delegated_amount"),
		CloseAuthority:  someKey(f.Uint32("close_authority_option"), f.PublicKey("close_authority")),
	}
	if f.Uint32("is_native_option") != 0 {
		reserve := f.Uint64("is_native")
		acc.IsNative = &reserve
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return acc, nil
}

func (a *Account) Record() layout.Record {
	delegateOption, delegate := optionKey(a.Delegate)
	closeOption, closeAuthority := optionKey(a.CloseAuthority)
	var nativeOption uint32
	var native uint64
	if a.IsNative != nil {
		nativeOption, native = 1, *a.IsNative
	}
	return layout.Record{
		"mint":                   a.Mint,
		"owner":                  a.Owner,
		"amount":                 a.Amount,
		"delegate_option":        delegateOption,
		"delegate":               delegate,
		"state":                  uint8(a.State),
		"is_native_option":       nativeOption,
		"is_native":              native,
		"delegated_amount":       a.DelegatedAmount,
		"close_authority_option": closeOption,
		"close_authority":        closeAuthority,
	}
}

func (a *Account) Encode() ([]byte, error) {
	return AccountSchema.Encode(a.Record())
}

// Mint is a decoded mint account.
type Mint struct {
	MintAuthority   *solana.PublicKey
	Supply          uint64
	Decimals        uint8
	IsInitialized   bool
	FreezeAuthority *solana.PublicKey
}

func DecodeMint(data []byte) (*Mint, error) {
	rec, err := MintSchema.Decode(data)
	if err != nil {
		return nil, err
	}
	f := rec.Fields()
	m := &Mint{
		MintAuthority:   someKey(f.Uint32("mint_authority_option"), f.PublicKey("mint_authority")),
		Supply:          f.Uint64("supply"),
		Decimals:        f.Uint8("decimals"),
		IsInitialized:   f.Uint8("is_initialized") != 0,
		FreezeAuthority: someKey(f.Uint32("freeze_authority_option"), f.PublicKey("freeze_authority")),
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mint) Record() layout.Record {
	mintOption, mintAuthority := optionKey(m.MintAuthority)
	freezeOption, freezeAuthority := optionKey(m.FreezeAuthority)
	var initialized uint8
	if m.IsInitialized {
		initialized = 1
	}
	return layout.Record{
		"mint_authority_option":   mintOption,
		"mint_authority":          mintAuthority,
		"supply":                  m.Supply,
		"decimals":                m.Decimals,
		"is_initialized":          initialized,
		"freeze_authority_option": freezeOption,
		"freeze_authority":        freezeAuthority,
	}
}

func (m *Mint) Encode() ([]byte, error) {
	return MintSchema.Encode(m.Record())
}
