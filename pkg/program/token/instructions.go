// Package token encodes the SPL token program instructions used by the Sen programs and
// decodes token and mint accounts.
package token

import (
	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/layout"
)

// Instruction tags. Tags absent here are not used by the SDK.
const (
	TagInitializeMint    uint8 = 0
	TagInitializeAccount uint8 = 1
	TagTransfer          uint8 = 3
	TagApprove           uint8 = 4
	TagRevoke            uint8 = 5
	TagMintTo            uint8 = 7
	TagBurn              uint8 = 8
	TagCloseAccount      uint8 = 9
	TagFreezeAccount     uint8 = 10
	TagThawAccount       uint8 = 11
	TagSyncNative        uint8 = 17
)

func amountSchema(name string) layout.Schema {
	return layout.NewSchema(name, layout.Field{Name: "amount", Kind: layout.U64})
}

// Instructions is the instruction table of the token program.
var Instructions = layout.MustNewRegistry("token",
	layout.Entry{Tag: TagInitializeMint, Schema: layout.NewSchema("initialize_mint",
		layout.Field{Name: "decimals", Kind: layout.U8},
		layout.Field{Name: "mint_authority", Kind: layout.PublicKey},
		layout.Field{Name: "freeze_authority_option", Kind: layout.U8},
		layout.Field{Name: "freeze_authority", Kind: layout.PublicKey},
	)},
	layout.Entry{Tag: TagInitializeAccount, Schema: layout.NewSchema("initialize_account")},
	layout.Entry{Tag: TagTransfer, Schema: amountSchema("transfer")},
	layout.Entry{Tag: TagApprove, Schema: amountSchema("approve")},
	layout.Entry{Tag: TagRevoke, Schema: layout.NewSchema("revoke")},
	layout.Entry{Tag: TagMintTo, Schema: amountSchema("mint_to")},
	layout.Entry{Tag: TagBurn, Schema: amountSchema("burn")},
	layout.Entry{Tag: TagCloseAccount, Schema: layout.NewSchema("close_account")},
	layout.Entry{Tag: TagFreezeAccount, Schema: layout.NewSchema("freeze_account")},
	layout.Entry{Tag: TagThawAccount, Schema: layout.NewSchema("thaw_account")},
	layout.Entry{Tag: TagSyncNative, Schema: layout.NewSchema("sync_native")},
)

// InitializeMint sets up a mint. A nil FreezeAuthority disables freezing.
type InitializeMint struct {
	Decimals        uint8
	MintAuthority   solana.PublicKey
	FreezeAuthority *solana.PublicKey
}

func (InitializeMint) Name() string { return "initialize_mint" }

func (ix InitializeMint) Record() layout.Record {
	option, key := optionKey(ix.FreezeAuthority)
	return layout.Record{
		"decimals":                ix.Decimals,
		"mint_authority":          ix.MintAuthority,
		"freeze_authority_option": uint8(option),
		"freeze_authority":        key,
	}
}

type InitializeAccount struct{}

func (InitializeAccount) Name() string { return "initialize_account" }
func (InitializeAccount) Record() layout.Record { return layout.Record{} }

type Transfer struct {
	Amount uint64
}

func (Transfer) Name() string { return "transfer" }

func (ix Transfer) Record() layout.Record { return layout.Record{"amount": ix.Amount} }

type Approve struct {
	Amount uint64
}

func (Approve) Name() string { return "approve" }

func (ix Approve) Record() layout.Record { return layout.Record{"amount": ix.Amount} }

type Revoke struct{}

func (Revoke) Name() string { return "revoke" }
func (Revoke) Record() layout.Record { return layout.Record{} }

type MintTo struct {
	Amount uint64
}

func (MintTo) Name() string { return "mint_to" }

func (ix MintTo) Record() layout.Record { return layout.Record{"amount": ix.Amount} }

type Burn struct {
	Amount uint64
}

func (Burn) Name() string { return "burn" }

func (ix Burn) Record() layout.Record { return layout.Record{"amount": ix.Amount} }

type CloseAccount struct{}

func (CloseAccount) Name() string { return "close_account" }
func (CloseAccount) Record() layout.Record { return layout.Record{} }

type FreezeAccount struct{}

func (FreezeAccount) Name() string { return "freeze_account" }
func (FreezeAccount) Record() layout.Record { return layout.Record{} }

type ThawAccount struct{}

func (ThawAccount) Name() string { return "thaw_account" }
func (ThawAccount) Record() layout.Record { return layout.Record{} }

// SyncNative updates the amount of a wrapped SOL account to its lamports.
type SyncNative struct{}

func (SyncNative) Name() string { return "sync_native" }
func (SyncNative) Record() layout.Record { return layout.Record{} }

// EncodeInstruction serializes a token instruction.
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
	case TagInitializeMint:
		ix := InitializeMint{
			Decimals:      f.Uint8("decimals"),
			MintAuthority: f.PublicKey("mint_authority"),
		}
		ix.FreezeAuthority = someKey(uint32(f.Uint8("freeze_authority_option")), f.PublicKey("freeze_authority"))
		v = ix
	case TagInitializeAccount:
		v = InitializeAccount{}
	case TagTransfer:
		v = Transfer{Amount: f.Uint64("amount")}
	case TagApprove:
		v = Approve{Amount: f.Uint64("amount")}
	case TagRevoke:
		v = Revoke{}
	case TagMintTo:
		v = MintTo{Amount: f.Uint64("amount")}
	case TagBurn:
		v = Burn{Amount: f.Uint64("amount")}
	case TagCloseAccount:
		v = CloseAccount{}
	case TagFreezeAccount:
		v = FreezeAccount{}
	case TagThawAccount:
		v = ThawAccount{}
	case TagSyncNative:
		v = SyncNative{}
	default:
		return nil, errs.UnknownInstruction("token: tag %d has no variant", e.Tag)
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return v, nil
}

func optionKey(key *solana.PublicKey) (uint32, solana.PublicKey) {
	if key == nil {
		return 0, solana.PublicKey{}
	}
	return 1, *key
}

func someKey(option uint32, key solana.PublicKey) *solana.PublicKey {
	if option == 0 {
		return nil
	}
	return &key
}
