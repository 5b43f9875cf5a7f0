package swap

import (
	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/layout"
)

// Instructions is the instruction table of the swap program.
var Instructions = layout.MustNewRegistry("swap",
	layout.Entry{Tag: TagInitializePool, Schema: layout.NewSchema("initialize_pool",
		layout.Field{Name: "delta_a", Kind: layout.U64},
		layout.Field{Name: "delta_b", Kind: layout.U64},
		layout.Field{Name: "fee", Kind: layout.U64},
		layout.Field{Name: "tax", Kind: layout.U64},
	)},
	layout.Entry{Tag: TagAddLiquidity, Schema: layout.NewSchema("add_liquidity",
		layout.Field{Name: "delta_a", Kind: layout.U64},
		layout.Field{Name: "delta_b", Kind: layout.U64},
	)},
	layout.Entry{Tag: TagAddSidedLiquidity, Schema: layout.NewSchema("add_sided_liquidity",
		layout.Field{Name: "delta_a", Kind: layout.U64},
		layout.Field{Name: "delta_b", Kind: layout.U64},
	)},
	layout.Entry{Tag: TagRemoveLiquidity, Schema: layout.NewSchema("remove_liquidity",
		layout.Field{Name: "lpt", Kind: layout.U64},
	)},
	layout.Entry{Tag: TagSwap, Schema: layout.NewSchema("swap",
		layout.Field{Name: "amount", Kind: layout.U64},
		layout.Field{Name: "limit", Kind: layout.U64},
	)},
	layout.Entry{Tag: TagRoute, Schema: layout.NewSchema("route",
		layout.Field{Name: "amount", Kind: layout.U64},
		layout.Field{Name: "limit", Kind: layout.U64},
	)},
	layout.Entry{Tag: TagFreezePool, Schema: layout.NewSchema("freeze_pool")},
	layout.Entry{Tag: TagThawPool, Schema: layout.NewSchema("thaw_pool")},
	layout.Entry{Tag: TagUpdateFee, Schema: layout.NewSchema("update_fee",
		layout.Field{Name: "fee", Kind: layout.U64},
		layout.Field{Name: "tax", Kind: layout.U64},
	)},
	layout.Entry{Tag: TagTransferOwnership, Schema: layout.NewSchema("transfer_ownership")},
	layout.Entry{Tag: TagWrap, Schema: layout.NewSchema("wrap",
		layout.Field{Name: "amount", Kind: layout.U64},
	)},
	layout.Entry{Tag: TagUnwrap, Schema: layout.NewSchema("unwrap")},
)

type InitializePool struct {
	DeltaA uint64
	DeltaB uint64
	Fee    uint64
	Tax    uint64
}

func (InitializePool) Name() string { return "initialize_pool" }

func (ix InitializePool) Record() layout.Record {
	return layout.Record{"delta_a": ix.DeltaA, "delta_b": ix.DeltaB, "fee": ix.Fee, "tax": ix.Tax}
}

type AddLiquidity struct {
	DeltaA uint64
	DeltaB uint64
}

func (AddLiquidity) Name() string { return "add_liquidity" }

func (ix AddLiquidity) Record() layout.Record {
	return layout.Record{"delta_a": ix.DeltaA, "delta_b": ix.DeltaB}
}

// AddSidedLiquidity deposits in any ratio; the program rakes the excess through the pool.
type AddSidedLiquidity struct {
	DeltaA uint64
	DeltaB uint64
}

func (AddSidedLiquidity) Name() string { return "add_sided_liquidity" }

func (ix AddSidedLiquidity) Record() layout.Record {
	return layout.Record{"delta_a": ix.DeltaA, "delta_b": ix.DeltaB}
}

type RemoveLiquidity struct {
	LPT uint64
}

func (RemoveLiquidity) Name() string { return "remove_liquidity" }

func (ix RemoveLiquidity) Record() layout.Record {
	return layout.Record{"lpt": ix.LPT}
}

// Swap sells Amount and fails on-chain if the output is below Limit.
type Swap struct {
	Amount uint64
	Limit  uint64
}

func (Swap) Name() string { return "swap" }

func (ix Swap) Record() layout.Record {
	return layout.Record{"amount": ix.Amount, "limit": ix.Limit}
}

// Route chains swaps across the pools passed as accounts. Limit applies to the last hop.
type Route struct {
	Amount uint64
	Limit  uint64
}

func (Route) Name() string { return "route" }

func (ix Route) Record() layout.Record {
	return layout.Record{"amount": ix.Amount, "limit": ix.Limit}
}

type FreezePool struct{}

func (FreezePool) Name() string { return "freeze_pool" }
func (FreezePool) Record() layout.Record { return layout.Record{} }

type ThawPool struct{}

func (ThawPool) Name() string { return "thaw_pool" }
func (ThawPool) Record() layout.Record { return layout.Record{} }

type UpdateFee struct {
	Fee uint64
	Tax uint64
}

func (UpdateFee) Name() string { return "update_fee" }

func (ix UpdateFee) Record() layout.Record {
	return layout.Record{"fee": ix.Fee, "tax": ix.Tax}
}

type TransferOwnership struct{}

func (TransferOwnership) Name() string { return "transfer_ownership" }
func (TransferOwnership) Record() layout.Record { return layout.Record{} }

// Wrap moves Amount lamports into a wrapped SOL account owned by the caller.
type Wrap struct {
	Amount uint64
}

func (Wrap) Name() string { return "wrap" }

func (ix Wrap) Record() layout.Record {
	return layout.Record{"amount": ix.Amount}
}

type Unwrap struct{}

func (Unwrap) Name() string { return "unwrap" }
func (Unwrap) Record() layout.Record { return layout.Record{} }

// EncodeInstruction serializes a swap instruction.
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
	case TagInitializePool:
		v = InitializePool{DeltaA: f.Uint64("delta_a"), DeltaB: f.Uint64("delta_b"), Fee: f.Uint64("fee"), Tax: f.Uint64("tax")}
	case TagAddLiquidity:
		v = AddLiquidity{DeltaA: f.Uint64("delta_a"), DeltaB: f.Uint64("delta_b")}
	case TagAddSidedLiquidity:
		v = AddSidedLiquidity{DeltaA: f.Uint64("delta_a"), DeltaB: f.Uint64("delta_b")}
	case TagRemoveLiquidity:
		v = RemoveLiquidity{LPT: f.Uint64("lpt")}
	case TagSwap:
		v = Swap{Amount: f.Uint64("amount"), Limit: f.Uint64("limit")}
	case TagRoute:
		v = Route{Amount: f.Uint64("amount"), Limit: f.Uint64("limit")}
	case TagFreezePool:
		v = FreezePool{}
	case TagThawPool:
		v = ThawPool{}
	case TagUpdateFee:
		v = UpdateFee{Fee: f.Uint64("fee"), Tax: f.Uint64("tax")}
	case TagTransferOwnership:
		v = TransferOwnership{}
	case TagWrap:
		v = Wrap{Amount: f.Uint64("amount")}
	case TagUnwrap:
		v = Unwrap{}
	default:
		return nil, errs.UnknownInstruction("swap: tag %d has no variant", e.Tag)
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return v, nil
}
