package swap

import (
	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/layout"
)

// PoolSchema is the 257-byte pool account.
var PoolSchema = layout.NewSchema("pool",
	layout.Field{Name: "owner", Kind: layout.PublicKey},
	layout.Field{Name: "state", Kind: layout.U8},
	layout.Field{Name: "mint_lpt", Kind: layout.PublicKey},
	layout.Field{Name: "taxman", Kind: layout.PublicKey},
	layout.Field{Name: "mint_a", Kind: layout.PublicKey},
	layout.Field{Name: "treasury_a", Kind: layout.PublicKey},
	layout.Field{Name: "reserve_a", Kind: layout.U64},
	layout.Field{Name: "mint_b", Kind: layout.PublicKey},
	layout.Field{Name: "treasury_b", Kind: layout.PublicKey},
	layout.Field{Name: "reserve_b", Kind: layout.U64},
	layout.Field{Name: "fee_ratio", Kind: layout.U64},
	layout.Field{Name: "tax_ratio", Kind: layout.U64},
)

// Accounts holds the account schemas of the swap program.
var Accounts = layout.MustNewAccountRegistry(PoolSchema)

// Pool is the decoded state of a pool account.
type Pool struct {
	// Address is the account key. It is not part of the account data.
	Address solana.PublicKey

	Owner     solana.PublicKey
	State     PoolState
	MintLPT   solana.PublicKey
	Taxman    solana.PublicKey
	MintA     solana.PublicKey
	TreasuryA solana.PublicKey
	ReserveA  uint64
	MintB     solana.PublicKey
	TreasuryB solana.PublicKey
	ReserveB  uint64
	FeeRatio  uint64
	TaxRatio  uint64
}

// DecodePool parses pool account data.
func DecodePool(address solana.PublicKey, data []byte) (*Pool, error) {
	rec, err := PoolSchema.Decode(data)
	if err != nil {
		return nil, err
	}
	f := rec.Fields()
	p := &Pool{
		Address:   address,
		Owner:     f.PublicKey("owner"),
		State:     PoolState(f.Uint8("state")),
		MintLPT:   f.PublicKey("mint_lpt"),
		Taxman:    f.PublicKey("taxman"),
		MintA:     f.PublicKey("mint_a"),
		TreasuryA: f.PublicKey("treasury_a"),
		ReserveA:  f.Uint64("reserve_a"),
		MintB:     f.PublicKey("mint_b"),
		TreasuryB: f.PublicKey("treasury_b"),
		ReserveB:  f.Uint64("reserve_b"),
		FeeRatio:  f.Uint64("fee_ratio"),
		TaxRatio:  f.Uint64("tax_ratio"),
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// Record returns the pool fields keyed by schema name.
func (p *Pool) Record() layout.Record {
	return layout.Record{
		"owner":      p.Owner,
		"state":      uint8(p.State),
		"mint_lpt":   p.MintLPT,
		"taxman":     p.Taxman,
		"mint_a":     p.MintA,
		"treasury_a": p.TreasuryA,
		"reserve_a":  p.ReserveA,
		"mint_b":     p.MintB,
		"treasury_b": p.TreasuryB,
		"reserve_b":  p.ReserveB,
		"fee_ratio":  p.FeeRatio,
		"tax_ratio":  p.TaxRatio,
	}
}

// Encode serializes the pool back into account data.
func (p *Pool) Encode() ([]byte, error) {
	return PoolSchema.Encode(p.Record())
}

// DeriveTreasurerAddress returns the program authority over the treasuries of pool.
func DeriveTreasurerAddress(programID, pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{pool.Bytes()}, programID)
}
