package layout

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
)

// Record holds field values by name.
//
// Decoded records carry math.Int for every integer kind and solana.PublicKey for keys.
// Encode also accepts native unsigned integers, *big.Int and base58 key strings.
type Record map[string]any

// Int returns an integer field.
func (r Record) Int(name string) (math.Int, error) {
	v, ok := r[name]
	if !ok {
		return math.Int{}, errs.InvalidArgument("missing field %q", name)
	}
	n, err := toInt(v)
	if err != nil {
		return math.Int{}, errs.InvalidArgument("field %q: %v", name, err)
	}
	return n, nil
}

// Uint64 returns an integer field that fits in 64 bits.
func (r Record) Uint64(name string) (uint64, error) {
	n, err := r.Int(name)
	if err != nil {
		return 0, err
	}
	if n.IsNegative() || n.BigInt().BitLen() > 64 {
		return 0, errs.InvalidArgument("field %q: %s does not fit u64", name, n)
	}
	return n.Uint64(), nil
}

// Uint8 returns an integer field that fits in 8 bits.
func (r Record) Uint8(name string) (uint8, error) {
	v, err := r.Uint64(name)
	if err != nil {
		return 0, err
	}
	if v > 0xff {
		return 0, errs.InvalidArgument("field %q: %d does not fit u8", name, v)
	}
	return uint8(v), nil
}

// PublicKey returns a key field.
func (r Record) PublicKey(name string) (solana.PublicKey, error) {
	v, ok := r[name]
	if !ok {
		return solana.PublicKey{}, errs.InvalidArgument("missing field %q", name)
	}
	key, err := toPublicKey(v)
	if err != nil {
		return solana.PublicKey{}, errs.InvalidArgument("field %q: %v", name, err)
	}
	return key, nil
}

// Equal reports whether both records hold the same fields with equal values.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for name, v := range r {
		w, ok := other[name]
		if !ok {
			return false
		}
		if a, err := toPublicKey(v); err == nil {
			b, err := toPublicKey(w)
			if err != nil || !a.Equals(b) {
				return false
			}
			continue
		}
		a, err := toInt(v)
		if err != nil {
			return false
		}
		b, err := toInt(w)
		if err != nil || !a.Equal(b) {
			return false
		}
	}
	return true
}

func invalidWidth(name, kind string) error {
	return errs.InvalidArgument("field %q does not fit %s", name, kind)
}

func toInt(v any) (math.Int, error) {
	switch n := v.(type) {
	case math.Int:
		if n.IsNil() {
			return math.Int{}, fmt.Errorf("nil integer")
		}
		return n, nil
	case *big.Int:
		if n == nil {
			return math.Int{}, fmt.Errorf("nil integer")
		}
		if n.BitLen() > math.MaxBitLen {
			return math.Int{}, fmt.Errorf("%d-bit integer exceeds %d bits", n.BitLen(), math.MaxBitLen)
		}
		return math.NewIntFromBigInt(n), nil
	case uint64:
		return math.NewIntFromUint64(n), nil
	case uint32:
		return math.NewIntFromUint64(uint64(n)), nil
	case uint8:
		return math.NewIntFromUint64(uint64(n)), nil
	case int:
		return math.NewInt(int64(n)), nil
	}
	return math.Int{}, fmt.Errorf("expected integer, got %T", v)
}

func toPublicKey(v any) (solana.PublicKey, error) {
	switch k := v.(type) {
	case solana.PublicKey:
		return k, nil
	case string:
		key, err := solana.PublicKeyFromBase58(k)
		if err != nil {
			return solana.PublicKey{}, fmt.Errorf("malformed key %q: %w", k, err)
		}
		return key, nil
	}
	return solana.PublicKey{}, fmt.Errorf("expected public key, got %T", v)
}
