// Package layout maps fixed-width records to the byte layout of the on-chain programs.
//
// A Schema is an ordered list of fixed-width fields. Offsets follow from field order, so
// a schema fully determines the span of the records it describes. Integers are unsigned
// little-endian; public keys are raw 32-byte spans.
package layout

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"maps"
	"slices"

	"cosmossdk.io/math"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
)

// Kind is the wire type of a field.
type Kind uint8

const (
	U8 Kind = iota
	U32
	U64
	U128
	PublicKey
)

// Size returns the encoded width of the kind in bytes.
func (k Kind) Size() int {
	switch k {
	case U8:
		return 1
	case U32:
		return 4
	case U64:
		return 8
	case U128:
		return 16
	case PublicKey:
		return solana.PublicKeyLength
	}
	panic(fmt.Sprintf("layout: unknown kind %d", k))
}

// Bits returns the integer width of the kind, or 0 for keys.
func (k Kind) Bits() int {
	if k == PublicKey {
		return 0
	}
	return k.Size() * 8
}

func (k Kind) String() string {
	switch k {
	case U8:
		return "u8"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	case PublicKey:
		return "publicKey"
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Field is a named, fixed-width slot of a schema.
type Field struct {
	Name string
	Kind Kind
}

// Schema describes a fixed-size record.
type Schema struct {
	Name   string
	Fields []Field
}

// NewSchema builds a schema and panics on a duplicate field name.
func NewSchema(name string, fields ...Field) Schema {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.Name]; ok {
			panic(fmt.Sprintf("layout: schema %s: duplicate field %q", name, f.Name))
		}
		seen[f.Name] = struct{}{}
	}
	return Schema{Name: name, Fields: fields}
}

// Span returns the encoded size of the schema in bytes.
func (s Schema) Span() int {
	n := 0
	for _, f := range s.Fields {
		n += f.Kind.Size()
	}
	return n
}

// Offset returns the byte offset of the named field.
func (s Schema) Offset(name string) (int, bool) {
	off := 0
	for _, f := range s.Fields {
		if f.Name == name {
			return off, true
		}
		off += f.Kind.Size()
	}
	return 0, false
}

// Encode serializes rec into a buffer of exactly Span bytes. rec must hold every field
// of the schema and nothing else.
func (s Schema) Encode(rec Record) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(s.Span())
	if err := s.encodeTo(bin.NewBinEncoder(buf), rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s Schema) encodeTo(enc *bin.Encoder, rec Record) error {
	for _, name := range slices.Sorted(maps.Keys(rec)) {
		if _, ok := s.Offset(name); !ok {
			return errs.InvalidArgument("%s: unknown field %q", s.Name, name)
		}
	}
	for _, f := range s.Fields {
		v, ok := rec[f.Name]
		if !ok {
			return errs.InvalidArgument("%s: missing field %q", s.Name, f.Name)
		}
		if err := encodeField(enc, f, v); err != nil {
			return errs.InvalidArgument("%s: %v", s.Name, err)
		}
	}
	return nil
}

func encodeField(enc *bin.Encoder, f Field, v any) error {
	if f.Kind == PublicKey {
		key, err := toPublicKey(v)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		return enc.WriteBytes(key[:], false)
	}

	n, err := toInt(v)
	if err != nil {
		return fmt.Errorf("field %q: %w", f.Name, err)
	}
	if n.IsNegative() || n.BigInt().BitLen() > f.Kind.Bits() {
		return fmt.Errorf("field %q: %s out of %s range", f.Name, n, f.Kind)
	}
	switch f.Kind {
	case U8:
		return enc.WriteUint8(uint8(n.Uint64()))
	case U32:
		return enc.WriteUint32(uint32(n.Uint64()), binary.LittleEndian)
	case U64:
		return enc.WriteUint64(n.Uint64(), binary.LittleEndian)
	case U128:
		b := make([]byte, 16)
		uint128.FromBig(n.BigInt()).PutBytes(b)
		return enc.WriteBytes(b, false)
	}
	return fmt.Errorf("field %q: unknown kind %d", f.Name, f.Kind)
}

// Decode parses data into a record. The buffer must be exactly Span bytes long.
func (s Schema) Decode(data []byte) (Record, error) {
	if len(data) != s.Span() {
		return nil, errs.LengthMismatch(s.Name, s.Span(), len(data))
	}
	return s.decodeFrom(bin.NewBinDecoder(data))
}

func (s Schema) decodeFrom(dec *bin.Decoder) (Record, error) {
	rec := make(Record, len(s.Fields))
	for _, f := range s.Fields {
		v, err := decodeField(dec, f)
		if err != nil {
			return nil, errs.InvalidArgument("%s: field %q", s.Name, f.Name).WithCause(err)
		}
		rec[f.Name] = v
	}
	return rec, nil
}

func decodeField(dec *bin.Decoder, f Field) (any, error) {
	switch f.Kind {
	case U8:
		v, err := dec.ReadUint8()
		if err != nil {
			return nil, err
		}
		return math.NewIntFromUint64(uint64(v)), nil
	case U32:
		v, err := dec.ReadUint32(binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		return math.NewIntFromUint64(uint64(v)), nil
	case U64:
		v, err := dec.ReadUint64(binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		return math.NewIntFromUint64(v), nil
	case U128:
		b, err := dec.ReadNBytes(16)
		if err != nil {
			return nil, err
		}
		return math.NewIntFromBigInt(uint128.FromBytes(b).Big()), nil
	case PublicKey:
		b, err := dec.ReadNBytes(solana.PublicKeyLength)
		if err != nil {
			return nil, err
		}
		return solana.PublicKeyFromBytes(b), nil
	}
	return nil, fmt.Errorf("unknown kind %d", f.Kind)
}
