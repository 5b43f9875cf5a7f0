package layout

import (
	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
)

// Fields reads typed values out of a record and keeps the first error, so a decoder can
// read every field and check once.
type Fields struct {
	rec Record
	err error
}

// Fields returns a reader over the record.
func (r Record) Fields() *Fields {
	return &Fields{rec: r}
}

func (f *Fields) Uint8(name string) uint8 {
	if f.err != nil {
		return 0
	}
	v, err := f.rec.Uint8(name)
	f.err = err
	return v
}

func (f *Fields) Uint32(name string) uint32 {
	if f.err != nil {
		return 0
	}
	v, err := f.rec.Uint64(name)
	if err == nil && v > 0xffffffff {
		v, err = 0, invalidWidth(name, "u32")
	}
	f.err = err
	return uint32(v)
}

func (f *Fields) Uint64(name string) uint64 {
	if f.err != nil {
		return 0
	}
	v, err := f.rec.Uint64(name)
	f.err = err
	return v
}

func (f *Fields) Int(name string) math.Int {
	if f.err != nil {
		return math.ZeroInt()
	}
	v, err := f.rec.Int(name)
	f.err = err
	return v
}

func (f *Fields) PublicKey(name string) solana.PublicKey {
	if f.err != nil {
		return solana.PublicKey{}
	}
	v, err := f.rec.PublicKey(name)
	f.err = err
	return v
}

// Err returns the first error met while reading.
func (f *Fields) Err() error {
	return f.err
}
