package layout

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	bin "github.com/gagliardetto/binary"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
)

// Variant is a typed instruction that can be encoded through a Registry.
type Variant interface {
	Name() string
	Record() Record
}

// Entry binds an instruction tag to the schema of its arguments.
type Entry struct {
	Tag    uint8
	Schema Schema
}

// Name returns the variant name.
func (e Entry) Name() string {
	return e.Schema.Name
}

// Span returns the encoded size including the tag byte.
func (e Entry) Span() int {
	return 1 + e.Schema.Span()
}

// Registry is the closed instruction table of one program.
//
// It is built once and never mutated, so concurrent use needs no locking.
type Registry struct {
	program string
	byTag   map[uint8]Entry
	byName  map[string]Entry
}

// NewRegistry builds a registry and rejects duplicate tags or names.
func NewRegistry(program string, entries ...Entry) (*Registry, error) {
	r := &Registry{
		program: program,
		byTag:   make(map[uint8]Entry, len(entries)),
		byName:  make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		if prev, ok := r.byTag[e.Tag]; ok {
			return nil, fmt.Errorf("%s: tag %d used by %s and %s", program, e.Tag, prev.Name(), e.Name())
		}
		key := normalize(e.Name())
		if _, ok := r.byName[key]; ok {
			return nil, fmt.Errorf("%s: duplicate instruction name %s", program, e.Name())
		}
		r.byTag[e.Tag] = e
		r.byName[key] = e
	}
	return r, nil
}

// MustNewRegistry is NewRegistry that panics on error. Use it for package-level tables.
func MustNewRegistry(program string, entries ...Entry) *Registry {
	r, err := NewRegistry(program, entries...)
	if err != nil {
		panic("layout: " + err.Error())
	}
	return r
}

// Program returns the program name the registry was built for.
func (r *Registry) Program() string {
	return r.program
}

// Lookup finds an entry by name. Names match ignoring case and underscores, so
// "add_liquidity", "addLiquidity" and "AddLiquidity" are the same instruction.
func (r *Registry) Lookup(name string) (Entry, error) {
	e, ok := r.byName[normalize(name)]
	if !ok {
		return Entry{}, errs.UnknownInstruction("%s: no instruction named %q", r.program, name)
	}
	return e, nil
}

// Entries returns all entries ordered by tag.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.byTag))
	for _, e := range r.byTag {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// Encode serializes [tag][fields] for the named instruction into a buffer of exactly
// the variant's span.
func (r *Registry) Encode(name string, rec Record) ([]byte, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	buf.Grow(e.Span())
	enc := bin.NewBinEncoder(buf)
	if err := enc.WriteUint8(e.Tag); err != nil {
		return nil, err
	}
	if err := e.Schema.encodeTo(enc, rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeVariant encodes a typed variant.
func (r *Registry) EncodeVariant(v Variant) ([]byte, error) {
	return r.Encode(v.Name(), v.Record())
}

// Decode reads the tag byte and parses the arguments of the matching variant.
// The buffer must be exactly the variant's span.
func (r *Registry) Decode(data []byte) (Entry, Record, error) {
	if len(data) == 0 {
		return Entry{}, nil, errs.LengthMismatch(r.program+" instruction", 1, 0)
	}
	e, ok := r.byTag[data[0]]
	if !ok {
		return Entry{}, nil, errs.UnknownInstruction("%s: no instruction with tag %d", r.program, data[0])
	}
	rec, err := e.Schema.Decode(data[1:])
	if err != nil {
		return Entry{}, nil, err
	}
	return e, rec, nil
}

// AccountRegistry holds the account schemas of one program.
type AccountRegistry struct {
	byName map[string]Schema
}

// MustNewAccountRegistry builds an account registry and panics on a duplicate name.
func MustNewAccountRegistry(schemas ...Schema) *AccountRegistry {
	r := &AccountRegistry{byName: make(map[string]Schema, len(schemas))}
	for _, s := range schemas {
		key := normalize(s.Name)
		if _, ok := r.byName[key]; ok {
			panic(fmt.Sprintf("layout: duplicate account schema %s", s.Name))
		}
		r.byName[key] = s
	}
	return r
}

// Schema finds a schema by name.
func (r *AccountRegistry) Schema(name string) (Schema, error) {
	s, ok := r.byName[normalize(name)]
	if !ok {
		return Schema{}, errs.UnknownSchema(name)
	}
	return s, nil
}

// Decode parses account data with the named schema.
func (r *AccountRegistry) Decode(name string, data []byte) (Record, error) {
	s, err := r.Schema(name)
	if err != nil {
		return nil, err
	}
	return s.Decode(data)
}

// Schemas returns all schemas ordered by name.
func (r *AccountRegistry) Schemas() []Schema {
	out := make([]Schema, 0, len(r.byName))
	for _, s := range r.byName {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
}
