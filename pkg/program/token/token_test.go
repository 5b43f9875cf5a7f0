package token

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/layout"
)

func TestInstructionRoundTrip(t *testing.T) {
	freeze := solana.NewWallet().PublicKey()
	variants := []layout.Variant{
		InitializeMint{Decimals: 9, MintAuthority: solana.NewWallet().PublicKey(), FreezeAuthority: &freeze},
		InitializeMint{Decimals: 6, MintAuthority: solana.NewWallet().PublicKey()},
		InitializeAccount{},
		Transfer{Amount: 1},
		Approve{Amount: 2},
		Revoke{},
		MintTo{Amount: 3},
		Burn{Amount: 4},
		CloseAccount{},
		FreezeAccount{},
		ThawAccount{},
		SyncNative{},
	}
	for _, v := range variants {
		data, err := EncodeInstruction(v)
		require.NoError(t, err, v.Name())
		got, err := DecodeInstruction(data)
		require.NoError(t, err, v.Name())
		assert.Equal(t, v, got)
	}
}

func TestInstructionSpans(t *testing.T) {
	cases := map[string]int{
		"initialize_mint": 1 + 1 + 32 + 1 + 32,
		"transfer":        9,
		"sync_native":     1,
		"close_account":   1,
	}
	for name, span := range cases {
		e, err := Instructions.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, span, e.Span(), name)
	}

	data, err := EncodeInstruction(SyncNative{})
	require.NoError(t, err)
	assert.Equal(t, []byte{17}, data)
}

func TestDecodeUnknownTag(t *testing.T) {
	// tag 2 (InitializeMultisig) is not part of the table
	_, err := DecodeInstruction([]byte{2})
	assert.True(t, errors.Is(err, errs.ErrUnknownInstruction))
}

func TestAccountRoundTrip(t *testing.T) {
	assert.Equal(t, 165, AccountSchema.Span())

	reserve := uint64(2_039_280)
	delegate := solana.NewWallet().PublicKey()
	acc := &Account{
		Mint:            solana.NewWallet().PublicKey(),
		Owner:           solana.NewWallet().PublicKey(),
		Amount:          5_000_000,
		Delegate:        &delegate,
		State:           AccountStateInitialized,
		IsNative:        &reserve,
		DelegatedAmount: 10,
	}
	data, err := acc.Encode()
	require.NoError(t, err)
	require.Len(t, data, 165)

	got, err := DecodeAccount(data)
	require.NoError(t, err)
	assert.Equal(t, acc, got)
	assert.Nil(t, got.CloseAuthority)

	_, err = DecodeAccount(data[:164])
	assert.True(t, errors.Is(err, errs.ErrLengthMismatch))
	_, err = DecodeAccount(append(data, 0))
	assert.True(t, errors.Is(err, errs.ErrLengthMismatch))
}

func TestMintRoundTrip(t *testing.T) {
	assert.Equal(t, 82, MintSchema.Span())

	authority := solana.NewWallet().PublicKey()
	mint := &Mint{
		MintAuthority: &authority,
		Supply:        3_000_000_000,
		Decimals:      9,
		IsInitialized: true,
	}
	data, err := mint.Encode()
	require.NoError(t, err)
	require.Len(t, data, 82)

	got, err := DecodeMint(data)
	require.NoError(t, err)
	assert.Equal(t, mint, got)

	// a mint buffer is not a token account
	_, err = Accounts.Decode("account", data)
	assert.True(t, errors.Is(err, errs.ErrLengthMismatch))
	_, err = DecodeMint(data[:81])
	assert.True(t, errors.Is(err, errs.ErrLengthMismatch))
	_, err = DecodeMint(append(data, 0))
	assert.True(t, errors.Is(err, errs.ErrLengthMismatch))
}

func TestTransferInstruction(t *testing.T) {
	src, dst, owner := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	inst, err := NewTransferInstruction(42, src, dst, owner)
	require.NoError(t, err)
	assert.Equal(t, solana.TokenProgramID, inst.ProgramID())

	accounts := inst.Accounts()
	require.Len(t, accounts, 3)
	assert.True(t, accounts[0].IsWritable)
	assert.True(t, accounts[2].IsSigner)

	data, err := inst.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 42, 0, 0, 0, 0, 0, 0, 0}, data)
}
