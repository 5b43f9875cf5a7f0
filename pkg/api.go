package pkg

import (
	"context"

	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
)

// ProgramName represents the string name of a Sen program
type ProgramName string

const (
	ProgramNameSwap  ProgramName = "sen_swap"
	ProgramNameFarm  ProgramName = "sen_farm"
	ProgramNameToken ProgramName = "spl_token"
)

// ProgramType represents the numeric type of a Sen program
type ProgramType uint8

const (
	ProgramTypeSwap ProgramType = iota
	ProgramTypeFarm
	ProgramTypeToken
)

// Market is a pool snapshot that can price and build a swap between its two tokens.
type Market interface {
	ProgramName() ProgramName
	ProgramType() ProgramType
	GetProgramID() solana.PublicKey
	GetID() string
	GetTokens() (baseMint, quoteMint string)
	// Quote prices inputAmount of inputMint against the snapshot reserves.
	Quote(ctx context.Context, inputMint string, inputAmount math.Int) (math.Int, error)
	BuildSwapInstructions(
		ctx context.Context,
		user solana.PublicKey,
		inputMint string,
		inputAmount math.Int,
		minOut math.Int,
	) ([]solana.Instruction, error)
}

// Protocol loads markets from chain.
type Protocol interface {
	FetchPoolsByPair(ctx context.Context, baseMint, quoteMint string) ([]Market, error)
	FetchPoolByID(ctx context.Context, poolID string) (Market, error)
}
