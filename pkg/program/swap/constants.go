package swap

import "github.com/gagliardetto/solana-go"

// Program IDs
var (
	// SENSWAP_PROGRAM_ID is the devnet deployment. Mainnet callers pass their own id.
	SENSWAP_PROGRAM_ID = solana.MustPublicKeyFromBase58("4erFSLP7oBFSVC1t35jdxmbfxEhYCKfoM6XdG2BLR3UF")

	WSOL_MINT = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
)

// Instruction tags
const (
	TagInitializePool uint8 = iota
	TagAddLiquidity
	TagAddSidedLiquidity
	TagRemoveLiquidity
	TagSwap
	TagRoute
	TagFreezePool
	TagThawPool
	TagUpdateFee
	TagTransferOwnership
	TagWrap
	TagUnwrap
)

// PoolState is the lifecycle state byte of a pool account.
type PoolState uint8

const (
	PoolStateUninitialized PoolState = iota
	PoolStateInitialized
	PoolStateFrozen
)

func (s PoolState) String() string {
	switch s {
	case PoolStateUninitialized:
		return "uninitialized"
	case PoolStateInitialized:
		return "initialized"
	case PoolStateFrozen:
		return "frozen"
	}
	return "unknown"
}
