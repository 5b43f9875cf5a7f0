package sol

import (
	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/swap"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/token"
)

var (
	WSOL      = swap.WSOL_MINT
	NativeSOL = solana.SystemProgramID

	TokenAccountSize = uint64(token.AccountSchema.Span())
)
