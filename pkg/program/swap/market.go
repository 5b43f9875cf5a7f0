package swap

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/oracle"
)

var (
	_ pkg.Market = (*Pool)(nil)
	_ pkg.Market = (*PoolMarket)(nil)
)

// Market binds a pool snapshot to the program that owns it.
func (p *Pool) Market(programID solana.PublicKey) *PoolMarket {
	return &PoolMarket{Pool: p, ProgramID: programID}
}

// ProgramName returns the program name
func (p *Pool) ProgramName() pkg.ProgramName {
	return pkg.ProgramNameSwap
}

// ProgramType returns the program type
func (p *Pool) ProgramType() pkg.ProgramType {
	return pkg.ProgramTypeSwap
}

// GetProgramID returns the default program id. Use Market for another deployment.
func (p *Pool) GetProgramID() solana.PublicKey {
	return SENSWAP_PROGRAM_ID
}

// GetID returns the pool address
func (p *Pool) GetID() string {
	return p.Address.String()
}

// GetTokens returns the mints of side A and side B
func (p *Pool) GetTokens() (baseMint, quoteMint string) {
	return p.MintA.String(), p.MintB.String()
}

// Direction resolves which side inputMint sells into.
func (p *Pool) Direction(inputMint string) (aToB bool, err error) {
	switch inputMint {
	case p.MintA.String():
		return true, nil
	case p.MintB.String():
		return false, nil
	}
	return false, errs.InvalidArgument("mint %s is not traded by pool %s", inputMint, p.Address)
}

// Reserves returns (bid, ask) reserves for a trade in the given direction.
func (p *Pool) Reserves(aToB bool) (bidReserve, askReserve math.Int) {
	a, b := math.NewIntFromUint64(p.ReserveA), math.NewIntFromUint64(p.ReserveB)
	if aToB {
		return a, b
	}
	return b, a
}

func (p *Pool) ratios() (fee, tax math.Int) {
	return math.NewIntFromUint64(p.FeeRatio), math.NewIntFromUint64(p.TaxRatio)
}

func (p *Pool) checkTradable() error {
	if p.State != PoolStateInitialized {
		return errs.InvalidArgument("pool %s is %s", p.Address, p.State)
	}
	return nil
}

// SimulateSwap runs the oracle against the pool snapshot.
func (p *Pool) SimulateSwap(inputMint string, inputAmount math.Int) (oracle.SwapResult, error) {
	if err := p.checkTradable(); err != nil {
		return oracle.SwapResult{}, err
	}
	aToB, err := p.Direction(inputMint)
	if err != nil {
		return oracle.SwapResult{}, err
	}
	bidReserve, askReserve := p.Reserves(aToB)
	fee, tax := p.ratios()
	return oracle.Swap(inputAmount, bidReserve, askReserve, fee, tax)
}

// Quote returns the amount received for inputAmount of inputMint.
func (p *Pool) Quote(ctx context.Context, inputMint string, inputAmount math.Int) (math.Int, error) {
	res, err := p.SimulateSwap(inputMint, inputAmount)
	if err != nil {
		return math.Int{}, err
	}
	return res.AskAmount, nil
}

// QuoteExactOut returns the input needed to receive outputAmount when selling inputMint.
func (p *Pool) QuoteExactOut(inputMint string, outputAmount math.Int) (math.Int, error) {
	if err := p.checkTradable(); err != nil {
		return math.Int{}, err
	}
	aToB, err := p.Direction(inputMint)
	if err != nil {
		return math.Int{}, err
	}
	bidReserve, askReserve := p.Reserves(aToB)
	fee, tax := p.ratios()
	return oracle.InverseSwap(outputAmount, bidReserve, askReserve, fee, tax)
}

// QuoteDeposit previews AddSidedLiquidity. liquidity is the LPT mint supply.
func (p *Pool) QuoteDeposit(deltaA, deltaB, liquidity math.Int) (oracle.SidedDepositResult, error) {
	fee, tax := p.ratios()
	a, b := p.Reserves(true)
	return oracle.SidedDeposit(deltaA, deltaB, a, b, liquidity, fee, tax)
}

// QuoteWithdraw previews RemoveLiquidity. liquidity is the LPT mint supply.
func (p *Pool) QuoteWithdraw(lpt, liquidity math.Int) (oracle.WithdrawResult, error) {
	a, b := p.Reserves(true)
	return oracle.Withdraw(lpt, liquidity, a, b)
}

// Apply returns a copy of the pool with reserves moved by a simulated swap. A reserve
// that no longer fits the on-chain u64 is an error.
func (p *Pool) Apply(aToB bool, res oracle.SwapResult) (*Pool, error) {
	if !res.NewBidReserve.IsUint64() || !res.NewAskReserve.IsUint64() {
		return nil, errs.InvalidArgument("pool %s: reserves %s/%s overflow u64", p.Address, res.NewBidReserve, res.NewAskReserve)
	}
	next := *p
	if aToB {
		next.ReserveA, next.ReserveB = res.NewBidReserve.Uint64(), res.NewAskReserve.Uint64()
	} else {
		next.ReserveB, next.ReserveA = res.NewBidReserve.Uint64(), res.NewAskReserve.Uint64()
	}
	return &next, nil
}

// Hop returns the accounts of a swap by user through this pool. User token accounts and
// the taxman account are associated token accounts.
func (p *Pool) Hop(user solana.PublicKey, inputMint string) (HopAccounts, error) {
	aToB, err := p.Direction(inputMint)
	if err != nil {
		return HopAccounts{}, err
	}
	bidMint, askMint := p.MintA, p.MintB
	treasuryBid, treasuryAsk := p.TreasuryA, p.TreasuryB
	if !aToB {
		bidMint, askMint = askMint, bidMint
		treasuryBid, treasuryAsk = treasuryAsk, treasuryBid
	}
	src, _, err := solana.FindAssociatedTokenAddress(user, bidMint)
	if err != nil {
		return HopAccounts{}, fmt.Errorf("find source account: %w", err)
	}
	dst, _, err := solana.FindAssociatedTokenAddress(user, askMint)
	if err != nil {
		return HopAccounts{}, fmt.Errorf("find destination account: %w", err)
	}
	taxmanAsk, _, err := solana.FindAssociatedTokenAddress(p.Taxman, askMint)
	if err != nil {
		return HopAccounts{}, fmt.Errorf("find taxman account: %w", err)
	}
	return HopAccounts{
		Pool:        p.Address,
		SrcAccount:  src,
		TreasuryBid: treasuryBid,
		DstAccount:  dst,
		TreasuryAsk: treasuryAsk,
		TaxmanAsk:   taxmanAsk,
	}, nil
}

// BuildSwapInstructions builds a swap of inputAmount against the default program.
func (p *Pool) BuildSwapInstructions(
	ctx context.Context,
	user solana.PublicKey,
	inputMint string,
	inputAmount math.Int,
	minOut math.Int,
) ([]solana.Instruction, error) {
	return p.Market(SENSWAP_PROGRAM_ID).BuildSwapInstructions(ctx, user, inputMint, inputAmount, minOut)
}

// PoolMarket is a pool bound to a specific program deployment.
type PoolMarket struct {
	*Pool
	ProgramID solana.PublicKey
}

// GetProgramID returns the bound program id
func (m *PoolMarket) GetProgramID() solana.PublicKey {
	return m.ProgramID
}

func (m *PoolMarket) BuildSwapInstructions(
	ctx context.Context,
	user solana.PublicKey,
	inputMint string,
	inputAmount math.Int,
	minOut math.Int,
) ([]solana.Instruction, error) {
	if err := m.checkTradable(); err != nil {
		return nil, err
	}
	if !inputAmount.IsUint64() || !minOut.IsUint64() {
		return nil, errs.InvalidArgument("amount %s or limit %s out of u64 range", inputAmount, minOut)
	}
	hop, err := m.Hop(user, inputMint)
	if err != nil {
		return nil, err
	}
	inst, err := NewSwapInstruction(m.ProgramID, Swap{
		Amount: inputAmount.Uint64(),
		Limit:  minOut.Uint64(),
	}, SwapAccounts{Payer: user, HopAccounts: hop})
	if err != nil {
		return nil, err
	}
	return []solana.Instruction{inst}, nil
}
