package router

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/errs"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/oracle"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/swap"
)

// Leg is one simulated hop of a route.
type Leg struct {
	Pool       *swap.Pool
	InputMint  string
	OutputMint string
	Result     oracle.SwapResult
}

// RouteResult is the outcome of folding a trade along a path of pools.
type RouteResult struct {
	Legs         []Leg
	InputAmount  math.Int
	OutputAmount math.Int
}

// Route sells amount of inputMint through each pool of path in order. The output of a leg
// is the input of the next one. A pool visited twice is priced against the reserves left
// by its earlier leg.
func Route(path []*swap.Pool, inputMint string, amount math.Int) (RouteResult, error) {
	if len(path) == 0 {
		return RouteResult{}, errs.InvalidArgument("route: empty path")
	}
	snapshots := make(map[solana.PublicKey]*swap.Pool, len(path))
	legs := make([]Leg, 0, len(path))
	mint, current := inputMint, amount
	for i, hop := range path {
		pool, ok := snapshots[hop.Address]
		if !ok {
			pool = hop
		}
		aToB, err := pool.Direction(mint)
		if err != nil {
			return RouteResult{}, fmt.Errorf("leg %d: %w", i, err)
		}
		res, err := pool.SimulateSwap(mint, current)
		if err != nil {
			return RouteResult{}, fmt.Errorf("leg %d: %w", i, err)
		}
		output := pool.MintB.String()
		if !aToB {
			output = pool.MintA.String()
		}
		legs = append(legs, Leg{Pool: pool, InputMint: mint, OutputMint: output, Result: res})
		next, err := pool.Apply(aToB, res)
		if err != nil {
			return RouteResult{}, fmt.Errorf("leg %d: %w", i, err)
		}
		snapshots[hop.Address] = next
		mint, current = output, res.AskAmount
	}
	return RouteResult{Legs: legs, InputAmount: amount, OutputAmount: current}, nil
}

// BuildRouteInstruction builds the single route instruction executing r for user.
func BuildRouteInstruction(programID, user solana.PublicKey, r RouteResult, minOut math.Int) (solana.Instruction, error) {
	if !r.InputAmount.IsUint64() || !minOut.IsUint64() {
		return nil, errs.InvalidArgument("route: amount %s or limit %s out of u64 range", r.InputAmount, minOut)
	}
	hops := make([]swap.HopAccounts, 0, len(r.Legs))
	for i, leg := range r.Legs {
		hop, err := leg.Pool.Hop(user, leg.InputMint)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i, err)
		}
		hops = append(hops, hop)
	}
	return swap.NewRouteInstruction(programID, swap.Route{
		Amount: r.InputAmount.Uint64(),
		Limit:  minOut.Uint64(),
	}, user, hops)
}
