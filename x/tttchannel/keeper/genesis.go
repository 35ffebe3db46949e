package keeper

import (
	"context"

	"tttchannel/x/tttchannel/types"
)

// InitGenesis loads params, every game record and the id sequence.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	for _, g := range genState.Games {
		if err := k.SetGame(ctx, g); err != nil {
			return err
		}
	}
	return k.GameSeq.Set(ctx, genState.GameCount)
}

// ExportGenesis returns the module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	genesis := types.DefaultGenesis()
	genesis.Params = params

	err = k.Games.Walk(ctx, nil, func(_ uint64, g types.Game) (bool, error) {
		genesis.Games = append(genesis.Games, g)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	genesis.GameCount, err = k.GameSeq.Peek(ctx)
	if err != nil {
		return nil, err
	}
	return genesis, nil
}
