package types

import (
	"fmt"
)

// GenesisState is the exported form of the module store.
type GenesisState struct {
	Params    Params `json:"params"`
	Games     []Game `json:"games"`
	GameCount uint64 `json:"game_count"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Games:  []Game{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[uint64]struct{}, len(gs.Games))
	for _, g := range gs.Games {
		if _, dup := seen[g.ID]; dup {
			return fmt.Errorf("duplicate game id %d", g.ID)
		}
		seen[g.ID] = struct{}{}
		if g.ID >= gs.GameCount {
			return fmt.Errorf("game id %d not below game_count %d", g.ID, gs.GameCount)
		}
		if err := g.Validate(); err != nil {
			return err
		}
	}
	return nil
}
