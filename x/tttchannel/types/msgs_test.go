package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tttchannel/x/tttchannel/types"
)

func TestMsgValidateBasic(t *testing.T) {
	sig := []byte{0x01}
	testCases := []struct {
		name   string
		msg    interface{ ValidateBasic() error }
		expErr error
	}{
		{
			name:   "challenge ok",
			msg:    &types.MsgChallenge{Creator: "a", Challenged: "b"},
			expErr: nil,
		},
		{
			name:   "challenge self",
			msg:    &types.MsgChallenge{Creator: "a", Challenged: "a"},
			expErr: types.ErrInvalidIdentity,
		},
		{
			name:   "challenge missing opponent",
			msg:    &types.MsgChallenge{Creator: "a"},
			expErr: types.ErrInvalidIdentity,
		},
		{
			name:   "game over ok",
			msg:    &types.MsgGameOver{Creator: "a", Moves: []uint32{1, 4, 2, 5, 3}, ChallengerSig: sig, ChallengedSig: sig},
			expErr: nil,
		},
		{
			name:   "game over bad cell",
			msg:    &types.MsgGameOver{Creator: "a", Moves: []uint32{11}, ChallengerSig: sig, ChallengedSig: sig},
			expErr: types.ErrIllegalMove,
		},
		{
			name:   "game over missing approval",
			msg:    &types.MsgGameOver{Creator: "a", Moves: []uint32{1}, ChallengerSig: sig},
			expErr: types.ErrSignatureRecoveryFailed,
		},
		{
			name:   "timeout empty moves",
			msg:    &types.MsgTimeout{Creator: "a"},
			expErr: nil,
		},
		{
			name:   "timeout missing creator",
			msg:    &types.MsgTimeout{Moves: []uint32{1}},
			expErr: types.ErrInvalidIdentity,
		},
		{
			name:   "cancel too many moves",
			msg:    &types.MsgCancelTimeout{Creator: "a", Moves: make([]uint32, 10)},
			expErr: types.ErrIllegalMove,
		},
		{
			name:   "forfeit missing creator",
			msg:    &types.MsgWinByForfeit{},
			expErr: types.ErrInvalidIdentity,
		},
		{
			name:   "update params zero window",
			msg:    &types.MsgUpdateParams{Authority: "gov"},
			expErr: types.ErrInvalidParams,
		},
		{
			name:   "update params ok",
			msg:    &types.MsgUpdateParams{Authority: "gov", Params: types.DefaultParams()},
			expErr: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.expErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.expErr)
		})
	}
}

func TestGenesisValidate(t *testing.T) {
	game := types.Game{ID: 0, Challenger: "a", Challenged: "b", Moves: []uint32{1, 4}}

	testCases := []struct {
		name   string
		gs     types.GenesisState
		expErr bool
	}{
		{name: "default", gs: *types.DefaultGenesis()},
		{name: "one game", gs: types.GenesisState{Params: types.DefaultParams(), Games: []types.Game{game}, GameCount: 1}},
		{name: "id beyond count", gs: types.GenesisState{Params: types.DefaultParams(), Games: []types.Game{game}}, expErr: true},
		{name: "duplicate id", gs: types.GenesisState{Params: types.DefaultParams(), Games: []types.Game{game, game}, GameCount: 1}, expErr: true},
		{name: "bad params", gs: types.GenesisState{}, expErr: true},
		{
			name: "illegal history",
			gs: types.GenesisState{
				Params:    types.DefaultParams(),
				Games:     []types.Game{{ID: 0, Challenger: "a", Challenged: "b", Moves: []uint32{1, 1}}},
				GameCount: 1,
			},
			expErr: true,
		},
		{
			name: "winner is not a player",
			gs: types.GenesisState{
				Params: types.DefaultParams(),
				Games: []types.Game{{
					ID: 0, Challenger: "a", Challenged: "b", Moves: []uint32{1, 4, 2, 5, 3},
					Result: &types.Result{Winner: "c", Reason: types.ReasonAgreement},
				}},
				GameCount: 1,
			},
			expErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.gs.Validate()
			if tc.expErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
