package keeper

import (
	"strconv"
	"strings"

	"tttchannel/x/tttchannel/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// formatMoves renders moves for event attributes and log lines.
func formatMoves(moves []uint32) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = strconv.FormatUint(uint64(m), 10)
	}
	return strings.Join(parts, ",")
}

func cloneMoves(moves []uint32) []uint32 {
	out := make([]uint32, len(moves))
	copy(out, moves)
	return out
}
