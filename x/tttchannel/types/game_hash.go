package types

import (
	"encoding/binary"
	"hash"
	"math"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"golang.org/x/crypto/sha3"
)

// Domain tags prefixed to each digest preimage.
const (
	gameStateDomain = "tttchannel/game-state/v1"
	movesDomain     = "tttchannel/moves/v1"
	approvalDomain  = "tttchannel/approval/v1"
)

// HashSize is the length of every digest produced here.
const HashSize = 32

// GameStateHash is the digest a challenger signs to endorse a finished game:
// the game id, the ordered moves and the asserted winner. A nil winner
// asserts a draw.
//
// Layout after the domain tag:
//
//	gameID u64 | len(moves) u32 | one byte per move | outcome u8 | [len(winner) u8 | winner]
func GameStateHash(gameID uint64, moves []uint32, winner sdk.AccAddress) ([]byte, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(gameStateDomain))
	if err := writeMoves(h, gameID, moves); err != nil {
		return nil, err
	}
	if len(winner) == 0 {
		h.Write([]byte{0})
		return h.Sum(nil), nil
	}
	if len(winner) > math.MaxUint8 {
		return nil, errorsmod.Wrapf(ErrMalformedState, "winner address of %d bytes", len(winner))
	}
	h.Write([]byte{1, byte(len(winner))})
	h.Write(winner)
	return h.Sum(nil), nil
}

// MovesHash is the digest of an in-progress position, signed off-channel
// after every move. It carries no outcome.
func MovesHash(gameID uint64, moves []uint32) ([]byte, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(movesDomain))
	if err := writeMoves(h, gameID, moves); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// ApprovalHash is the digest the challenged player signs to approve a
// challenger-signed game state. It commits to the signature bytes, so the
// approval cannot be moved onto another state.
func ApprovalHash(challengerSig []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(approvalDomain))
	h.Write(challengerSig)
	return h.Sum(nil)
}

func writeMoves(h hash.Hash, gameID uint64, moves []uint32) error {
	if uint64(len(moves)) > math.MaxUint32 {
		return errorsmod.Wrapf(ErrMalformedState, "%d moves", len(moves))
	}
	buf := make([]byte, 12, 12+len(moves))
	binary.BigEndian.PutUint64(buf[:8], gameID)
	binary.BigEndian.PutUint32(buf[8:12], uint32(len(moves)))
	for i, m := range moves {
		if m > math.MaxUint8 {
			return errorsmod.Wrapf(ErrMalformedState, "move %d: cell %d does not fit the encoding", i, m)
		}
		buf = append(buf, byte(m))
	}
	h.Write(buf)
	return nil
}
