package types

import (
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
)

// Creator on every message is taken as the caller's identity. The host that
// dispatches to MsgServer must authenticate it first; the module does not.

// MsgChallenge opens a channel between the creator and Challenged.
type MsgChallenge struct {
	Creator    string `json:"creator"`
	Challenged string `json:"challenged"`
}

type MsgChallengeResponse struct {
	GameID uint64 `json:"game_id"`
}

// MsgGameOver settles a finished game by mutual consent. Winner is empty for
// a draw. ChallengerSig signs GameStateHash(GameID, Moves, Winner);
// ChallengedSig signs ApprovalHash(ChallengerSig).
type MsgGameOver struct {
	Creator       string   `json:"creator"`
	GameID        uint64   `json:"game_id"`
	Moves         []uint32 `json:"moves"`
	Winner        string   `json:"winner,omitempty"`
	ChallengerSig []byte   `json:"challenger_sig"`
	ChallengedSig []byte   `json:"challenged_sig"`
}

type MsgGameOverResponse struct{}

// MsgTimeout opens a dispute against the player expected to move next.
type MsgTimeout struct {
	Creator string   `json:"creator"`
	GameID  uint64   `json:"game_id"`
	Moves   []uint32 `json:"moves"`
}

type MsgTimeoutResponse struct {
	Deadline time.Time `json:"deadline"`
}

// MsgCancelTimeout answers a dispute with a longer move history.
type MsgCancelTimeout struct {
	Creator string   `json:"creator"`
	GameID  uint64   `json:"game_id"`
	Moves   []uint32 `json:"moves"`
}

type MsgCancelTimeoutResponse struct{}

// MsgWinByForfeit claims an expired dispute.
type MsgWinByForfeit struct {
	Creator string `json:"creator"`
	GameID  uint64 `json:"game_id"`
}

type MsgWinByForfeitResponse struct {
	Winner string `json:"winner"`
}

// MsgUpdateParams replaces the module params. Only the authority may send it.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func (msg *MsgChallenge) ValidateBasic() error {
	if strings.TrimSpace(msg.Creator) == "" {
		return errorsmod.Wrap(ErrInvalidIdentity, "creator is required")
	}
	if strings.TrimSpace(msg.Challenged) == "" {
		return errorsmod.Wrap(ErrInvalidIdentity, "challenged is required")
	}
	if msg.Creator == msg.Challenged {
		return errorsmod.Wrap(ErrInvalidIdentity, "cannot challenge yourself")
	}
	return nil
}

func (msg *MsgGameOver) ValidateBasic() error {
	if strings.TrimSpace(msg.Creator) == "" {
		return errorsmod.Wrap(ErrInvalidIdentity, "creator is required")
	}
	if err := validateCells(msg.Moves); err != nil {
		return err
	}
	if len(msg.ChallengerSig) == 0 {
		return errorsmod.Wrap(ErrSignatureRecoveryFailed, "challenger signature is required")
	}
	if len(msg.ChallengedSig) == 0 {
		return errorsmod.Wrap(ErrSignatureRecoveryFailed, "challenged signature is required")
	}
	return nil
}

func (msg *MsgTimeout) ValidateBasic() error {
	if strings.TrimSpace(msg.Creator) == "" {
		return errorsmod.Wrap(ErrInvalidIdentity, "creator is required")
	}
	return validateCells(msg.Moves)
}

func (msg *MsgCancelTimeout) ValidateBasic() error {
	if strings.TrimSpace(msg.Creator) == "" {
		return errorsmod.Wrap(ErrInvalidIdentity, "creator is required")
	}
	return validateCells(msg.Moves)
}

func (msg *MsgWinByForfeit) ValidateBasic() error {
	if strings.TrimSpace(msg.Creator) == "" {
		return errorsmod.Wrap(ErrInvalidIdentity, "creator is required")
	}
	return nil
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if strings.TrimSpace(msg.Authority) == "" {
		return errorsmod.Wrap(ErrInvalidSigner, "authority is required")
	}
	if err := msg.Params.Validate(); err != nil {
		return errorsmod.Wrap(ErrInvalidParams, err.Error())
	}
	return nil
}

func validateCells(moves []uint32) error {
	if len(moves) > BoardCells {
		return errorsmod.Wrapf(ErrIllegalMove, "%d moves exceed board size", len(moves))
	}
	for i, m := range moves {
		if err := CheckCell(m); err != nil {
			return errorsmod.Wrapf(err, "move %d", i)
		}
	}
	return nil
}
