package types

import (
	"fmt"
	"time"
)

// GameStatus is derived from which optional parts of a Game are set.
type GameStatus string

const (
	GameStatusActive   GameStatus = "STATUS_ACTIVE"
	GameStatusDisputed GameStatus = "STATUS_DISPUTED"
	GameStatusClosed   GameStatus = "STATUS_CLOSED"
)

// Settlement reasons recorded on a Result.
const (
	ReasonAgreement = "agreement"
	ReasonForfeit   = "forfeit"
)

// Dispute is an open timeout. All three fields are set together or the
// Dispute is absent.
type Dispute struct {
	Deadline       time.Time `json:"deadline"`
	InactivePlayer string    `json:"inactive_player"`
	WaitingPlayer  string    `json:"waiting_player"`
}

// Result is written exactly once, when the game closes. Winner is empty
// only for a draw.
type Result struct {
	Winner    string    `json:"winner,omitempty"`
	Draw      bool      `json:"draw"`
	Reason    string    `json:"reason"`
	SettledAt time.Time `json:"settled_at"`
}

// Game is the arbitration record of one challenge.
type Game struct {
	ID         uint64    `json:"id"`
	Challenger string    `json:"challenger"`
	Challenged string    `json:"challenged"`
	Moves      []uint32  `json:"moves"`
	Dispute    *Dispute  `json:"dispute,omitempty"`
	Result     *Result   `json:"result,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Status reports where the game is in its lifecycle.
func (g Game) Status() GameStatus {
	switch {
	case g.Result != nil:
		return GameStatusClosed
	case g.Dispute != nil:
		return GameStatusDisputed
	default:
		return GameStatusActive
	}
}

// PlayerFor returns the address seated in role.
func (g Game) PlayerFor(r Role) string {
	switch r {
	case RoleChallenger:
		return g.Challenger
	case RoleChallenged:
		return g.Challenged
	default:
		return ""
	}
}

// RoleOf returns the seat held by addr, or RoleNone for outsiders.
func (g Game) RoleOf(addr string) Role {
	switch addr {
	case g.Challenger:
		return RoleChallenger
	case g.Challenged:
		return RoleChallenged
	default:
		return RoleNone
	}
}

// Winner returns the winning address, or "" while open or after a draw.
func (g Game) Winner() string {
	if g.Result == nil {
		return ""
	}
	return g.Result.Winner
}

// Validate checks the record invariants that do not need chain state.
func (g Game) Validate() error {
	if g.Challenger == "" || g.Challenged == "" {
		return fmt.Errorf("game %d: both players are required", g.ID)
	}
	if g.Challenger == g.Challenged {
		return fmt.Errorf("game %d: challenger and challenged must differ", g.ID)
	}
	outcome, _, err := Replay(g.Moves)
	if err != nil {
		return fmt.Errorf("game %d: %w", g.ID, err)
	}
	if d := g.Dispute; d != nil {
		if g.Result != nil {
			return fmt.Errorf("game %d: closed game cannot carry a dispute", g.ID)
		}
		if d.Deadline.IsZero() || d.InactivePlayer == "" || d.WaitingPlayer == "" {
			return fmt.Errorf("game %d: dispute fields must be set together", g.ID)
		}
		if g.RoleOf(d.InactivePlayer) == RoleNone || g.RoleOf(d.WaitingPlayer) == RoleNone || d.InactivePlayer == d.WaitingPlayer {
			return fmt.Errorf("game %d: dispute players must be the two participants", g.ID)
		}
		if outcome.Terminal() {
			return fmt.Errorf("game %d: disputed game must be in progress", g.ID)
		}
	}
	if r := g.Result; r != nil {
		if r.Draw != (r.Winner == "") {
			return fmt.Errorf("game %d: result must name a winner or be a draw", g.ID)
		}
		if r.Winner != "" && g.RoleOf(r.Winner) == RoleNone {
			return fmt.Errorf("game %d: winner %s is not a participant", g.ID, r.Winner)
		}
	}
	return nil
}
