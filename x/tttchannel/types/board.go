package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Board cells are numbered row-major starting at FirstCell:
//
//	1 2 3
//	4 5 6
//	7 8 9
const (
	BoardCells = 9
	FirstCell  = 1
	LastCell   = FirstCell + BoardCells - 1
)

// Role is a seat in a channel. The challenger always moves first.
type Role uint8

const (
	RoleNone Role = iota
	RoleChallenger
	RoleChallenged
)

func (r Role) String() string {
	switch r {
	case RoleChallenger:
		return "challenger"
	case RoleChallenged:
		return "challenged"
	default:
		return "none"
	}
}

// Other returns the opposing seat.
func (r Role) Other() Role {
	switch r {
	case RoleChallenger:
		return RoleChallenged
	case RoleChallenged:
		return RoleChallenger
	default:
		return RoleNone
	}
}

// OutcomeStatus is the state a move sequence leaves the board in.
type OutcomeStatus uint8

const (
	InProgress OutcomeStatus = iota
	Draw
	Won
)

func (s OutcomeStatus) String() string {
	switch s {
	case Draw:
		return "draw"
	case Won:
		return "won"
	default:
		return "in_progress"
	}
}

// Outcome is the result of replaying a move sequence. Winner is RoleNone
// unless Status is Won.
type Outcome struct {
	Status OutcomeStatus
	Winner Role
}

// Terminal reports whether no further move may be played.
func (o Outcome) Terminal() bool { return o.Status != InProgress }

// winningLines holds the 8 triples as zero-based board offsets.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6},            // diagonals
}

// Board is a 3x3 grid indexed by zero-based offset.
type Board [BoardCells]Role

func (b *Board) hasLine(r Role) bool {
	for _, l := range winningLines {
		if b[l[0]] == r && b[l[1]] == r && b[l[2]] == r {
			return true
		}
	}
	return false
}

// MoverOf returns who plays the move at a zero-based position in the
// sequence: even positions belong to the challenger, odd to the challenged.
func MoverOf(index int) Role {
	if index%2 == 0 {
		return RoleChallenger
	}
	return RoleChallenged
}

// NextMover returns who is expected to play after movesLen moves.
func NextMover(movesLen int) Role { return MoverOf(movesLen) }

// CheckCell validates a single cell index without looking at the board.
func CheckCell(cell uint32) error {
	if cell < FirstCell || cell > LastCell {
		return errorsmod.Wrapf(ErrIllegalMove, "cell %d out of range [%d,%d]", cell, FirstCell, LastCell)
	}
	return nil
}

// Replay applies moves to an empty board in order and reports the outcome.
// It fails with ErrIllegalMove on an out-of-range or occupied cell, or on
// any move played after the game was already won or drawn.
func Replay(moves []uint32) (Outcome, Board, error) {
	var (
		b   Board
		out = Outcome{Status: InProgress}
	)
	if len(moves) > BoardCells {
		return Outcome{}, Board{}, errorsmod.Wrapf(ErrIllegalMove, "%d moves exceed board size", len(moves))
	}
	for i, cell := range moves {
		if out.Terminal() {
			return Outcome{}, Board{}, errorsmod.Wrapf(ErrIllegalMove, "move %d (cell %d) played after the game ended", i, cell)
		}
		if err := CheckCell(cell); err != nil {
			return Outcome{}, Board{}, errorsmod.Wrapf(err, "move %d", i)
		}
		off := cell - FirstCell
		if b[off] != RoleNone {
			return Outcome{}, Board{}, errorsmod.Wrapf(ErrIllegalMove, "move %d: cell %d already occupied", i, cell)
		}
		mover := MoverOf(i)
		b[off] = mover

		switch {
		case b.hasLine(mover):
			out = Outcome{Status: Won, Winner: mover}
		case i+1 == BoardCells:
			out = Outcome{Status: Draw}
		}
	}
	return out, b, nil
}

// IsPrefix reports whether prefix is an initial segment of moves.
func IsPrefix(prefix, moves []uint32) bool {
	if len(prefix) > len(moves) {
		return false
	}
	for i := range prefix {
		if prefix[i] != moves[i] {
			return false
		}
	}
	return true
}

// String renders the board with X for the challenger and O for the challenged.
func (b Board) String() string {
	out := make([]byte, 0, BoardCells+2)
	for i, r := range b {
		if i > 0 && i%3 == 0 {
			out = append(out, '/')
		}
		switch r {
		case RoleChallenger:
			out = append(out, 'X')
		case RoleChallenged:
			out = append(out, 'O')
		default:
			out = append(out, '.')
		}
	}
	return string(out)
}
