package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidIdentity         = errorsmod.Register(ModuleName, 2, "invalid identity")
	ErrIllegalMove             = errorsmod.Register(ModuleName, 3, "illegal move")
	ErrInvalidOutcome          = errorsmod.Register(ModuleName, 4, "invalid outcome")
	ErrUnauthorized            = errorsmod.Register(ModuleName, 5, "unauthorized")
	ErrAlreadySettled          = errorsmod.Register(ModuleName, 6, "game already settled")
	ErrNotOpen                 = errorsmod.Register(ModuleName, 7, "game is not open for a timeout")
	ErrNotDisputed             = errorsmod.Register(ModuleName, 8, "game has no open dispute")
	ErrNoMoveAdvantage         = errorsmod.Register(ModuleName, 9, "moves do not advance the recorded history")
	ErrTimeoutNotElapsed       = errorsmod.Register(ModuleName, 10, "timeout has not elapsed")
	ErrSignatureRecoveryFailed = errorsmod.Register(ModuleName, 11, "signature recovery failed")
	ErrGameNotFound            = errorsmod.Register(ModuleName, 12, "game not found")
	ErrHistoryMismatch         = errorsmod.Register(ModuleName, 13, "moves contradict the recorded history")
	ErrMalformedState          = errorsmod.Register(ModuleName, 14, "malformed game state")
	ErrInvalidSigner           = errorsmod.Register(ModuleName, 15, "expected gov account as only signer for proposal message")
	ErrInvalidParams           = errorsmod.Register(ModuleName, 16, "invalid params")
)
