package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SignatureOracle recovers the account that produced sig over digest. It
// must fail rather than return an arbitrary account for a malformed sig.
type SignatureOracle interface {
	RecoverSigner(digest, sig []byte) (sdk.AccAddress, error)
}
