// Package ecrecover recovers account addresses from secp256k1 compact
// recoverable signatures over 32-byte digests.
package ecrecover

import (
	errorsmod "cosmossdk.io/errors"
	sdksecp256k1 "github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"tttchannel/x/tttchannel/types"
)

// SignatureSize is the length of a compact signature: one recovery byte
// followed by R and S.
const SignatureSize = 65

// Oracle implements types.SignatureOracle.
type Oracle struct{}

var _ types.SignatureOracle = Oracle{}

// NewOracle returns the default signature oracle.
func NewOracle() Oracle { return Oracle{} }

// RecoverSigner returns the account whose key produced sig over digest.
func (Oracle) RecoverSigner(digest, sig []byte) (sdk.AccAddress, error) {
	if len(digest) != types.HashSize {
		return nil, errorsmod.Wrapf(types.ErrSignatureRecoveryFailed, "digest must be %d bytes, got %d", types.HashSize, len(digest))
	}
	if len(sig) != SignatureSize {
		return nil, errorsmod.Wrapf(types.ErrSignatureRecoveryFailed, "signature must be %d bytes, got %d", SignatureSize, len(sig))
	}
	pub, _, err := ecdsa.RecoverCompact(sig, digest)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrSignatureRecoveryFailed, err.Error())
	}
	return AddressOf(pub), nil
}

// AddressOf derives the account address of a public key the same way the
// SDK does for secp256k1 accounts.
func AddressOf(pub *secp256k1.PublicKey) sdk.AccAddress {
	pk := &sdksecp256k1.PubKey{Key: pub.SerializeCompressed()}
	return sdk.AccAddress(pk.Address())
}

// Sign produces the compact signature that RecoverSigner accepts.
func Sign(priv *secp256k1.PrivateKey, digest []byte) ([]byte, error) {
	if len(digest) != types.HashSize {
		return nil, errorsmod.Wrapf(types.ErrMalformedState, "digest must be %d bytes, got %d", types.HashSize, len(digest))
	}
	return ecdsa.SignCompact(priv, digest, true), nil
}

// PrivKeyFromBytes parses a raw 32-byte secret.
func PrivKeyFromBytes(secret []byte) (*secp256k1.PrivateKey, error) {
	if len(secret) != secp256k1.PrivKeyBytesLen {
		return nil, errorsmod.Wrapf(types.ErrInvalidIdentity, "private key must be %d bytes, got %d", secp256k1.PrivKeyBytesLen, len(secret))
	}
	return secp256k1.PrivKeyFromBytes(secret), nil
}
