// Package signer provides the signing primitives for the supported signature schemes.
package signer

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
)

// Native signs with the ledger's secp256k1 scheme. Signatures are 64 bytes: r || s with the
// recovery id stored in the top bit of s.
type Native struct {
	key     *btcec.PrivateKey
	address model.Address
}

// NewNative wraps a private key.
func NewNative(key *btcec.PrivateKey) *Native {
	pub := key.PubKey().SerializeUncompressed()
	var address model.Address
	copy(address[:], chainhash.HashB(pub[1:]))
	return &Native{key: key, address: address}
}

// NativeFromBytes builds a Native signer from a 32-byte secret.
func NativeFromBytes(secret []byte) (*Native, error) {
	if len(secret) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("native key is %d bytes, want %d", len(secret), btcec.PrivKeyBytesLen)
	}
	key, _ := btcec.PrivKeyFromBytes(secret)
	return NewNative(key), nil
}

// GenerateNative creates a signer with a fresh random key.
func GenerateNative() (*Native, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate native key: %w", err)
	}
	return NewNative(key), nil
}

// Scheme implements model.Signer.
func (n *Native) Scheme() model.SignatureType { return model.SignatureNative }

// Address is the SHA-256 of the uncompressed public key without its prefix byte.
func (n *Native) Address() model.Address { return n.address }

// SignMessage signs SHA-256(msg).
func (n *Native) SignMessage(msg []byte) ([]byte, error) {
	sig := ecdsa.SignCompact(n.key, chainhash.HashB(msg), false)
	// sig is [27 + recid] || r || s; s is low-S so its top bit is free for recid.
	out := make([]byte, 64)
	copy(out, sig[1:])
	out[32] |= ((sig[0] - 27) & 1) << 7
	return out, nil
}

// RecoverNative returns the address that produced a 64-byte native signature over msg.
func RecoverNative(sig, msg []byte) (model.Address, error) {
	var address model.Address
	if len(sig) != 64 {
		return address, fmt.Errorf("native signature is %d bytes, want 64", len(sig))
	}
	compact := make([]byte, 65)
	compact[0] = 27 + sig[32]>>7
	copy(compact[1:], sig)
	compact[33] &= 0x7f

	pub, _, err := ecdsa.RecoverCompact(compact, chainhash.HashB(msg))
	if err != nil {
		return address, fmt.Errorf("recover native signer: %w", err)
	}
	copy(address[:], chainhash.HashB(pub.SerializeUncompressed()[1:]))
	return address, nil
}
