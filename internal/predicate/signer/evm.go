package signer

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
)

// EVM signs like an Ethereum wallet's personal_sign: 65 bytes r || s || v with v in {27, 28}.
type EVM struct {
	key     *ecdsa.PrivateKey
	account common.Address
}

// NewEVM wraps a private key.
func NewEVM(key *ecdsa.PrivateKey) *EVM {
	return &EVM{key: key, account: crypto.PubkeyToAddress(key.PublicKey)}
}

// EVMFromHex builds an EVM signer from a hex-encoded secret.
func EVMFromHex(secret string) (*EVM, error) {
	key, err := crypto.HexToECDSA(trimHexPrefix(secret))
	if err != nil {
		return nil, fmt.Errorf("parse evm key: %w", err)
	}
	return NewEVM(key), nil
}

// GenerateEVM creates a signer with a fresh random key.
func GenerateEVM() (*EVM, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate evm key: %w", err)
	}
	return NewEVM(key), nil
}

// Scheme implements model.Signer.
func (e *EVM) Scheme() model.SignatureType { return model.SignatureEVM }

// Account is the 20-byte Ethereum address.
func (e *EVM) Account() common.Address { return e.account }

// Address is the Ethereum address left-padded to 32 bytes.
func (e *EVM) Address() model.Address {
	var address model.Address
	copy(address[12:], e.account.Bytes())
	return address
}

// SignMessage signs the EIP-191 hash of msg.
func (e *EVM) SignMessage(msg []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(msg), e.key)
	if err != nil {
		return nil, fmt.Errorf("sign evm message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
