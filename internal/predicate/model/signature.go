package model

import (
	"fmt"
	"strings"
)

// SignatureType tags a signature encoding.
type SignatureType uint8

const (
	// SignatureNative is a signature produced by the ledger's own secp256k1 signing primitive.
	SignatureNative SignatureType = 0
	// SignatureEVM is a recoverable ECDSA signature produced by an Ethereum-style wallet.
	SignatureEVM SignatureType = 1
)

func (t SignatureType) String() string {
	switch t {
	case SignatureNative:
		return "native"
	case SignatureEVM:
		return "evm"
	default:
		return fmt.Sprintf("signature_type(%d)", uint8(t))
	}
}

// ParseSignatureType maps a scheme name to its tag.
func ParseSignatureType(s string) (SignatureType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native", "fuel":
		return SignatureNative, nil
	case "evm", "eth", "ethereum":
		return SignatureEVM, nil
	default:
		return 0, fmt.Errorf("unsupported signature type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t SignatureType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SignatureType) UnmarshalText(text []byte) error {
	parsed, err := ParseSignatureType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalFlag implements flags.Unmarshaler.
func (t *SignatureType) UnmarshalFlag(value string) error {
	return t.UnmarshalText([]byte(value))
}

// SignatureInput carries a raw signature payload whose interpretation depends on Type.
type SignatureInput struct {
	Type      SignatureType
	Signature []byte
}

// NativeSignature wraps a native-scheme signature.
func NativeSignature(sig []byte) SignatureInput {
	return SignatureInput{Type: SignatureNative, Signature: sig}
}

// EVMSignature wraps an EVM-scheme signature.
func EVMSignature(sig []byte) SignatureInput {
	return SignatureInput{Type: SignatureEVM, Signature: sig}
}
