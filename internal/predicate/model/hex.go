package model

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Address is a 32-byte ledger address. Foreign addresses are left-padded with zeros.
type Address [32]byte

// TxID is a transaction identifier.
type TxID [32]byte

// Bytes is a byte string that marshals to 0x-prefixed hex.
type Bytes []byte

// String returns the 0x-prefixed hex form.
func (a Address) String() string { return "0x" + hex.EncodeToString(a[:]) }

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	return decodeFixed(a[:], string(text))
}

// ParseAddress decodes a hex address; shorter inputs (e.g. 20-byte EVM addresses) are left-padded.
func ParseAddress(s string) (Address, error) {
	var a Address
	raw, err := decodeHex(s)
	if err != nil {
		return a, err
	}
	if len(raw) > len(a) {
		return a, fmt.Errorf("address %q longer than %d bytes", s, len(a))
	}
	copy(a[len(a)-len(raw):], raw)
	return a, nil
}

func (id TxID) String() string { return "0x" + hex.EncodeToString(id[:]) }

// MarshalText implements encoding.TextMarshaler.
func (id TxID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *TxID) UnmarshalText(text []byte) error {
	return decodeFixed(id[:], string(text))
}

// SigningMessage is the message both signature schemes sign for a transaction:
// the identifier rendered as lowercase hex text without the 0x prefix.
func (id TxID) SigningMessage() []byte {
	return []byte(hex.EncodeToString(id[:]))
}

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes) UnmarshalText(text []byte) error {
	raw, err := decodeHex(string(text))
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return raw, nil
}

func decodeFixed(dst []byte, s string) error {
	raw, err := decodeHex(s)
	if err != nil {
		return err
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("expected %d bytes, got %d", len(dst), len(raw))
	}
	copy(dst, raw)
	return nil
}
