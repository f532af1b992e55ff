package coder

import (
	"fmt"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
)

const recoverableWidth = 65

// EncodeEVM compacts a recoverable ECDSA signature (r || s || v) into the 64-byte EIP-2098
// form r || yParityAndS, where the recovery bit is stored in the top bit of s. Input that is
// already compact is returned unchanged.
func EncodeEVM(in model.SignatureInput) ([]byte, error) {
	if in.Type != model.SignatureEVM {
		return nil, fmt.Errorf("%w: evm coder got %s input", ErrMalformedSignature, in.Type)
	}
	raw, err := normalize(in.Signature, CompactWidth, recoverableWidth)
	if err != nil {
		return nil, err
	}

	switch len(raw) {
	case CompactWidth:
		return raw, nil
	case recoverableWidth:
	default:
		return nil, fmt.Errorf("%w: evm signature is %d bytes", ErrMalformedSignature, len(raw))
	}

	if raw[32]&0x80 != 0 {
		return nil, fmt.Errorf("%w: evm signature s out of range", ErrMalformedSignature)
	}

	var parity byte
	switch v := raw[64]; v {
	case 0, 27:
		parity = 0
	case 1, 28:
		parity = 1
	default:
		return nil, fmt.Errorf("%w: evm signature recovery value %d", ErrMalformedSignature, v)
	}

	out := make([]byte, CompactWidth)
	copy(out, raw[:CompactWidth])
	out[32] |= parity << 7
	return out, nil
}
