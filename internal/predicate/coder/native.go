package coder

import (
	"fmt"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
)

// EncodeNative normalizes a native compact signature. The signature bytes are passed through
// unchanged; hex text input is decoded first.
func EncodeNative(in model.SignatureInput) ([]byte, error) {
	if in.Type != model.SignatureNative {
		return nil, fmt.Errorf("%w: native coder got %s input", ErrMalformedSignature, in.Type)
	}
	raw, err := normalize(in.Signature, CompactWidth)
	if err != nil {
		return nil, err
	}
	if len(raw) != CompactWidth {
		return nil, fmt.Errorf("%w: native signature is %d bytes, want %d", ErrMalformedSignature, len(raw), CompactWidth)
	}
	return raw, nil
}
