package coder

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"slices"
)

// normalize returns a private copy of sig. Payloads whose length is not one of the raw widths
// are treated as hex text, with or without a 0x prefix.
func normalize(sig []byte, rawWidths ...int) ([]byte, error) {
	if len(sig) == 0 {
		return nil, fmt.Errorf("%w: empty signature", ErrMalformedSignature)
	}
	if slices.Contains(rawWidths, len(sig)) {
		return bytes.Clone(sig), nil
	}

	text := bytes.TrimPrefix(bytes.TrimPrefix(sig, []byte("0x")), []byte("0X"))
	out := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(out, text); err != nil {
		return nil, fmt.Errorf("%w: %d bytes, not hex: %v", ErrMalformedSignature, len(sig), err)
	}
	return out, nil
}
