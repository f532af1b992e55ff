// Package coder normalizes signatures from different schemes into the 64-byte compact
// witness encoding predicates verify.
package coder

import (
	"errors"
	"fmt"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
)

// CompactWidth is the width of every encoded signature.
const CompactWidth = 64

var (
	// ErrUnknownScheme is returned when no coder is registered for a signature type.
	ErrUnknownScheme = errors.New("unknown signature scheme")
	// ErrDuplicateScheme is returned when a signature type is registered twice.
	ErrDuplicateScheme = errors.New("signature scheme already registered")
	// ErrMalformedSignature is returned when a payload does not match its scheme's shape.
	ErrMalformedSignature = errors.New("malformed signature")
)

// EncodeFunc turns a scheme-specific signature into its wire encoding.
type EncodeFunc func(in model.SignatureInput) ([]byte, error)

// Registry dispatches signature encoding by type tag. It is not safe for concurrent
// registration; register everything before sharing it.
type Registry struct {
	coders map[model.SignatureType]EncodeFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{coders: make(map[model.SignatureType]EncodeFunc)}
}

// NewDefaultRegistry returns a registry with the native and EVM coders registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.coders[model.SignatureNative] = EncodeNative
	r.coders[model.SignatureEVM] = EncodeEVM
	return r
}

// Register associates tag with fn. Registering a tag twice is rejected.
func (r *Registry) Register(tag model.SignatureType, fn EncodeFunc) error {
	if fn == nil {
		return fmt.Errorf("register %s: nil coder", tag)
	}
	if _, ok := r.coders[tag]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateScheme, tag)
	}
	r.coders[tag] = fn
	return nil
}

// Supports reports whether a coder is registered for tag.
func (r *Registry) Supports(tag model.SignatureType) bool {
	_, ok := r.coders[tag]
	return ok
}

// Encode returns the wire encoding of in using the coder registered for in.Type.
func (r *Registry) Encode(in model.SignatureInput) ([]byte, error) {
	fn, ok := r.coders[in.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, in.Type)
	}
	out, err := fn(in)
	if err != nil {
		return nil, fmt.Errorf("encode %s signature: %w", in.Type, err)
	}
	return out, nil
}
