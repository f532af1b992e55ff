package signer

import (
	"fmt"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
)

// Generate creates a throwaway signer for scheme.
func Generate(scheme model.SignatureType) (model.Signer, error) {
	switch scheme {
	case model.SignatureNative:
		s, err := GenerateNative()
		if err != nil {
			return nil, err
		}
		return s, nil
	case model.SignatureEVM:
		s, err := GenerateEVM()
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("no key generator for %s", scheme)
	}
}

// Generator adapts Generate to an injectable dependency.
type Generator struct{}

// Generate creates a throwaway signer for scheme.
func (Generator) Generate(scheme model.SignatureType) (model.Signer, error) {
	return Generate(scheme)
}
