// Package program configures predicate bytecode for a set of signers and attaches it to the
// inputs it owns.
package program

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
)

var addressSeed = []byte("FUEL")

// Template is compiled predicate bytecode with a configurable block of signer addresses
// starting at SignersOffset.
type Template struct {
	Bytecode      []byte
	SignersOffset int
	MaxSigners    int
}

// New configures a predicate instance for signers.
func (t *Template) New(signers []model.Address) (*Predicate, error) {
	if len(t.Bytecode) == 0 {
		return nil, errors.New("predicate bytecode is empty")
	}
	if len(signers) == 0 {
		return nil, errors.New("predicate needs at least one signer")
	}
	if t.MaxSigners > 0 && len(signers) > t.MaxSigners {
		return nil, fmt.Errorf("predicate accepts %d signers, got %d", t.MaxSigners, len(signers))
	}
	end := t.SignersOffset + len(signers)*len(model.Address{})
	if t.SignersOffset < 0 || end > len(t.Bytecode) {
		return nil, fmt.Errorf("signer block [%d:%d] outside bytecode of %d bytes", t.SignersOffset, end, len(t.Bytecode))
	}

	code := bytes.Clone(t.Bytecode)
	for i, s := range signers {
		copy(code[t.SignersOffset+i*len(s):], s[:])
	}

	var address model.Address
	copy(address[:], chainhash.HashB(append(bytes.Clone(addressSeed), code...)))

	return &Predicate{
		template: t,
		signers:  append([]model.Address(nil), signers...),
		bytecode: code,
		address:  address,
	}, nil
}

// Predicate is a configured predicate instance.
type Predicate struct {
	template *Template
	signers  []model.Address
	bytecode []byte
	address  model.Address
}

// Address implements model.Predicate.
func (p *Predicate) Address() model.Address { return p.address }

// Signers returns the configured signer addresses.
func (p *Predicate) Signers() []model.Address {
	return append([]model.Address(nil), p.signers...)
}

// Bytecode returns the configured bytecode.
func (p *Predicate) Bytecode() []byte { return bytes.Clone(p.bytecode) }

// Populate implements model.Predicate. The predicate takes no arguments, so its data is empty.
func (p *Predicate) Populate(draft *model.TransactionDraft) {
	for i := range draft.Inputs {
		in := &draft.Inputs[i]
		if in.Type != model.InputCoin && in.Type != model.InputMessage {
			continue
		}
		if in.Owner != p.address {
			continue
		}
		in.Predicate = p.Bytecode()
		in.PredicateData = model.Bytes{}
	}
}

// Derive implements model.Predicate.
func (p *Predicate) Derive(signers []model.Address) (model.Predicate, error) {
	derived, err := p.template.New(signers)
	if err != nil {
		return nil, err
	}
	return derived, nil
}
