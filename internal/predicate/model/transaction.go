package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/fxamacker/cbor/v2"
)

// InputType identifies what an input spends.
type InputType string

var (
	InputCoin     InputType = "coin"
	InputContract InputType = "contract"
	InputMessage  InputType = "message"
)

// OutputType identifies what an output creates.
type OutputType string

var (
	OutputCoin     OutputType = "coin"
	OutputChange   OutputType = "change"
	OutputVariable OutputType = "variable"
)

// Input is a resource spent by a transaction. Predicate-owned inputs carry the predicate
// bytecode and data, and reference the witness slot their unlock signatures start at.
type Input struct {
	Type             InputType `json:"type" cbor:"1,keyasint"`
	TxID             TxID      `json:"tx_id" cbor:"2,keyasint"`
	OutputIndex      uint16    `json:"output_index" cbor:"3,keyasint"`
	Owner            Address   `json:"owner" cbor:"4,keyasint"`
	AssetID          Address   `json:"asset_id" cbor:"5,keyasint"`
	Amount           uint64    `json:"amount" cbor:"6,keyasint"`
	WitnessIndex     uint16    `json:"witness_index" cbor:"7,keyasint"`
	Predicate        Bytes     `json:"predicate,omitempty" cbor:"8,keyasint,omitempty"`
	PredicateData    Bytes     `json:"predicate_data,omitempty" cbor:"9,keyasint,omitempty"`
	PredicateGasUsed uint64    `json:"predicate_gas_used" cbor:"10,keyasint,omitempty"`
}

// IsPredicate reports whether the input is unlocked by a predicate.
func (i Input) IsPredicate() bool {
	return len(i.Predicate) > 0
}

// Output is a resource created by a transaction.
type Output struct {
	Type    OutputType `json:"type" cbor:"1,keyasint"`
	To      Address    `json:"to" cbor:"2,keyasint"`
	Amount  uint64     `json:"amount" cbor:"3,keyasint"`
	AssetID Address    `json:"asset_id" cbor:"4,keyasint"`
}

// TransactionDraft is a transaction under construction. It is owned by a single call chain
// and mutated in place until it is signed and submitted.
type TransactionDraft struct {
	ScriptGasLimit uint64   `json:"script_gas_limit" cbor:"1,keyasint"`
	MaxFee         uint64   `json:"max_fee" cbor:"2,keyasint"`
	Script         Bytes    `json:"script,omitempty" cbor:"3,keyasint,omitempty"`
	ScriptData     Bytes    `json:"script_data,omitempty" cbor:"4,keyasint,omitempty"`
	Inputs         []Input  `json:"inputs" cbor:"5,keyasint"`
	Outputs        []Output `json:"outputs" cbor:"6,keyasint"`
	Witnesses      []Bytes  `json:"witnesses" cbor:"7,keyasint"`
}

// Normalize applies the standard request normalization: nil collections become empty and
// recorded predicate gas from earlier estimations is cleared from non-predicate inputs.
func (d *TransactionDraft) Normalize() {
	if d.Inputs == nil {
		d.Inputs = []Input{}
	}
	if d.Outputs == nil {
		d.Outputs = []Output{}
	}
	if d.Witnesses == nil {
		d.Witnesses = []Bytes{}
	}
	for i := range d.Inputs {
		if !d.Inputs[i].IsPredicate() {
			d.Inputs[i].PredicateGasUsed = 0
			d.Inputs[i].PredicateData = nil
		}
	}
}

// Clone returns a deep copy that shares no memory with d.
func (d *TransactionDraft) Clone() *TransactionDraft {
	out := *d
	out.Script = cloneBytes(d.Script)
	out.ScriptData = cloneBytes(d.ScriptData)
	if d.Inputs != nil {
		out.Inputs = make([]Input, len(d.Inputs))
		for i, in := range d.Inputs {
			in.Predicate = cloneBytes(in.Predicate)
			in.PredicateData = cloneBytes(in.PredicateData)
			out.Inputs[i] = in
		}
	}
	if d.Outputs != nil {
		out.Outputs = append([]Output(nil), d.Outputs...)
	}
	if d.Witnesses != nil {
		out.Witnesses = make([]Bytes, len(d.Witnesses))
		for i, w := range d.Witnesses {
			out.Witnesses[i] = cloneBytes(w)
		}
	}
	return &out
}

// AddWitness appends a witness and returns its index.
func (d *TransactionDraft) AddWitness(w []byte) int {
	d.Witnesses = append(d.Witnesses, Bytes(w))
	return len(d.Witnesses) - 1
}

// idInput and idDraft mirror Input and TransactionDraft without the fields the identifier
// must not cover.
type idInput struct {
	Type          InputType `cbor:"1,keyasint"`
	TxID          TxID      `cbor:"2,keyasint"`
	OutputIndex   uint16    `cbor:"3,keyasint"`
	Owner         Address   `cbor:"4,keyasint"`
	AssetID       Address   `cbor:"5,keyasint"`
	Amount        uint64    `cbor:"6,keyasint"`
	WitnessIndex  uint16    `cbor:"7,keyasint"`
	Predicate     Bytes     `cbor:"8,keyasint,omitempty"`
	PredicateData Bytes     `cbor:"9,keyasint,omitempty"`
}

type idDraft struct {
	ScriptGasLimit uint64    `cbor:"1,keyasint"`
	MaxFee         uint64    `cbor:"2,keyasint"`
	Script         Bytes     `cbor:"3,keyasint,omitempty"`
	ScriptData     Bytes     `cbor:"4,keyasint,omitempty"`
	Inputs         []idInput `cbor:"5,keyasint"`
	Outputs        []Output  `cbor:"6,keyasint"`
}

type idPreimage struct {
	ChainID uint64  `cbor:"1,keyasint"`
	Draft   idDraft `cbor:"2,keyasint"`
}

var detEncoding = mustDeterministicEncMode()

// ID derives the transaction identifier for chainID. Witnesses and recorded predicate gas are
// excluded, so filling signature slots or re-estimating predicates leaves the identifier unchanged.
func (d *TransactionDraft) ID(chainID uint64) (TxID, error) {
	var id TxID
	preimage, err := detEncoding.Marshal(idPreimage{ChainID: chainID, Draft: d.idFields()})
	if err != nil {
		return id, fmt.Errorf("encode transaction: %w", err)
	}
	copy(id[:], chainhash.HashB(preimage))
	return id, nil
}

func (d *TransactionDraft) idFields() idDraft {
	out := idDraft{
		ScriptGasLimit: d.ScriptGasLimit,
		MaxFee:         d.MaxFee,
		Script:         d.Script,
		ScriptData:     d.ScriptData,
		Inputs:         make([]idInput, len(d.Inputs)),
		Outputs:        d.Outputs,
	}
	if out.Outputs == nil {
		out.Outputs = []Output{}
	}
	for i, in := range d.Inputs {
		out.Inputs[i] = idInput{
			Type:          in.Type,
			TxID:          in.TxID,
			OutputIndex:   in.OutputIndex,
			Owner:         in.Owner,
			AssetID:       in.AssetID,
			Amount:        in.Amount,
			WitnessIndex:  in.WitnessIndex,
			Predicate:     in.Predicate,
			PredicateData: in.PredicateData,
		}
	}
	return out
}

// DecodeDraft reads a CBOR-encoded draft, witnesses and recorded predicate gas included.
func DecodeDraft(raw []byte) (*TransactionDraft, error) {
	var draft TransactionDraft
	if err := cbor.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

// EncodeDraft writes draft in the form DecodeDraft reads.
func EncodeDraft(draft *TransactionDraft) ([]byte, error) {
	raw, err := detEncoding.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}
	return raw, nil
}

func mustDeterministicEncMode() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor deterministic encoding: " + err.Error())
	}
	return mode
}

func cloneBytes(b Bytes) Bytes {
	if b == nil {
		return nil
	}
	return append(Bytes(nil), b...)
}
