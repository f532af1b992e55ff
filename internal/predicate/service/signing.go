package service

import (
	"errors"
	"fmt"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/witness"
	"go.uber.org/zap"
)

// TransactionSigner fills the slots reserved by the FeeAssembler with real signatures.
type TransactionSigner struct {
	encoder Encoder
	logger  *zap.Logger
}

// NewTransactionSigner builds a TransactionSigner.
func NewTransactionSigner(encoder Encoder, logger *zap.Logger) (*TransactionSigner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if encoder == nil {
		return nil, errors.New("signature encoder is required")
	}
	return &TransactionSigner{encoder: encoder, logger: logger}, nil
}

// Sign signs prepared's identifier with the signer of every reserved scheme and writes the
// encoded signatures into their slots. The witness count does not change, so neither does
// the fee computed for it.
func (s *TransactionSigner) Sign(prepared *Prepared, signers []Signer) error {
	if prepared == nil || prepared.Draft == nil {
		return errors.New("prepared transaction is required")
	}
	if len(prepared.Slots) != len(prepared.Schemes) {
		return fmt.Errorf("%d slots reserved for %d schemes", len(prepared.Slots), len(prepared.Schemes))
	}

	byScheme := make(map[model.SignatureType]Signer, len(signers))
	for _, signer := range signers {
		byScheme[signer.Scheme()] = signer
	}

	msg := prepared.ID.SigningMessage()
	for i, scheme := range prepared.Schemes {
		signer, ok := byScheme[scheme]
		if !ok {
			return fmt.Errorf("no signer for scheme %s", scheme)
		}
		raw, err := signer.SignMessage(msg)
		if err != nil {
			return fmt.Errorf("sign with %s: %w", scheme, err)
		}
		sig, err := s.encoder.Encode(model.SignatureInput{Type: scheme, Signature: raw})
		if err != nil {
			return err
		}
		if err := witness.Fill(prepared.Draft, prepared.Slots[i], sig); err != nil {
			return err
		}
		s.logger.Debug("slot filled",
			zap.Stringer("tx_id", prepared.ID),
			zap.Stringer("scheme", scheme),
			zap.Int("witness_index", prepared.Slots[i].Index()),
		)
	}
	return nil
}
