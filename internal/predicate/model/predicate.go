package model

// Predicate is a configured predicate program instance.
type Predicate interface {
	// Address is the address funds locked by this predicate are owned by.
	Address() Address
	// Populate attaches bytecode and predicate data to every input owned by Address.
	Populate(draft *TransactionDraft)
	// Derive returns an instance of the same program configured for other signers.
	Derive(signers []Address) (Predicate, error)
}

// Signer produces raw signatures for one signature scheme.
type Signer interface {
	Scheme() SignatureType
	Address() Address
	SignMessage(msg []byte) ([]byte, error)
}
