package verifier

import "github.com/ethereum/go-ethereum/common"

// Config is the configuration of the verifier gateway
type Config struct {
	// VerifyingKeyPath is the file holding the Groth16 BN254 verifying key
	// proofs are checked against
	VerifyingKeyPath string `mapstructure:"VerifyingKeyPath"`
	// SenderAddress is the identity the gateway uses when it pushes
	// verified claims into the state store. It must match the verifier
	// address the store was initialized with.
	SenderAddress common.Address `mapstructure:"SenderAddress"`
}
