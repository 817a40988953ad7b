package verifier

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Consumer interfaces required by the package.

// ProofVerifier abstracts the Groth16/BN254 verification capability. It
// either returns the journal bytes carried by a valid proof or an explicit
// failure, never a silently wrong output.
type ProofVerifier interface {
	VerifyProof(ctx context.Context, proof []*big.Int) ([]byte, error)
}

// MMRStorer gathers the methods the gateway needs from the state store.
type MMRStorer interface {
	UpdateMMRState(
		ctx context.Context,
		caller common.Address,
		batchIndex, latestMMRBlock, leavesCount uint64,
		mmrRoot common.Hash,
	) error
}
