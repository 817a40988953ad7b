package verifier

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	fossilcommon "github.com/OilerNetwork/fossil-L1-L2-relayer/common"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
)

var ErrProofVerificationFailed = errors.New("proof verification failed")

// EventMMRProofVerified is emitted after a proof has been verified and the
// claim it carries has been committed to the store.
type EventMMRProofVerified struct {
	BatchIndex     uint64
	LatestMMRBlock uint64
	LeavesCount    uint64
	RootHash       common.Hash
	IPFSHash       string
}

// Gateway verifies MMR update proofs and drives the state store with the
// claims they carry. It is the only component allowed to call
// UpdateMMRState, under its configured sender identity.
type Gateway struct {
	logger   *log.Logger
	verifier ProofVerifier
	storage  MMRStorer
	sender   common.Address
	events   fossilcommon.GenericSubscriber[EventMMRProofVerified]
}

func NewGateway(
	logger *log.Logger,
	cfg Config,
	verifier ProofVerifier,
	storage MMRStorer,
) *Gateway {
	return &Gateway{
		logger:   logger,
		verifier: verifier,
		storage:  storage,
		sender:   cfg.SenderAddress,
		events:   fossilcommon.NewGenericSubscriberImpl[EventMMRProofVerified](),
	}
}

// VerifyMMRProof checks the given proof payload and, if it is valid,
// stores the journal claim it carries. The first field element is the
// payload framing word and is not part of the proof itself. ipfsHash
// references the off-chain data the proof was built from and is carried
// through to the emitted event untouched.
//
// It returns true on success. On failure it returns an error, there is
// no path that reports an invalid proof without one.
func (g *Gateway) VerifyMMRProof(ctx context.Context, proof []*big.Int, ipfsHash string) (bool, error) {
	if len(proof) < 2 {
		return false, fmt.Errorf("%w: payload carries %d field elements", ErrProofVerificationFailed, len(proof))
	}

	journalBytes, err := g.verifier.VerifyProof(ctx, proof[1:])
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrProofVerificationFailed, err)
	}

	var journal Journal
	if err := journal.UnmarshalBinary(journalBytes); err != nil {
		return false, err
	}

	if err := g.storage.UpdateMMRState(
		ctx, g.sender,
		journal.BatchIndex, journal.LatestMMRBlock, journal.LeavesCount,
		journal.RootHash,
	); err != nil {
		return false, err
	}

	g.logger.Infof(
		"verified MMR proof: batch %d, latest MMR block %d, %d leaves, root %s, ipfs %s",
		journal.BatchIndex, journal.LatestMMRBlock, journal.LeavesCount,
		journal.RootHash.String(), ipfsHash,
	)
	g.events.Publish(EventMMRProofVerified{
		BatchIndex:     journal.BatchIndex,
		LatestMMRBlock: journal.LatestMMRBlock,
		LeavesCount:    journal.LeavesCount,
		RootHash:       journal.RootHash,
		IPFSHash:       ipfsHash,
	})

	return true, nil
}

// SubscribeMMRProofVerified returns a channel that receives an event each
// time a proof has been verified and committed.
func (g *Gateway) SubscribeMMRProofVerified(subscriberName string) <-chan EventMMRProofVerified {
	return g.events.Subscribe(subscriberName)
}
