package verifier

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/mmrstore"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/verifier/mocks"
)

var testSender = common.HexToAddress("0x1234567890123456789012345678901234567890")

func newGatewayForTest(t *testing.T) (*Gateway, *mocks.ProofVerifier, *mocks.MMRStorer) {
	t.Helper()

	proofVerifier := mocks.NewProofVerifier(t)
	storer := mocks.NewMMRStorer(t)
	gateway := NewGateway(
		log.WithFields("module", "verifier"),
		Config{SenderAddress: testSender},
		proofVerifier,
		storer,
	)
	return gateway, proofVerifier, storer
}

func testProof() []*big.Int {
	return []*big.Int{big.NewInt(0), big.NewInt(11), big.NewInt(22), big.NewInt(33)}
}

func TestVerifyMMRProofSuccess(t *testing.T) {
	gateway, proofVerifier, storer := newGatewayForTest(t)
	eventsC := gateway.SubscribeMMRProofVerified("test")

	journal := Journal{
		BatchIndex:     3,
		LatestMMRBlock: 1000,
		LeavesCount:    512,
		RootHash:       common.HexToHash("0xbeef"),
	}
	journalBytes, err := journal.MarshalBinary()
	require.NoError(t, err)

	proof := testProof()
	// the framing felt must be stripped before the proof reaches the
	// verification capability
	proofVerifier.EXPECT().
		VerifyProof(context.Background(), proof[1:]).
		Return(journalBytes, nil)
	storer.EXPECT().
		UpdateMMRState(
			context.Background(), testSender,
			journal.BatchIndex, journal.LatestMMRBlock, journal.LeavesCount,
			journal.RootHash,
		).
		Return(nil)

	ok, err := gateway.VerifyMMRProof(context.Background(), proof, "QmTestHash")
	require.NoError(t, err)
	require.True(t, ok)

	select {
	case event := <-eventsC:
		require.Equal(t, journal.BatchIndex, event.BatchIndex)
		require.Equal(t, journal.LatestMMRBlock, event.LatestMMRBlock)
		require.Equal(t, journal.LeavesCount, event.LeavesCount)
		require.Equal(t, journal.RootHash, event.RootHash)
		require.Equal(t, "QmTestHash", event.IPFSHash)
	case <-time.After(time.Second):
		t.Fatal("expected a proof verified event")
	}
}

func TestVerifyMMRProofEmptyPayload(t *testing.T) {
	gateway, _, _ := newGatewayForTest(t)

	ok, err := gateway.VerifyMMRProof(context.Background(), nil, "")
	require.ErrorIs(t, err, ErrProofVerificationFailed)
	require.False(t, ok)

	// a lone framing felt carries no proof either
	ok, err = gateway.VerifyMMRProof(context.Background(), []*big.Int{big.NewInt(0)}, "")
	require.ErrorIs(t, err, ErrProofVerificationFailed)
	require.False(t, ok)
}

func TestVerifyMMRProofInvalidProof(t *testing.T) {
	gateway, proofVerifier, _ := newGatewayForTest(t)

	proof := testProof()
	proofVerifier.EXPECT().
		VerifyProof(context.Background(), proof[1:]).
		Return(nil, errors.New("pairing check failed"))

	ok, err := gateway.VerifyMMRProof(context.Background(), proof, "")
	require.ErrorIs(t, err, ErrProofVerificationFailed)
	require.False(t, ok)
}

func TestVerifyMMRProofMalformedJournal(t *testing.T) {
	gateway, proofVerifier, _ := newGatewayForTest(t)

	proof := testProof()
	proofVerifier.EXPECT().
		VerifyProof(context.Background(), proof[1:]).
		Return([]byte{0xde, 0xad}, nil)

	ok, err := gateway.VerifyMMRProof(context.Background(), proof, "")
	require.ErrorIs(t, err, ErrJournalDecodeFailed)
	require.False(t, ok)
}

func TestVerifyMMRProofStoreRejection(t *testing.T) {
	gateway, proofVerifier, storer := newGatewayForTest(t)

	journal := Journal{BatchIndex: 1, LatestMMRBlock: 5, LeavesCount: 2}
	journalBytes, err := journal.MarshalBinary()
	require.NoError(t, err)

	proof := testProof()
	proofVerifier.EXPECT().
		VerifyProof(context.Background(), proof[1:]).
		Return(journalBytes, nil)
	storer.EXPECT().
		UpdateMMRState(
			context.Background(), testSender,
			journal.BatchIndex, journal.LatestMMRBlock, journal.LeavesCount,
			journal.RootHash,
		).
		Return(mmrstore.ErrIntervalTooSmall)

	ok, err := gateway.VerifyMMRProof(context.Background(), proof, "")
	require.ErrorIs(t, err, mmrstore.ErrIntervalTooSmall)
	require.False(t, ok)
}
