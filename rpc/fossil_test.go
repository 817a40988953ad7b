package rpc

import (
	"errors"
	"math/big"
	"testing"
	"time"

	rpctypes "github.com/0xPolygon/cdk-rpc/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/mmrstore"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/rpc/mocks"
)

type fossilWithMocks struct {
	fossil  *FossilEndpoints
	gateway *mocks.ProofGateway
	storage *mocks.MMRStateReader
}

func newFossilWithMocks(t *testing.T) fossilWithMocks {
	t.Helper()

	gateway := mocks.NewProofGateway(t)
	storage := mocks.NewMMRStateReader(t)
	logger := log.WithFields("module", "rpc")
	return fossilWithMocks{
		fossil:  NewFossilEndpoints(logger, time.Second*10, time.Second*2, gateway, storage),
		gateway: gateway,
		storage: storage,
	}
}

func TestVerifyMmrProof(t *testing.T) {
	f := newFossilWithMocks(t)

	proof := []rpctypes.ArgBig{
		rpctypes.ArgBig(*big.NewInt(0)),
		rpctypes.ArgBig(*big.NewInt(42)),
	}
	expectedFelts := []*big.Int{big.NewInt(0), big.NewInt(42)}

	f.gateway.EXPECT().
		VerifyMMRProof(mock.Anything, expectedFelts, "QmFoo").
		Return(true, nil).
		Once()
	result, rpcErr := f.fossil.VerifyMmrProof(proof, "QmFoo")
	require.Nil(t, rpcErr)
	require.Equal(t, true, result)

	f.gateway.EXPECT().
		VerifyMMRProof(mock.Anything, expectedFelts, "QmFoo").
		Return(false, errors.New("foo")).
		Once()
	result, rpcErr = f.fossil.VerifyMmrProof(proof, "QmFoo")
	require.NotNil(t, rpcErr)
	require.Equal(t, zeroHex, result)
}

func TestGetMmrState(t *testing.T) {
	f := newFossilWithMocks(t)

	snapshot := mmrstore.MMRSnapshot{
		BatchIndex:  4,
		LeavesCount: 128,
		RootHash:    common.HexToHash("0xbeef"),
	}
	f.storage.EXPECT().
		GetMMRState(mock.Anything, uint64(4)).
		Return(snapshot, nil).
		Once()
	result, rpcErr := f.fossil.GetMmrState(rpctypes.ArgUint64(4))
	require.Nil(t, rpcErr)
	require.Equal(t, snapshot, result)

	f.storage.EXPECT().
		GetMMRState(mock.Anything, uint64(4)).
		Return(mmrstore.MMRSnapshot{}, errors.New("foo")).
		Once()
	_, rpcErr = f.fossil.GetMmrState(rpctypes.ArgUint64(4))
	require.NotNil(t, rpcErr)
}

func TestGetLatestMmrBlock(t *testing.T) {
	f := newFossilWithMocks(t)

	f.storage.EXPECT().
		GetLatestMMRBlock(mock.Anything).
		Return(uint64(1234), nil).
		Once()
	result, rpcErr := f.fossil.GetLatestMmrBlock()
	require.Nil(t, rpcErr)
	require.Equal(t, uint64(1234), result)

	f.storage.EXPECT().
		GetLatestMMRBlock(mock.Anything).
		Return(uint64(0), errors.New("foo")).
		Once()
	_, rpcErr = f.fossil.GetLatestMmrBlock()
	require.NotNil(t, rpcErr)
}

func TestGetLatestBlockhashFromL1(t *testing.T) {
	f := newFossilWithMocks(t)

	blockhash := mmrstore.L1BlockHash{
		BlockNumber: 999,
		Blockhash:   common.HexToHash("0xcafe"),
	}
	f.storage.EXPECT().
		GetLatestBlockhashFromL1(mock.Anything).
		Return(blockhash, nil).
		Once()
	result, rpcErr := f.fossil.GetLatestBlockhashFromL1()
	require.Nil(t, rpcErr)
	require.Equal(t, blockhash, result)

	f.storage.EXPECT().
		GetLatestBlockhashFromL1(mock.Anything).
		Return(mmrstore.L1BlockHash{}, errors.New("foo")).
		Once()
	_, rpcErr = f.fossil.GetLatestBlockhashFromL1()
	require.NotNil(t, rpcErr)
}
