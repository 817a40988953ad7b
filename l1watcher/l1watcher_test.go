package l1watcher

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	configtypes "github.com/OilerNetwork/fossil-L1-L2-relayer/config/types"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/l1watcher/mocks"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
)

func TestToBlockNum(t *testing.T) {
	num, err := FinalizedBlock.ToBlockNum()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(int64(rpc.FinalizedBlockNumber)), num)

	num, err = LatestBlock.ToBlockNum()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(int64(rpc.LatestBlockNumber)), num)

	_, err = BlockNumberFinality("ConfirmedBlock").ToBlockNum()
	require.Error(t, err)
}

func TestNewRejectsInvalidFinality(t *testing.T) {
	_, err := New(
		log.WithFields("module", "l1watcher"),
		Config{BlockFinality: "ConfirmedBlock"},
		mocks.NewEthClienter(t),
		mocks.NewBlockhashStorer(t),
	)
	require.Error(t, err)
}

func TestWatcherStoresNewBlockhashes(t *testing.T) {
	client := mocks.NewEthClienter(t)
	storer := mocks.NewBlockhashStorer(t)

	headerA := &types.Header{Number: big.NewInt(100)}
	headerB := &types.Header{Number: big.NewInt(101)}

	// first poll fails, the next two see the same finalized block, then the
	// chain advances
	var calls atomic.Int64
	client.EXPECT().
		HeaderByNumber(mock.Anything, big.NewInt(int64(rpc.FinalizedBlockNumber))).
		RunAndReturn(func(ctx context.Context, number *big.Int) (*types.Header, error) {
			switch calls.Add(1) {
			case 1:
				return nil, errors.New("connection refused")
			case 2, 3:
				return headerA, nil
			default:
				return headerB, nil
			}
		})

	storer.EXPECT().
		StoreLatestBlockhashFromL1(mock.Anything, uint64(100), headerA.Hash()).
		Return(nil).
		Once()
	done := make(chan struct{})
	storer.EXPECT().
		StoreLatestBlockhashFromL1(mock.Anything, uint64(101), headerB.Hash()).
		RunAndReturn(func(context.Context, uint64, common.Hash) error {
			close(done)
			return nil
		}).
		Once()

	watcher, err := New(
		log.WithFields("module", "l1watcher"),
		Config{
			PollInterval:  configtypes.NewDuration(time.Millisecond * 10),
			BlockFinality: string(FinalizedBlock),
		},
		client,
		storer,
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go watcher.Start(ctx)

	select {
	case <-done:
	case <-time.After(time.Second * 5):
		t.Fatal("watcher did not store the advanced blockhash in time")
	}
	cancel()
}
