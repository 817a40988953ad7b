package l1watcher

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
)

// EthClienter is the subset of the L1 client the watcher needs.
type EthClienter interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// BlockhashStorer is implemented by mmrstore.MMRStorage.
type BlockhashStorer interface {
	StoreLatestBlockhashFromL1(ctx context.Context, blockNumber uint64, blockhash common.Hash) error
}

// L1Watcher polls L1 for headers at the configured finality and pushes each
// newly seen blockhash into the state store.
type L1Watcher struct {
	logger          *log.Logger
	ticker          *time.Ticker
	l1Client        EthClienter
	storage         BlockhashStorer
	blockFinality   *big.Int
	lastStoredBlock uint64
}

func New(
	logger *log.Logger,
	cfg Config,
	l1Client EthClienter,
	storage BlockhashStorer,
) (*L1Watcher, error) {
	finality, err := BlockNumberFinality(cfg.BlockFinality).ToBlockNum()
	if err != nil {
		return nil, err
	}
	return &L1Watcher{
		logger:        logger,
		ticker:        time.NewTicker(cfg.PollInterval.Duration),
		l1Client:      l1Client,
		storage:       storage,
		blockFinality: finality,
	}, nil
}

func (w *L1Watcher) Start(ctx context.Context) {
	for {
		select {
		case <-w.ticker.C:
			header, err := w.l1Client.HeaderByNumber(ctx, w.blockFinality)
			if err != nil {
				w.logger.Error("error getting L1 header: ", err)
				continue
			}
			blockNumber := header.Number.Uint64()
			if blockNumber == w.lastStoredBlock {
				w.logger.Debugf("L1 block %d already stored", blockNumber)
				continue
			}
			if err := w.storage.StoreLatestBlockhashFromL1(ctx, blockNumber, header.Hash()); err != nil {
				w.logger.Errorf("error storing blockhash for L1 block %d: %v", blockNumber, err)
				continue
			}
			w.lastStoredBlock = blockNumber
			w.logger.Debugf("stored blockhash %s for L1 block %d", header.Hash().Hex(), blockNumber)
		case <-ctx.Done():
			w.ticker.Stop()
			return
		}
	}
}
