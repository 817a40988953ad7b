package l1watcher

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rpc"
)

// BlockNumberFinality is the status a block must have reached before the
// watcher stores its hash.
type BlockNumberFinality string

const (
	LatestBlock    BlockNumberFinality = "LatestBlock"
	SafeBlock      BlockNumberFinality = "SafeBlock"
	PendingBlock   BlockNumberFinality = "PendingBlock"
	FinalizedBlock BlockNumberFinality = "FinalizedBlock"
	EarliestBlock  BlockNumberFinality = "EarliestBlock"
)

// ToBlockNum translates the finality name into the block number tag the
// eth_getBlockByNumber endpoint understands.
func (b BlockNumberFinality) ToBlockNum() (*big.Int, error) {
	switch b {
	case LatestBlock:
		return big.NewInt(int64(rpc.LatestBlockNumber)), nil
	case SafeBlock:
		return big.NewInt(int64(rpc.SafeBlockNumber)), nil
	case PendingBlock:
		return big.NewInt(int64(rpc.PendingBlockNumber)), nil
	case FinalizedBlock:
		return big.NewInt(int64(rpc.FinalizedBlockNumber)), nil
	case EarliestBlock:
		return big.NewInt(int64(rpc.EarliestBlockNumber)), nil
	default:
		return nil, fmt.Errorf("invalid block finality %q", string(b))
	}
}
