package l1watcher

import (
	"github.com/OilerNetwork/fossil-L1-L2-relayer/config/types"
)

// Config is the configuration of the L1 block watcher
type Config struct {
	// PollInterval is the time between consecutive header polls
	PollInterval types.Duration `mapstructure:"PollInterval"`
	// BlockFinality indicates the status of the blocks whose hashes get stored
	BlockFinality string `jsonschema:"enum=LatestBlock, enum=SafeBlock, enum=PendingBlock, enum=FinalizedBlock, enum=EarliestBlock" mapstructure:"BlockFinality"` //nolint:lll
	// URLRPCL1 is the URL of the L1 JSON RPC node
	URLRPCL1 string `mapstructure:"URLRPCL1"`
}
