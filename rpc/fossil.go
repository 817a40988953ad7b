package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	rpctypes "github.com/0xPolygon/cdk-rpc/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
)

const (
	// FOSSIL is the namespace of the fossil service
	FOSSIL    = "fossil"
	meterName = "github.com/OilerNetwork/fossil-L1-L2-relayer/rpc"

	zeroHex = "0x0"
)

// FossilEndpoints contains implementations for the "fossil" RPC endpoints
type FossilEndpoints struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	gateway      ProofGateway
	storage      MMRStateReader
}

// NewFossilEndpoints returns FossilEndpoints
func NewFossilEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	gateway ProofGateway,
	storage MMRStateReader,
) *FossilEndpoints {
	meter := otel.Meter(meterName)
	return &FossilEndpoints{
		logger:       logger,
		meter:        meter,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		gateway:      gateway,
		storage:      storage,
	}
}

// VerifyMmrProof verifies the given proof payload and, if it is valid,
// commits the MMR claim it carries. ipfsHash references the off-chain data
// the proof was built from.
func (f *FossilEndpoints) VerifyMmrProof(proof []rpctypes.ArgBig, ipfsHash string) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.writeTimeout)
	defer cancel()

	c, merr := f.meter.Int64Counter("verify_mmr_proof")
	if merr != nil {
		f.logger.Warnf("failed to create verify_mmr_proof counter: %s", merr)
	}
	c.Add(ctx, 1)

	if f.gateway == nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, "this client does not support proof verification")
	}
	felts := make([]*big.Int, len(proof))
	for i := range proof {
		felt := big.Int(proof[i])
		felts[i] = &felt
	}
	verified, err := f.gateway.VerifyMMRProof(ctx, felts, ipfsHash)
	if err != nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to verify MMR proof, error: %s", err))
	}
	return verified, nil
}

// GetMmrState returns the committed snapshot for the given batch index. An
// index that was never written returns the zero valued snapshot.
func (f *FossilEndpoints) GetMmrState(batchIndex rpctypes.ArgUint64) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.readTimeout)
	defer cancel()

	c, merr := f.meter.Int64Counter("get_mmr_state")
	if merr != nil {
		f.logger.Warnf("failed to create get_mmr_state counter: %s", merr)
	}
	c.Add(ctx, 1)

	snapshot, err := f.storage.GetMMRState(ctx, uint64(batchIndex))
	if err != nil {
		return zeroHex, rpc.NewRPCError(
			rpc.DefaultErrorCode,
			fmt.Sprintf("failed to get MMR state for batch %d, error: %s", batchIndex, err),
		)
	}
	return snapshot, nil
}

// GetLatestMmrBlock returns the highest L1 block covered by the MMR.
func (f *FossilEndpoints) GetLatestMmrBlock() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.readTimeout)
	defer cancel()

	c, merr := f.meter.Int64Counter("get_latest_mmr_block")
	if merr != nil {
		f.logger.Warnf("failed to create get_latest_mmr_block counter: %s", merr)
	}
	c.Add(ctx, 1)

	latestBlock, err := f.storage.GetLatestMMRBlock(ctx)
	if err != nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get latest MMR block, error: %s", err))
	}
	return latestBlock, nil
}

// GetLatestBlockhashFromL1 returns the most recently stored L1 reference
// block number and hash.
func (f *FossilEndpoints) GetLatestBlockhashFromL1() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), f.readTimeout)
	defer cancel()

	c, merr := f.meter.Int64Counter("get_latest_blockhash_from_l1")
	if merr != nil {
		f.logger.Warnf("failed to create get_latest_blockhash_from_l1 counter: %s", merr)
	}
	c.Add(ctx, 1)

	blockhash, err := f.storage.GetLatestBlockhashFromL1(ctx)
	if err != nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get latest L1 blockhash, error: %s", err))
	}
	return blockhash, nil
}
