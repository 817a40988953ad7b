package rpc

import (
	"context"
	"math/big"

	"github.com/OilerNetwork/fossil-L1-L2-relayer/mmrstore"
)

type ProofGateway interface {
	VerifyMMRProof(ctx context.Context, proof []*big.Int, ipfsHash string) (bool, error)
}

type MMRStateReader interface {
	GetMMRState(ctx context.Context, batchIndex uint64) (mmrstore.MMRSnapshot, error)
	GetLatestMMRBlock(ctx context.Context) (uint64, error)
	GetLatestBlockhashFromL1(ctx context.Context) (mmrstore.L1BlockHash, error)
}
