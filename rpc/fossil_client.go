package rpc

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/0xPolygon/cdk-rpc/rpc"
	rpctypes "github.com/0xPolygon/cdk-rpc/types"

	"github.com/OilerNetwork/fossil-L1-L2-relayer/mmrstore"
)

type FossilClientInterface interface {
	VerifyMmrProof(proof []*big.Int, ipfsHash string) (bool, error)
	GetMmrState(batchIndex uint64) (*mmrstore.MMRSnapshot, error)
	GetLatestMmrBlock() (uint64, error)
	GetLatestBlockhashFromL1() (*mmrstore.L1BlockHash, error)
}

func (c *Client) VerifyMmrProof(proof []*big.Int, ipfsHash string) (bool, error) {
	felts := make([]rpctypes.ArgBig, len(proof))
	for i := range proof {
		felts[i] = rpctypes.ArgBig(*proof[i])
	}
	response, err := rpc.JSONRPCCall(c.url, "fossil_verifyMmrProof", felts, ipfsHash)
	if err != nil {
		return false, err
	}
	if response.Error != nil {
		return false, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result bool
	return result, json.Unmarshal(response.Result, &result)
}

func (c *Client) GetMmrState(batchIndex uint64) (*mmrstore.MMRSnapshot, error) {
	response, err := rpc.JSONRPCCall(c.url, "fossil_getMmrState", rpctypes.ArgUint64(batchIndex))
	if err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result mmrstore.MMRSnapshot
	return &result, json.Unmarshal(response.Result, &result)
}

func (c *Client) GetLatestMmrBlock() (uint64, error) {
	response, err := rpc.JSONRPCCall(c.url, "fossil_getLatestMmrBlock")
	if err != nil {
		return 0, err
	}
	if response.Error != nil {
		return 0, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result uint64
	return result, json.Unmarshal(response.Result, &result)
}

func (c *Client) GetLatestBlockhashFromL1() (*mmrstore.L1BlockHash, error) {
	response, err := rpc.JSONRPCCall(c.url, "fossil_getLatestBlockhashFromL1")
	if err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result mmrstore.L1BlockHash
	return &result, json.Unmarshal(response.Result, &result)
}
