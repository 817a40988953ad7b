package verifier

import (
	"bytes"
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// journalCircuit binds a secret witness to the five public journal felts.
// It stands in for the MMR accumulator circuit, which is proved off-chain.
type journalCircuit struct {
	BatchIndex     frontend.Variable `gnark:",public"`
	LatestMMRBlock frontend.Variable `gnark:",public"`
	LeavesCount    frontend.Variable `gnark:",public"`
	RootLow        frontend.Variable `gnark:",public"`
	RootHigh       frontend.Variable `gnark:",public"`
	Secret         frontend.Variable
}

func (c *journalCircuit) Define(api frontend.API) error {
	sum := api.Add(c.BatchIndex, c.LatestMMRBlock, c.LeavesCount, c.RootLow, c.RootHigh)
	api.AssertIsEqual(c.Secret, sum)
	return nil
}

// feltsFromBytes packs a serialized proof into the 32 byte big endian limbs
// VerifyProof expects, zero padding the tail.
func feltsFromBytes(raw []byte) []*big.Int {
	if rem := len(raw) % feltSize; rem != 0 {
		raw = append(raw, make([]byte, feltSize-rem)...)
	}
	felts := make([]*big.Int, 0, len(raw)/feltSize)
	for i := 0; i < len(raw); i += feltSize {
		felts = append(felts, new(big.Int).SetBytes(raw[i:i+feltSize]))
	}
	return felts
}

func TestGroth16VerifierEndToEnd(t *testing.T) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &journalCircuit{})
	require.NoError(t, err)
	pk, vk, err := groth16.Setup(ccs)
	require.NoError(t, err)

	vkPath := filepath.Join(t.TempDir(), "groth16_vk.bin")
	vkFile, err := os.Create(vkPath)
	require.NoError(t, err)
	_, err = vk.WriteTo(vkFile)
	require.NoError(t, err)
	require.NoError(t, vkFile.Close())

	verifier, err := NewGroth16Verifier(vkPath)
	require.NoError(t, err)

	rootHash := common.HexToHash("0x42d98f07a7f2f7b2b8d4e1b1e5b8886f6ab8ee3b8647f7b0a2a8c3a0d5c6e1aa")
	rootLow := new(big.Int).SetBytes(rootHash[16:])
	rootHigh := new(big.Int).SetBytes(rootHash[:16])

	batchIndex := big.NewInt(9)
	latestMMRBlock := big.NewInt(20_358_019)
	leavesCount := big.NewInt(4096)

	secret := new(big.Int).Add(batchIndex, latestMMRBlock)
	secret.Add(secret, leavesCount)
	secret.Add(secret, rootLow)
	secret.Add(secret, rootHigh)

	assignment := &journalCircuit{
		BatchIndex:     batchIndex,
		LatestMMRBlock: latestMMRBlock,
		LeavesCount:    leavesCount,
		RootLow:        rootLow,
		RootHigh:       rootHigh,
		Secret:         secret,
	}
	fullWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	require.NoError(t, err)
	proof, err := groth16.Prove(ccs, pk, fullWitness)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = proof.WriteTo(&buf)
	require.NoError(t, err)

	payload := feltsFromBytes(buf.Bytes())
	payload = append(payload, batchIndex, latestMMRBlock, leavesCount, rootLow, rootHigh)

	journalBytes, err := verifier.VerifyProof(context.Background(), payload)
	require.NoError(t, err)

	var journal Journal
	require.NoError(t, journal.UnmarshalBinary(journalBytes))
	require.Equal(t, batchIndex.Uint64(), journal.BatchIndex)
	require.Equal(t, latestMMRBlock.Uint64(), journal.LatestMMRBlock)
	require.Equal(t, leavesCount.Uint64(), journal.LeavesCount)
	require.Equal(t, rootHash, journal.RootHash)

	// the proof must not verify a different claim
	tampered := make([]*big.Int, len(payload))
	copy(tampered, payload)
	tampered[len(tampered)-3] = big.NewInt(4097)
	_, err = verifier.VerifyProof(context.Background(), tampered)
	require.ErrorContains(t, err, "invalid proof")
}

func TestGroth16VerifierMissingKey(t *testing.T) {
	_, err := NewGroth16Verifier(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}

func TestGroth16VerifierShortPayload(t *testing.T) {
	verifier := &Groth16Verifier{}
	_, err := verifier.VerifyProof(context.Background(), []*big.Int{
		big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4), big.NewInt(5),
	})
	require.ErrorContains(t, err, "payload too short")
}
