package verifier

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// publicInputFelts is the number of trailing field elements carrying
	// the journal claim: batch index, latest MMR block, leaves count and
	// the MMR root split into low and high 128 bit limbs.
	publicInputFelts = 5

	feltSize = 32
)

// Groth16Verifier checks BN254 Groth16 proofs against a fixed verifying
// key loaded at startup.
type Groth16Verifier struct {
	vk groth16.VerifyingKey
}

func NewGroth16Verifier(vkPath string) (*Groth16Verifier, error) {
	vkFile, err := os.Open(vkPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open verifying key %s: %w", vkPath, err)
	}
	defer vkFile.Close()

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(vkFile); err != nil {
		return nil, fmt.Errorf("failed to read verifying key %s: %w", vkPath, err)
	}
	return &Groth16Verifier{vk: vk}, nil
}

// VerifyProof expects the serialized proof as 32 byte big endian limbs,
// zero padded at the end, followed by the publicInputFelts journal felts.
// On success it returns the canonical journal encoding of the claim.
func (v *Groth16Verifier) VerifyProof(ctx context.Context, payload []*big.Int) ([]byte, error) {
	if len(payload) <= publicInputFelts {
		return nil, fmt.Errorf("payload too short: %d field elements", len(payload))
	}
	proofFelts := payload[:len(payload)-publicInputFelts]
	journalFelts := payload[len(payload)-publicInputFelts:]
	for i, felt := range journalFelts[:3] {
		if felt.BitLen() > 64 {
			return nil, fmt.Errorf("journal felt %d does not fit an uint64", i)
		}
	}
	for i, felt := range journalFelts[3:] {
		if felt.BitLen() > 128 {
			return nil, fmt.Errorf("root limb %d does not fit 128 bits", i)
		}
	}

	proofBytes := make([]byte, 0, len(proofFelts)*feltSize)
	var limb [feltSize]byte
	for _, felt := range proofFelts {
		felt.FillBytes(limb[:])
		proofBytes = append(proofBytes, limb[:]...)
	}

	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return nil, fmt.Errorf("failed to read proof: %w", err)
	}

	publicWitness, err := journalWitness(journalFelts)
	if err != nil {
		return nil, err
	}
	if err := groth16.Verify(proof, v.vk, publicWitness); err != nil {
		return nil, fmt.Errorf("invalid proof: %w", err)
	}

	journal := &Journal{
		BatchIndex:     journalFelts[0].Uint64(),
		LatestMMRBlock: journalFelts[1].Uint64(),
		LeavesCount:    journalFelts[2].Uint64(),
		RootHash:       rootFromLimbs(journalFelts[3], journalFelts[4]),
	}
	return journal.MarshalBinary()
}

func journalWitness(felts []*big.Int) (witness.Witness, error) {
	w, err := witness.New(ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("failed to create witness: %w", err)
	}
	values := make(chan any, len(felts))
	for _, felt := range felts {
		values <- felt
	}
	close(values)
	if err := w.Fill(len(felts), 0, values); err != nil {
		return nil, fmt.Errorf("failed to fill witness: %w", err)
	}
	return w, nil
}

func rootFromLimbs(low, high *big.Int) common.Hash {
	root := new(big.Int).Lsh(high, 128)
	root.Add(root, low)

	var h common.Hash
	root.FillBytes(h[:])
	return h
}
