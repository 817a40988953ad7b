package verifier

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	fossilcommon "github.com/OilerNetwork/fossil-L1-L2-relayer/common"
)

// journalSize is the exact byte length of an encoded journal:
// batch index, latest MMR block and leaves count as big endian uint64s,
// followed by the 32 byte MMR root.
const journalSize = 56

var ErrJournalDecodeFailed = errors.New("journal decode failed")

// Journal is the public claim carried by a verified proof.
type Journal struct {
	BatchIndex     uint64
	LatestMMRBlock uint64
	LeavesCount    uint64
	RootHash       common.Hash
}

// MarshalBinary implements encoding.BinaryMarshaler
func (j *Journal) MarshalBinary() ([]byte, error) {
	raw := make([]byte, 0, journalSize)
	raw = append(raw, fossilcommon.Uint64ToBytes(j.BatchIndex)...)
	raw = append(raw, fossilcommon.Uint64ToBytes(j.LatestMMRBlock)...)
	raw = append(raw, fossilcommon.Uint64ToBytes(j.LeavesCount)...)
	raw = append(raw, j.RootHash.Bytes()...)
	return raw, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (j *Journal) UnmarshalBinary(data []byte) error {
	if len(data) != journalSize {
		return fmt.Errorf("%w: expected len %d, actual len %d",
			ErrJournalDecodeFailed, journalSize, len(data))
	}
	j.BatchIndex = fossilcommon.BytesToUint64(data[:8])
	j.LatestMMRBlock = fossilcommon.BytesToUint64(data[8:16])
	j.LeavesCount = fossilcommon.BytesToUint64(data[16:24])
	j.RootHash = common.BytesToHash(data[24:journalSize])
	return nil
}
