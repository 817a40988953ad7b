package verifier

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestJournalRoundTrip(t *testing.T) {
	journal := Journal{
		BatchIndex:     7,
		LatestMMRBlock: 20_358_019,
		LeavesCount:    1024,
		RootHash:       common.HexToHash("0x42d98f07a7f2f7b2b8d4e1b1e5b8886f6ab8ee3b8647f7b0a2a8c3a0d5c6e1aa"),
	}

	raw, err := journal.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, raw, journalSize)

	var decoded Journal
	require.NoError(t, decoded.UnmarshalBinary(raw))
	require.Equal(t, journal, decoded)
}

func TestJournalDecodeWrongLength(t *testing.T) {
	var journal Journal
	err := journal.UnmarshalBinary(make([]byte, journalSize-1))
	require.ErrorIs(t, err, ErrJournalDecodeFailed)

	err = journal.UnmarshalBinary(make([]byte, journalSize+1))
	require.ErrorIs(t, err, ErrJournalDecodeFailed)
}
