package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint64Conversion(t *testing.T) {
	for _, num := range []uint64{0, 1, 255, 256, 1<<32 + 1, 1<<63 + 42} {
		b := Uint64ToBytes(num)
		require.Len(t, b, 8)
		require.Equal(t, num, BytesToUint64(b))
	}
}

func TestGenericSubscriber(t *testing.T) {
	sub := NewGenericSubscriberImpl[int]()
	ch1 := sub.Subscribe("first")
	ch2 := sub.Subscribe("second")

	sub.Publish(42)

	require.Equal(t, 42, <-ch1)
	require.Equal(t, 42, <-ch2)
}
