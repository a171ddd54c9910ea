package simulation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
		require.Equal(t, a.Sample(8), b.Sample(8))
	}
	require.Equal(t, uint64(42), a.Seed())
}

func TestSourceDrawRanges(t *testing.T) {
	t.Parallel()

	src := NewSource(1)
	const n = 20000
	total := 0
	for i := 0; i < n; i++ {
		u := src.Float64()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)

		k := src.Sample(8)
		require.GreaterOrEqual(t, k, 0)
		total += k
	}
	require.InDelta(t, 8.0, float64(total)/n, 0.15)
}
