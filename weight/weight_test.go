package weight

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomainFloat64_SampleWithinBounds(t *testing.T) {
	dom := NewDomain[float64]()
	require.True(t, math.IsInf(dom.Infinity, 1))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := dom.Sample(rng, -1.0, 1.0)
		require.GreaterOrEqual(t, v, -1.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestDomainInt64_SampleWithinInclusiveBounds(t *testing.T) {
	dom := NewDomain[int64]()
	require.Equal(t, int64(math.MaxInt64), dom.Infinity)

	rng := rand.New(rand.NewSource(42))
	seenMin, seenMax := false, false
	for i := 0; i < 5000; i++ {
		v := dom.Sample(rng, -2, 2)
		require.GreaterOrEqual(t, v, int64(-2))
		require.LessOrEqual(t, v, int64(2))
		if v == -2 {
			seenMin = true
		}
		if v == 2 {
			seenMax = true
		}
	}
	require.True(t, seenMin, "expected to sample the lower bound at least once in 5000 draws")
	require.True(t, seenMax, "expected to sample the upper bound at least once in 5000 draws")
}

func TestDomainInt64_DegenerateInterval(t *testing.T) {
	dom := NewDomain[int64]()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		require.Equal(t, int64(3), dom.Sample(rng, 3, 3))
	}
}

func TestAddSub_IntegerWraps(t *testing.T) {
	// Documented behavior: integer instantiations wrap on overflow.
	var maxI32 int32 = math.MaxInt32
	require.Equal(t, int32(math.MinInt32), Add(maxI32, int32(1)))
}

func TestAddSub_FloatSaturates(t *testing.T) {
	require.True(t, math.IsInf(float64(Add(math.MaxFloat64, math.MaxFloat64)), 1))
}

func TestLess_TotalOrder(t *testing.T) {
	require.True(t, Less(1.0, 2.0))
	require.False(t, Less(2.0, 1.0))
	require.False(t, Less(1.0, 1.0))
}
