package basis

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thoemi09/godlr/grid"
	"github.com/Thoemi09/godlr/pivgs"
)

func TestFrequencies_Validation(t *testing.T) {
	_, err := Frequencies(0, 1e-8)
	assert.ErrorIs(t, err, grid.ErrNonPositiveLambda)

	_, err = Frequencies(-5, 1e-8)
	assert.ErrorIs(t, err, grid.ErrNonPositiveLambda)

	_, err = Frequencies(100, 0)
	assert.ErrorIs(t, err, pivgs.ErrBadTolerance)

	_, err = Frequencies(100, -1e-8)
	assert.ErrorIs(t, err, pivgs.ErrBadTolerance)

	_, err = Frequencies(100, 1e-8, WithPanelOrder(0))
	assert.ErrorIs(t, err, grid.ErrNonPositiveOrder)
}

func TestFrequencies_BasicShape(t *testing.T) {
	const lambda = 100.0

	rf, err := Frequencies(lambda, 1e-8)
	require.NoError(t, err)

	// Compression: far fewer frequencies than the fine grid, but enough to
	// resolve the kernel at this accuracy.
	assert.Greater(t, len(rf), 10)
	assert.Less(t, len(rf), 60)

	for i, om := range rf {
		assert.LessOrEqual(t, math.Abs(om), lambda, "frequency %d out of cutoff", i)
		if i > 0 {
			assert.Greater(t, om, rf[i-1], "frequencies must be strictly ascending")
		}
	}
}

func TestFrequencies_RankGrowsWithAccuracy(t *testing.T) {
	loose, err := Frequencies(1000, 1e-4)
	require.NoError(t, err)

	tight, err := Frequencies(1000, 1e-10)
	require.NoError(t, err)

	assert.Greater(t, len(tight), len(loose))
}

func TestFrequencies_Deterministic(t *testing.T) {
	a, err := Frequencies(200, 1e-9)
	require.NoError(t, err)

	b, err := Frequencies(200, 1e-9)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestFrequencies_SymmetrizedClosedUnderNegation(t *testing.T) {
	rf, err := Frequencies(100, 1e-8, WithSymmetrized())
	require.NoError(t, err)

	// Fine frequencies are mirrored exactly, so -ω of a selected frequency
	// is bit-identical to another fine-grid entry.
	seen := make(map[float64]bool, len(rf))
	for _, om := range rf {
		seen[om] = true
	}
	for _, om := range rf {
		assert.True(t, seen[-om], "missing negation partner of %v", om)
	}
}

func TestFrequencies_SymmetrizedAtLeastPlainRank(t *testing.T) {
	plain, err := Frequencies(100, 1e-8)
	require.NoError(t, err)

	sym, err := Frequencies(100, 1e-8, WithSymmetrized())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(sym), len(plain))
}

func TestFrequencies_PrecisionWarning(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	_, err := Frequencies(10, 1e-15)
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "machine precision"),
		"expected precision warning, got: %s", buf.String())

	buf.Reset()
	_, err = Frequencies(10, 1e-8)
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "no warning expected at moderate tolerance")
}
