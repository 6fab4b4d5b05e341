package diskfree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	u, err := Query(t.TempDir())
	require.NoError(t, err)

	assert.Greater(t, u.TotalBytes, uint64(0))
	assert.LessOrEqual(t, u.FreeBytes, u.TotalBytes)

	frac := u.FreeFraction()
	assert.GreaterOrEqual(t, frac, 0.0)
	assert.LessOrEqual(t, frac, 1.0)
}

func TestQueryMissingPath(t *testing.T) {
	_, err := Query("/does/not/exist/anywhere")
	assert.Error(t, err)
}

func TestFreeFractionZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, Usage{}.FreeFraction())
}
