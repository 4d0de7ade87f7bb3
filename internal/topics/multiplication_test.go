package topics

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplicationTables(t *testing.T) {
	qs, err := MultiplicationTables().Questions(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 100)

	for _, q := range qs {
		require.Len(t, q.Options, 4, q.Text)

		seen := map[string]bool{}
		for i, opt := range q.Options {
			n, err := strconv.Atoi(opt)
			require.NoError(t, err)
			assert.Positive(t, n, q.Text)
			assert.False(t, seen[opt], "%s: duplicate option %s at %d", q.Text, opt, i)
			seen[opt] = true
		}
	}

	assert.Equal(t, "7 × 8 = ?", qs[6*10+7].Text)
	assert.Equal(t, "56", qs[6*10+7].Correct())
}
