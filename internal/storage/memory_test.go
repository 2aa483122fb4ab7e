package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var out record
	found, err := s.Get(ctx, "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "rec", record{Name: "hammer", Count: 3}))
	found, err = s.Get(ctx, "rec", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, record{Name: "hammer", Count: 3}, out)

	// Overwrite replaces the stored value
	require.NoError(t, s.Set(ctx, "rec", record{Name: "drill", Count: 1}))
	_, err = s.Get(ctx, "rec", &out)
	require.NoError(t, err)
	assert.Equal(t, "drill", out.Name)

	require.NoError(t, s.Delete(ctx, "rec"))
	found, err = s.Get(ctx, "rec", &out)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key succeeds quietly
	require.NoError(t, s.Delete(ctx, "rec"))
}
