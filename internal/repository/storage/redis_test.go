package storage

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-series/testing/suite"
	"github.com/stretchr/testify/require"
)

func TestRedisStorage(t *testing.T) {
	ctx, st := suite.New(t)

	kv, err := NewRedisStorage(ctx, st.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	testKeyValue(ctx, t, kv)
}
