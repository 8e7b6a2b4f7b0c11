package redis

import (
	"testing"

	"github.com/kaiawatch/kaiawatch/internal/chainpoll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SaveCursor(t *testing.T) {
	c, mock := newMockClient(t)
	mock.ExpectSet(cursorKey(testAddr), int64(120), 0).SetVal("OK")

	err := c.SaveCursor(t.Context(), testAddr, 120)
	require.NoError(t, err)
}

func TestClient_LoadCursor(t *testing.T) {
	t.Run("should return the saved cursor", func(t *testing.T) {
		c, mock := newMockClient(t)
		mock.ExpectGet(cursorKey(testAddr)).SetVal("120")

		block, err := c.LoadCursor(t.Context(), testAddr)
		require.NoError(t, err)

		assert.Equal(t, int64(120), block)
	})

	t.Run("should report a missing cursor", func(t *testing.T) {
		c, mock := newMockClient(t)
		mock.ExpectGet(cursorKey(testAddr)).RedisNil()

		_, err := c.LoadCursor(t.Context(), testAddr)
		require.ErrorIs(t, err, chainpoll.ErrNoCursorFound)
	})
}

func TestClient_DeleteCursor(t *testing.T) {
	c, mock := newMockClient(t)
	mock.ExpectDel(cursorKey(testAddr)).SetVal(1)

	err := c.DeleteCursor(t.Context(), testAddr)
	require.NoError(t, err)
}
