package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaiawatch/kaiawatch/internal/chainpoll"

	redis "github.com/redis/go-redis/v9"
)

// chainpollKeyPrefix is the Redis key namespace for poller state.
const chainpollKeyPrefix = "chainpoll"

// cursorKey stores the last processed block for one watched address.
//
// Format: "chainpoll:cursor:{address}"
func cursorKey(address string) string {
	return fmt.Sprintf("%s:cursor:%s", chainpollKeyPrefix, address)
}

// SaveCursor persists the latest processed block for the address with
// no expiration, so the poller resumes from it after a restart.
func (c *client) SaveCursor(ctx context.Context, address string, block int64) error {
	return c.conn.Set(ctx, cursorKey(address), block, 0).Err()
}

// LoadCursor returns the address's cursor, or
// chainpoll.ErrNoCursorFound when the address was never polled.
func (c *client) LoadCursor(ctx context.Context, address string) (int64, error) {
	block, err := c.conn.Get(ctx, cursorKey(address)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = chainpoll.ErrNoCursorFound
		}

		return 0, err
	}

	return block, nil
}

// DeleteCursor discards the cursor of an address that lost its last
// subscriber.
func (c *client) DeleteCursor(ctx context.Context, address string) error {
	return c.conn.Del(ctx, cursorKey(address)).Err()
}

var (
	_ chainpoll.CursorStorage   = (*client)(nil)
	_ chainpoll.WatchlistSource = (*client)(nil)
)
