package storage

import (
	"context"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_GetSetDelete(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	s := NewRedis(client, "test:")
	defer s.Close()

	ctx := context.Background()

	_, err = s.Get(ctx, KeyRecipients)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyRecipients, []byte(`["a@example.org"]`)))

	raw, err := m.Get("test:" + KeyRecipients)
	require.NoError(t, err)
	assert.Equal(t, `["a@example.org"]`, raw)

	got, err := s.Get(ctx, KeyRecipients)
	require.NoError(t, err)
	assert.Equal(t, `["a@example.org"]`, string(got))

	require.NoError(t, s.Delete(ctx, KeyRecipients))
	require.NoError(t, s.Delete(ctx, KeyRecipients))
	_, err = s.Get(ctx, KeyRecipients)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Ping(ctx))
}

func TestRedisStore_Unreachable(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	addr := m.Addr()
	m.Close()

	s := NewRedis(redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1}), "")
	defer s.Close()

	_, err = s.Get(context.Background(), KeySiteContent)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Error(t, s.Ping(context.Background()))
}
