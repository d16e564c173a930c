package favorites

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Toggle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	added, err := store.Toggle(ctx, 7, "3")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Toggle(ctx, 7, "1")
	require.NoError(t, err)
	assert.True(t, added)

	ids, err := store.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids)

	added, err = store.Toggle(ctx, 7, "3")
	require.NoError(t, err)
	assert.False(t, added)

	ids, err = store.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)

	// у другого пользователя свой набор
	other, err := store.List(ctx, 8)
	require.NoError(t, err)
	assert.NotNil(t, other)
	assert.Empty(t, other)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, _ = store.Toggle(ctx, 7, "1")

	ids, _ := store.List(ctx, 7)
	ids[0] = "changed"

	again, _ := store.List(ctx, 7)
	assert.Equal(t, []string{"1"}, again)
}

func TestRedisStore_Key(t *testing.T) {
	assert.Equal(t, "rental:favorites:7", NewRedisStore(nil, "").key(7))
	assert.Equal(t, "shop:favorites:42", NewRedisStore(nil, "shop").key(42))
}

// newRedisStore поднимает miniredis и возвращает хранилище с пошаговыми часами
func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := NewRedisStore(rdb, "test")
	tick := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return store, mr
}

func TestRedisStore_Toggle(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	added, err := store.Toggle(ctx, 7, "3")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, mr.Exists("test:favorites:7"))

	added, err = store.Toggle(ctx, 7, "3")
	require.NoError(t, err)
	assert.False(t, added)

	ids, err := store.List(ctx, 7)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestRedisStore_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	for _, id := range []string{"5", "1", "3"} {
		added, err := store.Toggle(ctx, 7, id)
		require.NoError(t, err)
		require.True(t, added)
	}

	ids, err := store.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "1", "3"}, ids)

	// повторное добавление после удаления ставит элемент в конец
	_, err = store.Toggle(ctx, 7, "5")
	require.NoError(t, err)
	_, err = store.Toggle(ctx, 7, "5")
	require.NoError(t, err)

	ids, err = store.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "5"}, ids)

	other, err := store.List(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Toggle(ctx, 7, "1")
	assert.ErrorIs(t, err, ErrStore)

	_, err = store.List(ctx, 7)
	assert.ErrorIs(t, err, ErrStore)
}
