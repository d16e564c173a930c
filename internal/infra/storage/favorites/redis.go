package favorites

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// toggleScript атомарно переключает элемент в sorted set пользователя.
// Score - время добавления, чтобы List отдавал элементы в порядке добавления.
var toggleScript = redis.NewScript(`
if redis.call('ZSCORE', KEYS[1], ARGV[1]) then
	redis.call('ZREM', KEYS[1], ARGV[1])
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[2], ARGV[1])
return 1
`)

// RedisStore избранное в Redis: один sorted set на пользователя
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRedisStore создает хранилище избранного в Redis
func NewRedisStore(rdb redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "rental"
	}
	return &RedisStore{rdb: rdb, prefix: prefix, now: time.Now}
}

func (s *RedisStore) key(userID int64) string {
	return fmt.Sprintf("%s:favorites:%d", s.prefix, userID)
}

// Toggle добавляет элемент в избранное или убирает его оттуда.
// Возвращает true, если элемент теперь в избранном.
func (s *RedisStore) Toggle(ctx context.Context, userID int64, itemID string) (bool, error) {
	added, err := toggleScript.Run(ctx, s.rdb, []string{s.key(userID)}, itemID, s.now().UnixNano()).Int()
	if err != nil {
		return false, fmt.Errorf("%w: Toggle - user=%d item=%s: %v", ErrStore, userID, itemID, err)
	}
	return added == 1, nil
}

// List возвращает избранное пользователя в порядке добавления
func (s *RedisStore) List(ctx context.Context, userID int64) ([]string, error) {
	ids, err := s.rdb.ZRange(ctx, s.key(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: List - user=%d: %v", ErrStore, userID, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
