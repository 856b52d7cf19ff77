package sessions

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/rueidis"
)

const keyPrefix = "session:"

type RedisSessionStore struct {
	client rueidis.Client
}

func NewRedisSessionStore(client rueidis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, token string, memberID int64, ttl time.Duration) error {
	cmd := s.client.B().Set().
		Key(keyPrefix + token).
		Value(strconv.FormatInt(memberID, 10)).
		Ex(ttl).
		Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *RedisSessionStore) Lookup(ctx context.Context, token string) (int64, error) {
	cmd := s.client.B().Get().Key(keyPrefix + token).Build()
	result := s.client.Do(ctx, cmd)

	value, err := result.ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	return strconv.ParseInt(value, 10, 64)
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	cmd := s.client.B().Del().Key(keyPrefix + token).Build()
	return s.client.Do(ctx, cmd).Error()
}
