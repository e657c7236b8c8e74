package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	leaseTTL      = 10 * time.Second
	retryInterval = 50 * time.Millisecond
	keyPrefix     = "lock:"
)

// releaseScript só apaga a chave se ainda for o dono do lease.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implementa o escopo de serialização por profissional
// entre múltiplas instâncias da API, via lease SETNX com TTL.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	fullKey := keyPrefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, fullKey, token, leaseTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			release := func() {
				if _, err := releaseScript.Run(
					context.Background(),
					l.client,
					[]string{fullKey},
					token,
				).Result(); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("failed to release schedule lock")
				}
			}
			return release, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

var _ Locker = (*RedisLocker)(nil)
