package redisdb

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/almacen-api/internal/application/auth"
)

var _ auth.TokenBlocklist = (*Blocklist)(nil)

// NewClient crea el cliente Redis a partir de la URL y verifica conectividad.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// Blocklist guarda JTIs revocados en Redis. Cada entrada expira cuando el
// token hubiera expirado por sí solo, así la blocklist no crece sin límite.
type Blocklist struct {
	rdb *redis.Client
}

// NewBlocklist construye la blocklist sobre un cliente Redis.
func NewBlocklist(rdb *redis.Client) *Blocklist {
	return &Blocklist{rdb: rdb}
}

func key(jti string) string {
	return "almacen:revoked:" + jti
}

// Add registra un JTI revocado hasta expiresAt.
func (b *Blocklist) Add(jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Token ya expirado: no hay nada que revocar.
		return nil
	}
	if err := b.rdb.Set(context.Background(), key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("blocklist add: %w", err)
	}
	return nil
}

// Contains indica si el JTI está revocado.
func (b *Blocklist) Contains(jti string) (bool, error) {
	n, err := b.rdb.Exists(context.Background(), key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("blocklist check: %w", err)
	}
	return n > 0, nil
}
