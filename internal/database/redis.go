package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a redis client and verifies the connection.
// The stats cache degrades to DB reads if redis is unavailable, so a
// failed ping returns the error but the client is still usable later.
func NewRedis(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return client, err
	}

	return client, nil
}
