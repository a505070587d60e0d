package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avdeev-m/finance-tracker/internal/model"
)

//go:generate mockery --name=UserCache

// UserCache keeps resolved user snapshots so that authenticated requests
// don't hit Postgres every time. A miss returns (nil, nil).
type UserCache interface {
	Get(ctx context.Context, id int64) (*model.User, error)
	Set(ctx context.Context, user *model.User) error
}

type RedisUserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisUserCache(rdb *redis.Client, ttl time.Duration) *RedisUserCache {
	return &RedisUserCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *RedisUserCache) Get(ctx context.Context, id int64) (*model.User, error) {
	data, err := c.rdb.Get(ctx, cacheKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis couldn't Get in Get method: %v", err)
	}

	var user model.User
	if err = json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("redis couldn't Unmarshal in Get method: %v", err)
	}
	return &user, nil
}

func (c *RedisUserCache) Set(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("redis couldn't Marshal in Set method: %v", err)
	}
	if err = c.rdb.Set(ctx, cacheKey(user.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis couldn't Set in Set method: %v", err)
	}
	return nil
}

func cacheKey(id int64) string {
	return fmt.Sprintf("user:%d:data", id)
}
