package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	pmodel "WeatherHubBot/pkg/models"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dialogue:"

// RedisStorage переживает рестарт процесса; записи живут ttl
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient создает новый клиент Redis
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Ping проверяет соединение с Redis
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStorage{client: client, ttl: ttl}
}

func (s *RedisStorage) Get(ctx context.Context, userID int64) (pmodel.DialogueState, error) {
	v, err := s.client.Get(ctx, redisKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return pmodel.StateIdle, nil
	}
	if err != nil {
		return pmodel.StateIdle, fmt.Errorf("get dialogue state: %w", err)
	}
	return pmodel.ParseDialogueState(v), nil
}

func (s *RedisStorage) Set(ctx context.Context, userID int64, state pmodel.DialogueState) error {
	if state == pmodel.StateIdle {
		return s.Clear(ctx, userID)
	}
	if err := s.client.Set(ctx, redisKey(userID), state.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("set dialogue state: %w", err)
	}
	return nil
}

func (s *RedisStorage) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, redisKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear dialogue state: %w", err)
	}
	return nil
}

// Size считает ключи диалогов через SCAN; при сбое SCAN частичный счёт не возвращается
func (s *RedisStorage) Size(ctx context.Context) (int, error) {
	n := 0
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("scan dialogue states: %w", err)
	}
	return n, nil
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}

func redisKey(userID int64) string {
	return redisKeyPrefix + strconv.FormatInt(userID, 10)
}
