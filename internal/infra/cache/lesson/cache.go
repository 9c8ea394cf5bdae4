package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

const keyPrefix = "lesson:schedule:"

// Cache кэш расписаний уроков в Redis
type Cache struct {
	client RedisClient
	ttl    time.Duration
}

// NewCache создает кэш с временем жизни записей ttl
func NewCache(client RedisClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(lessonID string) string {
	return keyPrefix + lessonID
}

// Get возвращает урок из кэша или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	data, err := c.client.Get(ctx, key(lessonID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrCache, lessonID, err)
	}

	var lesson domain.Lesson
	if err := json.Unmarshal(data, &lesson); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCache, lessonID, err)
	}
	return &lesson, nil
}

// Set сохраняет урок в кэш
func (c *Cache) Set(ctx context.Context, lesson *domain.Lesson) error {
	data, err := json.Marshal(lesson)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrCache, lesson.ID, err)
	}
	if err := c.client.Set(ctx, key(lesson.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCache, lesson.ID, err)
	}
	return nil
}

// Invalidate удаляет урок из кэша
func (c *Cache) Invalidate(ctx context.Context, lessonID string) error {
	if err := c.client.Del(ctx, key(lessonID)).Err(); err != nil {
		return fmt.Errorf("%w: del %s: %v", ErrCache, lessonID, err)
	}
	return nil
}
