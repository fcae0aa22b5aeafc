package redis

import (
	"context"
	"fmt"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	return r.Set(ctx, key, session, exp)
}

func (r *redisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	var session models.Session
	err = json.Unmarshal([]byte(data), &session)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	return &session, nil
}

func (r *redisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	return r.Delete(ctx, key)
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}

	return data, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
