// File: services/intelligence/contextStore.go
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mycare/models"

	"github.com/go-redis/redis/v8"
)

const chatContextPrefix = "chat:ctx:"

// maxTurns bounds the rolling conversation window sent back to the model.
const maxTurns = 20

// RedisContextStore keeps the per-user conversation window in Redis.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) key(usuarioID int64) string {
	return fmt.Sprintf("%s%d", chatContextPrefix, usuarioID)
}

func (s *RedisContextStore) Get(ctx context.Context, usuarioID int64) (*models.ChatContext, error) {
	data, err := s.client.Get(ctx, s.key(usuarioID)).Result()
	if err == redis.Nil {
		return &models.ChatContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chatCtx models.ChatContext
	if err := json.Unmarshal([]byte(data), &chatCtx); err != nil {
		return nil, err
	}
	return &chatCtx, nil
}

// Append adds turns to the window, trimming the oldest beyond maxTurns.
func (s *RedisContextStore) Append(ctx context.Context, usuarioID int64, turns ...models.ChatTurn) error {
	chatCtx, err := s.Get(ctx, usuarioID)
	if err != nil {
		return err
	}
	chatCtx.Turns = append(chatCtx.Turns, turns...)
	if len(chatCtx.Turns) > maxTurns {
		chatCtx.Turns = chatCtx.Turns[len(chatCtx.Turns)-maxTurns:]
	}

	b, err := json.Marshal(chatCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(usuarioID), b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, usuarioID int64) error {
	return s.client.Del(ctx, s.key(usuarioID)).Err()
}
