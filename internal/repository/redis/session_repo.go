package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
)

const sessionKeyPrefix = "session:user:token"

// SessionTTL 会话空闲窗口，启动时跟随 access token 有效期覆盖，
// 避免配置了更长的 token 却被 30 分钟闲置窗口提前掐掉
var SessionTTL = 30 * time.Minute

// SessionRepository 每个用户只保留一份有效 access token；
// 新登录覆盖旧值，登出删除，校验通过后顺延 TTL
type SessionRepository struct{}

func sessionKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", sessionKeyPrefix, userID)
}

func (r *SessionRepository) Save(userID uint64, token string) error {
	if err := Client.Set(context.Background(), sessionKey(userID), token, SessionTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) Get(userID uint64) (string, error) {
	token, err := Client.Get(context.Background(), sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *SessionRepository) Extend(userID uint64) error {
	if err := Client.Expire(context.Background(), sessionKey(userID), SessionTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) Delete(userID uint64) error {
	if err := Client.Del(context.Background(), sessionKey(userID)).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}
