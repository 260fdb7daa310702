package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	EmailCodeTTL    = 5 * time.Minute
	emailCodePrefix = "email:code"
)

var (
	ErrCodeNotFound  = errors.New("code not found or expired")
	ErrCodeSetFailed = errors.New("code set failed")
)

// EmailRepository 验证码存取；scope 为 register / reset
type EmailRepository struct{}

func codeKey(scope, email string) string {
	return fmt.Sprintf("%s:%s:%s", emailCodePrefix, scope, email)
}

func (e *EmailRepository) SetCode(scope, email, code string) error {
	if err := Client.Set(context.Background(), codeKey(scope, email), code, EmailCodeTTL).Err(); err != nil {
		return ErrCodeSetFailed
	}
	return nil
}

func (e *EmailRepository) GetCode(scope, email string) (string, error) {
	val, err := Client.Get(context.Background(), codeKey(scope, email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// ConsumeCode 校验后一次性删除，验证码不可复用
func (e *EmailRepository) ConsumeCode(scope, email string) error {
	return Client.Del(context.Background(), codeKey(scope, email)).Err()
}
