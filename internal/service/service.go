package service

import (
	"context"

	"salon_web/internal/pkg"
)

// 接口只收敛 redis / kafka / smtp 这些外部边界，便于替换与测试；
// mysql 仓储仍按具体类型持有

type TokenStore interface {
	Save(userID uint64, token string) error
	Get(userID uint64) (string, error)
	Extend(userID uint64) error
	Delete(userID uint64) error
}

type CodeStore interface {
	SetCode(scope, email, code string) error
	GetCode(scope, email string) (string, error)
	ConsumeCode(scope, email string) error
}

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type Producer interface {
	Publish(ctx context.Context, ev pkg.Event) error
}
