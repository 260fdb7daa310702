package service

import (
	"errors"

	"salon_web/internal/pkg"
	"salon_web/internal/repository/redis"
)

var ErrInvalidCode = errors.New("invalid or expired code")

type EmailService struct {
	codes  CodeStore
	mailer Mailer
}

func NewEmailService(codes CodeStore, mailer Mailer) *EmailService {
	return &EmailService{codes: codes, mailer: mailer}
}

var codeSubjects = map[string]string{
	"register": "Registration code",
	"reset":    "Password reset code",
}

// SendCode 生成 6 位验证码写入 redis 再发邮件
func (s *EmailService) SendCode(scope, email string) error {
	subject, ok := codeSubjects[scope]
	if !ok {
		return errors.New("invalid scope")
	}

	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err := s.codes.SetCode(scope, email, code); err != nil {
		return err
	}

	html := pkg.EmailCodeHTML(subject, code, redis.EmailCodeTTL)
	if err := s.mailer.Send(email, subject, html); err != nil {
		// 发送失败时把验证码清掉，避免一个没人收到的 code 留在库里
		_ = s.codes.ConsumeCode(scope, email)
		return err
	}
	return nil
}

// VerifyCode 校验并一次性消费
func (s *EmailService) VerifyCode(scope, email, code string) error {
	val, err := s.codes.GetCode(scope, email)
	if err != nil {
		return ErrInvalidCode
	}
	if val != code {
		return ErrInvalidCode
	}
	return s.codes.ConsumeCode(scope, email)
}
