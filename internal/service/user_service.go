package service

import (
	"errors"

	"salon_web/internal/model"
	"salon_web/internal/pkg"
	"salon_web/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type UserService struct {
	repo     *mysql.UserRepository
	tokens   TokenStore
	emailSvc *EmailService
}

func NewUserService(db *gorm.DB, tokens TokenStore, emailSvc *EmailService) *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: db},
		tokens:   tokens,
		emailSvc: emailSvc,
	}
}

// Register 邮箱验证码注册，新用户一律 MEMBER
func (s *UserService) Register(name, email, password, code string) error {
	if name == "" || email == "" || password == "" {
		return errors.New("name, email and password required")
	}
	if err := s.emailSvc.VerifyCode("register", email, code); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     model.RoleMember,
	}
	return s.repo.Create(user)
}

// Login 校验密码后签发 token 对，access token 写入 redis 顶掉旧会话
func (s *UserService) Login(email, password string) (*pkg.Pair, *model.User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, nil, ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidPassword
	}

	token, err := pkg.GeneratePair(user)
	if err != nil {
		return nil, nil, err
	}
	if err := s.tokens.Save(user.ID, token.AccessToken); err != nil {
		return nil, nil, err
	}
	return token, user, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.tokens.Delete(userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Save(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// ChangePassword 登录态改密码，成功后旧会话作废
func (s *UserService) ChangePassword(userID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}
	return s.Logout(userID)
}

// ResetPassword 邮箱验证码找回密码
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	if err := s.emailSvc.VerifyCode("reset", email, code); err != nil {
		return err
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}
	return s.Logout(user.ID)
}

// ListMembers 会员名录
func (s *UserService) ListMembers() ([]model.User, error) {
	return s.repo.ListMembers()
}
