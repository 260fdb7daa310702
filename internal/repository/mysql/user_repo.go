package mysql

import (
	"salon_web/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) UpdatePassword(user *model.User, newPassword string) error {
	return r.DB.Model(user).Update("password", newPassword).Error
}

// ListMembers 会员名录，不带密码，按加入时间倒序
func (r *UserRepository) ListMembers() ([]model.User, error) {
	var list []model.User
	err := r.DB.
		Select("id", "name", "email", "role", "profile", "created_at").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
