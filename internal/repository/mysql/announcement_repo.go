package mysql

import (
	"salon_web/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnnouncementRepository struct {
	DB *gorm.DB
}

func (r *AnnouncementRepository) Create(a *model.Announcement) error {
	return r.DB.Create(a).Error
}

func (r *AnnouncementRepository) FindByID(id uint64) (*model.Announcement, error) {
	var a model.Announcement
	err := r.DB.Preload("Author").First(&a, id).Error
	return &a, err
}

// ListPublished 公告列表，最新在前；limit<=0 表示不限制
func (r *AnnouncementRepository) ListPublished(limit int) ([]model.Announcement, error) {
	var list []model.Announcement
	q := r.DB.
		Preload("Author").
		Where("published = ?", true).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *AnnouncementRepository) Update(a *model.Announcement) error {
	return r.DB.Omit(clause.Associations).Save(a).Error
}
