package mysql

import (
	"salon_web/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepository struct {
	DB *gorm.DB
}

func (r *ContentRepository) Create(c *model.Content) error {
	return r.DB.Create(c).Error
}

func (r *ContentRepository) FindByID(id uint64) (*model.Content, error) {
	var c model.Content
	err := r.DB.Preload("Author").First(&c, id).Error
	return &c, err
}

// ListPublished 按分类过滤（空串为全部），最新在前
func (r *ContentRepository) ListPublished(category string, limit int) ([]model.Content, error) {
	var list []model.Content
	q := r.DB.
		Preload("Author").
		Where("published = ?", true).
		Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *ContentRepository) Update(c *model.Content) error {
	return r.DB.Omit(clause.Associations).Save(c).Error
}

// CountComments 某条内容下的评论数
func (r *ContentRepository) CountComments(contentID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Comment{}).Where("content_id = ?", contentID).Count(&n).Error
	return n, err
}
