package mysql

import (
	"salon_web/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

// ListByContent 某条内容下的评论，最新在前
func (r *CommentRepository) ListByContent(contentID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.
		Preload("Author").
		Where("content_id = ?", contentID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *CommentRepository) ListByPost(postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *CommentRepository) ListAll() ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.
		Preload("Author").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
