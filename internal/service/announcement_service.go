package service

import (
	"context"
	"errors"
	"time"

	"salon_web/internal/model"
	"salon_web/internal/pkg"
	"salon_web/internal/repository/mysql"

	"gorm.io/gorm"
)

type AnnouncementService struct {
	repo     *mysql.AnnouncementRepository
	producer Producer
}

func NewAnnouncementService(db *gorm.DB, producer Producer) *AnnouncementService {
	return &AnnouncementService{
		repo:     &mysql.AnnouncementRepository{DB: db},
		producer: producer,
	}
}

// Create 仅 ADMIN（由网关保证）；发布成功后投递事件，投递失败不影响主流程
func (s *AnnouncementService) Create(authorID uint64, title, content string, published bool) (*model.Announcement, error) {
	if title == "" || content == "" {
		return nil, errors.New("title and content required")
	}

	a := &model.Announcement{
		Title:     title,
		Content:   content,
		Published: published,
		AuthorID:  authorID,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	s.publishEvent(a, false)
	return a, nil
}

// Update 整体覆盖，作者保持原值；草稿改为发布时也投递一次事件
func (s *AnnouncementService) Update(id uint64, title, content string, published bool) (*model.Announcement, error) {
	if title == "" || content == "" {
		return nil, errors.New("title and content required")
	}

	a, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	wasPublished := a.Published
	a.Title = title
	a.Content = content
	a.Published = published
	if err := s.repo.Update(a); err != nil {
		return nil, err
	}
	s.publishEvent(a, wasPublished)
	return a, nil
}

func (s *AnnouncementService) publishEvent(a *model.Announcement, wasPublished bool) {
	if s.producer == nil || !a.Published || wasPublished {
		return
	}
	_ = s.producer.Publish(context.Background(), pkg.Event{
		Kind:     "announcement.created",
		ID:       a.ID,
		Title:    a.Title,
		AuthorID: a.AuthorID,
		At:       time.Now(),
	})
}

func (s *AnnouncementService) List(limit int) ([]model.Announcement, error) {
	return s.repo.ListPublished(limit)
}
