package service

import (
	"context"
	"errors"
	"time"

	"salon_web/internal/model"
	"salon_web/internal/pkg"
	"salon_web/internal/repository/mysql"
	"salon_web/internal/repository/redis"

	"gorm.io/gorm"
)

var ErrMediaTypeMismatch = errors.New("media url does not match content type")

type ContentService struct {
	repo     *mysql.ContentRepository
	views    *redis.ViewRepository
	producer Producer
}

func NewContentService(db *gorm.DB, views *redis.ViewRepository, producer Producer) *ContentService {
	return &ContentService{
		repo:     &mysql.ContentRepository{DB: db},
		views:    views,
		producer: producer,
	}
}

type CreateContentInput struct {
	Title       string
	Description string
	Body        string
	Type        model.ContentType
	Category    string
	ImageURL    string
	VideoURL    string
	FileURL     string
	Published   bool
}

// validate 媒体地址必须和类型匹配：VideoURL 只属于 VIDEO，FileURL 只属于 DOCUMENT，
// 对应类型下留空仍然允许；ImageURL 是封面图，不参与类型校验
func (in *CreateContentInput) validate() error {
	if in.Title == "" || in.Body == "" {
		return errors.New("title and content required")
	}
	if in.Type == "" {
		in.Type = model.ContentArticle
	}
	if !in.Type.Valid() {
		return errors.New("invalid content type")
	}
	if in.VideoURL != "" && in.Type != model.ContentVideo {
		return ErrMediaTypeMismatch
	}
	if in.FileURL != "" && in.Type != model.ContentDocument {
		return ErrMediaTypeMismatch
	}
	return nil
}

func (s *ContentService) Create(authorID uint64, in CreateContentInput) (*model.Content, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	c := &model.Content{
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		Type:        in.Type,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		VideoURL:    in.VideoURL,
		FileURL:     in.FileURL,
		Published:   in.Published,
		AuthorID:    authorID,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	s.publishEvent(c, false)
	return c, nil
}

// Update 整体覆盖，作者保持原值不变；从未发布到发布也会投递事件
func (s *ContentService) Update(id uint64, in CreateContentInput) (*model.Content, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	wasPublished := c.Published
	c.Title = in.Title
	c.Description = in.Description
	c.Body = in.Body
	c.Type = in.Type
	c.Category = in.Category
	c.ImageURL = in.ImageURL
	c.VideoURL = in.VideoURL
	c.FileURL = in.FileURL
	c.Published = in.Published
	if err := s.repo.Update(c); err != nil {
		return nil, err
	}
	s.publishEvent(c, wasPublished)
	return c, nil
}

func (s *ContentService) publishEvent(c *model.Content, wasPublished bool) {
	if s.producer == nil || !c.Published || wasPublished {
		return
	}
	_ = s.producer.Publish(context.Background(), pkg.Event{
		Kind:     "content.published",
		ID:       c.ID,
		Title:    c.Title,
		AuthorID: c.AuthorID,
		At:       time.Now(),
	})
}

func (s *ContentService) List(category string, limit int) ([]model.Content, error) {
	return s.repo.ListPublished(category, limit)
}

// ContentDetail 详情 = 内容 + 评论数 + 浏览数
type ContentDetail struct {
	*model.Content
	CommentCount int64 `json:"commentCount"`
	Views        int64 `json:"views"`
}

// Get 读详情并把浏览计数 +1；redis 不可用时浏览数记 0，不阻断读取
func (s *ContentService) Get(ctx context.Context, id uint64) (*ContentDetail, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	n, err := s.repo.CountComments(id)
	if err != nil {
		return nil, err
	}

	var views int64
	if s.views != nil {
		views, _ = s.views.Incr(ctx, id)
	}
	return &ContentDetail{Content: c, CommentCount: n, Views: views}, nil
}
