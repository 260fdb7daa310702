package service

import (
	"errors"
	"strings"

	"salon_web/internal/model"
	"salon_web/internal/repository/mysql"

	"gorm.io/gorm"
)

var ErrCommentTarget = errors.New("comment must target a post or a content, not both")

type BoardService struct {
	posts    *mysql.PostRepository
	comments *mysql.CommentRepository
}

func NewBoardService(db *gorm.DB) *BoardService {
	return &BoardService{
		posts:    &mysql.PostRepository{DB: db},
		comments: &mysql.CommentRepository{DB: db},
	}
}

func (s *BoardService) CreatePost(authorID uint64, title, content string) (*model.Post, error) {
	if title == "" || content == "" {
		return nil, errors.New("title and content required")
	}

	post := &model.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BoardService) ListPosts(limit int) ([]model.Post, error) {
	return s.posts.List(limit)
}

func (s *BoardService) GetPost(id uint64) (*model.Post, error) {
	return s.posts.FindByID(id)
}

// CreateComment 评论挂在帖子或内容下，二者互斥；目标不存在时返回 gorm.ErrRecordNotFound
func (s *BoardService) CreateComment(authorID uint64, content string, postID, contentID *uint64) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("comment content required")
	}
	if postID != nil && contentID != nil {
		return nil, ErrCommentTarget
	}

	// 校验目标存在，避免悬空引用
	if postID != nil {
		if _, err := s.posts.FindByID(*postID); err != nil {
			return nil, err
		}
	}
	if contentID != nil {
		var c model.Content
		if err := s.comments.DB.First(&c, *contentID).Error; err != nil {
			return nil, err
		}
	}

	comment := &model.Comment{
		Content:   content,
		AuthorID:  authorID,
		PostID:    postID,
		ContentID: contentID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *BoardService) ListComments(postID, contentID *uint64) ([]model.Comment, error) {
	switch {
	case postID != nil:
		return s.comments.ListByPost(*postID)
	case contentID != nil:
		return s.comments.ListByContent(*contentID)
	default:
		return s.comments.ListAll()
	}
}
