package model

import "time"

type ContentType string

const (
	ContentArticle  ContentType = "ARTICLE"
	ContentVideo    ContentType = "VIDEO"
	ContentDocument ContentType = "DOCUMENT"
)

// Content 会员限定内容：文章 / 视频 / 文档
// VideoURL 只对 VIDEO 有意义，FileURL 只对 DOCUMENT 有意义，校验在 service 层；
// ImageURL 是封面图，任何类型都可以带
type Content struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"size:200;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Body        string      `gorm:"type:text;not null" json:"content"`
	Type        ContentType `gorm:"size:16;not null;default:ARTICLE" json:"type"`
	Category    string      `gorm:"size:64;index" json:"category"`
	ImageURL    string      `gorm:"size:512" json:"imageUrl"`
	VideoURL    string      `gorm:"size:512" json:"videoUrl"`
	FileURL     string      `gorm:"size:512" json:"fileUrl"`
	Published   bool        `gorm:"not null;default:false" json:"published"`
	AuthorID    uint64      `gorm:"not null;index" json:"authorId"`
	Author      *User       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt   time.Time   `gorm:"index:idx_content_created,sort:desc" json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (t ContentType) Valid() bool {
	switch t {
	case ContentArticle, ContentVideo, ContentDocument:
		return true
	}
	return false
}
