package model

import "time"

// Comment 评论，挂在帖子或内容下，二者取其一
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint64    `gorm:"not null;index" json:"authorId"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	PostID    *uint64   `gorm:"index" json:"postId"`
	ContentID *uint64   `gorm:"index" json:"contentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
