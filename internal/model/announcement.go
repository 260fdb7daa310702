package model

import "time"

// Announcement 管理员发布的站内公告
type Announcement struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Published bool      `gorm:"not null;default:false" json:"published"`
	AuthorID  uint64    `gorm:"not null;index" json:"authorId"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_ann_created,sort:desc" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
