package mysql

import (
	"salon_web/internal/model"

	"gorm.io/gorm"
)

// Stats 管理后台首页的汇总数字
type Stats struct {
	Users         int64 `json:"users"`
	Announcements int64 `json:"announcements"`
	Contents      int64 `json:"contents"`
	Posts         int64 `json:"posts"`
	Comments      int64 `json:"comments"`
}

type StatsRepository struct {
	DB *gorm.DB
}

func (r *StatsRepository) Collect() (*Stats, error) {
	var s Stats
	counts := []struct {
		m   any
		dst *int64
	}{
		{&model.User{}, &s.Users},
		{&model.Announcement{}, &s.Announcements},
		{&model.Content{}, &s.Contents},
		{&model.Post{}, &s.Posts},
		{&model.Comment{}, &s.Comments},
	}
	for _, c := range counts {
		if err := r.DB.Model(c.m).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}
