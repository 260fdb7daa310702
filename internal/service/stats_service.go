package service

import (
	"salon_web/internal/repository/mysql"

	"gorm.io/gorm"
)

type StatsService struct {
	repo *mysql.StatsRepository
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{repo: &mysql.StatsRepository{DB: db}}
}

func (s *StatsService) Collect() (*mysql.Stats, error) {
	return s.repo.Collect()
}
