package main

import (
	"log"
	"time"

	"salon_web/internal/config"
	"salon_web/internal/model"
	"salon_web/internal/pkg"
	"salon_web/internal/repository/mysql"
	"salon_web/internal/repository/redis"
	"salon_web/internal/router"
	"salon_web/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	pkg.InitJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTLMin, cfg.JWT.RefreshTTLHour)
	redis.SessionTTL = time.Duration(cfg.JWT.AccessTTLMin) * time.Minute

	if err := mysql.InitDB(cfg.DB.DSN); err != nil {
		log.Fatalf("init mysql: %v", err)
	}

	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Fatalf("init redis: %v", err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Announcement{},
		&model.Content{},
		&model.Post{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	producer := pkg.NewKafkaProducer(pkg.KafkaConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer producer.Close()

	mailer := pkg.NewSMTPSender(pkg.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	tokens := &redis.SessionRepository{}
	emailSvc := service.NewEmailService(&redis.EmailRepository{}, mailer)
	userSvc := service.NewUserService(mysql.DB, tokens, emailSvc)

	r := router.InitRouter(router.Deps{
		Users:         userSvc,
		Emails:        emailSvc,
		Announcements: service.NewAnnouncementService(mysql.DB, producer),
		Contents:      service.NewContentService(mysql.DB, &redis.ViewRepository{}, producer),
		Board:         service.NewBoardService(mysql.DB),
		Stats:         service.NewStatsService(mysql.DB),
		Tokens:        tokens,
		TemplateGlob:  "web/templates/*.html",
		StaticDir:     "web/static",
	})

	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
