package main

import (
	"log"

	"salon_web/internal/config"
	"salon_web/internal/model"
	"salon_web/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 开发用种子数据：一个管理员、三个会员、示例公告/内容/帖子。
// 会清空现有业务表，不要对生产库执行
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := mysql.InitDB(cfg.DB.DSN); err != nil {
		log.Fatalf("init mysql: %v", err)
	}

	db := mysql.DB
	if err := db.AutoMigrate(
		&model.User{},
		&model.Announcement{},
		&model.Content{},
		&model.Post{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	for _, m := range []any{&model.Comment{}, &model.Post{}, &model.Content{}, &model.Announcement{}, &model.User{}} {
		if err := db.Where("1 = 1").Delete(m).Error; err != nil {
			log.Fatalf("clear table: %v", err)
		}
	}

	admin := mustUser(db, "Salon Admin", "admin@salon.com", "admin123", model.RoleAdmin,
		"Runs the salon and keeps the community going.")
	m1 := mustUser(db, "Taro Tanaka", "tanaka@example.com", "member123", model.RoleMember,
		"Enjoying everything the salon has to offer.")
	m2 := mustUser(db, "Hanako Suzuki", "suzuki@example.com", "member123", model.RoleMember,
		"Joined to learn something new every week.")
	mustUser(db, "Jiro Yamada", "yamada@example.com", "member123", model.RoleMember,
		"Grateful for the people I have met here.")

	anns := []model.Announcement{
		{
			Title:     "Members-only site is now open!",
			Content:   "Our member site is live. You can now read exclusive content, talk on the board, check announcements and browse member profiles.",
			Published: true,
			AuthorID:  admin.ID,
		},
		{
			Title:     "Monthly meetup",
			Content:   "Next month's meetup is on the second Saturday, 14:00-16:00, online. Sign up on the board.",
			Published: true,
			AuthorID:  admin.ID,
		},
	}
	if err := db.Create(&anns).Error; err != nil {
		log.Fatalf("seed announcements: %v", err)
	}

	contents := []model.Content{
		{
			Title:       "Principles of running a salon",
			Description: "The basics of community operation.",
			Body:        "Mutual respect, continuous learning, open communication and learning by doing. These are the principles this salon is built on.",
			Type:        model.ContentArticle,
			Category:    "GENERAL",
			ImageURL:    "https://example.com/images/principles.jpg",
			Published:   true,
			AuthorID:    admin.ID,
		},
		{
			Title:       "Welcome video",
			Description: "A short introduction for new members.",
			Body:        "Watch this first to get a feel for how the salon works.",
			Type:        model.ContentVideo,
			Category:    "ONBOARDING",
			VideoURL:    "https://example.com/videos/welcome",
			Published:   true,
			AuthorID:    admin.ID,
		},
		{
			Title:       "Community handbook",
			Description: "House rules and useful links.",
			Body:        "The handbook collects the rules and resources every member should know.",
			Type:        model.ContentDocument,
			Category:    "GENERAL",
			FileURL:     "https://example.com/files/handbook.pdf",
			Published:   true,
			AuthorID:    admin.ID,
		},
	}
	if err := db.Create(&contents).Error; err != nil {
		log.Fatalf("seed contents: %v", err)
	}

	post := model.Post{
		Title:    "Introduce yourself here",
		Content:  "New to the salon? Tell us a bit about yourself.",
		AuthorID: m1.ID,
	}
	if err := db.Create(&post).Error; err != nil {
		log.Fatalf("seed post: %v", err)
	}

	comment := model.Comment{
		Content:  "Hi everyone, happy to be here!",
		AuthorID: m2.ID,
		PostID:   &post.ID,
	}
	if err := db.Create(&comment).Error; err != nil {
		log.Fatalf("seed comment: %v", err)
	}

	log.Println("seed done")
}

func mustUser(db *gorm.DB, name, email, password string, role model.Role, profile string) *model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	u := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
		Profile:  profile,
	}
	if err := db.Create(u).Error; err != nil {
		log.Fatalf("seed user %s: %v", email, err)
	}
	return u
}
