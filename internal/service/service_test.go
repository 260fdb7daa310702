package service

import (
	"context"
	"testing"

	"salon_web/internal/model"
	"salon_web/internal/pkg"
	"salon_web/internal/repository/redis"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Announcement{},
		&model.Content{},
		&model.Post{},
		&model.Comment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role model.Role) *model.User {
	t.Helper()
	u := &model.User{
		Name:     "tester",
		Email:    string(role) + "@example.com",
		Password: "x",
		Role:     role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// fakeTokens 内存会话存储
type fakeTokens struct {
	m map[uint64]string
}

func newFakeTokens() *fakeTokens { return &fakeTokens{m: map[uint64]string{}} }

func (f *fakeTokens) Save(id uint64, token string) error { f.m[id] = token; return nil }

func (f *fakeTokens) Get(id uint64) (string, error) {
	tok, ok := f.m[id]
	if !ok {
		return "", redis.ErrTokenNotFound
	}
	return tok, nil
}

func (f *fakeTokens) Extend(id uint64) error { return nil }

func (f *fakeTokens) Delete(id uint64) error { delete(f.m, id); return nil }

// fakeCodes 内存验证码存储
type fakeCodes struct {
	m map[string]string
}

func newFakeCodes() *fakeCodes { return &fakeCodes{m: map[string]string{}} }

func (f *fakeCodes) key(scope, email string) string { return scope + ":" + email }

func (f *fakeCodes) SetCode(scope, email, code string) error {
	f.m[f.key(scope, email)] = code
	return nil
}

func (f *fakeCodes) GetCode(scope, email string) (string, error) {
	code, ok := f.m[f.key(scope, email)]
	if !ok {
		return "", redis.ErrCodeNotFound
	}
	return code, nil
}

func (f *fakeCodes) ConsumeCode(scope, email string) error {
	delete(f.m, f.key(scope, email))
	return nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	f.sent = append(f.sent, to)
	return nil
}

type fakeProducer struct {
	events []pkg.Event
}

func (f *fakeProducer) Publish(_ context.Context, ev pkg.Event) error {
	f.events = append(f.events, ev)
	return nil
}
