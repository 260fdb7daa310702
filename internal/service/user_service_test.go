package service

import (
	"errors"
	"os"
	"testing"

	"salon_web/internal/model"
	"salon_web/internal/pkg"
)

func TestMain(m *testing.M) {
	pkg.InitJWT("test-access", "test-refresh", 30, 24)
	os.Exit(m.Run())
}

func newUserService(t *testing.T) (*UserService, *fakeTokens, *fakeCodes, *fakeMailer) {
	t.Helper()
	db := newTestDB(t)
	tokens := newFakeTokens()
	codes := newFakeCodes()
	mailer := &fakeMailer{}
	emailSvc := NewEmailService(codes, mailer)
	return NewUserService(db, tokens, emailSvc), tokens, codes, mailer
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens, codes, mailer := newUserService(t)

	emailSvc := NewEmailService(codes, mailer)
	if err := emailSvc.SendCode("register", "tanaka@example.com"); err != nil {
		t.Fatalf("SendCode: %v", err)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "tanaka@example.com" {
		t.Fatalf("mail not sent: %+v", mailer.sent)
	}
	code := codes.m["register:tanaka@example.com"]
	if len(code) != 6 {
		t.Fatalf("code: %q", code)
	}

	if err := svc.Register("Taro Tanaka", "tanaka@example.com", "password123", code); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// 验证码一次性，重放失败
	if err := svc.Register("Taro Again", "tanaka2@example.com", "password123", code); err == nil {
		t.Fatal("code replay accepted")
	}

	pair, user, err := svc.Login("tanaka@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != model.RoleMember {
		t.Fatalf("role: got %s, want MEMBER", user.Role)
	}
	stored, err := tokens.Get(user.ID)
	if err != nil || stored != pair.AccessToken {
		t.Fatal("access token not stored in session store")
	}

	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != model.RoleMember {
		t.Fatalf("claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, codes, _ := newUserService(t)
	codes.m["register:a@example.com"] = "123456"
	if err := svc.Register("A", "a@example.com", "password123", "123456"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login("a@example.com", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("got %v, want ErrInvalidPassword", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "x"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}

func TestChangePasswordDropsSession(t *testing.T) {
	svc, tokens, codes, _ := newUserService(t)
	codes.m["register:a@example.com"] = "123456"
	if err := svc.Register("A", "a@example.com", "password123", "123456"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, user, err := svc.Login("a@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong", "newpassword1"); err == nil {
		t.Fatal("wrong old password accepted")
	}
	if err := svc.ChangePassword(user.ID, "password123", "newpassword1"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, err := tokens.Get(user.ID); err == nil {
		t.Fatal("session survived password change")
	}
	if _, _, err := svc.Login("a@example.com", "newpassword1"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	svc, _, codes, _ := newUserService(t)
	codes.m["register:a@example.com"] = "123456"
	if err := svc.Register("A", "a@example.com", "password123", "123456"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	codes.m["reset:a@example.com"] = "654321"
	if err := svc.ResetPassword("a@example.com", "000000", "newpassword1"); err == nil {
		t.Fatal("wrong reset code accepted")
	}
	if err := svc.ResetPassword("a@example.com", "654321", "newpassword1"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if _, _, err := svc.Login("a@example.com", "newpassword1"); err != nil {
		t.Fatalf("login after reset: %v", err)
	}
}

func TestListMembersHidesPassword(t *testing.T) {
	svc, _, codes, _ := newUserService(t)
	codes.m["register:a@example.com"] = "123456"
	if err := svc.Register("A", "a@example.com", "password123", "123456"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	members, err := svc.ListMembers()
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("members: %d", len(members))
	}
	if members[0].Password != "" {
		t.Fatal("password hash leaked in member listing")
	}
}
