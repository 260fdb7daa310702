package pkg

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"salon_web/internal/model"
)

func TestMain(m *testing.M) {
	InitJWT("test-access", "test-refresh", 30, 24)
	os.Exit(m.Run())
}

func testUser() *model.User {
	return &model.User{ID: 42, Name: "Taro Tanaka", Role: model.RoleMember}
}

func TestGeneratePairAndParseAccess(t *testing.T) {
	pair, err := GeneratePair(testUser())
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("empty token in pair")
	}

	claims, err := ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if claims.UserID != 42 || claims.Name != "Taro Tanaka" || claims.Role != model.RoleMember {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseAccessRejectsRefreshToken(t *testing.T) {
	pair, err := GeneratePair(testUser())
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if _, err := ParseAccess(pair.RefreshToken); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
}

func TestParseAccessTampered(t *testing.T) {
	pair, err := GeneratePair(testUser())
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	raw := []byte(pair.AccessToken)
	raw[len(raw)-1] ^= 0x01
	if _, err := ParseAccess(string(raw)); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestParseAccessGarbage(t *testing.T) {
	if _, err := ParseAccess("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}

func TestParseAccessExpired(t *testing.T) {
	// 直接用测试密钥签一个已过期的 token
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 1,
		Role:   model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			Subject:   "access",
		},
	})
	signed, err := tok.SignedString([]byte("test-access"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseAccess(signed); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestRefreshKeepsIdentity(t *testing.T) {
	admin := &model.User{ID: 7, Name: "Salon Admin", Role: model.RoleAdmin}
	pair, err := GeneratePair(admin)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	next, err := Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	claims, err := ParseAccess(next.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	// 角色按签发时的快照续签，不回查数据库
	if claims.UserID != 7 || claims.Role != model.RoleAdmin {
		t.Fatalf("claims mismatch after refresh: %+v", claims)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	pair, err := GeneratePair(testUser())
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if _, err := Refresh(pair.AccessToken); err == nil {
		t.Fatal("access token accepted as refresh token")
	}
}
