package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"controlling_microwave/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const testSigningKey = "test-signing-key"

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	CreateFn        func(username, hash string) (int, error)
	GetByUsernameFn func(username string) (*models.User, error)

	createCalls []struct {
		username string
		hash     string
	}
	getCalls []string
}

func (m *mockAuthRepo) Create(_ context.Context, username, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return m.CreateFn(username, hash)
}

func (m *mockAuthRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func newTestAuth(repo *mockAuthRepo) *AuthService {
	return NewAuthService(repo, AuthConfig{SigningKey: testSigningKey, TokenTTL: time.Hour})
}

// --- SignUp tests ---

func TestAuthService_SignUp_SuccessHashesPasswordAndCallsRepo(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string) (int, error) {
			return 42, nil
		},
	}
	svc := newTestAuth(mock)

	id, err := svc.SignUp(context.Background(), "alice", "s3cr3t")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.username != "alice" {
		t.Errorf("expected username 'alice', got %q", call.username)
	}
	if call.hash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(call.hash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_SignUp_EmptyPassword(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string) (int, error) {
			t.Fatal("Create should not be called for empty password")
			return 0, nil
		},
	}
	svc := newTestAuth(mock)

	_, err := svc.SignUp(context.Background(), "bob", "   ")
	if !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestAuthService_SignUp_RepoError(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string) (int, error) {
			return 0, errors.New("db down")
		},
	}
	svc := newTestAuth(mock)

	if _, err := svc.SignUp(context.Background(), "carl", "pass123"); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- GenerateToken tests ---

func TestAuthService_GenerateToken_RoundTrip(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	mock := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username != "diana" {
				t.Fatalf("expected username 'diana', got %q", username)
			}
			return &models.User{ID: 7, Username: "diana", PasswordHash: hash}, nil
		},
	}
	svc := newTestAuth(mock)

	token, err := svc.GenerateToken(context.Background(), "diana", "letmein")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	uid, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if uid != 7 {
		t.Fatalf("expected user id 7 from token, got %d", uid)
	}
	if len(mock.getCalls) != 1 {
		t.Fatalf("expected 1 GetByUsername call, got %d", len(mock.getCalls))
	}
}

func TestAuthService_GenerateToken_Failures(t *testing.T) {
	correctHash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	repoErr := errors.New("query failed")

	tests := []struct {
		name    string
		lookup  func(string) (*models.User, error)
		wantErr error
	}{
		{
			name:    "user not found",
			lookup:  func(string) (*models.User, error) { return nil, nil },
			wantErr: ErrUserNotFound,
		},
		{
			name: "wrong password",
			lookup: func(string) (*models.User, error) {
				return &models.User{ID: 1, Username: "eve", PasswordHash: correctHash}, nil
			},
			wantErr: ErrInvalidPassword,
		},
		{
			name:    "repo error",
			lookup:  func(string) (*models.User, error) { return nil, repoErr },
			wantErr: repoErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuth(&mockAuthRepo{GetByUsernameFn: tt.lookup})
			_, err := svc.GenerateToken(context.Background(), "eve", "wrong")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})
	if _, err := svc.ParseToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ParseToken_InvalidSignature(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})
	other := NewAuthService(&mockAuthRepo{}, AuthConfig{SigningKey: "different-key"})

	badToken, err := other.issueToken(5)
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}
	if _, err := svc.ParseToken(badToken); err == nil {
		t.Fatalf("expected signature verification error")
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})

	past := time.Now().Add(-2 * time.Hour)
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
		UserID: 11,
	})
	expiredToken, err := tk.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(expiredToken); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestAuthService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 12,
	})
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(tokenStr); err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}

func TestAuthService_EmptyKeyRefusesTokens(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, AuthConfig{})
	if _, err := svc.issueToken(1); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
	if _, err := svc.ParseToken("x.y.z"); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}
