package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"

	"arogyaai/internal/user"
	userBadger "arogyaai/internal/user/repository/badger"
	"arogyaai/pkg/token"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	opts := badgerdb.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badgerdb.Open(opts)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo, err := userBadger.New(db, &mockLogger{})
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	return New(&mockLogger{}, repo, token.NewManager("test-secret", time.Hour))
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Registration", func(t *testing.T) {
		uc := newTestUseCase(t)
		out, err := uc.Signup(ctx, user.SignupInput{Email: "a@example.com", Password: "password123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID == 0 {
			t.Errorf("expected a numeric id to be assigned")
		}
		if out.User.PasswordHash == "password123" || !strings.HasPrefix(out.User.PasswordHash, "$argon2id$") {
			t.Errorf("password must be stored as an argon2id hash, got %q", out.User.PasswordHash)
		}
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		uc := newTestUseCase(t)
		if _, err := uc.Signup(ctx, user.SignupInput{Email: "a@example.com", Password: "password123"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Signup(ctx, user.SignupInput{Email: "a@example.com", Password: "different456"})
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Login", func(t *testing.T) {
		uc := newTestUseCase(t)
		signedUp, err := uc.Signup(ctx, user.SignupInput{Email: "a@example.com", Password: "password123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Login(ctx, user.LoginInput{Email: "a@example.com", Password: "password123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := uc.tokens.Verify(out.AccessToken)
		if err != nil {
			t.Fatalf("issued token must verify: %v", err)
		}
		if claims.UserID != signedUp.User.ID {
			t.Errorf("token carries user %d, expected %d", claims.UserID, signedUp.User.ID)
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		uc := newTestUseCase(t)
		if _, err := uc.Signup(ctx, user.SignupInput{Email: "a@example.com", Password: "password123"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Login(ctx, user.LoginInput{Email: "a@example.com", Password: "wrongpass"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Unknown Email Same Error", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.Login(ctx, user.LoginInput{Email: "nobody@example.com", Password: "password123"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		hash, err := hashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ok, err := comparePassword("correct horse battery staple", hash)
		if err != nil || !ok {
			t.Errorf("expected match, got ok=%v err=%v", ok, err)
		}
		ok, err = comparePassword("wrong", hash)
		if err != nil || ok {
			t.Errorf("expected mismatch, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("Unique Salts", func(t *testing.T) {
		h1, _ := hashPassword("same password")
		h2, _ := hashPassword("same password")
		if h1 == h2 {
			t.Errorf("two hashes of the same password must differ")
		}
	})

	t.Run("Malformed Hash", func(t *testing.T) {
		if _, err := comparePassword("x", "not-an-encoded-hash"); err == nil {
			t.Errorf("expected format error")
		}
	})
}
