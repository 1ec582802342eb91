package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/domain"
)

type fakeAdminRepo struct {
	byEmail map[string]*domain.Admin
	nextID  int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byEmail: make(map[string]*domain.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	r.nextID++
	admin.ID = r.nextID
	admin.CreatedAt = time.Now()
	copied := *admin
	r.byEmail[admin.Email] = &copied
	return nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	admin, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *admin
	return &copied, nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id int64) (*domain.Admin, error) {
	for _, admin := range r.byEmail {
		if admin.ID == id {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAdminRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	for _, admin := range r.byEmail {
		if admin.ID == id {
			admin.PasswordHash = passwordHash
			return nil
		}
	}
	return pgx.ErrNoRows
}

func testAuthConfig() config.Config {
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 15
	cfg.Auth.BcryptCost = 4
	cfg.Auth.AdminEmail = "admin@example.com"
	cfg.Auth.AdminPassword = "bootstrap-secret"
	return cfg
}

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account from configuration", func(t *testing.T) {
		repo := newFakeAdminRepo()
		svc := NewAuthService(testAuthConfig(), repo, nil)

		require.NoError(t, svc.SeedAdmin(ctx))
		admin, err := repo.GetByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.NotZero(t, admin.ID)
		assert.NotEqual(t, "bootstrap-secret", admin.PasswordHash)
	})

	t.Run("second seed is a no-op", func(t *testing.T) {
		repo := newFakeAdminRepo()
		svc := NewAuthService(testAuthConfig(), repo, nil)

		require.NoError(t, svc.SeedAdmin(ctx))
		require.NoError(t, svc.SeedAdmin(ctx))
		assert.Len(t, repo.byEmail, 1)
	})

	t.Run("skips without seed credentials", func(t *testing.T) {
		repo := newFakeAdminRepo()
		cfg := testAuthConfig()
		cfg.Auth.AdminEmail = ""
		svc := NewAuthService(cfg, repo, nil)

		require.NoError(t, svc.SeedAdmin(ctx))
		assert.Empty(t, repo.byEmail)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAdminRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)
	require.NoError(t, svc.SeedAdmin(ctx))

	t.Run("valid credentials yield a parseable token", func(t *testing.T) {
		admin, token, exp, err := svc.Login(ctx, "admin@example.com", "bootstrap-secret")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", admin.Email)
		assert.True(t, exp.After(time.Now()))

		claims, err := svc.TokenManager().ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, claims.AdminID)
		assert.Equal(t, admin.Email, claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "admin@example.com", "wrong")
		assertErrorCode(t, err, "UNAUTHORIZED")
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "nobody@example.com", "bootstrap-secret")
		assertErrorCode(t, err, "UNAUTHORIZED")
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AuthService, *domain.Admin) {
		t.Helper()
		repo := newFakeAdminRepo()
		svc := NewAuthService(testAuthConfig(), repo, nil)
		require.NoError(t, svc.SeedAdmin(ctx))
		admin, err := repo.GetByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		return svc, admin
	}

	t.Run("rotates the password", func(t *testing.T) {
		svc, admin := setup(t)

		require.NoError(t, svc.ChangePassword(ctx, admin.ID, "bootstrap-secret", "new-password-1"))

		_, _, _, err := svc.Login(ctx, "admin@example.com", "bootstrap-secret")
		assertErrorCode(t, err, "UNAUTHORIZED")
		_, _, _, err = svc.Login(ctx, "admin@example.com", "new-password-1")
		require.NoError(t, err)
	})

	t.Run("rejects short replacement", func(t *testing.T) {
		svc, admin := setup(t)

		err := svc.ChangePassword(ctx, admin.ID, "bootstrap-secret", "short")
		assertErrorCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("requires the current password", func(t *testing.T) {
		svc, admin := setup(t)

		err := svc.ChangePassword(ctx, admin.ID, "not-the-password", "new-password-1")
		assertErrorCode(t, err, "UNAUTHORIZED")
	})
}
