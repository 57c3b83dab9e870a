package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sarayacafe/menu-backend/internal/users"
	pkgAuth "github.com/sarayacafe/menu-backend/pkg/auth"
	"github.com/sarayacafe/menu-backend/pkg/config"
	"github.com/sarayacafe/menu-backend/pkg/db/models"
	"github.com/sarayacafe/menu-backend/pkg/enums"
	pkgerrors "github.com/sarayacafe/menu-backend/pkg/errors"
	"github.com/sarayacafe/menu-backend/pkg/security"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessSecret:      "access-secret",
		RefreshSecret:     "refresh-secret",
		Issuer:            "saraya-menu",
		AccessTTLMinutes:  15,
		RefreshTTLMinutes: 60,
	}
}

func TestLoginIssuesTokenPairAndRecordsLogin(t *testing.T) {
	password := "manager-secret"
	user := seedUser(t, "manager@saraya.cafe", password, enums.UserRoleManager, true)
	repo := newStubRepo(user)
	svc := buildTestService(t, repo)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Manager@Saraya.Cafe ",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Fatalf("expected email claim %q, got %q", user.Email, claims.Email)
	}

	refreshClaims, err := pkgAuth.ParseRefreshToken(testJWTConfig(), resp.RefreshToken)
	if err != nil {
		t.Fatalf("parse refresh token: %v", err)
	}
	if refreshClaims.UserID != user.ID {
		t.Fatalf("expected refresh subject %s, got %s", user.ID, refreshClaims.UserID)
	}

	if repo.lastLogin[user.ID].IsZero() {
		t.Fatalf("expected last login to be recorded")
	}
	if resp.User == nil || resp.User.LastLoginAt == nil {
		t.Fatalf("expected login response to carry the refreshed user")
	}
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	password := "right-password"
	active := seedUser(t, "active@saraya.cafe", password, enums.UserRoleAdmin, true)
	inactive := seedUser(t, "inactive@saraya.cafe", password, enums.UserRoleAdmin, false)
	repo := newStubRepo(active, inactive)
	svc := buildTestService(t, repo)

	cases := []struct {
		name  string
		email string
		pass  string
	}{
		{"unknown email", "ghost@saraya.cafe", password},
		{"wrong password", active.Email, "wrong-password"},
		{"inactive account", inactive.Email, password},
		{"blank email", "   ", password},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), LoginRequest{Email: tc.email, Password: tc.pass})
			var appErr *pkgerrors.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("expected app error, got %v", err)
			}
			if appErr.Code() != pkgerrors.CodeUnauthorized {
				t.Fatalf("expected unauthorized, got %s", appErr.Code())
			}
			if appErr.Message() != invalidCredentialsMessage {
				t.Fatalf("expected uniform message, got %q", appErr.Message())
			}
		})
	}
}

func TestRefreshMintsAccessTokenWithoutRotation(t *testing.T) {
	user := seedUser(t, "manager@saraya.cafe", "pw-manager-1", enums.UserRoleManager, true)
	repo := newStubRepo(user)
	svc := buildTestService(t, repo)

	refreshToken, err := pkgAuth.MintRefreshToken(testJWTConfig(), time.Now().UTC(), user.ID)
	if err != nil {
		t.Fatalf("mint refresh token: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse refreshed access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, claims.UserID)
	}
	if resp.User == nil || resp.User.ID != user.ID {
		t.Fatalf("expected refresh response to carry the user")
	}
}

func TestRefreshRejectsGarbageAndAccessTokens(t *testing.T) {
	user := seedUser(t, "manager@saraya.cafe", "pw-manager-1", enums.UserRoleManager, true)
	repo := newStubRepo(user)
	svc := buildTestService(t, repo)

	accessToken, err := pkgAuth.MintAccessToken(testJWTConfig(), time.Now().UTC(), user.ID, user.Email)
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	for _, token := range []string{"not-a-token", accessToken} {
		_, err := svc.Refresh(context.Background(), RefreshRequest{RefreshToken: token})
		var appErr *pkgerrors.Error
		if !errors.As(err, &appErr) {
			t.Fatalf("expected app error, got %v", err)
		}
		if appErr.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized code, got %s", appErr.Code())
		}
		if status := pkgerrors.MetadataFor(appErr.Code()).HTTPStatus; status != http.StatusUnauthorized {
			t.Fatalf("expected 401 for a bad refresh token, got %d", status)
		}
		if appErr.Message() != "Invalid refresh token" {
			t.Fatalf("unexpected message %q", appErr.Message())
		}
	}
}

func TestRefreshRejectsDeactivatedUser(t *testing.T) {
	user := seedUser(t, "manager@saraya.cafe", "pw-manager-1", enums.UserRoleManager, true)
	repo := newStubRepo(user)
	svc := buildTestService(t, repo)

	refreshToken, err := pkgAuth.MintRefreshToken(testJWTConfig(), time.Now().UTC(), user.ID)
	if err != nil {
		t.Fatalf("mint refresh token: %v", err)
	}

	user.IsActive = false
	_, err = svc.Refresh(context.Background(), RefreshRequest{RefreshToken: refreshToken})
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for deactivated user, got %v", err)
	}
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	user := seedUser(t, "admin@saraya.cafe", "old-password", enums.UserRoleAdmin, true)
	repo := newStubRepo(user)
	svc := buildTestService(t, repo)

	err := svc.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "new-password-1",
	})
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for wrong current password, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password-1",
	}); err != nil {
		t.Fatalf("change password: %v", err)
	}

	valid, err := security.VerifyPassword("new-password-1", repo.byID[user.ID].Password)
	if err != nil || !valid {
		t.Fatalf("expected new password to verify, valid=%v err=%v", valid, err)
	}
}

func TestCreateUserLowercasesEmailAndDefaultsRole(t *testing.T) {
	repo := newStubRepo()
	svc := buildTestService(t, repo)

	dto, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:     "New.Staff@Saraya.Cafe",
		Password:  "staff-password",
		FirstName: "New",
		LastName:  "Staff",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if dto.Email != "new.staff@saraya.cafe" {
		t.Fatalf("expected lowercased email, got %q", dto.Email)
	}
	if dto.Role != enums.UserRoleAdmin {
		t.Fatalf("expected admin default role, got %s", dto.Role)
	}

	_, err = svc.CreateUser(context.Background(), CreateUserRequest{
		Email:     "new.staff@saraya.cafe",
		Password:  "another-password",
		FirstName: "Duplicate",
	})
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict on duplicate email, got %v", err)
	}
}

func TestDeactivateUserBlocksSelf(t *testing.T) {
	admin := seedUser(t, "admin@saraya.cafe", "pw-admin-11", enums.UserRoleSuperAdmin, true)
	target := seedUser(t, "manager@saraya.cafe", "pw-manager-1", enums.UserRoleManager, true)
	repo := newStubRepo(admin, target)
	svc := buildTestService(t, repo)

	err := svc.DeactivateUser(context.Background(), admin.ID, admin.ID)
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error on self-deactivation, got %v", err)
	}

	if err := svc.DeactivateUser(context.Background(), admin.ID, target.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if repo.byID[target.ID].IsActive {
		t.Fatalf("expected target to be deactivated")
	}
}

func buildTestService(t *testing.T, repo *stubUserRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func seedUser(t *testing.T, email, password string, role enums.UserRole, active bool) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  hash,
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		IsActive:  active,
	}
}

type stubUserRepo struct {
	byID      map[uuid.UUID]*models.User
	byEmail   map[string]*models.User
	lastLogin map[uuid.UUID]time.Time
}

func newStubRepo(seed ...*models.User) *stubUserRepo {
	repo := &stubUserRepo{
		byID:      make(map[uuid.UUID]*models.User),
		byEmail:   make(map[string]*models.User),
		lastLogin: make(map[uuid.UUID]time.Time),
	}
	for _, u := range seed {
		repo.byID[u.ID] = u
		repo.byEmail[u.Email] = u
	}
	return repo
}

func (r *stubUserRepo) Create(_ context.Context, dto users.CreateUserDTO) (*models.User, error) {
	if _, exists := r.byEmail[dto.Email]; exists {
		return nil, errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
	}
	user := dto.ToModel()
	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.lastLogin[id] = at
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	user, ok := r.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Password = hash
	return nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	user, ok := r.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.IsActive = active
	return nil
}
