package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/dsavelev/garagekeeper/internal/common"
	"github.com/dsavelev/garagekeeper/internal/logging"
	"github.com/dsavelev/garagekeeper/internal/server/auth"
	"github.com/dsavelev/garagekeeper/internal/server/config"
	"github.com/dsavelev/garagekeeper/internal/server/models"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		ResetTokenValidityDuration:   time.Hour,
	}
	return NewUserService(db, rm, cfg, discardLogger())
}

func TestRegister_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		users:         &fakeUsersRepo{createOut: &models.User{ID: "42", Email: "alice@example.com"}},
		refreshTokens: &fakeRefreshRepo{},
	}
	s := newUserService(t, db, rm)

	u, err := s.Register(context.Background(), "alice@example.com", "s3cret", "Alice")
	if err != nil || u.ID != "42" {
		t.Fatalf("Register: got (%v, %v)", u, err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		users:         &fakeUsersRepo{createErr: common.ErrorAlreadyExists},
		refreshTokens: &fakeRefreshRepo{},
	}
	s := newUserService(t, db, rm)

	if _, err := s.Register(context.Background(), "alice@example.com", "s3cret", "Alice"); !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestLogin_Flows(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := auth.HashPassword("right")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	// not found reads as unauthorized
	rmNF := &fakeRepoManager{
		users:         &fakeUsersRepo{byEmailErr: common.ErrorNotFound},
		refreshTokens: &fakeRefreshRepo{},
	}
	sNF := newUserService(t, db, rmNF)
	if _, _, err := sNF.Login(context.Background(), "ghost@example.com", "x"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("notfound: want ErrorUnauthorized, got %v", err)
	}

	// repository failure reads as internal
	rmIE := &fakeRepoManager{
		users:         &fakeUsersRepo{byEmailErr: errBoom{}},
		refreshTokens: &fakeRefreshRepo{},
	}
	sIE := newUserService(t, db, rmIE)
	if _, _, err := sIE.Login(context.Background(), "u@example.com", "x"); !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("internal: want ErrorInternal, got %v", err)
	}

	// wrong password reads as unauthorized
	rmWP := &fakeRepoManager{
		users:         &fakeUsersRepo{byEmailOut: &models.User{ID: "u1", PasswordHash: hash}},
		refreshTokens: &fakeRefreshRepo{},
	}
	sWP := newUserService(t, db, rmWP)
	if _, _, err := sWP.Login(context.Background(), "u@example.com", "wrong"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: want ErrorUnauthorized, got %v", err)
	}

	rmOK := &fakeRepoManager{
		users:         &fakeUsersRepo{byEmailOut: &models.User{ID: "u1", PasswordHash: hash}},
		refreshTokens: &fakeRefreshRepo{},
	}
	sOK := newUserService(t, db, rmOK)
	u, pair, err := sOK.Login(context.Background(), "u@example.com", "right")
	if err != nil || u.ID != "u1" || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("Login success: user=%+v pair=%+v err=%v", u, pair, err)
	}
}

func TestRefreshToken_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		refreshTokens: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)},
		},
	}
	s := newUserService(t, db, rm)

	pair, err := s.RefreshToken(context.Background(), "refresh-xyz")
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("empty tokens: %+v", pair)
	}
	if len(rm.refreshTokens.deleted) != 1 || rm.refreshTokens.deleted[0] != "refresh-xyz" {
		t.Fatalf("old token not rotated out: %v", rm.refreshTokens.deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRefreshToken_Expired(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		refreshTokens: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(-1 * time.Minute)},
		},
	}
	s := newUserService(t, db, rm)

	if _, err := s.RefreshToken(context.Background(), "r"); !errors.Is(err, common.ErrRefreshTokenExpired) {
		t.Fatalf("want ErrRefreshTokenExpired, got %v", err)
	}
}

func TestRefreshToken_DeleteErr(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		refreshTokens: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)},
			delErr:  errBoom{},
		},
	}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error deleting refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped delete error, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{refreshTokens: &fakeRefreshRepo{}}
	s := newUserService(t, db, rm)

	if err := s.Logout(context.Background(), "r"); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if len(rm.refreshTokens.deleted) != 1 || rm.refreshTokens.deleted[0] != "r" {
		t.Fatalf("token not revoked: %v", rm.refreshTokens.deleted)
	}
}

func TestResetPassword_UnknownEmailSilent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		users:          &fakeUsersRepo{byEmailErr: common.ErrorNotFound},
		passwordResets: &fakeResetRepo{},
	}
	s := newUserService(t, db, rm)

	if err := s.ResetPassword(context.Background(), "ghost@example.com"); err != nil {
		t.Fatalf("unknown email must not error, got %v", err)
	}
	if rm.passwordResets.createdToken != "" {
		t.Fatal("no token should be minted for unknown email")
	}
}

func TestResetPassword_MintsToken(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		users:          &fakeUsersRepo{byEmailOut: &models.User{ID: "u1", Email: "u@example.com"}},
		passwordResets: &fakeResetRepo{},
	}
	s := newUserService(t, db, rm)

	if err := s.ResetPassword(context.Background(), "u@example.com"); err != nil {
		t.Fatalf("ResetPassword error: %v", err)
	}
	if len(rm.passwordResets.createdToken) != 64 {
		t.Fatalf("expected 32-byte hex token, got %q", rm.passwordResets.createdToken)
	}
}

func TestConfirmReset_Flows(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	t.Run("unknown token", func(t *testing.T) {
		rm := &fakeRepoManager{
			users:          &fakeUsersRepo{},
			passwordResets: &fakeResetRepo{findErr: common.ErrorNotFound},
		}
		s := newUserService(t, db, rm)
		if err := s.ConfirmReset(context.Background(), "nope", "new"); !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("want ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		rm := &fakeRepoManager{
			users: &fakeUsersRepo{},
			passwordResets: &fakeResetRepo{
				findOut: &models.PasswordReset{UserID: "u1", Expires: time.Now().Add(-time.Minute)},
			},
		}
		s := newUserService(t, db, rm)
		if err := s.ConfirmReset(context.Background(), "t", "new"); !errors.Is(err, common.ErrResetTokenExpired) {
			t.Fatalf("want ErrResetTokenExpired, got %v", err)
		}
	})

	t.Run("success consumes token", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		rm := &fakeRepoManager{
			users: &fakeUsersRepo{},
			passwordResets: &fakeResetRepo{
				findOut: &models.PasswordReset{UserID: "u1", Expires: time.Now().Add(time.Minute)},
			},
		}
		s := newUserService(t, db, rm)
		if err := s.ConfirmReset(context.Background(), "t", "new-password"); err != nil {
			t.Fatalf("ConfirmReset error: %v", err)
		}
		if rm.users.updatePasswordHash == "" {
			t.Fatal("password hash was not updated")
		}
		if len(rm.passwordResets.deleted) != 1 || rm.passwordResets.deleted[0] != "t" {
			t.Fatalf("reset token not consumed: %v", rm.passwordResets.deleted)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("sql expectations: %v", err)
		}
	})
}
