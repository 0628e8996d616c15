package auth

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("u-1", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	userID, err := GetUserIDFromToken(token, secret)
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if userID != "u-1" {
		t.Fatalf("expected u-1, got %q", userID)
	}
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("u-1", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetUserIDFromToken(token, []byte("other-secret")); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("u-1", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetUserIDFromToken(token, secret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestGetUserIDFromToken_Garbage(t *testing.T) {
	if _, err := GetUserIDFromToken("not-a-token", secret); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := CheckPassword("s3cret", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if !ok {
		t.Fatal("correct password rejected")
	}

	ok, err = CheckPassword("wrong", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if ok {
		t.Fatal("wrong password accepted")
	}
}
