package auth

import (
	"testing"

	"todoListManagement/internal/testutil"
)

const testSecret = "test-secret"

func TestIssueAndParseToken(t *testing.T) {
	tok, err := IssueToken(testSecret, "alice@x.io")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	p, err := ParseToken(tok, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if p.Email != "alice@x.io" {
		t.Fatalf("principal mismatch: %+v", p)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok := testutil.GenerateJWTHS256(t, testSecret, "bob@x.io")
	if _, err := ParseToken(tok, "wrong"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseToken_EmptyEmailClaim(t *testing.T) {
	tok := testutil.GenerateJWTHS256(t, testSecret, "")
	if _, err := ParseToken(tok, testSecret); err == nil {
		t.Fatalf("expected invalid claims error")
	}
}

func TestParseFromHeader(t *testing.T) {
	tok := testutil.GenerateJWTHS256(t, testSecret, "alice@x.io")

	p, err := ParseFromHeader("Bearer "+tok, testSecret)
	if err != nil || p.Email != "alice@x.io" {
		t.Fatalf("ParseFromHeader: %v %+v", err, p)
	}

	if _, err := ParseFromHeader("", testSecret); err == nil {
		t.Fatalf("expected error for missing header")
	}
	if _, err := ParseFromHeader("Basic "+tok, testSecret); err == nil {
		t.Fatalf("expected error for non-bearer scheme")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123", 4) // low cost keeps the test fast
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash equals plaintext")
	}
	if err := VerifyPassword(hash, "secret123"); err != nil {
		t.Fatalf("VerifyPassword correct password: %v", err)
	}
	if err := VerifyPassword(hash, "wrong-pass"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}
