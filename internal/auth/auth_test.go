package auth

import (
	"strings"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate(42, "user@example.com", "Admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "user@example.com" || claims.Role != "Admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Pending {
		t.Error("full token must not be pending")
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := m.Generate(1, "a@b.dk", "Elev")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := other.Validate(token); err == nil {
		t.Error("expected validation failure with wrong secret")
	}
}

func TestPendingTokenMarked(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GeneratePending(7, "a@b.dk", "Elev")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !claims.Pending {
		t.Error("expected pending flag")
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("hunter22again")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "hunter22again") {
		t.Error("expected password to verify")
	}
	if VerifyPassword(hash, "wrong password") {
		t.Error("expected wrong password to fail")
	}
}

func TestPasswordLongerThanBcryptLimit(t *testing.T) {
	// Without the SHA-512 prehash bcrypt would silently truncate these to the
	// same 72 bytes.
	long := strings.Repeat("a", 72)
	hash, err := HashPassword(long + "x")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if VerifyPassword(hash, long+"y") {
		t.Error("expected passwords differing after byte 72 to be distinct")
	}
	if !VerifyPassword(hash, long+"x") {
		t.Error("expected original long password to verify")
	}
}

func TestWeakPasswordRejected(t *testing.T) {
	if _, err := HashPassword("short"); err != ErrWeakPassword {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestEmailCipherRoundTrip(t *testing.T) {
	c, err := NewEmailCipher("unit-test-secret")
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}

	ciphertext, err := c.Encrypt("elev@skole.dk")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if ciphertext == "elev@skole.dk" {
		t.Error("ciphertext must differ from plaintext")
	}

	plain, err := c.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if plain != "elev@skole.dk" {
		t.Errorf("round trip: got %q", plain)
	}
}

func TestEmailCipherRejectsGarbage(t *testing.T) {
	c, err := NewEmailCipher("unit-test-secret")
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}
	if _, err := c.Decrypt("not base64!!"); err != ErrBadCiphertext {
		t.Errorf("expected ErrBadCiphertext, got %v", err)
	}
}

func TestEmailFingerprintCaseInsensitive(t *testing.T) {
	c, err := NewEmailCipher("unit-test-secret")
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}
	if c.Fingerprint("Elev@Skole.dk") != c.Fingerprint("  elev@skole.dk ") {
		t.Error("fingerprints should match regardless of case and padding")
	}
	if c.Fingerprint("a@b.dk") == c.Fingerprint("c@d.dk") {
		t.Error("distinct addresses should not collide")
	}
}

func TestEmptyKeyRejected(t *testing.T) {
	if _, err := NewEmailCipher(""); err == nil {
		t.Error("expected error for empty key")
	}
}
