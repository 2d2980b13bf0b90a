package security_test

import (
	"strings"
	"testing"

	"github.com/Dharamchandpatle/RefineryIQ/internal/security"
)

func TestHashPassword(t *testing.T) {
	hash, err := security.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Error("hash must never equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("expected PHC argon2id format, got %q", hash)
	}

	if !security.VerifyPassword("correct horse battery staple", hash) {
		t.Error("correct password must verify")
	}
	if security.VerifyPassword("wrong password", hash) {
		t.Error("wrong password must not verify")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := security.HashPassword("samepassword")
	if err != nil {
		t.Fatal(err)
	}
	second, err := security.HashPassword("samepassword")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ")
	}
}

func TestHashPassword_NoLengthLimit(t *testing.T) {
	long := strings.Repeat("x", 4096)
	hash, err := security.HashPassword(long)
	if err != nil {
		t.Fatalf("failed to hash long password: %v", err)
	}

	if !security.VerifyPassword(long, hash) {
		t.Error("long password must verify against its own hash")
	}
	// A password truncated anywhere must not verify
	if security.VerifyPassword(long[:72], hash) {
		t.Error("truncated password must not verify")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=1,p=4$notbase64!!$alsonot!!",
		"$bcrypt$whatever",
	} {
		if security.VerifyPassword("anything", encoded) {
			t.Errorf("malformed hash %q must not verify", encoded)
		}
	}
}
