package cryptox

import (
	"strings"
	"testing"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret123", DefaultParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(h, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", h)
	}
	if !VerifyPassword(h, "secret123") {
		t.Fatalf("expected verification to succeed for correct password")
	}
	if VerifyPassword(h, "secret124") {
		t.Fatalf("expected verification to fail for wrong password")
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-password", DefaultParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("same-password", DefaultParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	if !VerifyPassword(a, "same-password") || !VerifyPassword(b, "same-password") {
		t.Fatalf("both hashes must verify against the original password")
	}
}

func TestVerifyPassword_MalformedInputs(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=3,p=4$c2FsdA$a2V5",   // wrong variant
		"$argon2id$v=18$m=65536,t=3,p=4$c2FsdA$a2V5",  // wrong version
		"$argon2id$v=19$m=banana,t=3,p=4$c2FsdA$a2V5", // bad params
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$a2V5",     // bad salt encoding
		"$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!",   // bad key encoding
		"$argon2id$v=19$m=65536,t=3,p=4$c2FsdA",       // missing segment
	}
	for _, c := range cases {
		if VerifyPassword(c, "whatever") {
			t.Fatalf("expected verify to fail for malformed hash %q", c)
		}
	}
}

func TestVerifyPassword_OldParamsStillVerify(t *testing.T) {
	t.Parallel()

	// A hash created with lighter parameters must stay verifiable because the
	// parameters ride along inside the encoded string.
	light := Params{Time: 1, Memory: 8 * 1024, Threads: 1, SaltLen: 16, KeyLen: 32}
	h, err := HashPassword("legacy", light)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !VerifyPassword(h, "legacy") {
		t.Fatalf("hash with non-default params must still verify")
	}
}
