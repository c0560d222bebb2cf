package auth

import "testing"

func TestHashPassword_SaltedDigests(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct digests for repeated hashing")
	}
	if !CheckPassword("s3cret", first) || !CheckPassword("s3cret", second) {
		t.Fatalf("both digests must verify against the original password")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if CheckPassword("wrong", digest) {
		t.Fatalf("wrong password must not verify")
	}
	if CheckPassword("s3cret", "not-a-bcrypt-digest") {
		t.Fatalf("garbage digest must not verify")
	}
}
