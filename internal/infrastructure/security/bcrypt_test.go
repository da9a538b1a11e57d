package security

import "testing"

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := hasher.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !hasher.Verify("hunter2", hash) {
		t.Fatal("Verify should accept the original password")
	}
	if hasher.Verify("hunter3", hash) {
		t.Fatal("Verify should reject a wrong password")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(4)
	if hasher.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatal("Verify should reject a malformed hash")
	}
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	t.Parallel()

	// An out-of-range cost must still produce usable hashes.
	hasher := NewBcryptHasher(99)
	hash, err := hasher.Hash("pw")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !hasher.Verify("pw", hash) {
		t.Fatal("Verify failed after cost clamp")
	}
}
