package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !Verify("s3cret", hash) {
		t.Fatal("expected the original password to verify")
	}
	if Verify("wrong", hash) {
		t.Fatal("a wrong password must not verify")
	}
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	if Verify("s3cret", "not-a-bcrypt-hash") {
		t.Fatal("a malformed hash must not verify")
	}
}
