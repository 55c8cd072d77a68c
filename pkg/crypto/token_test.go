package crypto

import "testing"

func TestGenerateHashedToken(t *testing.T) {
	pair, err := GenerateHashedToken()
	if err != nil {
		t.Fatalf("GenerateHashedToken() failed: %v", err)
	}
	if pair.Token == "" || pair.Hash == "" {
		t.Fatalf("empty token pair: %+v", pair)
	}
	if pair.Token == pair.Hash {
		t.Fatal("token equals its hash")
	}
	if HashToken(pair.Token) != pair.Hash {
		t.Fatal("hash does not match token")
	}

	other, err := GenerateHashedToken()
	if err != nil {
		t.Fatalf("GenerateHashedToken() failed: %v", err)
	}
	if other.Token == pair.Token {
		t.Fatal("two generated tokens are identical")
	}
}

func TestVerifyToken(t *testing.T) {
	pair, err := GenerateHashedToken()
	if err != nil {
		t.Fatalf("GenerateHashedToken() failed: %v", err)
	}

	ok, err := VerifyToken(pair.Token, pair.Hash)
	if err != nil {
		t.Fatalf("VerifyToken() failed: %v", err)
	}
	if !ok {
		t.Fatal("valid token did not verify")
	}

	ok, err = VerifyToken("tampered", pair.Hash)
	if err != nil {
		t.Fatalf("VerifyToken() failed: %v", err)
	}
	if ok {
		t.Fatal("tampered token verified")
	}

	if _, err := VerifyToken("", pair.Hash); err == nil {
		t.Fatal("expected error for empty token")
	}
	if _, err := VerifyToken(pair.Token, ""); err == nil {
		t.Fatal("expected error for empty hash")
	}
}

func TestNewID(t *testing.T) {
	a, err := NewID()
	if err != nil {
		t.Fatalf("NewID() failed: %v", err)
	}
	b, err := NewID()
	if err != nil {
		t.Fatalf("NewID() failed: %v", err)
	}
	if a == "" || a == b {
		t.Fatalf("ids not unique: %q, %q", a, b)
	}
}
