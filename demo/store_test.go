package demo

import (
	"errors"
	"testing"
)

func TestStoreCreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	u1, err := s.Create(UserInput{Username: "alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	u2, err := s.Create(UserInput{Username: "bob", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if u1.ID != 1 || u2.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", u1.ID, u2.ID)
	}
	if !u1.IsActive {
		t.Fatal("new user not active")
	}
	if u1.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}
}

func TestStoreDuplicates(t *testing.T) {
	s := NewStore()
	if _, err := s.Create(UserInput{Username: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if _, err := s.Create(UserInput{Username: "alice", Email: "other@example.com"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate username: got %v, want ErrDuplicate", err)
	}
	if _, err := s.Create(UserInput{Username: "other", Email: "alice@example.com"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate email: got %v, want ErrDuplicate", err)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestStoreGetUpdateDelete(t *testing.T) {
	s := NewStore()
	u, _ := s.Create(UserInput{Username: "alice", Email: "alice@example.com"})

	if _, err := s.Get(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(42) = %v, want ErrNotFound", err)
	}

	full := "Alice Smith"
	updated, err := s.Update(u.ID, UserInput{Username: "alice2", Email: "alice2@example.com", FullName: &full})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated.Username != "alice2" || updated.FullName == nil || *updated.FullName != full {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := s.Update(42, UserInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update(42) = %v, want ErrNotFound", err)
	}
	if _, err := s.Delete(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete(42) = %v, want ErrNotFound", err)
	}

	removed, err := s.Delete(u.ID)
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if removed.Username != "alice2" {
		t.Fatalf("Delete() returned %q, want alice2", removed.Username)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d after delete, want 0", s.Len())
	}
}

// The counter never reuses an id, even after deletes.
func TestStoreCounterNeverReused(t *testing.T) {
	s := NewStore()
	u1, _ := s.Create(UserInput{Username: "alice", Email: "alice@example.com"})
	s.Delete(u1.ID)

	u2, _ := s.Create(UserInput{Username: "bob", Email: "bob@example.com"})
	if u2.ID != 2 {
		t.Fatalf("id = %d after delete, want 2", u2.ID)
	}
}
