package users

import "testing"

func TestInsertAndFindByEmail(t *testing.T) {
	store := NewMemoryStore()
	user := &User{ID: "u1", Name: "Ann", Email: "ann@x.com", PasswordHash: "hash"}
	if err := store.Insert(user); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	got, ok := store.FindByEmail("ann@x.com")
	if !ok {
		t.Fatal("FindByEmail did not find inserted user")
	}
	if got.ID != "u1" || got.Name != "Ann" {
		t.Fatalf("unexpected user: %#v", got)
	}
}

func TestFindByEmailMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, ok := store.FindByEmail("nobody@x.com"); ok {
		t.Fatal("FindByEmail found a user in an empty store")
	}
}

func TestFindByIDFailsClosed(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Insert(&User{ID: "u1", Email: "ann@x.com"}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	if _, ok := store.FindByID("missing"); ok {
		t.Fatal("FindByID found a user for an unknown id")
	}
	got, ok := store.FindByID("u1")
	if !ok || got.Email != "ann@x.com" {
		t.Fatalf("FindByID(u1) = %#v, %v", got, ok)
	}
}

func TestDuplicateEmailFirstMatchWins(t *testing.T) {
	store := NewMemoryStore()
	first := &User{ID: "u1", Name: "first", Email: "dup@x.com"}
	second := &User{ID: "u2", Name: "second", Email: "dup@x.com"}
	if err := store.Insert(first); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if err := store.Insert(second); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	got, ok := store.FindByEmail("dup@x.com")
	if !ok {
		t.Fatal("FindByEmail did not find any user")
	}
	if got.ID != "u1" {
		t.Fatalf("expected first-inserted record, got %q", got.ID)
	}

	// 両レコードとも識別子では解決できること
	if _, ok := store.FindByID("u2"); !ok {
		t.Fatal("second record not resolvable by id")
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
}
