package storage

import (
	"sync"
	"testing"
	"time"
)

// newTestStore returns a store whose clock is controlled by the returned pointer.
func newTestStore(t *testing.T, ttl time.Duration) (*ResultStore, *time.Time) {
	t.Helper()
	store := NewResultStore(ttl)
	t.Cleanup(store.Close)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, &now
}

func TestResultStore_SingleRetrieval(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	token := NewToken()

	if _, ok := store.Take(token); ok {
		t.Fatal("Take on empty store returned a result")
	}

	store.Put(token, []byte("openapi: 3.0.0\n"))
	if !store.Has(token) {
		t.Error("Has() = false after Put")
	}

	data, ok := store.Take(token)
	if !ok || string(data) != "openapi: 3.0.0\n" {
		t.Fatalf("Take() = %q, %v; want stored data", data, ok)
	}

	if _, ok := store.Take(token); ok {
		t.Error("second Take returned a result, want single retrieval")
	}
}

func TestResultStore_SessionsAreIndependent(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	alice, bob := NewToken(), NewToken()

	store.Put(alice, []byte("alice"))
	store.Put(bob, []byte("bob"))
	store.Put(alice, []byte("alice-2"))

	if data, _ := store.Take(bob); string(data) != "bob" {
		t.Errorf("bob got %q", data)
	}
	if data, _ := store.Take(alice); string(data) != "alice-2" {
		t.Errorf("alice got %q, want latest result", data)
	}
}

func TestResultStore_PutCopiesData(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	token := NewToken()

	buf := []byte("original")
	store.Put(token, buf)
	copy(buf, "mutated!")

	if data, _ := store.Take(token); string(data) != "original" {
		t.Errorf("stored data = %q, want copy taken at Put", data)
	}
}

func TestResultStore_Expiry(t *testing.T) {
	store, now := newTestStore(t, time.Minute)
	fresh, stale := NewToken(), NewToken()

	store.Put(stale, []byte("old"))
	*now = now.Add(45 * time.Second)
	store.Put(fresh, []byte("new"))
	*now = now.Add(30 * time.Second)

	if store.Has(stale) {
		t.Error("stale result still reported as pending")
	}
	if dropped := store.Sweep(); dropped != 1 {
		t.Errorf("Sweep() dropped %d, want 1", dropped)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
	if _, ok := store.Take(fresh); !ok {
		t.Error("fresh result expired early")
	}

	store.Put(stale, []byte("again"))
	*now = now.Add(2 * time.Minute)
	if _, ok := store.Take(stale); ok {
		t.Error("Take returned an expired result")
	}
}

func TestResultStore_Concurrent(t *testing.T) {
	store := NewResultStore(time.Minute)
	defer store.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token := NewToken()
			store.Put(token, []byte(token))
			data, ok := store.Take(token)
			if !ok || string(data) != token {
				t.Errorf("session %s got %q, %v", token, data, ok)
			}
		}()
	}
	wg.Wait()

	store.Close() // idempotent
}

func TestValidToken(t *testing.T) {
	if !ValidToken(NewToken()) {
		t.Error("ValidToken rejected a fresh token")
	}
	for _, bad := range []string{"", "session", "../../etc"} {
		if ValidToken(bad) {
			t.Errorf("ValidToken(%q) = true, want false", bad)
		}
	}
}
