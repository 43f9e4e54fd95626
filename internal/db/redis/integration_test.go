package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/kailas-cloud/dirsearch/internal/db"
)

func newMiniredisStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := NewStore(Config{Addrs: []string{mr.Addr()}, DialTimeout: time.Second})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(s.Close)
	return s, mr
}

func TestStore_Miniredis_RoundTrip(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	if err := s.WaitForReady(ctx, time.Second); err != nil {
		t.Fatalf("WaitForReady: %v", err)
	}

	key := "dirsearch:favorites:rentals:u1"
	if err := s.Set(ctx, key, []byte(`{"keys":["a"]}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, key)
	if err != nil || string(got) != `{"keys":["a"]}` {
		t.Fatalf("Get = %q, %v", got, err)
	}
	if ok, _ := s.Exists(ctx, key); !ok {
		t.Error("Exists = false after Set")
	}
	if mr.TTL(key) != 0 {
		t.Errorf("plain Set must not expire, ttl %v", mr.TTL(key))
	}

	if err := s.Del(ctx, key); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, err := s.Get(ctx, key); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestStore_Miniredis_TTL(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	if err := s.SetWithTTL(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("SetWithTTL: %v", err)
	}
	if ttl := mr.TTL("k"); ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", ttl)
	}

	mr.FastForward(2 * time.Hour)
	if ok, _ := s.Exists(ctx, "k"); ok {
		t.Error("key survived its TTL")
	}
}

func TestStore_Miniredis_SubSecondTTL(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	if err := s.SetWithTTL(ctx, "k", []byte("v"), 300*time.Millisecond); err != nil {
		t.Fatalf("SetWithTTL: %v", err)
	}
	if ttl := mr.TTL("k"); ttl != 300*time.Millisecond {
		t.Errorf("ttl = %v, want 300ms", ttl)
	}

	mr.FastForward(time.Second)
	if ok, _ := s.Exists(ctx, "k"); ok {
		t.Error("key survived its TTL")
	}
}

func TestStore_Miniredis_Down(t *testing.T) {
	s, mr := newMiniredisStore(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := s.Ping(ctx); err == nil {
		t.Fatal("expected ping error after server shutdown")
	}
}
