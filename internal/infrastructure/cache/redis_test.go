package cache

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestOpenRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	defer mr.Close()

	r, err := OpenRedis(mr.Addr(), 0)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	defer r.Close()

	if err := r.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("set through opened client: %v", err)
	}
}

func TestOpenRedis_Unreachable(t *testing.T) {
	// A reserved address nothing listens on.
	if _, err := OpenRedis("127.0.0.1:1", 0); err == nil {
		t.Fatal("expected error for unreachable redis")
	}
}
