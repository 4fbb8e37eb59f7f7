package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func Test_bodyHash(t *testing.T) {
	data := []byte(`{"amount":150000}`)
	sum := sha256.Sum256(data)
	if got, want := bodyHash(data), hex.EncodeToString(sum[:]); got != want {
		t.Fatalf("bodyHash mismatch: got %s want %s", got, want)
	}
}

func Test_buildKey(t *testing.T) {
	member := strings.Repeat("b", 32)
	reqID := strings.Repeat("a", 32)
	k := buildKey("POST", "/api/v1/loans", member, reqID)
	if want := "idemp:fondo:post:/api/v1/loans:" + member + ":" + reqID; k != want {
		t.Fatalf("buildKey mismatch: got %q want %q", k, want)
	}
}

func Test_validReqID(t *testing.T) {
	valid := []string{
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88", // UUID v4
		strings.Repeat("a", 32),
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88",
	}
	for _, s := range valid {
		if !validReqID(s) {
			t.Fatalf("validReqID should accept %q", s)
		}
	}

	invalid := []string{
		"",
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c880", // 33 chars
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
		"3f9a6a1b-3d54-9fbe-8b3a-6b3e8d6b2c88", // bad UUID version
	}
	for _, s := range invalid {
		if validReqID(s) {
			t.Fatalf("validReqID should reject %q", s)
		}
	}
}

func Test_parseRequestAt_Epoch(t *testing.T) {
	sec := time.Now().UTC().Unix()
	ts, err := parseRequestAt(strconv.FormatInt(sec, 10))
	if err != nil {
		t.Fatalf("epoch seconds: %v", err)
	}
	if !ts.Equal(time.Unix(sec, 0).UTC()) {
		t.Fatalf("epoch seconds mismatch: got %v", ts)
	}

	ms := time.Now().UTC().UnixMilli()
	ts, err = parseRequestAt(strconv.FormatInt(ms, 10))
	if err != nil {
		t.Fatalf("epoch millis: %v", err)
	}
	if !ts.Equal(time.UnixMilli(ms).UTC()) {
		t.Fatalf("epoch millis mismatch: got %v", ts)
	}
}

func Test_parseRequestAt_RFC3339(t *testing.T) {
	// Bogotá is UTC-5 year-round.
	ts, err := parseRequestAt("2026-08-28T10:00:00-05:00")
	if err != nil {
		t.Fatalf("rfc3339 with offset: %v", err)
	}
	if want := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC); !ts.Equal(want) {
		t.Fatalf("offset mismatch: got %v want %v", ts, want)
	}

	ts, err = parseRequestAt("2026-08-28T15:00:00Z")
	if err != nil {
		t.Fatalf("rfc3339 Z: %v", err)
	}
	if want := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC); !ts.Equal(want) {
		t.Fatalf("Z mismatch: got %v want %v", ts, want)
	}
}

func Test_parseRequestAt_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"not-a-time",
		"2026-08-28T10:00:00", // no timezone
		"1736123456abc",
	} {
		if _, err := parseRequestAt(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func Test_provisionalSet_LoadEntry(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()

	key := buildKey("POST", "/api/v1/loans", strings.Repeat("b", 32), strings.Repeat("a", 32))
	entry := idempEntry{
		InProgress:  true,
		BodySHA256:  bodyHash([]byte(`{"amount":1}`)),
		RequestID:   strings.Repeat("a", 32),
		RequestAtMS: time.Now().UnixMilli(),
		CreatedAt:   nowUTC(),
	}

	ok, err := provisionalSet(context.Background(), rdb, key, entry)
	if err != nil || !ok {
		t.Fatalf("first provisionalSet: ok=%v err=%v", ok, err)
	}
	if ttl := rdb.TTL(context.Background(), key).Val(); ttl <= 0 || ttl > provisionalLockTTL {
		t.Fatalf("provisional TTL out of range: %v", ttl)
	}

	ok, err = provisionalSet(context.Background(), rdb, key, entry)
	if err != nil {
		t.Fatalf("second provisionalSet err: %v", err)
	}
	if ok {
		t.Fatal("second provisionalSet must not win")
	}

	got, err := loadEntry(context.Background(), rdb, key)
	if err != nil {
		t.Fatalf("loadEntry: %v", err)
	}
	if !got.InProgress || got.RequestID != entry.RequestID || got.BodySHA256 != entry.BodySHA256 {
		t.Fatalf("loaded entry mismatch: %+v vs %+v", got, entry)
	}
}

func Test_saveFinal_Load_TTL(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()

	key := buildKey("POST", "/api/v1/loans", strings.Repeat("b", 32), strings.Repeat("a", 32))
	final := idempEntry{
		InProgress:  false,
		Code:        201,
		Body:        []byte(`{"ok":true}`),
		BodySHA256:  bodyHash([]byte(`{"ok":true}`)),
		RequestID:   strings.Repeat("a", 32),
		RequestAtMS: time.Now().UnixMilli(),
		CreatedAt:   nowUTC(),
	}

	ttlWant := 5 * time.Second
	if err := saveFinal(context.Background(), rdb, key, final, ttlWant); err != nil {
		t.Fatalf("saveFinal: %v", err)
	}
	if ttl := rdb.TTL(context.Background(), key).Val(); ttl <= 0 || ttl > ttlWant {
		t.Fatalf("final TTL out of range: got %v want <= %v", ttl, ttlWant)
	}

	got, err := loadEntry(context.Background(), rdb, key)
	if err != nil {
		t.Fatalf("load after final: %v", err)
	}
	if got.Code != 201 || string(got.Body) != `{"ok":true}` || got.InProgress {
		t.Fatalf("final entry mismatch: %+v", got)
	}
}
