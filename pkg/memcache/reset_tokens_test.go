package memcache

import (
	"testing"
	"time"
)

func TestConsumeIsSingleUse(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "a@example.com", time.Minute)

	if got := store.Consume("tok"); got != "a@example.com" {
		t.Fatalf("first consume = %q, want email", got)
	}
	if got := store.Consume("tok"); got != "" {
		t.Fatalf("second consume = %q, want empty", got)
	}
}

func TestConsumeExpired(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "a@example.com", -time.Second)

	if got := store.Consume("tok"); got != "" {
		t.Fatalf("expired consume = %q, want empty", got)
	}
}

func TestConsumeUnknownToken(t *testing.T) {
	store := NewResetTokens()
	if got := store.Consume("missing"); got != "" {
		t.Fatalf("unknown consume = %q, want empty", got)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "a@example.com", time.Minute)

	if email, ok := store.Peek("tok"); !ok || email != "a@example.com" {
		t.Fatalf("peek = (%q, %v), want email and true", email, ok)
	}
	if got := store.Consume("tok"); got != "a@example.com" {
		t.Fatalf("consume after peek = %q, want email", got)
	}
}
