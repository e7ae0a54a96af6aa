package service_test

import (
	"testing"

	"github.com/msomdec/inkwell/internal/service"
)

func TestTokenBucket_AllowsWithinCapacity(t *testing.T) {
	tb := service.NewTokenBucket(1, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if tb.Allow("10.0.0.1") {
		t.Fatal("request over capacity should be denied")
	}
}

func TestTokenBucket_KeysAreIndependent(t *testing.T) {
	tb := service.NewTokenBucket(1, 1)

	if !tb.Allow("10.0.0.1") {
		t.Fatal("first key should be allowed")
	}
	if !tb.Allow("10.0.0.2") {
		t.Fatal("second key should be unaffected by the first")
	}
	if tb.Allow("10.0.0.1") {
		t.Fatal("exhausted key should be denied")
	}
}
