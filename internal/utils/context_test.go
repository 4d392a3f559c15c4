// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestWithUserID_RoundTrip(t *testing.T) {
	for _, id := range []int64{0, 1, -5, 1 << 40} {
		got, ok := GetUserIDFromContext(WithUserID(context.Background(), id))
		if !ok {
			t.Fatalf("id %d: expected ok=true", id)
		}
		if got != id {
			t.Errorf("expected %d, got %d", id, got)
		}
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for empty context")
	}
	if userID != 0 {
		t.Errorf("expected 0, got %d", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	// a string-typed subject must not be accepted as a user id
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for string value")
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), int64(42))

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for a different key")
	}
}
