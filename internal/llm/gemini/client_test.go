package gemini

import (
	"context"
	"testing"
)

func TestNewClientValidation(t *testing.T) {
	ctx := context.Background()
	if _, err := NewClient(ctx, "", "key", 0.2); err == nil {
		t.Fatal("expected error for empty model")
	}
	if _, err := NewClient(ctx, "gemini-2.0-flash", "", 0.2); err == nil {
		t.Fatal("expected error for empty key")
	}

	client, err := NewClient(ctx, "gemini-2.0-flash", "key", 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Provider() != "google" {
		t.Fatalf("provider = %q, want google", client.Provider())
	}
}
