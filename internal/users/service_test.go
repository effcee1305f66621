package users

import (
	"context"
	"errors"
	"testing"
)

func TestRememberNormalizesAndOverwrites(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Remember(ctx, User{ID: "google:1", Email: "a@example.com", Name: "Ana"}); err != nil {
		t.Fatalf("Remember: %v", err)
	}
	stored, err := svc.Remember(ctx, User{ID: " google:1 ", Email: " Ana@Example.com ", Picture: "https://img"})
	if err != nil {
		t.Fatalf("Remember: %v", err)
	}
	if stored.ID != "google:1" || stored.Email != "ana@example.com" {
		t.Fatalf("unexpected normalized user %+v", stored)
	}

	got, err := svc.Resolve(ctx, "google:1", User{Name: "From Token"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != stored {
		t.Fatalf("expected stored user %+v, got %+v", stored, got)
	}
}

func TestRememberRequiresIdentity(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	cases := []User{
		{ID: " ", Email: "a@example.com"},
		{ID: "google:1"},
	}
	for _, in := range cases {
		if _, err := svc.Remember(context.Background(), in); !errors.Is(err, errIdentity) {
			t.Fatalf("expected errIdentity for %+v, got %v", in, err)
		}
	}
}

func TestResolveFallsBackToToken(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	got, err := svc.Resolve(context.Background(), "google:9", User{Email: "t@example.com", Name: "Token"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.ID != "google:9" || got.Name != "Token" {
		t.Fatalf("unexpected user %+v", got)
	}
}

func TestServiceNotConfigured(t *testing.T) {
	var svc *Service
	if _, err := svc.Remember(context.Background(), User{}); !errors.Is(err, errNotConfigured) {
		t.Fatalf("expected errNotConfigured, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), "u", User{}); !errors.Is(err, errNotConfigured) {
		t.Fatalf("expected errNotConfigured, got %v", err)
	}
}
