package resolver_test

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mercato/catalog/resolver"
)

func TestIdentityStage_InjectsCallerIdentity(t *testing.T) {
	identity := &events.AppSyncCognitoIdentity{
		Sub:      "user-123",
		Username: "alice",
	}
	req := &resolver.Request{OperationName: "listProducts", Identity: identity}

	ctx, err := resolver.IdentityStage{}.Before(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := resolver.CallerIdentity(ctx)
	if got == nil {
		t.Fatal("expected identity in context")
	}
	if got.Sub != "user-123" || got.Username != "alice" {
		t.Errorf("unexpected identity: %+v", got)
	}
}

func TestIdentityStage_NoIdentity(t *testing.T) {
	req := &resolver.Request{OperationName: "listProducts"}

	ctx, err := resolver.IdentityStage{}.Before(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolver.CallerIdentity(ctx) != nil {
		t.Error("expected nil identity for anonymous event")
	}
}

func TestCallerIdentity_EmptyContext(t *testing.T) {
	if resolver.CallerIdentity(context.Background()) != nil {
		t.Error("expected nil identity from empty context")
	}
}

func TestLogStage_SetsCorrelationID(t *testing.T) {
	stage := resolver.NewLogStage(discardLogger())
	req := &resolver.Request{OperationName: "listProducts"}

	ctx, err := stage.Before(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolver.CorrelationID(ctx) == "" {
		t.Error("expected a correlation id in context")
	}

	// After must pass result and error through untouched.
	result, err := stage.After(ctx, req, "result", nil)
	if err != nil || result != "result" {
		t.Errorf("expected passthrough, got (%v, %v)", result, err)
	}
}

func TestCorrelationID_EmptyContext(t *testing.T) {
	if resolver.CorrelationID(context.Background()) != "" {
		t.Error("expected empty correlation id from empty context")
	}
}

func TestChain_Empty(t *testing.T) {
	var chain resolver.Chain
	req := &resolver.Request{OperationName: "listProducts"}

	ctx, err := chain.Before(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := chain.After(ctx, req, "result", nil)
	if err != nil || result != "result" {
		t.Errorf("empty chain must pass through, got (%v, %v)", result, err)
	}
}
