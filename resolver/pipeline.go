package resolver

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// Stage is one middleware in the execution pipeline.
//
// Before may rewrite the request or derive a new context before the handler
// runs; a non-nil error rejects the invocation and the handler never runs.
// After may reshape the result and runs even when the handler (or an earlier
// stage) returned an error, so it can normalize error shape.
type Stage interface {
	Before(ctx context.Context, req *Request) (context.Context, error)
	After(ctx context.Context, req *Request, result any, err error) (any, error)
}

// Chain is an ordered list of stages. Before runs first-to-last and stops at
// the first rejection; After always runs last-to-first over every stage.
type Chain []Stage

// Before runs each stage's before hook in order.
func (c Chain) Before(ctx context.Context, req *Request) (context.Context, error) {
	for _, stage := range c {
		next, err := stage.Before(ctx, req)
		if err != nil {
			return ctx, err
		}
		ctx = next
	}
	return ctx, nil
}

// After runs each stage's after hook in reverse order, threading the result
// and error through every stage.
func (c Chain) After(ctx context.Context, req *Request, result any, err error) (any, error) {
	for i := len(c) - 1; i >= 0; i-- {
		result, err = c[i].After(ctx, req, result, err)
	}
	return result, err
}

type ctxKey int

const (
	identityKey ctxKey = iota
	correlationKey
)

// CallerIdentity returns the authenticated identity injected by
// IdentityStage, or nil when the event carried none.
func CallerIdentity(ctx context.Context) *events.AppSyncCognitoIdentity {
	id, _ := ctx.Value(identityKey).(*events.AppSyncCognitoIdentity)
	return id
}

// CorrelationID returns the per-invocation correlation id injected by
// LogStage, or empty when no LogStage ran.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey).(string)
	return id
}

// IdentityStage lifts the event's caller identity into the request context
// so handlers and later stages can read it without touching the event.
type IdentityStage struct{}

func (IdentityStage) Before(ctx context.Context, req *Request) (context.Context, error) {
	if req.Identity != nil {
		ctx = context.WithValue(ctx, identityKey, req.Identity)
	}
	return ctx, nil
}

func (IdentityStage) After(ctx context.Context, req *Request, result any, err error) (any, error) {
	return result, err
}

// LogStage logs one line per invocation with a correlation id, and the
// outcome after the handler returns.
type LogStage struct {
	logger *slog.Logger
}

// NewLogStage creates a LogStage. A nil logger falls back to slog.Default.
func NewLogStage(logger *slog.Logger) LogStage {
	if logger == nil {
		logger = slog.Default()
	}
	return LogStage{logger: logger}
}

func (s LogStage) Before(ctx context.Context, req *Request) (context.Context, error) {
	correlationID := uuid.New().String()
	ctx = context.WithValue(ctx, correlationKey, correlationID)

	s.logger.Info("dispatching operation",
		"operation", req.OperationName,
		"correlationID", correlationID,
	)
	return ctx, nil
}

func (s LogStage) After(ctx context.Context, req *Request, result any, err error) (any, error) {
	if err != nil {
		s.logger.Error("operation failed",
			"operation", req.OperationName,
			"correlationID", CorrelationID(ctx),
			"error", err,
		)
		return result, err
	}
	s.logger.Info("operation completed",
		"operation", req.OperationName,
		"correlationID", CorrelationID(ctx),
	)
	return result, err
}
