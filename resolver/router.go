package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// HandlerFunc implements one operation against decoded arguments.
type HandlerFunc func(ctx context.Context, args json.RawMessage) (any, error)

// Router maps operation names to handlers and runs each invocation inside
// the middleware chain. A Router holds no per-invocation state, so one
// instance serves concurrent events.
type Router struct {
	routes        map[string]HandlerFunc
	chain         Chain
	logger        *slog.Logger
	nullOnUnknown bool
}

// Option configures a Router.
type Option func(*Router)

// WithStages sets the middleware chain, in execution order.
func WithStages(stages ...Stage) Option {
	return func(r *Router) {
		r.chain = Chain(stages)
	}
}

// WithLogger sets the router's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithNullOnUnknown restores the legacy contract of resolving unrecognized
// operation names to a null result instead of ErrUnknownOperation. The
// lookup failure is still logged so typo'd operation names stay visible.
func WithNullOnUnknown() Option {
	return func(r *Router) {
		r.nullOnUnknown = true
	}
}

// NewRouter builds a router with the full catalog dispatch table.
func NewRouter(h *Handlers, opts ...Option) *Router {
	r := &Router{
		routes: make(map[string]HandlerFunc),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.Register("getProductById", h.GetProductByID)
	r.Register("listProducts", h.ListProducts)
	r.Register("productsByCategory", h.ProductsByCategory)
	r.Register("createProduct", h.CreateProduct)
	r.Register("updateProduct", h.UpdateProduct)
	r.Register("deleteProduct", h.DeleteProduct)

	return r
}

// Register adds an operation to the dispatch table. Registering during
// construction is the expected use; the table is not synchronized for
// mutation after the router starts serving.
func (r *Router) Register(name string, fn HandlerFunc) {
	r.routes[name] = fn
}

// Dispatch routes one event through before-stages, handler, and
// after-stages, and returns the shaped result. The signature is
// Lambda-compatible and can be passed directly to lambda.Start.
func (r *Router) Dispatch(ctx context.Context, req Request) (any, error) {
	fn, ok := r.routes[req.OperationName]
	if !ok {
		r.logger.Warn("unknown operation",
			"operation", req.OperationName,
		)
		if r.nullOnUnknown {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, req.OperationName)
	}

	ctx, err := r.chain.Before(ctx, &req)
	var result any
	if err == nil {
		result, err = fn(ctx, req.Arguments)
	}
	return r.chain.After(ctx, &req, result, err)
}
