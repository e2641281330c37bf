package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mercato/catalog/store"
)

// ProductStore is the persistence contract the handlers consume. It is
// satisfied by *store.Store and by test doubles.
type ProductStore interface {
	Get(ctx context.Context, id string) (*store.Product, error)
	Put(ctx context.Context, p *store.Product) error
	Delete(ctx context.Context, id string) error
	Scan(ctx context.Context, opts store.PageOptions) (*store.Page, error)
	QueryByCategory(ctx context.Context, category string, opts store.PageOptions) (*store.Page, error)
}

var _ ProductStore = (*store.Store)(nil)

// Handlers implements the six catalog operations. Handlers are stateless
// and safe for concurrent invocation; all state lives in the store.
type Handlers struct {
	store ProductStore
}

// NewHandlers creates handlers over the given store.
func NewHandlers(s ProductStore) *Handlers {
	return &Handlers{store: s}
}

// pageArgs are the optional pagination arguments shared by the list and
// category operations. Zero values drain the full result set.
type pageArgs struct {
	Limit     int32  `json:"limit"`
	NextToken string `json:"nextToken"`
}

func (a pageArgs) options() store.PageOptions {
	return store.PageOptions{Limit: a.Limit, NextToken: a.NextToken}
}

// GetProductByID returns the product under arguments.productId, or null
// when no such product exists. Absence is not an error.
func (h *Handlers) GetProductByID(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		ProductID string `json:"productId"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.ProductID == "" {
		return nil, missingArg("productId")
	}

	p, err := h.store.Get(ctx, in.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts returns products from the whole catalog. Without pagination
// arguments it returns everything.
func (h *Handlers) ListProducts(ctx context.Context, args json.RawMessage) (any, error) {
	var in pageArgs
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return h.store.Scan(ctx, in.options())
}

// ProductsByCategory returns every product in arguments.category, possibly
// an empty page.
func (h *Handlers) ProductsByCategory(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Category  string `json:"category"`
		Limit     int32  `json:"limit"`
		NextToken string `json:"nextToken"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Category == "" {
		return nil, missingArg("category")
	}
	return h.store.QueryByCategory(ctx, in.Category, store.PageOptions{
		Limit:     in.Limit,
		NextToken: in.NextToken,
	})
}

// CreateProduct stores arguments.product, assigning an id when the caller
// did not supply one, and returns the stored form.
func (h *Handlers) CreateProduct(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Product *store.Product `json:"product"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Product == nil {
		return nil, missingArg("product")
	}

	if in.Product.ID == "" {
		in.Product.ID = uuid.New().String()
	}
	if err := h.store.Put(ctx, in.Product); err != nil {
		return nil, err
	}
	return in.Product, nil
}

// UpdateProduct replaces the stored product under arguments.product.id.
// A missing id fails validation before any store call.
func (h *Handlers) UpdateProduct(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Product *store.Product `json:"product"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Product == nil || in.Product.ID == "" {
		return nil, missingArg("id")
	}

	if err := h.store.Put(ctx, in.Product); err != nil {
		return nil, err
	}
	return in.Product, nil
}

// DeleteProduct removes the product under arguments.productId and confirms
// the deleted id. Deleting a nonexistent id succeeds.
func (h *Handlers) DeleteProduct(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		ProductID string `json:"productId"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.ProductID == "" {
		return nil, missingArg("productId")
	}

	if err := h.store.Delete(ctx, in.ProductID); err != nil {
		return nil, err
	}
	return &DeleteResult{ID: in.ProductID}, nil
}

// decodeArgs unmarshals the arguments payload. A nil payload decodes as an
// empty object so operations without arguments work.
func decodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("catalog: decode arguments: %w", err)
	}
	return nil
}
