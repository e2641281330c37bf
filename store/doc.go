// Package store provides the DynamoDB data access layer for the product catalog.
//
// The catalog lives in a single table keyed by product id, with one global
// secondary index over the category attribute. Store exposes the five
// operations the resolver layer needs: point get, unconditional put,
// idempotent delete, a cursor-paginated full scan, and a cursor-paginated
// category query.
//
// # Client Injection
//
// Store is constructed over the [DynamoDBClient] interface rather than a
// concrete SDK client, so tests can substitute an in-memory double and
// multiple stores can coexist in one process:
//
//	client := dynamodb.NewFromConfig(cfg)
//	s := store.New(client, store.DefaultConfig())
//
// # Pagination
//
// Scan and QueryByCategory accept a [PageOptions] with an optional limit and
// opaque continuation token. A zero limit drains every page and returns the
// full result set; a positive limit returns one page plus a NextToken that
// resumes the sequence.
//
// # Errors
//
//   - [ErrNotFound] - no product exists under the requested id
//   - [ErrMissingID] - a write was attempted without a primary key
//
// Backend failures propagate unmodified; the store performs no retries and
// keeps no cache, so every operation is one round trip.
package store
