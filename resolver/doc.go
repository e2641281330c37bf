// Package resolver routes catalog API operations to their handlers.
//
// Each inbound event names one operation and carries its arguments:
//
//	{"operationName": "getProductById", "arguments": {"productId": "p1"}}
//
// A Router holds the fixed dispatch table from operation name to handler and
// wraps every invocation in a middleware [Chain]: each [Stage] may rewrite
// the request before the handler runs and reshape the result (or normalize
// the error) after, so cross-cutting concerns never touch handler logic.
//
// The six supported operations are getProductById, listProducts,
// productsByCategory, createProduct, updateProduct and deleteProduct.
// Unrecognized names fail with [ErrUnknownOperation] unless the router is
// built with [WithNullOnUnknown], which restores the legacy silent-null
// contract; in either mode no handler and no store call runs.
//
// Router.Dispatch has a Lambda-compatible signature and can be passed
// directly to lambda.Start.
package resolver
