package resolver

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// Request is one inbound operation event from the API layer.
type Request struct {
	// OperationName selects the handler in the dispatch table.
	OperationName string `json:"operationName"`

	// Arguments is the operation payload. Each handler decodes its own
	// argument shape.
	Arguments json.RawMessage `json:"arguments"`

	// Identity is the authenticated caller attached by the API layer.
	// The router never validates it; stages may read it.
	Identity *events.AppSyncCognitoIdentity `json:"identity,omitempty"`
}

// DeleteResult confirms a delete operation.
type DeleteResult struct {
	// ID is the primary key that was removed.
	ID string `json:"id"`
}
