// Package cursor encodes DynamoDB pagination keys as opaque string tokens.
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// attr is the wire form of a single key attribute. DynamoDB key attributes
// are limited to string, number, and binary types.
type attr struct {
	S *string `json:"s,omitempty"`
	N *string `json:"n,omitempty"`
	B []byte  `json:"b,omitempty"`
}

// Encode converts a LastEvaluatedKey into an opaque continuation token.
// A nil or empty key encodes to the empty string, meaning "no more pages".
func Encode(key map[string]types.AttributeValue) (string, error) {
	if len(key) == 0 {
		return "", nil
	}

	wire := make(map[string]attr, len(key))
	for name, av := range key {
		switch v := av.(type) {
		case *types.AttributeValueMemberS:
			wire[name] = attr{S: &v.Value}
		case *types.AttributeValueMemberN:
			wire[name] = attr{N: &v.Value}
		case *types.AttributeValueMemberB:
			wire[name] = attr{B: v.Value}
		default:
			return "", fmt.Errorf("cursor: unsupported key attribute type for %q", name)
		}
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("cursor: marshal: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode converts a continuation token back into an ExclusiveStartKey.
// The empty string decodes to nil, meaning "start from the beginning".
func Decode(token string) (map[string]types.AttributeValue, error) {
	if token == "" {
		return nil, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("cursor: decode: %w", err)
	}

	var wire map[string]attr
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("cursor: unmarshal: %w", err)
	}

	key := make(map[string]types.AttributeValue, len(wire))
	for name, a := range wire {
		switch {
		case a.S != nil:
			key[name] = &types.AttributeValueMemberS{Value: *a.S}
		case a.N != nil:
			key[name] = &types.AttributeValueMemberN{Value: *a.N}
		case a.B != nil:
			key[name] = &types.AttributeValueMemberB{Value: a.B}
		default:
			return nil, fmt.Errorf("cursor: empty key attribute %q", name)
		}
	}
	return key, nil
}
