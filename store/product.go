package store

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Product is the sole persisted entity of the catalog.
type Product struct {
	// ID is the primary key. Immutable after creation.
	ID string `json:"id"`

	// Category is the secondary lookup key. Not unique.
	Category string `json:"category,omitempty"`

	// Attributes holds open-ended caller-supplied fields. They are
	// flattened into the stored item alongside the keyed fields and are
	// not validated beyond being scalar.
	Attributes map[string]string `json:"attributes,omitempty"`

	// CreatedAt is the ISO 8601 creation timestamp, stamped on first write.
	CreatedAt string `json:"createdAt,omitempty"`

	// UpdatedAt is the ISO 8601 last write timestamp.
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// managedAttrs are item attributes owned by the store. Caller-supplied
// attributes never overwrite them.
var managedAttrs = map[string]bool{
	"id":         true,
	"category":   true,
	"created_at": true,
	"updated_at": true,
}

// marshalProduct converts a Product to a DynamoDB item. Open-ended
// attributes are flattened first so the keyed fields always win.
func marshalProduct(p *Product) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(p.Attributes)
	if err != nil {
		return nil, fmt.Errorf("marshal attributes: %w", err)
	}
	if item == nil {
		item = map[string]types.AttributeValue{}
	}
	for name := range managedAttrs {
		delete(item, name)
	}

	item["id"] = &types.AttributeValueMemberS{Value: p.ID}
	if p.Category != "" {
		item["category"] = &types.AttributeValueMemberS{Value: p.Category}
	}
	if p.CreatedAt != "" {
		item["created_at"] = &types.AttributeValueMemberS{Value: p.CreatedAt}
	}
	if p.UpdatedAt != "" {
		item["updated_at"] = &types.AttributeValueMemberS{Value: p.UpdatedAt}
	}
	return item, nil
}

// unmarshalProduct converts a DynamoDB item to a Product.
func unmarshalProduct(raw map[string]types.AttributeValue) *Product {
	p := &Product{}

	if v, ok := raw["id"].(*types.AttributeValueMemberS); ok {
		p.ID = v.Value
	}
	if v, ok := raw["category"].(*types.AttributeValueMemberS); ok {
		p.Category = v.Value
	}
	if v, ok := raw["created_at"].(*types.AttributeValueMemberS); ok {
		p.CreatedAt = v.Value
	}
	if v, ok := raw["updated_at"].(*types.AttributeValueMemberS); ok {
		p.UpdatedAt = v.Value
	}

	for name, attr := range raw {
		if managedAttrs[name] {
			continue
		}
		var value string
		switch v := attr.(type) {
		case *types.AttributeValueMemberS:
			value = v.Value
		case *types.AttributeValueMemberN:
			value = v.Value
		case *types.AttributeValueMemberBOOL:
			if v.Value {
				value = "true"
			} else {
				value = "false"
			}
		default:
			// Non-scalar attributes are dropped from the read model.
			continue
		}
		if p.Attributes == nil {
			p.Attributes = map[string]string{}
		}
		p.Attributes[name] = value
	}

	return p
}
