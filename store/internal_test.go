package store

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// --- Config Tests ---

func TestConfigValidate_Defaults(t *testing.T) {
	c := Config{}
	c.validate()

	if c.TableName != "catalog_products" {
		t.Errorf("expected default table name, got %q", c.TableName)
	}
	if c.CategoryIndex != "category-index" {
		t.Errorf("expected default index name, got %q", c.CategoryIndex)
	}
	if c.ScanPageSize != 100 {
		t.Errorf("expected default page size 100, got %d", c.ScanPageSize)
	}
}

func TestConfigValidate_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int32
		expected int32
	}{
		{"negative", -5, 100},
		{"zero", 0, 100},
		{"in range", 250, 250},
		{"over max", 5000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{ScanPageSize: tt.pageSize}
			c.validate()
			if c.ScanPageSize != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, c.ScanPageSize)
			}
		})
	}
}

func TestConfigValidate_PreservesExplicitNames(t *testing.T) {
	c := Config{TableName: "products-prod", CategoryIndex: "by-category"}
	c.validate()

	if c.TableName != "products-prod" {
		t.Errorf("expected 'products-prod', got %q", c.TableName)
	}
	if c.CategoryIndex != "by-category" {
		t.Errorf("expected 'by-category', got %q", c.CategoryIndex)
	}
}

// --- marshalProduct Tests ---

func TestMarshalProduct_Full(t *testing.T) {
	p := &Product{
		ID:        "p1",
		Category:  "tools",
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-02T00:00:00Z",
		Attributes: map[string]string{
			"name":  "hammer",
			"price": "9.99",
		},
	}

	item, err := marshalProduct(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, ok := item["id"].(*types.AttributeValueMemberS); !ok || v.Value != "p1" {
		t.Errorf("expected id 'p1', got %v", item["id"])
	}
	if v, ok := item["category"].(*types.AttributeValueMemberS); !ok || v.Value != "tools" {
		t.Errorf("expected category 'tools', got %v", item["category"])
	}
	if v, ok := item["name"].(*types.AttributeValueMemberS); !ok || v.Value != "hammer" {
		t.Errorf("expected flattened attribute name='hammer', got %v", item["name"])
	}
	if v, ok := item["created_at"].(*types.AttributeValueMemberS); !ok || v.Value != "2024-01-01T00:00:00Z" {
		t.Errorf("expected created_at stamp, got %v", item["created_at"])
	}
}

func TestMarshalProduct_NoAttributes(t *testing.T) {
	item, err := marshalProduct(&Product{ID: "p1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(item) != 1 {
		t.Errorf("expected only the id attribute, got %d attributes", len(item))
	}
	if _, ok := item["category"]; ok {
		t.Error("empty category should not be written")
	}
}

func TestMarshalProduct_AttributeCannotShadowKeys(t *testing.T) {
	p := &Product{
		ID:       "p1",
		Category: "tools",
		Attributes: map[string]string{
			"id":       "evil",
			"category": "evil",
			"name":     "hammer",
		},
	}

	item, err := marshalProduct(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v := item["id"].(*types.AttributeValueMemberS); v.Value != "p1" {
		t.Errorf("attribute shadowed id: got %q", v.Value)
	}
	if v := item["category"].(*types.AttributeValueMemberS); v.Value != "tools" {
		t.Errorf("attribute shadowed category: got %q", v.Value)
	}
}

// --- unmarshalProduct Tests ---

func TestUnmarshalProduct_Full(t *testing.T) {
	raw := map[string]types.AttributeValue{
		"id":         &types.AttributeValueMemberS{Value: "p1"},
		"category":   &types.AttributeValueMemberS{Value: "tools"},
		"created_at": &types.AttributeValueMemberS{Value: "2024-01-01T00:00:00Z"},
		"updated_at": &types.AttributeValueMemberS{Value: "2024-01-02T00:00:00Z"},
		"name":       &types.AttributeValueMemberS{Value: "hammer"},
		"stock":      &types.AttributeValueMemberN{Value: "12"},
		"active":     &types.AttributeValueMemberBOOL{Value: true},
	}

	p := unmarshalProduct(raw)

	if p.ID != "p1" {
		t.Errorf("expected ID 'p1', got %q", p.ID)
	}
	if p.Category != "tools" {
		t.Errorf("expected Category 'tools', got %q", p.Category)
	}
	if p.CreatedAt != "2024-01-01T00:00:00Z" {
		t.Errorf("expected CreatedAt '2024-01-01T00:00:00Z', got %q", p.CreatedAt)
	}
	if p.Attributes["name"] != "hammer" {
		t.Errorf("expected attribute name='hammer', got %q", p.Attributes["name"])
	}
	if p.Attributes["stock"] != "12" {
		t.Errorf("expected number attribute as '12', got %q", p.Attributes["stock"])
	}
	if p.Attributes["active"] != "true" {
		t.Errorf("expected bool attribute as 'true', got %q", p.Attributes["active"])
	}
}

func TestUnmarshalProduct_Minimal(t *testing.T) {
	raw := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: "p1"},
	}

	p := unmarshalProduct(raw)

	if p.ID != "p1" {
		t.Errorf("expected ID 'p1', got %q", p.ID)
	}
	if p.Category != "" {
		t.Errorf("expected empty Category, got %q", p.Category)
	}
	if p.Attributes != nil {
		t.Errorf("expected nil Attributes, got %v", p.Attributes)
	}
}

func TestUnmarshalProduct_DropsNonScalar(t *testing.T) {
	raw := map[string]types.AttributeValue{
		"id":   &types.AttributeValueMemberS{Value: "p1"},
		"tags": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
	}

	p := unmarshalProduct(raw)

	if _, ok := p.Attributes["tags"]; ok {
		t.Error("list attribute should be dropped from the read model")
	}
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	in := &Product{
		ID:       "p1",
		Category: "tools",
		Attributes: map[string]string{
			"name": "hammer",
		},
	}

	item, err := marshalProduct(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := unmarshalProduct(item)

	if out.ID != in.ID || out.Category != in.Category {
		t.Errorf("keyed fields did not round-trip: %+v", out)
	}
	if out.Attributes["name"] != "hammer" {
		t.Errorf("attributes did not round-trip: %+v", out.Attributes)
	}
}
