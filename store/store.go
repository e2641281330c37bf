package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mercato/catalog/internal/cursor"
)

// DynamoDBClient is the subset of the SDK v2 client the store uses.
// Injecting the interface lets tests substitute an in-memory double.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DynamoDBClient = (*dynamodb.Client)(nil)

// Store provides catalog persistence over one DynamoDB table and its
// category index.
type Store struct {
	client DynamoDBClient
	config Config
}

// New creates a new Store instance.
func New(client DynamoDBClient, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
	}
}

// PageOptions controls pagination for Scan and QueryByCategory.
type PageOptions struct {
	// Limit is the maximum number of products to return. Zero means
	// drain every page and return the full result set.
	Limit int32

	// NextToken is the opaque continuation token from a previous Page.
	// Empty starts from the beginning.
	NextToken string
}

// Page is one slice of a scan or query result.
type Page struct {
	// Products holds the page contents, unordered.
	Products []Product `json:"products"`

	// NextToken resumes the sequence. Empty means the sequence is done.
	NextToken string `json:"nextToken,omitempty"`
}

// Get retrieves a product by id, returning ErrNotFound if missing.
func (s *Store) Get(ctx context.Context, id string) (*Product, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.TableName),
		Key:       productKey(id),
	})
	if err != nil {
		return nil, err
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}
	return unmarshalProduct(result.Item), nil
}

// Put writes a product unconditionally, replacing any existing item with
// the same id. Write timestamps are stamped here; CreatedAt is preserved
// when the caller carries it over from a previous read.
func (s *Store) Put(ctx context.Context, p *Product) error {
	if p.ID == "" {
		return ErrMissingID
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if p.CreatedAt == "" {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	item, err := marshalProduct(p)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.TableName),
		Item:      item,
	})
	return err
}

// Delete removes a product by id. Deleting a nonexistent id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.config.TableName),
		Key:       productKey(id),
	})
	return err
}

// Scan returns products from the full table, unordered. With a zero limit
// it drains every page; with a positive limit it returns one page and a
// continuation token.
func (s *Store) Scan(ctx context.Context, opts PageOptions) (*Page, error) {
	startKey, err := cursor.Decode(opts.NextToken)
	if err != nil {
		return nil, err
	}

	input := &dynamodb.ScanInput{
		TableName:         aws.String(s.config.TableName),
		ExclusiveStartKey: startKey,
	}

	if opts.Limit > 0 {
		input.Limit = aws.Int32(opts.Limit)
		result, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		return s.makePage(result.Items, result.LastEvaluatedKey)
	}

	// Drain all pages.
	input.Limit = aws.Int32(s.config.ScanPageSize)
	page := &Page{Products: []Product{}}
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			page.Products = append(page.Products, *unmarshalProduct(raw))
		}
	}
	return page, nil
}

// QueryByCategory returns every product whose category equals the argument,
// unordered, via the category index. Pagination behaves as in Scan.
func (s *Store) QueryByCategory(ctx context.Context, category string, opts PageOptions) (*Page, error) {
	startKey, err := cursor.Decode(opts.NextToken)
	if err != nil {
		return nil, err
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.config.TableName),
		IndexName:              aws.String(s.config.CategoryIndex),
		KeyConditionExpression: aws.String("category = :category"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: category},
		},
		ExclusiveStartKey: startKey,
	}

	if opts.Limit > 0 {
		input.Limit = aws.Int32(opts.Limit)
		result, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		return s.makePage(result.Items, result.LastEvaluatedKey)
	}

	input.Limit = aws.Int32(s.config.ScanPageSize)
	page := &Page{Products: []Product{}}
	paginator := dynamodb.NewQueryPaginator(s.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			page.Products = append(page.Products, *unmarshalProduct(raw))
		}
	}
	return page, nil
}

// makePage builds a single result page with its continuation token.
func (s *Store) makePage(items []map[string]types.AttributeValue, lastKey map[string]types.AttributeValue) (*Page, error) {
	page := &Page{Products: make([]Product, 0, len(items))}
	for _, raw := range items {
		page.Products = append(page.Products, *unmarshalProduct(raw))
	}

	token, err := cursor.Encode(lastKey)
	if err != nil {
		return nil, fmt.Errorf("encode continuation token: %w", err)
	}
	page.NextToken = token
	return page, nil
}

// productKey builds the primary key for a product id.
func productKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
