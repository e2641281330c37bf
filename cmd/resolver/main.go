// Command resolver is the Lambda entry point for the catalog API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/mercato/catalog/resolver"
	"github.com/mercato/catalog/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Error("load aws config", "error", err)
		os.Exit(1)
	}

	storeCfg := store.DefaultConfig()
	if v := os.Getenv("CATALOG_TABLE"); v != "" {
		storeCfg.TableName = v
	}
	if v := os.Getenv("CATALOG_CATEGORY_INDEX"); v != "" {
		storeCfg.CategoryIndex = v
	}

	s := store.New(dynamodb.NewFromConfig(cfg), storeCfg)

	router := resolver.NewRouter(resolver.NewHandlers(s),
		resolver.WithLogger(logger),
		resolver.WithStages(
			resolver.IdentityStage{},
			resolver.NewLogStage(logger),
		),
	)

	lambda.Start(router.Dispatch)
}
