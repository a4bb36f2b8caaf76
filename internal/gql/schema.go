package gql

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/sbilibin2017/gw-movie-reviews/internal/logger"
)

//go:embed schema.graphql
var schemaSDL string

// DefaultMaxDepth limits query nesting when no other limit is configured.
const DefaultMaxDepth = 10

// NewSchema parses the embedded schema and binds it to resolver.
func NewSchema(resolver *Resolver, maxDepth int) (*graphql.Schema, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return graphql.ParseSchema(schemaSDL, resolver,
		graphql.MaxDepth(maxDepth),
		graphql.Logger(panicLogger{}),
	)
}

// NewHandler serves schema over HTTP as JSON POST requests.
func NewHandler(schema *graphql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

// panicLogger reports resolver panics through zap.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	logger.FromContext(ctx).Errorw("graphql resolver panic", "panic", value)
}
