package services

import "context"

//go:generate mockgen -source=services.go -destination=mock_services.go -package=services

// Transactor runs fn inside a single database transaction bound to the context
// passed to fn. Repositories called with that context share the transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher announces committed mutations.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, entityID, userID int64)
}
