package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// New creates a new mongo client, retrying the initial connection until it
// succeeds or the configured attempts are exhausted.
func New(ctx context.Context, cfg Config) (*mongo.Client, error) {
	for i := 0; i < cfg.RetryAttempts; i++ {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime).
				SetRetryWrites(cfg.RetryWrites).
				SetRetryReads(cfg.RetryReads),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrFailedToConnect
}

// NewWithDatabase creates a new mongo client and returns a handle to the named
// database.
func NewWithDatabase(ctx context.Context, cfg Config, database string) (*mongo.Database, error) {
	client, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(database), nil
}
