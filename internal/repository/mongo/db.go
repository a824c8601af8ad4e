package mongo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/multierr"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI.
// It returns the mongo.Client which can be used to access databases and collections.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the primary node to verify the connection.
	// Use a separate context for the ping, as the initial connection might have succeeded
	// but the server might be unresponsive.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	err = client.Ping(pingCtx, readpref.Primary())
	if err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection and reports all failures at once.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	err := multierr.Combine(
		EnsureUserIndexes(ctx, db.Collection(userCollectionName)),
		EnsureWellnessIndexes(ctx, db.Collection(wellnessCollectionName)),
		EnsureSessionIndexes(ctx, db.Collection(sessionCollectionName)),
		EnsureRMIndexes(ctx, db.Collection(rmCollectionName)),
		EnsureWeightIndexes(ctx, db.Collection(weightCollectionName)),
		EnsureReportIndexes(ctx, db.Collection(reportCollectionName)),
	)
	for _, e := range multierr.Errors(err) {
		log.Warnf("index creation: %s", e)
	}
	return err
}
