package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second
	indexTimeout   = 30 * time.Second
)

// errInvalidID is returned when an id is not a valid ObjectID hex string.
var errInvalidID = errors.New("invalid object id")

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the unique email indexes and the match query indexes.
// The unique indexes are what guarantees one account per email.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := db.Collection(donorsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		uniqueEmail,
		{Keys: bson.D{{Key: "bloodGroup", Value: 1}, {Key: "location", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("donor indexes: %w", err)
	}

	if _, err := db.Collection(hospitalsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		uniqueEmail,
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "blood.type", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("hospital indexes: %w", err)
	}
	return nil
}

// withoutPassword is the projection applied to every read that leaves the
// repository for a caller other than the login path.
var withoutPassword = bson.M{"password": 0}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", errInvalidID, id)
	}
	return oid, nil
}
