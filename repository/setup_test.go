package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"gonotes/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	os.Setenv("GO_ENV", "test")
	if os.Getenv("MONGO_DB_TEST") == "" {
		os.Setenv("MONGO_DB_TEST", "gonotes_test")
	}
}

// setupTestDB connects to the local test MongoDB and returns the client
// with a cleanup that drops the test collections. Tests are skipped
// when no MongoDB is reachable.
func setupTestDB(t *testing.T) (*mongo.Client, func()) {
	t.Helper()

	uri := utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("MongoDB not reachable: %v", err)
	}

	db := client.Database(os.Getenv("MONGO_DB_TEST"))
	if err := SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	cleanup := func() {
		if err := db.Collection("notes").Drop(context.Background()); err != nil {
			t.Errorf("Failed to drop notes collection: %v", err)
		}
		if err := db.Collection("users").Drop(context.Background()); err != nil {
			t.Errorf("Failed to drop users collection: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}

	return client, cleanup
}
