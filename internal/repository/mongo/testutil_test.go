package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/config"
)

// setupMongo connects to TEST_MONGO_URI and returns a throwaway database.
// Tests are skipped when the variable is not set or the server is unreachable.
func setupMongo(t *testing.T) *Mongo {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping integration test")
	}

	m, err := NewMongo(&config.MongoConfig{
		URI:            uri,
		Database:       fmt.Sprintf("travel_app_test_%d", time.Now().UnixNano()),
		ConnectTimeout: 5 * time.Second,
	}, zap.NewNop())
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	ctx := context.Background()
	if err := m.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	t.Cleanup(func() {
		_ = m.Database().Drop(context.Background())
		_ = m.Close(context.Background())
	})
	return m
}
