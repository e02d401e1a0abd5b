package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/config"
)

const (
	collectionPlans  = "travel_plans"
	collectionCities = "cities"
	collectionPlaces = "places"
	collectionEvents = "events"
)

// Mongo - подключение к документному хранилищу
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func NewMongo(cfg *config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetConnectTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info("MongoDB connected", zap.String("database", cfg.Database))

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	m.logger.Info("Closing MongoDB connection")
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Health(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// EnsureIndexes создает индексы, используемые выборками планов и каталога
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collectionPlans: {
			{Keys: bson.D{{Key: "ownerId", Value: 1}}},
			{Keys: bson.D{{Key: "destinationCityId", Value: 1}}},
			{Keys: bson.D{{Key: "startDate", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		collectionCities: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		collectionPlaces: {
			{Keys: bson.D{{Key: "cityId", Value: 1}, {Key: "category", Value: 1}}},
		},
		collectionEvents: {
			{Keys: bson.D{{Key: "cityId", Value: 1}, {Key: "startDate", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := m.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	m.logger.Info("MongoDB indexes ensured")
	return nil
}
