package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/domain/repository"
)

type eventRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewEventRepository(m *Mongo) repository.EventRepository {
	return &eventRepository{
		coll:   m.db.Collection(collectionEvents),
		logger: m.logger,
	}
}

func (r *eventRepository) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.Event, error) {
	query := bson.M{}
	if filter.CityID != "" {
		oid, err := objectID(filter.CityID)
		if err != nil {
			return []domain.Event{}, nil
		}
		query["cityId"] = oid
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.From != nil {
		// события, которые еще не закончились
		query["endDate"] = bson.M{"$gte": filter.From.UTC()}
	}

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, mapError("find events", err)
	}
	defer cursor.Close(ctx)

	var docs []eventDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mapError("decode events", err)
	}

	events := make([]domain.Event, 0, len(docs))
	for _, d := range docs {
		events = append(events, d.toDomain())
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (domain.Event, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.Event{}, err
	}

	var doc eventDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return domain.Event{}, mapError("find event", err)
	}
	return doc.toDomain(), nil
}
