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

type placeRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewPlaceRepository(m *Mongo) repository.PlaceRepository {
	return &placeRepository{
		coll:   m.db.Collection(collectionPlaces),
		logger: m.logger,
	}
}

func (r *placeRepository) List(ctx context.Context, filter domain.CatalogFilter) ([]domain.Place, error) {
	query := bson.M{}
	if filter.CityID != "" {
		oid, err := objectID(filter.CityID)
		if err != nil {
			return []domain.Place{}, nil
		}
		query["cityId"] = oid
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, mapError("find places", err)
	}
	defer cursor.Close(ctx)

	var docs []placeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mapError("decode places", err)
	}

	places := make([]domain.Place, 0, len(docs))
	for _, d := range docs {
		places = append(places, d.toDomain())
	}
	return places, nil
}

func (r *placeRepository) GetByID(ctx context.Context, id string) (domain.Place, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.Place{}, err
	}

	var doc placeDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return domain.Place{}, mapError("find place", err)
	}
	return doc.toDomain(), nil
}
