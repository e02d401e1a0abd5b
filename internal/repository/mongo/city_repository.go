package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/domain/repository"
)

type cityRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewCityRepository(m *Mongo) repository.CityRepository {
	return &cityRepository{
		coll:   m.db.Collection(collectionCities),
		logger: m.logger,
	}
}

func (r *cityRepository) List(ctx context.Context) ([]domain.City, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, mapError("find cities", err)
	}
	defer cursor.Close(ctx)

	var docs []cityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mapError("decode cities", err)
	}

	cities := make([]domain.City, 0, len(docs))
	for _, d := range docs {
		cities = append(cities, d.toDomain())
	}
	return cities, nil
}

func (r *cityRepository) GetByID(ctx context.Context, id string) (domain.City, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.City{}, err
	}

	var doc cityDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return domain.City{}, mapError("find city", err)
	}
	return doc.toDomain(), nil
}

func (r *cityRepository) Create(ctx context.Context, city domain.City) (domain.City, error) {
	doc := newCityDocument(city)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.logger.Error("Failed to insert city", zap.String("name", city.Name), zap.Error(err))
		return domain.City{}, mapError("insert city", err)
	}
	return doc.toDomain(), nil
}

func (r *cityRepository) Update(ctx context.Context, city domain.City) (domain.City, error) {
	oid, err := objectID(city.ID)
	if err != nil {
		return domain.City{}, err
	}

	doc := newCityDocument(city)
	doc.ID = oid

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return domain.City{}, mapError("replace city", err)
	}
	if res.MatchedCount == 0 {
		return domain.City{}, domain.ErrNotFound
	}
	return doc.toDomain(), nil
}

func (r *cityRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError("delete city", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
