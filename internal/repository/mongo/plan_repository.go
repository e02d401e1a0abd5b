package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/domain/repository"
)

type planRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewPlanRepository создает репозиторий планов поверх коллекции travel_plans
func NewPlanRepository(m *Mongo) repository.PlanRepository {
	return &planRepository{
		coll:   m.db.Collection(collectionPlans),
		logger: m.logger,
	}
}

func (r *planRepository) Create(ctx context.Context, plan domain.TravelPlan) (domain.TravelPlan, error) {
	doc := newPlanDocument(plan)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.logger.Error("Failed to insert plan", zap.String("owner_id", plan.OwnerID), zap.Error(err))
		return domain.TravelPlan{}, mapError("insert plan", err)
	}

	plan.ID = doc.ID.Hex()
	return plan, nil
}

func (r *planRepository) GetByID(ctx context.Context, id string) (domain.TravelPlan, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.TravelPlan{}, err
	}

	var doc planDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return domain.TravelPlan{}, mapError("find plan", err)
	}
	return doc.toDomain(), nil
}

func (r *planRepository) ListByOwner(ctx context.Context, filter domain.PlanFilter) ([]domain.TravelPlan, int64, error) {
	query := bson.M{"ownerId": filter.OwnerID}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.CityID != "" {
		query["destinationCityId"] = filter.CityID
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, mapError("count plans", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "startDate", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(filter.Offset))
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	plans, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

func (r *planRepository) Update(ctx context.Context, plan domain.TravelPlan, previousUpdatedAt time.Time) error {
	oid, err := objectID(plan.ID)
	if err != nil {
		return err
	}

	doc := newPlanDocument(plan)
	doc.ID = oid

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid, "updatedAt": bsonTime(previousUpdatedAt)}, doc)
	if err != nil {
		return mapError("replace plan", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Документ либо удален, либо изменен параллельно
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError("count plan", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	r.logger.Warn("Plan modified concurrently", zap.String("plan_id", plan.ID))
	return domain.ErrConflict
}

func (r *planRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError("delete plan", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *planRepository) ListDueForTransition(ctx context.Context, status domain.PlanStatus, today time.Time, limit int) ([]domain.TravelPlan, error) {
	query := bson.M{"status": string(status)}
	switch status {
	case domain.StatusPlanned:
		query["startDate"] = bson.M{"$lte": today.UTC()}
	case domain.StatusInProgress:
		query["endDate"] = bson.M{"$lt": today.UTC()}
	default:
		return nil, fmt.Errorf("no scheduled transition out of %s", status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, query, opts)
}

func (r *planRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]domain.TravelPlan, error) {
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, mapError("find plans", err)
	}
	defer cursor.Close(ctx)

	var docs []planDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mapError("decode plans", err)
	}

	plans := make([]domain.TravelPlan, 0, len(docs))
	for _, d := range docs {
		plans = append(plans, d.toDomain())
	}
	return plans, nil
}
