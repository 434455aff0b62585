package activitylogs

import (
	"clinicgate-service/internal/app/contracts"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewActivityLogMongoRepository(db *mongo.Client, dbName string) contracts.ActivityLogRepository {
	return &ActivityLogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionActivityLogs),
	}
}

func (repo *ActivityLogMongoRepository) Insert(ctx context.Context, entry *models.ActivityLog) error {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	_, err := repo.Collection.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoInsert(err)
	}
	return nil
}

func (repo *ActivityLogMongoRepository) Find(ctx context.Context, filter models.ActivityLogFilter, page, pageSize int) ([]models.ActivityLog, int64, error) {
	query := buildFilterQuery(filter)

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoFind(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoFind(err)
	}
	defer cursor.Close(ctx)

	var entries []models.ActivityLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, exceptions.ErrMongoFind(err)
	}

	return entries, total, nil
}

func (repo *ActivityLogMongoRepository) FindRange(ctx context.Context, filter models.ActivityLogFilter) ([]models.ActivityLog, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, buildFilterQuery(filter), findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoFind(err)
	}
	defer cursor.Close(ctx)

	var entries []models.ActivityLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoFind(err)
	}

	return entries, nil
}

func buildFilterQuery(filter models.ActivityLogFilter) bson.M {
	query := bson.M{}
	if filter.Actor != "" {
		query["actor"] = filter.Actor
	}
	if filter.ClinicID != "" {
		query["clinicId"] = filter.ClinicID
	}
	if filter.Action != "" {
		query["action"] = filter.Action
	}

	createdAt := bson.M{}
	if !filter.From.IsZero() {
		createdAt["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		createdAt["$lt"] = filter.To
	}
	if len(createdAt) > 0 {
		query["createdAt"] = createdAt
	}

	return query
}
