package job

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/config"
)

var ErrJobNotFound = cerror.NewNotFoundError("job not found")

type Repository interface {
	InsertJob(ctx context.Context, document *Document) (string, error)
	FindJobWithId(ctx context.Context, jobId string) (*Document, error)
	FindJobsWithIds(ctx context.Context, jobIds []string) ([]*Document, error)
	FindJobs(ctx context.Context, filter *ListFilter) ([]*Document, int64, error)
	UpdateJobById(ctx context.Context, jobId string, payload *UpdateJobPayload) (*Document, error)
	DeleteJobById(ctx context.Context, jobId string) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(client *mongo.Client, cfg *config.Config) Repository {
	collection := client.
		Database(cfg.Mongodb.Database).
		Collection(cfg.Mongodb.Collections[config.MongodbJobCollection])

	return &repository{
		collection: collection,
	}
}

func (r *repository) InsertJob(ctx context.Context, document *Document) (string, error) {
	_, err := r.collection.InsertOne(ctx, document)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert job",
			zap.Error(err),
		)
	}

	return document.Id, nil
}

func (r *repository) FindJobWithId(ctx context.Context, jobId string) (*Document, error) {
	var document Document

	filter := bson.D{{Key: "_id", Value: jobId}}
	err := r.collection.FindOne(ctx, &filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrJobNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find job with id",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) FindJobsWithIds(ctx context.Context, jobIds []string) ([]*Document, error) {
	filter := bson.M{"_id": bson.M{"$in": jobIds}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find jobs with ids",
			zap.Error(err),
		)
	}

	var documents []*Document
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode jobs",
			zap.Error(err),
		)
	}

	return documents, nil
}

func (r *repository) FindJobs(ctx context.Context, filter *ListFilter) ([]*Document, int64, error) {
	query := bson.M{"isActive": true}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: filter.Location, Options: "i"}
	}
	if filter.Search != "" {
		searchRegex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": searchRegex},
			bson.M{"description": searchRegex},
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while count jobs",
			zap.Error(err),
		)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((filter.Page - 1) * filter.Limit).
		SetLimit(filter.Limit)
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find jobs",
			zap.Error(err),
		)
	}

	var documents []*Document
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode jobs",
			zap.Error(err),
		)
	}

	return documents, total, nil
}

func (r *repository) UpdateJobById(
	ctx context.Context,
	jobId string,
	payload *UpdateJobPayload,
) (*Document, error) {
	set := bson.M{
		"updatedAt": time.Now().UTC(),
	}
	if payload.Title != "" {
		set["title"] = payload.Title
	}
	if payload.Location != "" {
		set["location"] = payload.Location
	}
	if payload.Type != "" {
		set["type"] = payload.Type
	}
	if payload.Salary != "" {
		set["salary"] = payload.Salary
	}
	if payload.Description != "" {
		set["description"] = payload.Description
	}
	if len(payload.Skills) > 0 {
		set["skills"] = payload.Skills
	}
	if payload.Status != "" {
		set["status"] = payload.Status
	}
	if payload.IsActive != nil {
		set["isActive"] = *payload.IsActive
	}

	var document Document

	filter := bson.D{{Key: "_id", Value: jobId}}
	findOneAndUpdateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(
		ctx,
		&filter,
		bson.M{"$set": set},
		findOneAndUpdateOptions,
	).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrJobNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update job",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) DeleteJobById(ctx context.Context, jobId string) error {
	filter := bson.D{{Key: "_id", Value: jobId}}
	result, err := r.collection.DeleteOne(ctx, &filter)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while delete job",
			zap.Error(err),
		)
	}

	if result.DeletedCount == 0 {
		return ErrJobNotFound
	}

	return nil
}
