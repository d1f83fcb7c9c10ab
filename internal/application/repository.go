package application

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/config"
)

var (
	ErrApplicationNotFound = cerror.NewNotFoundError("application not found")
	ErrAlreadyApplied      = cerror.NewError(
		fiber.StatusBadRequest,
		"you have already applied for this job",
	).SetSeverity(zapcore.WarnLevel)
)

type Repository interface {
	InsertApplication(ctx context.Context, document *Document) (string, error)
	FindApplicationWithId(ctx context.Context, applicationId string) (*Document, error)
	FindApplicationsWithApplicant(ctx context.Context, applicantId string) ([]*Document, error)
	FindApplicationsWithJob(ctx context.Context, jobId string) ([]*Document, error)
	UpdateStatusById(ctx context.Context, applicationId, status string) (*Document, error)
	DeleteApplicationById(ctx context.Context, applicationId string) error
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(client *mongo.Client, cfg *config.Config) Repository {
	collection := client.
		Database(cfg.Mongodb.Database).
		Collection(cfg.Mongodb.Collections[config.MongodbApplicationCollection])

	return &repository{
		collection: collection,
	}
}

func (r *repository) InsertApplication(ctx context.Context, document *Document) (string, error) {
	_, err := r.collection.InsertOne(ctx, document)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrAlreadyApplied
		}

		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert application",
			zap.Error(err),
		)
	}

	return document.Id, nil
}

func (r *repository) FindApplicationWithId(ctx context.Context, applicationId string) (*Document, error) {
	var document Document

	filter := bson.D{{Key: "_id", Value: applicationId}}
	err := r.collection.FindOne(ctx, &filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrApplicationNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find application with id",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) FindApplicationsWithApplicant(
	ctx context.Context,
	applicantId string,
) ([]*Document, error) {
	filter := bson.D{{Key: "applicant", Value: applicantId}}
	return r.findApplications(ctx, &filter)
}

func (r *repository) FindApplicationsWithJob(ctx context.Context, jobId string) ([]*Document, error) {
	filter := bson.D{{Key: "job", Value: jobId}}
	return r.findApplications(ctx, &filter)
}

func (r *repository) findApplications(ctx context.Context, filter *bson.D) ([]*Document, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find applications",
			zap.Error(err),
		)
	}

	var documents []*Document
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode applications",
			zap.Error(err),
		)
	}

	return documents, nil
}

func (r *repository) UpdateStatusById(
	ctx context.Context,
	applicationId, status string,
) (*Document, error) {
	var document Document

	filter := bson.D{{Key: "_id", Value: applicationId}}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	findOneAndUpdateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, &filter, update, findOneAndUpdateOptions).
		Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrApplicationNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update application status",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) DeleteApplicationById(ctx context.Context, applicationId string) error {
	filter := bson.D{{Key: "_id", Value: applicationId}}
	result, err := r.collection.DeleteOne(ctx, &filter)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while delete application",
			zap.Error(err),
		)
	}

	if result.DeletedCount == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// EnsureIndexes creates the unique job+applicant index. Duplicate
// applications are rejected by this index rather than a pre-insert check.
func (r *repository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "job", Value: 1}, {Key: "applicant", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := r.collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while create application indexes",
			zap.Error(err),
		)
	}

	return nil
}
