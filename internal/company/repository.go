package company

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

var ErrCompanyNotFound = cerror.NewNotFoundError("company not found")

type Repository interface {
	InsertCompany(ctx context.Context, document *Document) (string, error)
	FindCompanyWithId(ctx context.Context, companyId string) (*Document, error)
	FindCompaniesWithIds(ctx context.Context, companyIds []string) ([]*Document, error)
	FindCompanies(ctx context.Context, filter *ListFilter) ([]*Document, int64, error)
	UpdateCompanyById(ctx context.Context, companyId string, payload *UpdateCompanyPayload) (*Document, error)
	UpdateLogo(ctx context.Context, companyId, logoPath string) (*Document, error)
	DeleteCompanyById(ctx context.Context, companyId string) error
	CountOpenPositions(ctx context.Context, companyId string) (int64, error)
}

type repository struct {
	collection    *mongo.Collection
	jobCollection *mongo.Collection
}

func NewRepository(client *mongo.Client, cfg *config.Config) Repository {
	database := client.Database(cfg.Mongodb.Database)

	return &repository{
		collection:    database.Collection(cfg.Mongodb.Collections[config.MongodbCompanyCollection]),
		jobCollection: database.Collection(cfg.Mongodb.Collections[config.MongodbJobCollection]),
	}
}

func (r *repository) InsertCompany(ctx context.Context, document *Document) (string, error) {
	_, err := r.collection.InsertOne(ctx, document)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert company",
			zap.Error(err),
		)
	}

	return document.Id, nil
}

func (r *repository) FindCompanyWithId(ctx context.Context, companyId string) (*Document, error) {
	var document Document

	filter := bson.D{{Key: "_id", Value: companyId}}
	err := r.collection.FindOne(ctx, &filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCompanyNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find company with id",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) FindCompaniesWithIds(ctx context.Context, companyIds []string) ([]*Document, error) {
	filter := bson.M{"_id": bson.M{"$in": companyIds}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find companies with ids",
			zap.Error(err),
		)
	}

	var documents []*Document
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode companies",
			zap.Error(err),
		)
	}

	return documents, nil
}

func (r *repository) FindCompanies(ctx context.Context, filter *ListFilter) ([]*Document, int64, error) {
	query := bson.M{}
	if filter.Industry != "" {
		query["industry"] = primitive.Regex{Pattern: filter.Industry, Options: "i"}
	}
	if filter.Search != "" {
		searchRegex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": searchRegex},
			bson.M{"description": searchRegex},
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while count companies",
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
			"error occurred while find companies",
			zap.Error(err),
		)
	}

	var documents []*Document
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode companies",
			zap.Error(err),
		)
	}

	return documents, total, nil
}

func (r *repository) UpdateCompanyById(
	ctx context.Context,
	companyId string,
	payload *UpdateCompanyPayload,
) (*Document, error) {
	set := bson.M{
		"updatedAt": time.Now().UTC(),
	}
	if payload.Name != "" {
		set["name"] = payload.Name
	}
	if payload.Industry != "" {
		set["industry"] = payload.Industry
	}
	if payload.Location != "" {
		set["location"] = payload.Location
	}
	if payload.Description != "" {
		set["description"] = payload.Description
	}
	if payload.Website != "" {
		set["website"] = payload.Website
	}
	if payload.Size != "" {
		set["size"] = payload.Size
	}

	var document Document

	filter := bson.D{{Key: "_id", Value: companyId}}
	findOneAndUpdateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(
		ctx,
		&filter,
		bson.M{"$set": set},
		findOneAndUpdateOptions,
	).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCompanyNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update company",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) UpdateLogo(ctx context.Context, companyId, logoPath string) (*Document, error) {
	var document Document

	filter := bson.D{{Key: "_id", Value: companyId}}
	update := bson.M{"$set": bson.M{
		"logo":      logoPath,
		"updatedAt": time.Now().UTC(),
	}}
	findOneAndUpdateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, &filter, update, findOneAndUpdateOptions).
		Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCompanyNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update company logo",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) DeleteCompanyById(ctx context.Context, companyId string) error {
	filter := bson.D{{Key: "_id", Value: companyId}}
	result, err := r.collection.DeleteOne(ctx, &filter)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while delete company",
			zap.Error(err),
		)
	}

	if result.DeletedCount == 0 {
		return ErrCompanyNotFound
	}

	return nil
}

func (r *repository) CountOpenPositions(ctx context.Context, companyId string) (int64, error) {
	filter := bson.M{"company": companyId, "isActive": true}
	count, err := r.jobCollection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while count open positions",
			zap.Error(err),
		)
	}

	return count, nil
}
