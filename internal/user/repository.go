package user

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/config"
)

var (
	ErrUserNotFound = cerror.NewNotFoundError("user not found")

	ErrEmailAlreadyRegistered = cerror.NewError(
		fiber.StatusBadRequest,
		"email already registered",
	).SetSeverity(zapcore.WarnLevel)
)

type Repository interface {
	InsertUser(ctx context.Context, document *Document) (string, error)
	FindUserWithId(ctx context.Context, userId string) (*Document, error)
	FindUserWithEmail(ctx context.Context, email string) (*Document, error)
	FindUsersWithIds(ctx context.Context, userIds []string) ([]*Document, error)
	FindUsers(ctx context.Context, filter *ListFilter) ([]*Document, int64, error)
	UpdateUserById(ctx context.Context, userId string, payload *UpdateUserPayload) (*Document, error)
	UpdateProfilePhoto(ctx context.Context, userId, photoPath string) (*Document, error)
	DeleteUserById(ctx context.Context, userId string) error
	SetResetToken(ctx context.Context, userId, tokenHash string, expiresAt time.Time) error
	FindUserWithResetToken(ctx context.Context, tokenHash string) (*Document, error)
	UpdatePassword(ctx context.Context, userId, hashedPassword string) error
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(client *mongo.Client, cfg *config.Config) Repository {
	collection := client.
		Database(cfg.Mongodb.Database).
		Collection(cfg.Mongodb.Collections[config.MongodbUserCollection])

	return &repository{
		collection: collection,
	}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return err
}

func (r *repository) InsertUser(ctx context.Context, document *Document) (string, error) {
	var foundUser bson.D
	filter := bson.D{{Key: "email", Value: document.Email}}
	err := r.collection.FindOne(ctx, &filter).Decode(&foundUser)
	if err != nil && err != mongo.ErrNoDocuments {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while user existing check",
			zap.Error(err),
		)
	}

	if len(foundUser) > 0 {
		return "", ErrEmailAlreadyRegistered
	}

	_, err = r.collection.InsertOne(ctx, document)
	if err != nil {
		// The unique index is the source of truth for the email invariant;
		// a concurrent register between the check and the insert lands here.
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrEmailAlreadyRegistered
		}

		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert user",
			zap.Error(err),
		)
	}

	return document.Id, nil
}

func (r *repository) FindUserWithId(ctx context.Context, userId string) (*Document, error) {
	var document Document

	filter := bson.D{{Key: "_id", Value: userId}}
	err := r.collection.FindOne(ctx, &filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with id",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) FindUserWithEmail(ctx context.Context, email string) (*Document, error) {
	var document Document

	filter := bson.D{{Key: "email", Value: email}}
	err := r.collection.FindOne(ctx, &filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with email",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) FindUsersWithIds(ctx context.Context, userIds []string) ([]*Document, error) {
	filter := bson.M{"_id": bson.M{"$in": userIds}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find users with ids",
			zap.Error(err),
		)
	}

	var documents []*Document
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode users",
			zap.Error(err),
		)
	}

	return documents, nil
}

func (r *repository) FindUsers(ctx context.Context, filter *ListFilter) ([]*Document, int64, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.Search != "" {
		searchRegex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": searchRegex},
			bson.M{"email": searchRegex},
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while count users",
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
			"error occurred while find users",
			zap.Error(err),
		)
	}

	var documents []*Document
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode users",
			zap.Error(err),
		)
	}

	return documents, total, nil
}

func (r *repository) UpdateUserById(
	ctx context.Context,
	userId string,
	payload *UpdateUserPayload,
) (*Document, error) {
	set := bson.M{
		"updatedAt": time.Now().UTC(),
	}
	if payload.Name != "" {
		set["name"] = payload.Name
	}
	if payload.Phone != "" {
		set["phone"] = payload.Phone
	}
	if payload.Status != "" {
		set["status"] = payload.Status
	}
	if payload.Gender != "" {
		set["gender"] = payload.Gender
	}
	if payload.Dob != "" {
		set["dob"] = payload.Dob
	}
	if payload.Education != "" {
		set["education"] = payload.Education
	}
	if payload.WorkExp != "" {
		set["workExp"] = payload.WorkExp
	}
	if len(payload.Skills) > 0 {
		set["skills"] = payload.Skills
	}
	if payload.Resume != "" {
		set["resume"] = payload.Resume
	}
	if payload.CompanyDescription != "" {
		set["companyDescription"] = payload.CompanyDescription
	}

	return r.findOneAndUpdate(ctx, userId, bson.M{"$set": set})
}

func (r *repository) UpdateProfilePhoto(ctx context.Context, userId, photoPath string) (*Document, error) {
	return r.findOneAndUpdate(ctx, userId, bson.M{
		"$set": bson.M{
			"profilePhoto": photoPath,
			"updatedAt":    time.Now().UTC(),
		},
	})
}

func (r *repository) DeleteUserById(ctx context.Context, userId string) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	result, err := r.collection.DeleteOne(ctx, &filter)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while delete user",
			zap.Error(err),
		)
	}

	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) SetResetToken(
	ctx context.Context,
	userId, tokenHash string,
	expiresAt time.Time,
) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	update := bson.M{
		"$set": bson.M{
			"resetPasswordToken":   tokenHash,
			"resetPasswordExpires": expiresAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, &filter, update)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while set reset token",
			zap.Error(err),
		)
	}

	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) FindUserWithResetToken(ctx context.Context, tokenHash string) (*Document, error) {
	var document Document

	filter := bson.M{
		"resetPasswordToken":   tokenHash,
		"resetPasswordExpires": bson.M{"$gt": time.Now().UTC()},
	}
	err := r.collection.FindOne(ctx, filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with reset token",
			zap.Error(err),
		)
	}

	return &document, nil
}

func (r *repository) UpdatePassword(ctx context.Context, userId, hashedPassword string) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	update := bson.M{
		"$set": bson.M{
			"password":  hashedPassword,
			"updatedAt": time.Now().UTC(),
		},
		"$unset": bson.M{
			"resetPasswordToken":   "",
			"resetPasswordExpires": "",
		},
	}
	result, err := r.collection.UpdateOne(ctx, &filter, update)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update password",
			zap.Error(err),
		)
	}

	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) findOneAndUpdate(
	ctx context.Context,
	userId string,
	update bson.M,
) (*Document, error) {
	var document Document

	filter := bson.D{{Key: "_id", Value: userId}}
	findOneAndUpdateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, &filter, update, findOneAndUpdateOptions).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update user",
			zap.Error(err),
		)
	}

	return &document, nil
}
