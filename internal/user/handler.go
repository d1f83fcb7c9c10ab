package user

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"career-portal-api/internal/middleware"
	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/config"
	"career-portal-api/pkg/logger"
	"career-portal-api/pkg/server"
	"career-portal-api/pkg/upload"
)

type handler struct {
	repository Repository
	cfg        *config.Config
	protect    fiber.Handler
	validate   *validator.Validate
}

func NewHandler(repository Repository, cfg *config.Config, protect fiber.Handler) server.Handler {
	return &handler{
		repository: repository,
		cfg:        cfg,
		protect:    protect,
		validate:   validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	users := app.Group("/api/users", h.protect)
	users.Get("/", middleware.Authorize(RoleAdmin), h.GetAllUsers)
	users.Get("/:userId", h.GetUserById)
	users.Put("/:userId", h.UpdateUserById)
	users.Delete("/:userId", middleware.Authorize(RoleAdmin), h.DeleteUserById)
	users.Post("/:userId/photo", h.UploadProfilePhoto)
}

func (h *handler) GetAllUsers(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getAllUsers"))

	filter := &ListFilter{
		Role:   ctx.Query("role"),
		Search: ctx.Query("search"),
		Page:   int64(ctx.QueryInt("page", 1)),
		Limit:  int64(ctx.QueryInt("limit", 20)),
	}

	users, total, err := h.repository.FindUsers(ctx.Context(), filter)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"total":   total,
		"page":    filter.Page,
		"pages":   int64(math.Ceil(float64(total) / float64(filter.Limit))),
		"users":   users,
	})
}

func (h *handler) GetUserById(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getUserById"))

	userId := ctx.Params("userId")

	// Only the user or an admin may view the full profile.
	identity := middleware.IdentityFromContext(ctx)
	if identity.Id != userId && identity.Role != RoleAdmin {
		return cerror.NewForbiddenError()
	}

	foundUser, err := h.repository.FindUserWithId(ctx.Context(), userId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    foundUser,
	})
}

func (h *handler) UpdateUserById(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateUserById"))

	userId := ctx.Params("userId")

	identity := middleware.IdentityFromContext(ctx)
	if identity.Id != userId && identity.Role != RoleAdmin {
		return cerror.NewForbiddenError()
	}

	var payload UpdateUserPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	updatedUser, err := h.repository.UpdateUserById(ctx.Context(), userId, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    updatedUser,
	})
}

func (h *handler) DeleteUserById(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteUserById"))

	// Deleting a user does not cascade into jobs, companies or applications.
	err := h.repository.DeleteUserById(ctx.Context(), ctx.Params("userId"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "user deleted successfully",
	})
}

func (h *handler) UploadProfilePhoto(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "uploadProfilePhoto"))

	userId := ctx.Params("userId")

	identity := middleware.IdentityFromContext(ctx)
	if identity.Id != userId && identity.Role != RoleAdmin {
		return cerror.NewForbiddenError()
	}

	photoPath, err := upload.Save(ctx, h.cfg.UploadDir, "profilePhoto")
	if err != nil {
		return err
	}

	updatedUser, err := h.repository.UpdateProfilePhoto(ctx.Context(), userId, photoPath)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"profilePhoto": photoPath,
		"user":         updatedUser,
	})
}
