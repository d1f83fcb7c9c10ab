package company

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"career-portal-api/internal/middleware"
	"career-portal-api/internal/user"
	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/config"
	"career-portal-api/pkg/logger"
	"career-portal-api/pkg/server"
	"career-portal-api/pkg/upload"
)

type handler struct {
	repository     Repository
	userRepository user.Repository
	cfg            *config.Config
	protect        fiber.Handler
	validate       *validator.Validate
}

func NewHandler(
	repository Repository,
	userRepository user.Repository,
	cfg *config.Config,
	protect fiber.Handler,
) server.Handler {
	return &handler{
		repository:     repository,
		userRepository: userRepository,
		cfg:            cfg,
		protect:        protect,
		validate:       validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	companies := app.Group("/api/companies")
	companies.Get("/", h.GetCompanies)
	companies.Get("/:companyId", h.GetCompany)
	companies.Post("/", h.protect, middleware.Authorize(user.RoleCompany, user.RoleAdmin), h.CreateCompany)
	companies.Put("/:companyId", h.protect, middleware.Authorize(user.RoleCompany, user.RoleAdmin), h.UpdateCompany)
	companies.Delete("/:companyId", h.protect, middleware.Authorize(user.RoleAdmin), h.DeleteCompany)
	companies.Post("/:companyId/logo", h.protect, middleware.Authorize(user.RoleCompany, user.RoleAdmin), h.UploadLogo)
}

func (h *handler) GetCompanies(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getCompanies"))

	filter := &ListFilter{
		Search:   ctx.Query("search"),
		Industry: ctx.Query("industry"),
		Page:     int64(ctx.QueryInt("page", 1)),
		Limit:    int64(ctx.QueryInt("limit", 10)),
	}

	companies, total, err := h.repository.FindCompanies(ctx.Context(), filter)
	if err != nil {
		return err
	}

	views, err := h.buildViews(ctx, companies)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"total":     total,
		"page":      filter.Page,
		"pages":     int64(math.Ceil(float64(total) / float64(filter.Limit))),
		"companies": views,
	})
}

func (h *handler) GetCompany(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getCompany"))

	foundCompany, err := h.repository.FindCompanyWithId(ctx.Context(), ctx.Params("companyId"))
	if err != nil {
		return err
	}

	views, err := h.buildViews(ctx, []*Document{foundCompany})
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"company": views[0],
	})
}

func (h *handler) CreateCompany(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "createCompany"))

	var payload CreateCompanyPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	identity := middleware.IdentityFromContext(ctx)
	document := &Document{
		Id:          uuid.New().String(),
		Name:        payload.Name,
		Industry:    payload.Industry,
		Location:    payload.Location,
		Description: payload.Description,
		Website:     payload.Website,
		Size:        payload.Size,
		Owner:       identity.Id,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	_, err = h.repository.InsertCompany(ctx.Context(), document)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"company": document,
	})
}

func (h *handler) UpdateCompany(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateCompany"))

	companyId := ctx.Params("companyId")

	foundCompany, err := h.repository.FindCompanyWithId(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	identity := middleware.IdentityFromContext(ctx)
	if foundCompany.Owner != identity.Id && identity.Role != user.RoleAdmin {
		return cerror.NewForbiddenError()
	}

	var payload UpdateCompanyPayload
	err = ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	updatedCompany, err := h.repository.UpdateCompanyById(ctx.Context(), companyId, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"company": updatedCompany,
	})
}

func (h *handler) DeleteCompany(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteCompany"))

	err := h.repository.DeleteCompanyById(ctx.Context(), ctx.Params("companyId"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "company deleted",
	})
}

func (h *handler) UploadLogo(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "uploadCompanyLogo"))

	companyId := ctx.Params("companyId")

	foundCompany, err := h.repository.FindCompanyWithId(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	identity := middleware.IdentityFromContext(ctx)
	if foundCompany.Owner != identity.Id && identity.Role != user.RoleAdmin {
		return cerror.NewForbiddenError()
	}

	logoPath, err := upload.Save(ctx, h.cfg.UploadDir, "logo")
	if err != nil {
		return err
	}

	updatedCompany, err := h.repository.UpdateLogo(ctx.Context(), companyId, logoPath)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"company": updatedCompany,
	})
}

func (h *handler) buildViews(ctx *fiber.Ctx, companies []*Document) ([]*View, error) {
	ownerIds := make([]string, 0, len(companies))
	for _, document := range companies {
		ownerIds = append(ownerIds, document.Owner)
	}

	owners, err := h.userRepository.FindUsersWithIds(ctx.Context(), ownerIds)
	if err != nil {
		return nil, err
	}
	ownersById := make(map[string]*user.Document, len(owners))
	for _, document := range owners {
		ownersById[document.Id] = document
	}

	views := make([]*View, 0, len(companies))
	for _, document := range companies {
		openPositions, err := h.repository.CountOpenPositions(ctx.Context(), document.Id)
		if err != nil {
			return nil, err
		}

		view := &View{
			Document:      document,
			OpenPositions: openPositions,
		}
		if owner, isOk := ownersById[document.Owner]; isOk {
			view.OwnerUser = owner.Summary()
		}

		views = append(views, view)
	}

	return views, nil
}
