package job

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"career-portal-api/internal/company"
	"career-portal-api/internal/middleware"
	"career-portal-api/internal/user"
	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/logger"
	"career-portal-api/pkg/server"
)

type handler struct {
	repository        Repository
	companyRepository company.Repository
	userRepository    user.Repository
	protect           fiber.Handler
	validate          *validator.Validate
}

func NewHandler(
	repository Repository,
	companyRepository company.Repository,
	userRepository user.Repository,
	protect fiber.Handler,
) server.Handler {
	return &handler{
		repository:        repository,
		companyRepository: companyRepository,
		userRepository:    userRepository,
		protect:           protect,
		validate:          validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	jobs := app.Group("/api/jobs")
	jobs.Get("/", h.GetJobs)
	jobs.Get("/:jobId", h.GetJob)
	jobs.Post("/", h.protect, middleware.Authorize(user.RoleCompany, user.RoleAdmin), h.CreateJob)
	jobs.Put("/:jobId", h.protect, middleware.Authorize(user.RoleCompany, user.RoleAdmin), h.UpdateJob)
	jobs.Delete("/:jobId", h.protect, middleware.Authorize(user.RoleCompany, user.RoleAdmin), h.DeleteJob)
}

func (h *handler) GetJobs(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getJobs"))

	filter := &ListFilter{
		Search:   ctx.Query("search"),
		Type:     ctx.Query("type"),
		Location: ctx.Query("location"),
		Page:     int64(ctx.QueryInt("page", 1)),
		Limit:    int64(ctx.QueryInt("limit", 10)),
	}

	jobs, total, err := h.repository.FindJobs(ctx.Context(), filter)
	if err != nil {
		return err
	}

	views, err := h.buildViews(ctx, jobs)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"total":   total,
		"page":    filter.Page,
		"pages":   int64(math.Ceil(float64(total) / float64(filter.Limit))),
		"jobs":    views,
	})
}

func (h *handler) GetJob(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getJob"))

	foundJob, err := h.repository.FindJobWithId(ctx.Context(), ctx.Params("jobId"))
	if err != nil {
		return err
	}

	views, err := h.buildViews(ctx, []*Document{foundJob})
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"job":     views[0],
	})
}

func (h *handler) CreateJob(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "createJob"))

	var payload CreateJobPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	// Jobs may only be posted for a company the caller owns.
	foundCompany, err := h.companyRepository.FindCompanyWithId(ctx.Context(), payload.CompanyId)
	if err != nil {
		return err
	}

	identity := middleware.IdentityFromContext(ctx)
	if foundCompany.Owner != identity.Id && identity.Role != user.RoleAdmin {
		return cerror.NewForbiddenError()
	}

	document := &Document{
		Id:          uuid.New().String(),
		Title:       payload.Title,
		CompanyId:   payload.CompanyId,
		Location:    payload.Location,
		Type:        payload.Type,
		Salary:      payload.Salary,
		Description: payload.Description,
		Skills:      payload.Skills,
		Status:      StatusActive,
		PostedBy:    identity.Id,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if document.Location == "" {
		document.Location = "Remote"
	}
	if document.Type == "" {
		document.Type = "Full-time"
	}
	if document.Salary == "" {
		document.Salary = "Competitive"
	}

	_, err = h.repository.InsertJob(ctx.Context(), document)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"job":     document,
	})
}

func (h *handler) UpdateJob(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateJob"))

	jobId := ctx.Params("jobId")

	foundJob, err := h.repository.FindJobWithId(ctx.Context(), jobId)
	if err != nil {
		return err
	}

	identity := middleware.IdentityFromContext(ctx)
	if foundJob.PostedBy != identity.Id && identity.Role != user.RoleAdmin {
		return cerror.NewForbiddenError()
	}

	var payload UpdateJobPayload
	err = ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	updatedJob, err := h.repository.UpdateJobById(ctx.Context(), jobId, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"job":     updatedJob,
	})
}

func (h *handler) DeleteJob(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteJob"))

	jobId := ctx.Params("jobId")

	foundJob, err := h.repository.FindJobWithId(ctx.Context(), jobId)
	if err != nil {
		return err
	}

	identity := middleware.IdentityFromContext(ctx)
	if foundJob.PostedBy != identity.Id && identity.Role != user.RoleAdmin {
		return cerror.NewForbiddenError()
	}

	err = h.repository.DeleteJobById(ctx.Context(), jobId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "job deleted",
	})
}

// buildViews resolves company and poster references with one $in query per
// collection instead of a lookup per job.
func (h *handler) buildViews(ctx *fiber.Ctx, jobs []*Document) ([]*View, error) {
	companyIds := make([]string, 0, len(jobs))
	posterIds := make([]string, 0, len(jobs))
	for _, document := range jobs {
		companyIds = append(companyIds, document.CompanyId)
		posterIds = append(posterIds, document.PostedBy)
	}

	companies, err := h.companyRepository.FindCompaniesWithIds(ctx.Context(), companyIds)
	if err != nil {
		return nil, err
	}
	companiesById := make(map[string]*company.Document, len(companies))
	for _, document := range companies {
		companiesById[document.Id] = document
	}

	posters, err := h.userRepository.FindUsersWithIds(ctx.Context(), posterIds)
	if err != nil {
		return nil, err
	}
	postersById := make(map[string]*user.Document, len(posters))
	for _, document := range posters {
		postersById[document.Id] = document
	}

	views := make([]*View, 0, len(jobs))
	for _, document := range jobs {
		view := &View{Document: document}
		if foundCompany, isOk := companiesById[document.CompanyId]; isOk {
			view.Company = &CompanySummary{
				Id:       foundCompany.Id,
				Name:     foundCompany.Name,
				Industry: foundCompany.Industry,
				Location: foundCompany.Location,
				Logo:     foundCompany.Logo,
			}
		}
		if poster, isOk := postersById[document.PostedBy]; isOk {
			view.Poster = poster.Summary()
		}

		views = append(views, view)
	}

	return views, nil
}
