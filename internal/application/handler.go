package application

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"career-portal-api/internal/company"
	"career-portal-api/internal/job"
	"career-portal-api/internal/middleware"
	"career-portal-api/internal/user"
	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/config"
	"career-portal-api/pkg/logger"
	"career-portal-api/pkg/server"
	"career-portal-api/pkg/upload"
)

var (
	ErrJobNotOpen = cerror.NewNotFoundError("job not found or no longer active")

	ErrInvalidStatus = cerror.NewError(
		fiber.StatusBadRequest,
		"invalid status value",
	).SetSeverity(zapcore.WarnLevel)
)

type handler struct {
	repository        Repository
	jobRepository     job.Repository
	companyRepository company.Repository
	userRepository    user.Repository
	cfg               *config.Config
	protect           fiber.Handler
	validate          *validator.Validate
}

func NewHandler(
	repository Repository,
	jobRepository job.Repository,
	companyRepository company.Repository,
	userRepository user.Repository,
	cfg *config.Config,
	protect fiber.Handler,
) server.Handler {
	return &handler{
		repository:        repository,
		jobRepository:     jobRepository,
		companyRepository: companyRepository,
		userRepository:    userRepository,
		cfg:               cfg,
		protect:           protect,
		validate:          validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	applications := app.Group("/api/applications", h.protect)
	applications.Post("/", middleware.Authorize(user.RoleStudent), h.Apply)
	applications.Get("/my", middleware.Authorize(user.RoleStudent), h.GetMyApplications)
	applications.Get("/job/:jobId", middleware.Authorize(user.RoleCompany, user.RoleAdmin), h.GetJobApplications)
	applications.Put("/:applicationId", middleware.Authorize(user.RoleCompany, user.RoleAdmin), h.UpdateStatus)
	applications.Delete("/:applicationId", middleware.Authorize(user.RoleStudent, user.RoleAdmin), h.Withdraw)
}

func (h *handler) Apply(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "applyForJob"))

	var payload ApplyPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	foundJob, err := h.jobRepository.FindJobWithId(ctx.Context(), payload.JobId)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return ErrJobNotOpen
		}

		return err
	}
	if !foundJob.IsActive {
		return ErrJobNotOpen
	}

	identity := middleware.IdentityFromContext(ctx)

	// The resume attachment is optional, every other upload failure is
	// reported to the caller.
	resumeUrl, err := upload.Save(ctx, h.cfg.UploadDir, "resume")
	if err != nil && !errors.Is(err, upload.ErrNoFile) {
		return err
	}

	document := &Document{
		Id:        uuid.New().String(),
		Job:       payload.JobId,
		Applicant: identity.Id,
		Status:    StatusPending,
		ResumeUrl: resumeUrl,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	_, err = h.repository.InsertApplication(ctx.Context(), document)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"application": document,
	})
}

func (h *handler) GetMyApplications(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getMyApplications"))

	identity := middleware.IdentityFromContext(ctx)

	applications, err := h.repository.FindApplicationsWithApplicant(ctx.Context(), identity.Id)
	if err != nil {
		return err
	}

	views, err := h.buildJobViews(ctx, applications)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"count":        len(views),
		"applications": views,
	})
}

func (h *handler) GetJobApplications(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getJobApplications"))

	jobId := ctx.Params("jobId")

	foundJob, err := h.jobRepository.FindJobWithId(ctx.Context(), jobId)
	if err != nil {
		return err
	}

	identity := middleware.IdentityFromContext(ctx)
	if foundJob.PostedBy != identity.Id && identity.Role != user.RoleAdmin {
		return cerror.NewForbiddenError()
	}

	applications, err := h.repository.FindApplicationsWithJob(ctx.Context(), jobId)
	if err != nil {
		return err
	}

	views, err := h.buildApplicantViews(ctx, applications)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"count":        len(views),
		"applications": views,
	})
}

func (h *handler) UpdateStatus(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateApplicationStatus"))

	applicationId := ctx.Params("applicationId")

	var payload UpdateStatusPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return ErrInvalidStatus
	}

	foundApplication, err := h.repository.FindApplicationWithId(ctx.Context(), applicationId)
	if err != nil {
		return err
	}

	foundJob, err := h.jobRepository.FindJobWithId(ctx.Context(), foundApplication.Job)
	if err != nil {
		return err
	}

	identity := middleware.IdentityFromContext(ctx)
	if foundJob.PostedBy != identity.Id && identity.Role != user.RoleAdmin {
		return cerror.NewForbiddenError()
	}

	updatedApplication, err := h.repository.UpdateStatusById(ctx.Context(), applicationId, payload.Status)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"application": updatedApplication,
	})
}

func (h *handler) Withdraw(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "withdrawApplication"))

	applicationId := ctx.Params("applicationId")

	foundApplication, err := h.repository.FindApplicationWithId(ctx.Context(), applicationId)
	if err != nil {
		return err
	}

	identity := middleware.IdentityFromContext(ctx)
	if foundApplication.Applicant != identity.Id && identity.Role != user.RoleAdmin {
		return cerror.NewForbiddenError()
	}

	err = h.repository.DeleteApplicationById(ctx.Context(), applicationId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "application withdrawn",
	})
}

// buildJobViews attaches job and company summaries for an applicant's own
// application list.
func (h *handler) buildJobViews(ctx *fiber.Ctx, applications []*Document) ([]*View, error) {
	jobIds := make([]string, 0, len(applications))
	for _, document := range applications {
		jobIds = append(jobIds, document.Job)
	}

	jobs, err := h.jobRepository.FindJobsWithIds(ctx.Context(), jobIds)
	if err != nil {
		return nil, err
	}
	jobsById := make(map[string]*job.Document, len(jobs))
	companyIds := make([]string, 0, len(jobs))
	for _, document := range jobs {
		jobsById[document.Id] = document
		companyIds = append(companyIds, document.CompanyId)
	}

	companies, err := h.companyRepository.FindCompaniesWithIds(ctx.Context(), companyIds)
	if err != nil {
		return nil, err
	}
	companiesById := make(map[string]*company.Document, len(companies))
	for _, document := range companies {
		companiesById[document.Id] = document
	}

	views := make([]*View, 0, len(applications))
	for _, document := range applications {
		view := &View{Document: document}
		if foundJob, isOk := jobsById[document.Job]; isOk {
			view.JobDetail = &JobSummary{
				Id:       foundJob.Id,
				Title:    foundJob.Title,
				Location: foundJob.Location,
				Type:     foundJob.Type,
				Status:   foundJob.Status,
			}
			if foundCompany, isOk := companiesById[foundJob.CompanyId]; isOk {
				view.CompanyBrief = &job.CompanySummary{
					Id:       foundCompany.Id,
					Name:     foundCompany.Name,
					Industry: foundCompany.Industry,
					Location: foundCompany.Location,
					Logo:     foundCompany.Logo,
				}
			}
		}

		views = append(views, view)
	}

	return views, nil
}

// buildApplicantViews attaches applicant summaries for a job owner reviewing
// candidates.
func (h *handler) buildApplicantViews(ctx *fiber.Ctx, applications []*Document) ([]*View, error) {
	applicantIds := make([]string, 0, len(applications))
	for _, document := range applications {
		applicantIds = append(applicantIds, document.Applicant)
	}

	applicants, err := h.userRepository.FindUsersWithIds(ctx.Context(), applicantIds)
	if err != nil {
		return nil, err
	}
	applicantsById := make(map[string]*user.Document, len(applicants))
	for _, document := range applicants {
		applicantsById[document.Id] = document
	}

	views := make([]*View, 0, len(applications))
	for _, document := range applications {
		view := &View{Document: document}
		if applicant, isOk := applicantsById[document.Applicant]; isOk {
			view.ApplicantRef = applicant.Summary()
		}

		views = append(views, view)
	}

	return views, nil
}
