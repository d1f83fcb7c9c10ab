package auth

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"career-portal-api/internal/middleware"
	"career-portal-api/pkg/cerror"
	"career-portal-api/pkg/config"
	"career-portal-api/pkg/logger"
	"career-portal-api/pkg/server"
)

type handler struct {
	service  Service
	cfg      *config.Config
	protect  fiber.Handler
	validate *validator.Validate
}

func NewHandler(service Service, cfg *config.Config, protect fiber.Handler) server.Handler {
	return &handler{
		service:  service,
		cfg:      cfg,
		protect:  protect,
		validate: validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
	api.Post("/refresh-token", h.RefreshToken)
	api.Post("/logout", h.Logout)
	api.Get("/me", h.protect, h.Me)
	api.Post("/forgot-password", h.ForgotPassword)
	api.Post("/reset-password/:ticket", h.ResetPassword)
}

func (h *handler) Register(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "register"))

	var payload RegisterPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	session, err := h.service.Register(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return h.sendSession(ctx, fiber.StatusCreated, session)
}

func (h *handler) Login(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "login"))

	var payload LoginPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	session, err := h.service.Login(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return h.sendSession(ctx, fiber.StatusOK, session)
}

func (h *handler) RefreshToken(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "refreshToken"))

	// Cookie takes precedence over the body.
	refreshToken := ctx.Cookies(RefreshTokenCookieName)
	if refreshToken == "" {
		var payload RefreshTokenPayload
		if err := ctx.BodyParser(&payload); err == nil {
			refreshToken = payload.RefreshToken
		}
	}
	if refreshToken == "" {
		return cerror.NewUnauthorizedError(MessageMissingToken)
	}

	session, err := h.service.Refresh(ctx.Context(), refreshToken)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return h.sendSession(ctx, fiber.StatusOK, session)
}

func (h *handler) Logout(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "logout"))

	// Clears the cookie only; already-issued tokens stay valid until their
	// natural expiry since there is no server-side revocation store.
	h.expireRefreshTokenCookie(ctx)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "logged out successfully",
	})
}

func (h *handler) Me(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "me"))

	identity := middleware.IdentityFromContext(ctx)
	currentUser, err := h.service.CurrentUser(ctx.Context(), identity.Id)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    currentUser,
	})
}

func (h *handler) ForgotPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "forgotPassword"))

	var payload ForgotPasswordPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	ticket, err := h.service.ForgotPassword(ctx.Context(), payload.Email)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	// The ticket is returned in the body as a development-only channel; a
	// production deployment delivers it out of band instead.
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    MessageResetLinkSent,
		"resetToken": ticket,
	})
}

func (h *handler) ResetPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "resetPassword"))

	var payload ResetPasswordPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.NewBadRequestError()
	}

	session, err := h.service.ResetPassword(ctx.Context(), ctx.Params("ticket"), payload.NewPassword)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return h.sendSession(ctx, fiber.StatusOK, session)
}

// sendSession writes the token pair envelope: the access token travels in the
// body only, the refresh token in the body and in an HTTP-only cookie.
func (h *handler) sendSession(ctx *fiber.Ctx, statusCode int, session *Session) error {
	h.setRefreshTokenCookie(ctx, session.Tokens.RefreshToken)

	return ctx.Status(statusCode).JSON(fiber.Map{
		"success":      true,
		"accessToken":  session.Tokens.AccessToken,
		"refreshToken": session.Tokens.RefreshToken,
		"expiresIn":    session.ExpiresIn,
		"user":         session.User,
	})
}

func (h *handler) setRefreshTokenCookie(ctx *fiber.Ctx, refreshToken string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(h.cfg.Jwt.RefreshTokenTTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.cfg.Env == config.EnvProduction,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *handler) expireRefreshTokenCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Env == config.EnvProduction,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
