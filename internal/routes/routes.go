package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/rewixcash/portal/internal/admin"
	"github.com/rewixcash/portal/internal/ads"
	"github.com/rewixcash/portal/internal/config"
	"github.com/rewixcash/portal/internal/middleware"
	"github.com/rewixcash/portal/internal/otp"
	"github.com/rewixcash/portal/internal/redeem"
	"github.com/rewixcash/portal/internal/session"
	"github.com/rewixcash/portal/internal/support"
	"github.com/rewixcash/portal/internal/user"
)

// devAdminCode is the access code used when none is configured in dev mode.
const devAdminCode = "admin"

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. Outside dev mode
// Postgres and Redis are required; in dev mode missing backends fall back to
// in-memory stores and a logging mailer.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories and stores
	var (
		userRepo     user.Repository
		otpRepo      otp.Repository
		redeemRepo   redeem.Repository
		supportRepo  support.Repository
		sessionStore session.Store
		adStore      ads.Store
	)
	if d.DB != nil {
		userRepo = user.NewPostgresRepository(d.DB)
		otpRepo = otp.NewPostgresRepository(d.DB)
		redeemRepo = redeem.NewPostgresRepository(d.DB)
		supportRepo = support.NewPostgresRepository(d.DB)
	} else {
		userRepo = user.NewMemoryRepository()
		otpRepo = otp.NewMemoryRepository()
		redeemRepo = redeem.NewMemoryRepository()
		supportRepo = support.NewMemoryRepository()
	}
	if d.Cache != nil {
		sessionStore = session.NewRedisStore(d.Cache)
		adStore = ads.NewRedisStore(d.Cache)
	} else {
		sessionStore = session.NewMemoryStore()
		adStore = ads.NewMemoryStore()
	}

	var mailer otp.Mailer
	if d.Cfg.ResendAPIKey != "" {
		mailer = otp.NewResendClient(d.Cfg.ResendAPIKey)
	} else {
		d.Logger.Warn("no RESEND_API_KEY configured, emails go to the log")
		mailer = otp.NewLoggerMailer(d.Logger)
	}

	// Services
	userSvc := user.NewService(userRepo)
	sessionSvc := session.NewService(sessionStore, d.Cfg.SessionTTL)
	otpSvc := otp.NewService(otpRepo, mailer, d.Cfg.OTPFromAddress, d.Cfg.OTPTTL, d.Logger)
	redeemSvc := redeem.NewService(redeemRepo, userSvc, d.Cfg.MinRedeemPoints)
	supportSvc := support.NewService(supportRepo, userSvc)
	adsSvc := ads.NewService(adStore, userSvc, d.Cfg.AdDuration, d.Cfg.AdViewTTL, d.Cfg.PointsPerAd)

	accessCode := d.Cfg.AdminAccessCode
	if accessCode == "" {
		d.Logger.Warn("no ADMIN_ACCESS_CODE configured, using the dev default")
		accessCode = devAdminCode
	}
	adminSvc, err := admin.NewService(accessCode, sessionSvc)
	if err != nil {
		return err
	}

	// Handlers
	otpHandler := otp.NewHandler(otpSvc)
	userHandler := user.NewHandler(userSvc, otpSvc, sessionSvc)
	adsHandler := ads.NewHandler(adsSvc)
	redeemHandler := redeem.NewHandler(redeemSvc)
	supportHandler := support.NewHandler(supportSvc)
	adminHandler := admin.NewHandler(adminSvc, userSvc, redeemSvc, supportSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	otpLimiter := middleware.OTPSendRateLimit(d.Cache, d.Cfg.OTPSendLimit)
	RegisterOTPRoutes(api, otpHandler, otpLimiter)
	RegisterUserRoutes(api, userHandler)

	// Session-protected routes
	var idempotency fiber.Handler
	if d.Cache != nil {
		idempotency = middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)
	}
	authed := api.Group("", middleware.SessionAuth(sessionSvc))
	RegisterProfileRoutes(authed, userHandler)
	RegisterAdRoutes(authed, adsHandler)
	RegisterRedeemRoutes(authed, redeemHandler, idempotency)
	RegisterSupportRoutes(authed, supportHandler, idempotency)

	// Admin routes
	RegisterAdminRoutes(api, adminHandler, middleware.AdminAuth(sessionSvc))

	return nil
}
