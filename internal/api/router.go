package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/talentbridge/recruitment-crm/docs"
	"github.com/talentbridge/recruitment-crm/internal/api/handler"
	"github.com/talentbridge/recruitment-crm/internal/api/middleware"
	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
	"github.com/talentbridge/recruitment-crm/internal/core/service"
	"github.com/talentbridge/recruitment-crm/internal/infrastructure/config"
	mongodb "github.com/talentbridge/recruitment-crm/internal/infrastructure/db/mongo"
	"github.com/talentbridge/recruitment-crm/internal/infrastructure/db/postgres"
	redisdb "github.com/talentbridge/recruitment-crm/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. The matcher
// and notifier are constructed by the caller: the LLM client needs an API key
// at startup and the dispatcher owns worker goroutines the router should not
// manage.
func NewRouter(
	pool *pgxpool.Pool,
	db *mongo.Database,
	rdb *redis.Client,
	matcher ports.CVMatcher,
	notifier ports.Notifier,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Repositories ---
	users := postgres.NewUserRepository(pool)
	candidates := postgres.NewCandidateProfileRepository(pool)
	employers := postgres.NewEmployerProfileRepository(pool)
	consultants := postgres.NewConsultantProfileRepository(pool)
	companies := postgres.NewCompanyRepository(pool)
	jobs := postgres.NewJobRepository(pool)
	applications := postgres.NewApplicationRepository(pool)
	analytics := postgres.NewAnalyticsRepository(pool)
	directory := postgres.NewDirectory(pool)

	cvs := mongodb.NewCVRepository(db)
	messages := mongodb.NewMessageRepository(db)
	notifications := mongodb.NewNotificationRepository(db)
	matches := mongodb.NewMatchRepository(db)

	matchCache := redisdb.NewMatchCache(rdb)

	// --- Access control ---
	tokens := access.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	authz := access.NewAuthorizer(tokens, directory)

	// --- Services ---
	authService := service.NewAuthService(users, tokens, cfg.Auth.BcryptCost)
	candidateService := service.NewCandidateService(candidates, cvs, authz)
	companyService := service.NewCompanyService(companies, employers, users, authz)
	jobService := service.NewJobService(jobs, authz)
	applicationService := service.NewApplicationService(applications, jobs, candidates, notifier, authz)
	consultantService := service.NewConsultantService(consultants)
	adminService := service.NewAdminService(users)
	messageService := service.NewMessageService(messages, notifications, users, notifier)
	analyticsService := service.NewAnalyticsService(analytics, jobs)
	matchService := service.NewMatchService(matcher, matchCache, matches, candidates, cvs, jobs, authz, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	candidateHandler := handler.NewCandidateHandler(candidateService)
	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	consultantHandler := handler.NewConsultantHandler(consultantService)
	adminHandler := handler.NewAdminHandler(adminService)
	messageHandler := handler.NewMessageHandler(messageService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	matchHandler := handler.NewMatchHandler(matchService)

	authRequired := middleware.Auth(authz)
	authOptional := middleware.OptionalAuth(authz)

	// --- Health and ops (no auth) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Auth ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/refresh", authHandler.Refresh)
	v1.GET("/auth/me", authHandler.Me, authRequired)

	// --- Public browse: open jobs and companies. A token, when present,
	// widens what the caller sees. ---
	v1.GET("/jobs", jobHandler.List, authOptional)
	v1.GET("/jobs/:id", jobHandler.Get, authOptional)
	v1.GET("/companies", companyHandler.List)
	v1.GET("/companies/:id", companyHandler.Get)

	// --- Candidates ---
	v1.PUT("/candidates/me", candidateHandler.UpsertProfile, authRequired, middleware.RequireRoles(domain.RoleCandidate))
	v1.PUT("/candidates/me/cv", candidateHandler.StoreCV, authRequired, middleware.RequireRoles(domain.RoleCandidate))
	v1.GET("/candidates", candidateHandler.Search, authRequired, middleware.RequireRoles(domain.RoleEmployer, domain.RoleConsultant, domain.RoleAdmin))
	v1.GET("/candidates/:id", candidateHandler.GetProfile, authRequired)
	v1.GET("/candidates/:id/cv", candidateHandler.GetCV, authRequired)
	v1.GET("/candidates/:id/matches", matchHandler.ListForCandidate, authRequired)

	// --- Companies (writes) ---
	v1.POST("/companies", companyHandler.Create, authRequired, middleware.RequireRoles(domain.RoleAdmin))
	v1.PUT("/companies/:id", companyHandler.Update, authRequired)
	v1.POST("/companies/:id/employers", companyHandler.LinkEmployer, authRequired, middleware.RequireRoles(domain.RoleAdmin))

	// --- Jobs (writes) ---
	v1.POST("/jobs", jobHandler.Create, authRequired, middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin))
	v1.PUT("/jobs/:id", jobHandler.Update, authRequired)
	v1.POST("/jobs/:id/close", jobHandler.Close, authRequired)

	// --- Applications ---
	v1.POST("/jobs/:id/applications", applicationHandler.Apply, authRequired, middleware.RequireRoles(domain.RoleCandidate))
	v1.GET("/applications", applicationHandler.List, authRequired)
	v1.GET("/applications/:id", applicationHandler.Get, authRequired)
	v1.POST("/applications/:id/status", applicationHandler.UpdateStatus, authRequired, middleware.RequireRoles(domain.RoleEmployer, domain.RoleConsultant, domain.RoleAdmin))
	v1.POST("/applications/:id/withdraw", applicationHandler.Withdraw, authRequired, middleware.RequireRoles(domain.RoleCandidate))

	// --- Consultants ---
	v1.PUT("/consultants/me", consultantHandler.UpsertProfile, authRequired, middleware.RequireRoles(domain.RoleConsultant))
	v1.GET("/consultants", consultantHandler.List, authRequired, middleware.RequireRoles(domain.RoleAdmin))

	// --- Matching ---
	v1.POST("/jobs/:id/match/:candidateID", matchHandler.Evaluate, authRequired, middleware.RequireRoles(domain.RoleEmployer, domain.RoleConsultant, domain.RoleAdmin))

	// --- Messaging ---
	v1.POST("/messages", messageHandler.Send, authRequired)
	v1.GET("/messages", messageHandler.ListMessages, authRequired)
	v1.POST("/messages/:id/read", messageHandler.MarkMessageRead, authRequired)
	v1.GET("/notifications", messageHandler.ListNotifications, authRequired)
	v1.POST("/notifications/:id/read", messageHandler.MarkNotificationRead, authRequired)

	// --- Admin ---
	admin := v1.Group("/admin", authRequired, middleware.RequireRoles(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users/:id/deactivate", adminHandler.Deactivate)
	admin.POST("/users/:id/reactivate", adminHandler.Reactivate)
	admin.POST("/users/:id/role", adminHandler.ChangeRole)

	analyticsGroup := v1.Group("/analytics", authRequired, middleware.RequireRoles(domain.RoleAdmin))
	analyticsGroup.GET("/overview", analyticsHandler.Overview)
	analyticsGroup.GET("/jobs/:id/funnel", analyticsHandler.JobFunnel)

	return e
}
