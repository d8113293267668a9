package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/backend-template/internal/config"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/backend-template/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	userTypeHandler *handlers.UserTypeHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	jwtGuard := middleware.JWTProtected(cfg)
	loadUser := middleware.CurrentUser(authService)

	// Auth — token issuance is public but rate limited harder: 10 req/min per IP
	auth := app.Group("/auth")
	auth.Post("/token", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Token)
	auth.Get("/verify-token", jwtGuard, loadUser, authHandler.VerifyToken)

	// Users — registration is the single public write
	user := app.Group("/user")
	user.Post("/register", userHandler.Register)
	user.Get("/", jwtGuard, loadUser, userHandler.List)
	user.Get("/me", jwtGuard, loadUser, userHandler.Me)
	user.Get("/:id", jwtGuard, loadUser, userHandler.Get)
	user.Put("/:id", jwtGuard, loadUser, userHandler.Update)
	user.Delete("/:id", jwtGuard, loadUser, userHandler.Delete)

	// User types — permission profile administration, admins only
	userType := app.Group("/user-type", jwtGuard, loadUser, middleware.AdminRequired())
	userType.Get("/", userTypeHandler.List)
	userType.Get("/:id", userTypeHandler.Get)
	userType.Post("/", userTypeHandler.Create)
	userType.Put("/:id", userTypeHandler.Update)
	userType.Delete("/:id", userTypeHandler.Delete)
}
