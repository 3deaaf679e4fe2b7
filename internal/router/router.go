package router // route registration for the library API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/utmbiblio/library-service/internal/config"
	"github.com/utmbiblio/library-service/internal/handler"
	"github.com/utmbiblio/library-service/internal/middleware"
	"github.com/utmbiblio/library-service/internal/model"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints.  Register, login,
// refresh and logout live under /v1/auth without middleware; /v1/me sits
// behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterCatalog registers the public browse endpoints.  They sit behind
// the response cache and the rate limiter; both degrade to pass-throughs
// when Redis is absent, so the catalog is always reachable.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	pub := e.Group("/v1")
	pub.Use(middleware.NewTokenBucket(rlCfg, rdb))
	pub.Use(middleware.NewRedisCache(cacheCfg, rdb))

	pub.GET("/books", h.ListBooks)
	pub.GET("/categories", h.ListCategories)
	pub.GET("/theses", h.ListTheses)

	// The catalog-edit surface is deliberately open; the handlers consult
	// the permission predicates themselves.
	e.POST("/v1/books", h.CreateBook)
	e.POST("/v1/categories", h.CreateCategory)
}

// RegisterTheses registers the thesis mutation endpoints.  Creation
// requires a staff JWT; deletion is reachable anonymously because the
// catalog mutator itself decides whether the caller may proceed (session,
// demo bypass, staff bypass).
func RegisterTheses(e *echo.Echo, h *handler.ThesisHandler, jwtSecret string) {
	staff := e.Group("/v1/theses")
	staff.Use(middleware.JWTAuth(jwtSecret))
	staff.Use(middleware.RequireRole(model.RoleLibrarian, model.RoleAdmin))
	staff.POST("", h.Create)

	e.DELETE("/v1/theses/:id", h.Delete)
}

// RegisterLoans registers borrowing endpoints.  All of them require a
// valid access token; the full loan list additionally requires a staff
// role.
func RegisterLoans(e *echo.Echo, h *handler.LoanHandler, jwtSecret string) {
	g := e.Group("/v1/loans")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.POST("", h.Create)
	g.GET("/mine", h.Mine)
	g.POST("/:id/return", h.Return)

	staff := e.Group("/v1/loans")
	staff.Use(middleware.JWTAuth(jwtSecret))
	staff.Use(middleware.RequireRole(model.RoleLibrarian, model.RoleAdmin))
	staff.GET("", h.All)
}

// RegisterDigitalBooks registers the digital-copy endpoints.  Listing is
// public; uploading requires a valid token (the handler applies the
// manage-digital-books predicate on top).
func RegisterDigitalBooks(e *echo.Echo, h *handler.DigitalBookHandler, jwtSecret string) {
	e.GET("/v1/digital-books", h.List)

	g := e.Group("/v1/digital-books")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.POST("", h.Upload)
}

// RegisterDashboard registers the staff overview endpoints.
func RegisterDashboard(e *echo.Echo, h *handler.DashboardHandler, jwtSecret string) {
	g := e.Group("/v1/dashboard")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleLibrarian, model.RoleAdmin))
	g.GET("/stats", h.Stats)
	g.GET("/users", h.ListUsers)
}
