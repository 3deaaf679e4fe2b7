package main // library service entry point

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/utmbiblio/library-service/internal/catalog"
	"github.com/utmbiblio/library-service/internal/config"
	"github.com/utmbiblio/library-service/internal/database"
	"github.com/utmbiblio/library-service/internal/handler"
	"github.com/utmbiblio/library-service/internal/queue"
	"github.com/utmbiblio/library-service/internal/repository"
	"github.com/utmbiblio/library-service/internal/router"
	queuepub "github.com/utmbiblio/library-service/internal/service"
	"github.com/utmbiblio/library-service/internal/storage"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	// Redis is optional: with a nil client the cache and rate limiter
	// degrade to pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unreachable, cache and rate limiting disabled")
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil && !cfg.DemoMode {
		log.Fatalf("database connect failed: %v", err)
	}

	// Catalog source selection happens exactly once, here.  A live
	// database gets the repository-backed source and token-table session
	// checks; demo deployments without a database run on the seed store
	// with no session table.
	var (
		src      catalog.Source
		sessions catalog.SessionChecker
		events   catalog.EventPublisher
	)
	if db != nil {
		bookRepo := repository.NewBookRepo(db)
		catRepo := repository.NewCategoryRepo(db)
		thesisRepo := repository.NewThesisRepo(db)
		loanRepo := repository.NewLoanRepo(db)
		userRepo := repository.NewUserRepo(db)
		tokenRepo := repository.NewTokenRepo(db)

		src = catalog.NewLiveSource(bookRepo, catRepo, thesisRepo, loanRepo)
		sessions = catalog.NewTokenSessions(tokenRepo)
		events = queuepub.Events{}
		svc := catalog.NewService(src, sessions, events, cfg.DemoMode)

		store, err := storage.NewFileStore(cfg.StoragePath)
		if err != nil {
			log.Fatalf("storage init failed: %v", err)
		}

		e := newEcho()
		router.RegisterRoutes(e)
		router.RegisterAuth(e, handler.NewAuthHandler(cfg, userRepo, tokenRepo), cfg.JWTSecret)
		router.RegisterCatalog(e, handler.NewCatalogHandler(svc, bookRepo, catRepo), cacheCfg, rlCfg, rdb)
		router.RegisterTheses(e, handler.NewThesisHandler(svc, thesisRepo), cfg.JWTSecret)
		router.RegisterLoans(e, handler.NewLoanHandler(svc, loanRepo, bookRepo), cfg.JWTSecret)
		router.RegisterDigitalBooks(e, handler.NewDigitalBookHandler(repository.NewDigitalBookRepo(db), bookRepo, store), cfg.JWTSecret)
		router.RegisterDashboard(e, handler.NewDashboardHandler(bookRepo, loanRepo, userRepo), cfg.JWTSecret)

		go func() {
			if err := queue.StartCatalogConsumer(); err != nil {
				log.Printf("catalog consumer stopped: %v", err)
			}
		}()

		start(e, cfg)
		return
	}

	// Demo deployment: seed store only, no auth-backed endpoints.
	log.Println("running in demo mode on the seed store")
	src = catalog.NewSeededSource()
	sessions = catalog.NoSessions{}
	svc := catalog.NewService(src, sessions, nil, cfg.DemoMode)

	e := newEcho()
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewCatalogHandler(svc, nil, nil), cacheCfg, rlCfg, rdb)
	router.RegisterTheses(e, handler.NewThesisHandler(svc, nil), cfg.JWTSecret)
	start(e, cfg)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	return e
}

func start(e *echo.Echo, cfg config.Config) {
	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s demo=%v)", addr, cfg.Env, cfg.DemoMode)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
