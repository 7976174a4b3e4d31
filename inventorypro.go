//go:build !cli

package main

import (
	"html/template"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"inventorypro.GO/api"
	_ "inventorypro.GO/api/auth"
	_ "inventorypro.GO/api/dashboard"
	graphqlApi "inventorypro.GO/api/graphql"
	_ "inventorypro.GO/api/item"
	"inventorypro.GO/config"
	coreauth "inventorypro.GO/core/auth"
	"inventorypro.GO/core/cache"
	"inventorypro.GO/cron/jobs"
	_ "inventorypro.GO/custom"
	"inventorypro.GO/html"
	itemRepo "inventorypro.GO/model/repository/item"
	authService "inventorypro.GO/service/auth"
	"inventorypro.GO/service/seed"
)

// newStore builds the item store. The default is the in-memory backend
// re-seeded with the sample set on every start, matching the local
// non-persistent setup; STORE_BACKEND=db keeps items in the database.
func newStore() (itemRepo.Store, error) {
	if os.Getenv("STORE_BACKEND") == "db" {
		db, err := config.NewDB()
		if err != nil {
			return nil, err
		}
		return itemRepo.NewGormStore(db)
	}
	ms := itemRepo.NewMemoryStore()
	if _, err := seed.Load(ms); err != nil {
		return nil, err
	}
	return ms, nil
}

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured, sessions held in process cache."
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, sessions held in process cache."
		}
	}
	log.Println(redisStatus)

	store, err := newStore()
	if err != nil {
		log.Fatalf("failed to initialize item store: %v", err)
	}
	jobs.SetStore(store)

	svc := authService.NewService(
		config.RedisClient,
		cache.GetInstance(),
		[]byte(os.Getenv("JWT_SECRET")),
		config.AppConfig.AuthDelay,
		config.AppConfig.SessionTTL,
	)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	// Register the template renderer
	t := &html.Template{
		Templates: template.Must(template.ParseGlob("html/**/*.html")),
	}
	e.Renderer = t

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"status": "ok"})
	})

	deps := api.Deps{Store: store, Auth: svc}

	apiGroup := e.Group("/api")
	apiGroup.Use(coreauth.Middleware(svc))
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)

	graphqlApi.RegisterGraphQLRoutes(e, store, svc)
	html.RegisterDashboardHTMLRoutes(e, store, config.AppConfig.AppName)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
