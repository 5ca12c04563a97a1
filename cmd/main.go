package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"givego/backend/internal/api/handler"
	"givego/backend/internal/chathub"
	"givego/backend/internal/config"
	"givego/backend/internal/eligibility"
	"givego/backend/internal/ledger"
	"givego/backend/internal/models"
	"givego/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	// TranslateError lets storage match unique-index violations with
	// gorm.ErrDuplicatedKey instead of driver error codes.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Resource{},
		&models.Request{},
		&models.WantedResource{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting GiveGo Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	requestLedger := ledger.NewService(s)
	evaluator := eligibility.NewEvaluator(requestLedger)
	registry := chathub.NewRegistry()
	relay := chathub.NewRelay(registry, evaluator, s)

	go relay.Run()

	r := gin.Default()
	h := handler.NewHandler(relay, requestLedger, s, cfg)

	r.POST("/identity", h.CreateIdentity)
	r.GET("/ws", h.ServeWebSocket)

	r.GET("/resources", h.ListResources)
	r.GET("/wanted", h.ListWantedResources)
	r.GET("/profile/:userId", h.GetProfile)
	r.GET("/users", h.ListUsers)
	r.DELETE("/users/:id", h.DeleteUser)

	authed := r.Group("/", h.AuthRequired())
	authed.POST("/resources", h.CreateResource)
	authed.DELETE("/resources/:id", h.DeleteResource)
	authed.POST("/wanted", h.CreateWantedResource)
	authed.POST("/resources/:id/requests", h.CreateRequest)
	authed.GET("/resources/:id/requests", h.ListResourceRequests)
	authed.GET("/requests", h.ListOwnRequests)
	authed.POST("/contact", h.SubmitContact)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
