package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"career-portal-api/internal/application"
	"career-portal-api/internal/auth"
	"career-portal-api/internal/company"
	"career-portal-api/internal/job"
	"career-portal-api/internal/middleware"
	"career-portal-api/internal/user"
	"career-portal-api/pkg/config"
	"career-portal-api/pkg/jwt_generator"
	"career-portal-api/pkg/logger"
	"career-portal-api/pkg/server"
)

func main() {
	log := logger.NewLogger()
	defer func(l *zap.SugaredLogger) {
		err := l.Sync()
		if err != nil {
			panic(err)
		}
	}(log)

	appEnv := os.Getenv(config.AppEnv)
	if appEnv == "" {
		err := godotenv.Load()
		if err != nil {
			log.Fatalw(
				"failed to load .env file",
				zap.Error(err),
			)
		}
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		panic(err)
	}
	cfg.Print()

	jwtGenerator := jwt_generator.NewJwtGenerator(cfg.Jwt)

	ctx := context.Background()
	mongoDbClient, err := setupMongodbClient(cfg)
	if err != nil {
		log.Fatalw(
			"failed to setup mongodb client",
			zap.Error(err),
		)
	}

	defer func(client *mongo.Client, ctx context.Context) {
		err := client.Disconnect(ctx)
		if err != nil {
			log.Fatalw(
				"failed to disconnect mongodb client",
				zap.Error(err),
			)
		}
	}(mongoDbClient, ctx)

	userRepository := user.NewRepository(mongoDbClient, cfg)
	jobRepository := job.NewRepository(mongoDbClient, cfg)
	companyRepository := company.NewRepository(mongoDbClient, cfg)
	applicationRepository := application.NewRepository(mongoDbClient, cfg)

	err = userRepository.EnsureIndexes(ctx)
	if err != nil {
		log.Fatalw(
			"failed to create user indexes",
			zap.Error(err),
		)
	}
	err = applicationRepository.EnsureIndexes(ctx)
	if err != nil {
		log.Fatalw(
			"failed to create application indexes",
			zap.Error(err),
		)
	}

	authService := auth.NewService(userRepository, jwtGenerator)
	protect := middleware.Protect(jwtGenerator)

	var handlers []server.Handler
	handlers = append(handlers, auth.NewHandler(authService, cfg, protect))
	handlers = append(handlers, user.NewHandler(userRepository, cfg, protect))
	handlers = append(handlers, job.NewHandler(jobRepository, companyRepository, userRepository, protect))
	handlers = append(handlers, company.NewHandler(companyRepository, userRepository, cfg, protect))
	handlers = append(handlers, application.NewHandler(
		applicationRepository,
		jobRepository,
		companyRepository,
		userRepository,
		cfg,
		protect,
	))
	srv := server.NewServer(cfg, handlers)

	logMiddleware := logger.Middleware(log)
	app := srv.GetFiberInstance()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientUrl,
		AllowCredentials: true,
	}))
	app.Use(logMiddleware)
	app.Static("/uploads", cfg.UploadDir)
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString("OK")
	})

	srv.RegisterRoutes()

	err = srv.Start()
	if err != nil {
		panic(err)
	}
}

func setupMongodbClient(cfg *config.Config) (*mongo.Client, error) {
	mongodbServerAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(cfg.Mongodb.Uri).
		SetServerAPIOptions(mongodbServerAPIOptions)
	if cfg.Mongodb.Username != "" {
		clientOptions = clientOptions.SetAuth(options.Credential{
			Username: cfg.Mongodb.Username,
			Password: cfg.Mongodb.Password,
		})
	}

	ctx := context.Background()
	mongodbClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	return mongodbClient, nil
}
