package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuvica/kuvica-api/internal/config"
	"github.com/kuvica/kuvica-api/internal/db"
	"github.com/kuvica/kuvica-api/internal/handlers"
	"github.com/kuvica/kuvica-api/internal/mailer"
	"github.com/kuvica/kuvica-api/internal/middleware"
	"github.com/kuvica/kuvica-api/internal/realtime"
	"github.com/kuvica/kuvica-api/internal/repository"
	"github.com/kuvica/kuvica-api/internal/service"
	"github.com/kuvica/kuvica-api/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.AppEnv == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	rdb := realtime.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	hub := realtime.NewHub(log.Logger)
	go hub.Run()

	bridge := realtime.NewBridge(rdb, hub, log.Logger)
	go bridge.Run(context.Background())

	smtp := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	mail := mailer.NewAsyncEmitter(smtp, log.Logger)

	var avatars storage.AvatarStore
	switch cfg.AvatarBackend {
	case "minio":
		avatars, err = storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	default:
		avatars, err = storage.NewDiskStore(cfg.AvatarDir)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("avatar storage init failed")
	}

	clientRepo := repository.NewClientRepository(gdb)
	workerRepo := repository.NewWorkerRepository(gdb)
	requestRepo := repository.NewServiceRequestRepository(gdb)
	ratingRepo := repository.NewRatingRepository(gdb)
	favoriteRepo := repository.NewFavoriteRepository(gdb)
	messageRepo := repository.NewMessageRepository(gdb)

	clientSvc := service.NewClientService(clientRepo, mail, cfg.JWTSecret, cfg.JWTExpiresMin)
	workerSvc := service.NewWorkerService(workerRepo, ratingRepo, mail, cfg.JWTSecret, cfg.JWTExpiresMin)
	requestSvc := service.NewServiceRequestService(requestRepo, clientRepo, workerRepo, mail)
	ratingSvc := service.NewRatingService(ratingRepo, workerRepo, clientRepo, mail)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, clientRepo, workerRepo)
	messageSvc := service.NewMessageService(messageRepo, bridge)

	clientH := handlers.NewClientHandler(clientSvc)
	workerH := handlers.NewWorkerHandler(workerSvc)
	requestH := handlers.NewServiceRequestHandler(requestSvc)
	ratingH := handlers.NewRatingHandler(ratingSvc)
	favoriteH := handlers.NewFavoriteHandler(favoriteSvc)
	messageH := handlers.NewMessageHandler(messageSvc, hub, cfg.JWTSecret)
	avatarH := handlers.NewAvatarHandler(avatars, clientSvc, workerSvc)
	googleH := handlers.NewGoogleOAuthHandler(clientSvc, cfg.GoogleClientID, cfg.GoogleSecret, cfg.GoogleRedirect, cfg.FrontendBaseURL, cfg.JWTExpiresMin)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    4 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendBaseURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	if cfg.AvatarBackend != "minio" {
		app.Static("/uploads", cfg.AvatarDir)
	}

	auth := middleware.RequireAuth(cfg.JWTSecret)
	clientOnly := middleware.RequireRoles("client")

	v1 := app.Group("/api/v1")

	clients := v1.Group("/clients")
	clients.Post("/", clientH.Register)
	clients.Post("/login", clientH.Login)
	clients.Post("/activate", clientH.Activate)
	clients.Post("/logout", clientH.Logout)
	clients.Get("/", auth, clientH.GetAll)
	clients.Get("/me", auth, clientH.Me)
	clients.Get("/email", auth, clientH.GetByEmail)
	clients.Get("/:id", clientH.GetByID)
	clients.Patch("/", auth, clientH.Update)
	clients.Delete("/", auth, clientH.Delete)

	workers := v1.Group("/workers")
	workers.Post("/", workerH.Register)
	workers.Post("/login", workerH.Login)
	workers.Post("/activate", workerH.Activate)
	workers.Post("/logout", workerH.Logout)
	workers.Get("/", auth, workerH.GetAll)
	workers.Get("/me", auth, workerH.Me)
	workers.Get("/email", auth, workerH.GetByEmail)
	workers.Get("/search", workerH.Search)
	workers.Get("/:id", workerH.GetByID)
	workers.Patch("/", auth, workerH.Update)
	workers.Delete("/", auth, workerH.Delete)

	svc := v1.Group("/service", auth)
	svc.Post("/requests/:clientId", requestH.Create)
	svc.Get("/requests/client/:clientId", requestH.ListByClient)
	svc.Get("/requests/worker/:workerId", requestH.ListByWorker)
	svc.Patch("/request/:id/status", requestH.UpdateStatus)
	svc.Delete("/delete/:id", requestH.Delete)

	ratings := v1.Group("/ratings", auth)
	ratings.Post("/", clientOnly, ratingH.Create)
	ratings.Get("/worker/:workerId", ratingH.ListByWorker)
	ratings.Get("/worker/:workerId/average", ratingH.AverageByWorker)

	favorites := v1.Group("/favorites", auth)
	favorites.Post("/", clientOnly, favoriteH.Create)
	favorites.Get("/:clientId", favoriteH.ListByClient)
	favorites.Delete("/:clientId/:workerId", favoriteH.Delete)

	messages := v1.Group("/messages", auth)
	messages.Post("/", messageH.Send)
	messages.Get("/conversation/:recipientId", messageH.Conversation)
	messages.Delete("/:id", messageH.Delete)

	v1.Post("/client/avatar", auth, avatarH.UploadClient)
	v1.Delete("/client/avatar", auth, avatarH.DeleteClient)
	v1.Post("/worker/avatar", auth, avatarH.UploadWorker)
	v1.Delete("/worker/avatar", auth, avatarH.DeleteWorker)

	v1.Get("/auth/google/start", googleH.Start)
	v1.Get("/auth/google/callback", googleH.Callback)

	v1.Get("/ws", messageH.WebsocketUpgrade, messageH.Websocket())

	log.Info().Str("port", cfg.AppPort).Msg("listening")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
