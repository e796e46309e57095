package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"eliavigram/internal/adapter/api"
	"eliavigram/internal/adapter/api/handler"
	apimiddleware "eliavigram/internal/adapter/api/middleware"
	"eliavigram/internal/adapter/api/router"
	"eliavigram/internal/adapter/repository"
	"eliavigram/internal/domain/service"
	"eliavigram/internal/infrastructure/ai"
	"eliavigram/internal/infrastructure/ratelimit"
	"eliavigram/internal/infrastructure/storage"
	"eliavigram/internal/usecase"
	"eliavigram/pkg/config"
	"eliavigram/pkg/logger"
	"eliavigram/pkg/retry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opts []option.ClientOption
	if cfg.ServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)))
	} else if cfg.ServiceAccountPath != "" {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		logger.Info("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
	} else {
		logger.Info("Using application default credentials")
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:     cfg.FirebaseProject,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.StoragePublicRead, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	var vision service.VisionService
	if cfg.AIAPIKey != "" {
		vision = ai.NewGeminiClient(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	} else {
		logger.Warn("GEMINI_API_KEY not set, captions, keywords and story themes are disabled")
	}

	photoRepo := repository.NewFirestorePhotoRepository(firestoreClient, cfg.PhotosCollection)

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.AIMaxRetries
	captions := usecase.NewCaptionGenerator(vision, cfg.AITimeout, retryCfg)

	photoUseCase := usecase.NewPhotoUseCase(photoRepo, storageClient, captions)
	engagementUseCase := usecase.NewEngagementUseCase(photoRepo)
	similarityUseCase, err := usecase.NewSimilarityUseCase(photoRepo, storageClient, captions, usecase.SimilarityOptions{
		CandidateLimit: cfg.SimilarCandidateLimit,
		TopK:           cfg.SimilarTopK,
		Threshold:      cfg.SimilarThreshold,
		CacheSize:      cfg.KeywordCacheSize,
	})
	if err != nil {
		log.Fatalf("Failed to create keyword cache: %v", err)
	}
	storyUseCase := usecase.NewStoryUseCase(photoRepo, captions, cfg.StoryPhotoLimit)
	galleryUseCase := usecase.NewGalleryUseCase(photoRepo, rand.New(rand.NewSource(time.Now().UnixNano())))

	handler.Setup(photoUseCase, engagementUseCase, similarityUseCase, storyUseCase, galleryUseCase, cfg.MaxUploadBytes)
	handler.SetupHealthHandler(func(ctx context.Context) error {
		return repository.PingFirestore(ctx, firestoreClient, cfg.PhotosCollection)
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Get().Info()
			if v.Error != nil {
				event = logger.Get().Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			apimiddleware.HeaderUserName,
			apimiddleware.HeaderProfilePic,
			apimiddleware.HeaderGalleryPasswd,
		},
	}))

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter(map[string]ratelimit.Policy{
		apimiddleware.ActionSimilar:  ratelimit.PerMinute(cfg.AIRateLimitPerMinute),
		apimiddleware.ActionStories:  ratelimit.PerMinute(cfg.AIRateLimitPerMinute),
		apimiddleware.ActionBackfill: ratelimit.PerMinute(1),
	}, ratelimit.PerMinute(60))
	limiter.StartCleanupRoutine(ctx)

	sessionMiddleware := apimiddleware.NewSessionMiddleware(cfg.GalleryPassword, router.PublicPaths...)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, sessionMiddleware, rateLimitMiddleware)

	logger.Info("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
