package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"innkeeper/config"
	"innkeeper/database"
	"innkeeper/handlers"
	"innkeeper/routes"
	"innkeeper/services/booking"
	"innkeeper/services/catalog"
	"innkeeper/services/dialogue"
	"innkeeper/services/llm"
	"innkeeper/services/session"
	"innkeeper/services/speech"
	"innkeeper/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	ctx := context.Background()

	// Catalog. A failed load is fatal: the assistant cannot converse about
	// hotels it does not know.
	var source catalog.Source
	switch config.AppConfig.CatalogBackend {
	case "mongo":
		database.InitDB()
		source = catalog.MongoSource{
			Client:   database.MongoClient,
			Database: config.AppConfig.DatabaseName,
		}
	default:
		source = catalog.FileSource{Path: config.AppConfig.HotelDataPath}
	}
	hotels, err := source.Load(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load hotel catalog: %v", err)
	}
	index := catalog.NewIndex(hotels)
	logger.Sugar().Infof("Loaded %d hotels from %s catalog", len(index.All()), config.AppConfig.CatalogBackend)

	// Session store.
	var sessions session.Store
	switch config.AppConfig.SessionBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisSessionDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Sugar().Fatalf("main: failed to connect to redis: %v", err)
		}
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		sessions = session.NewRedisStore(client, ttl, dialogue.SystemPrompt)
	default:
		sessions = session.NewMemoryStore(dialogue.SystemPrompt)
	}

	chat, err := llm.NewChatClient(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize chat client: %v", err)
	}

	synth, err := speech.NewGoogleSynthesizer(ctx,
		config.AppConfig.GoogleServiceAccountFile,
		config.AppConfig.AudioDir,
		config.AppConfig.TTSTimeout(),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize speech synthesizer: %v", err)
	}
	defer synth.Close()

	finalizer := &booking.Finalizer{
		Catalog:  index,
		Sessions: sessions,
		Chat:     chat,
		Logger:   logger,
		Timeout:  config.AppConfig.LLMTimeout(),
	}
	engine := dialogue.NewEngine(index, sessions, chat, finalizer, logger, config.AppConfig.LLMTimeout())

	chatHandler := handlers.NewChatHandler(engine, sessions, synth)
	bookingHandler := handlers.NewBookingHandler(finalizer, synth)
	hotelsHandler := handlers.NewHotelsHandler(index)
	audioHandler := handlers.NewAudioHandler(config.AppConfig.AudioDir)
	sttHandler := handlers.NewSTTHandler(config.AppConfig.GoogleServiceAccountFile)

	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:           chatHandler.HandleChat,
		ResetSessionHandler:   chatHandler.HandleReset,
		ConfirmBookingHandler: bookingHandler.HandleConfirm,
		ListHotelsHandler:     hotelsHandler.HandleList,
		GetAudioHandler:       audioHandler.HandleGet,
		STTHandler:            sttHandler.HandleTranscribe,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
