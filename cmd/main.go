package main

import (
	"context"
	"log"
	_ "medical-document-server/docs"
	"medical-document-server/config"
	"medical-document-server/internal/handler"
	"medical-document-server/internal/ports"
	"medical-document-server/internal/repository"
	"medical-document-server/internal/service"
	"medical-document-server/internal/validation"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Medical-document-server
// @version 1.0
// @description REST API для хранения и AI-анализа медицинских PDF-документов

// @host localhost:8080
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	docRepo := repository.NewDocumentRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.RedisSeconds)*time.Second)

	fileStorage, err := service.NewFileStorageService(&cfg.Storage)
	if err != nil {
		log.Fatalf("Ошибка создания файлового хранилища: %v", err)
	}

	validator := validation.NewDocumentValidator(cfg.Storage.MaxUploadBytes)
	contentVerifier := validation.NewContentVerifier(cfg.Storage.ContentCheck)

	docService := service.NewDocumentService(docRepo, cacheRepo, fileStorage, validator, contentVerifier)

	// анализатор опционален: без API-ключа сервер работает, endpoint анализа отвечает 503
	var analyzerService ports.AnalyzerService
	if analyzer, err := service.NewAnalyzerService(&cfg.Analyzer, docRepo, cacheRepo, fileStorage, service.NewFitzTextExtractor()); err != nil {
		log.Printf("AI-анализатор отключён: %v", err)
	} else {
		analyzerService = analyzer
	}

	docHandler := handler.NewDocumentHandler(docService, analyzerService, cfg.Storage.MaxUploadBytes)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	setupDocumentRoutes(router, docHandler)

	runServer(ctx, srv)
}

func setupDocumentRoutes(r chi.Router, h *handler.DocumentHandler) {
	r.Route("/api/documents", func(r chi.Router) {
		r.Post("/upload/", h.UploadDocument)
		r.Get("/", h.ListDocuments)
		r.Get("/health/", h.HealthCheck)

		r.Get("/{document_id}/", h.DownloadDocument)
		r.Delete("/{document_id}/", h.DeleteDocument)
		r.Post("/{document_id}/analyze/", h.AnalyzeDocument)
		r.Get("/{document_id}/analysis/", h.GetDocumentAnalysis)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
