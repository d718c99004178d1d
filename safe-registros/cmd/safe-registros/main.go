package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	commonconfig "safe-rescue/safe-common/config"
	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-common/logger"
	"safe-rescue/safe-registros/internal/config"
	httpapi "safe-rescue/safe-registros/internal/http"
	"safe-rescue/safe-registros/internal/repository"
	"safe-rescue/safe-registros/internal/service"
	"safe-rescue/safe-registros/internal/storage"

	"go.uber.org/zap"
)

const serviceName = "safe-registros"

func main() {
	if err := commonconfig.LoadDotEnv(); err != nil {
		panic(fmt.Sprintf("Failed to load .env: %v", err))
	}
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect database", zap.Error(err))
	}
	defer database.Close(db)

	if cfg.Database.Migrate {
		n, err := database.ApplySchema(context.Background(), db, repository.Schema)
		if err != nil {
			log.Fatal("Failed to apply schema", zap.Error(err))
		}
		log.Info("Schema applied", zap.Int("statements", n))
	}

	files, err := storage.NewFileStore(cfg.Foto.StorageDir, cfg.Foto.MaxBytes)
	if err != nil {
		log.Fatal("Failed to prepare foto storage", zap.Error(err))
	}

	estadoRepo := repository.NewPostgresEstadoRepository(db)
	router := httpapi.NewRouter(httpapi.Services{
		Estados:     service.NewEstadoService(estadoRepo, log),
		Categorias:  service.NewCategoriaService(repository.NewPostgresCategoriaRepository(db), log),
		Fotos:       service.NewFotoService(repository.NewPostgresFotoRepository(db), files, cfg.Foto.PublicURL, log),
		Historial:   service.NewHistorialService(repository.NewPostgresHistorialRepository(db), estadoRepo, log),
		Files:       files,
		UploadLimit: cfg.Foto.MaxBytes,
	}, db, log)

	srv := httpx.NewServer(serviceName, cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server error", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info("Registros service stopped")
}
