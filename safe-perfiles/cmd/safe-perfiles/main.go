package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"safe-rescue/safe-common/cache"
	"safe-rescue/safe-common/client"
	commonconfig "safe-rescue/safe-common/config"
	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-common/logger"
	"safe-rescue/safe-perfiles/internal/config"
	httpapi "safe-rescue/safe-perfiles/internal/http"
	"safe-rescue/safe-perfiles/internal/repository"
	"safe-rescue/safe-perfiles/internal/service"

	"go.uber.org/zap"
)

const serviceName = "safe-perfiles"

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

	kv, closeKV := cache.OpenKV(context.Background(), &cfg.Redis, log)
	defer closeKV()

	geo := client.NewGeolocalizacionClient(client.Options{
		BaseURL:  cfg.Services.GeolocalizacionURL,
		Timeout:  cfg.Services.Timeout,
		KV:       kv,
		CacheTTL: cfg.Services.CacheTTL,
		Logger:   log,
	})
	registros := client.NewRegistrosClient(client.Options{
		BaseURL:  cfg.Services.RegistrosURL,
		Timeout:  cfg.Services.Timeout,
		KV:       kv,
		CacheTTL: cfg.Services.CacheTTL,
		Logger:   log,
	})

	tipos := repository.NewPostgresTipoUsuarioRepository(db)
	companias := repository.NewPostgresCompaniaRepository(db)
	equipos := repository.NewPostgresEquipoRepository(db)
	usuarios := repository.NewPostgresUsuarioRepository(db)
	historial := repository.NewPostgresHistorialUsuarioRepository(db)

	usuarioSvc := service.NewUsuarioService(usuarios, tipos, historial, registros, log)
	router := httpapi.NewRouter(httpapi.Services{
		TiposUsuario: service.NewTipoUsuarioService(tipos, log),
		Companias:    service.NewCompaniaService(companias, geo, log),
		Equipos:      service.NewEquipoService(equipos, companias, usuarios, historial, registros, log),
		Usuarios:     usuarioSvc,
		Ciudadanos:   service.NewCiudadanoService(repository.NewPostgresCiudadanoRepository(db), usuarioSvc, geo, log),
		Bomberos:     service.NewBomberoService(repository.NewPostgresBomberoRepository(db), usuarios, equipos, historial, log),
		Historial:    service.NewHistorialUsuarioService(historial, usuarios, equipos, companias, log),
		UploadLimit:  cfg.FotoMaxBytes,
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
	log.Info("Perfiles service stopped")
}
