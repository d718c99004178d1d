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
	"safe-rescue/safe-common/events"
	"safe-rescue/safe-common/httpx"
	"safe-rescue/safe-common/logger"
	"safe-rescue/safe-comunicacion/internal/config"
	httpapi "safe-rescue/safe-comunicacion/internal/http"
	"safe-rescue/safe-comunicacion/internal/repository"
	"safe-rescue/safe-comunicacion/internal/service"

	"go.uber.org/zap"
)

const serviceName = "safe-comunicacion"

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

	var publishers events.Multi
	if rkv, ok := kv.(*cache.RedisKV); ok {
		publishers = append(publishers, events.NewStreamPublisher(rkv.Client(), cfg.Notificaciones.Stream, cfg.Notificaciones.StreamMaxLen))
		log.Info("Publishing notificaciones to Redis stream", zap.String("stream", cfg.Notificaciones.Stream))
	}
	if cfg.MQTT.Enabled {
		mq, err := events.NewMQTTPublisher(&cfg.MQTT, log)
		if err != nil {
			log.Warn("MQTT unavailable, notificaciones will not be pushed", zap.Error(err))
		} else {
			defer mq.Close()
			publishers = append(publishers, mq)
			log.Info("Publishing notificaciones to MQTT", zap.String("broker", cfg.MQTT.Broker))
		}
	}
	var publisher events.Publisher = events.Nop{}
	if len(publishers) > 0 {
		publisher = publishers
	}

	perfiles := client.NewPerfilesClient(client.Options{
		BaseURL:  cfg.Services.PerfilesURL,
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

	conversaciones := repository.NewPostgresConversacionRepository(db)
	participantes := repository.NewPostgresParticipanteRepository(db)
	mensajes := repository.NewPostgresMensajeRepository(db)
	historial := repository.NewPostgresHistorialMensajeRepository(db)
	router := httpapi.NewRouter(httpapi.Services{
		Conversaciones: service.NewConversacionService(conversaciones, log),
		Participantes:  service.NewParticipanteService(participantes, conversaciones, perfiles, log),
		Mensajes:       service.NewMensajeService(mensajes, conversaciones, participantes, historial, registros, log),
		Notificaciones: service.NewNotificacionService(repository.NewPostgresNotificacionRepository(db), conversaciones, perfiles, publisher, log),
		Historial:      service.NewHistorialMensajeService(historial, mensajes, log),
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
	log.Info("Comunicacion service stopped")
}
