package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/ordertrack/procurement-service/config"
	"github.com/ordertrack/procurement-service/internal/procurement"
	"github.com/ordertrack/procurement-service/pkg/httpserver"
	"github.com/ordertrack/procurement-service/pkg/logger"
	"github.com/ordertrack/procurement-service/pkg/postgres"
)

func main() {
	seed := flag.Bool("seed", false, "load demo data after migration")
	flag.Parse()

	log := logger.NewLogger("debug", &logger.MainLogHook{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	env, err := config.GetEnvironment()
	if err != nil {
		log.Fatalf(err.Error())
	}

	procurementLog := logger.NewLogger(env.LogLvl, &procurement.ProcurementLogHook{})
	postgresConfig := postgres.Config{
		Host:     env.PgHost,
		Port:     env.PgPort,
		Username: env.PgUser,
		Password: env.PgPassword,
		DBName:   env.PgDbName,
		SSLMode:  env.SSLMode,
		TimeZone: env.TimeZone,
	}

	db, err := postgres.NewConnection(postgresConfig, log)
	if err != nil {
		log.Fatalf("failed connection to db: %v", err)
	}

	if err := procurement.RunSchemaMigration(db); err != nil {
		log.Fatalf("failed schema migration: %v", err)
	}

	if *seed {
		if err := procurement.SeedDemoData(db, procurementLog); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	if err := os.MkdirAll(env.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}

	storage := procurement.NewStorage(db)
	service := procurement.NewService(storage, procurementLog)

	router := gin.New()

	handler := procurement.NewHandler(service, procurementLog, env.UploadDir)
	handler.Register(router)

	server := new(httpserver.Server)

	go func() {
		if err := server.Run(cfg.Server.Port, router); err != nil {
			log.Fatalf("failed running server: %v", err)
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	oscall := <-interrupt
	log.Infof("Shutdown server, %s", oscall)

	if err := server.Shutdown(context.Background()); err != nil {
		log.Errorf("Error occured on server shutting down: %v", err)
	}
}
