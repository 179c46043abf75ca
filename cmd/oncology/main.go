package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"oncologyassistant/internal/app/api"
	"oncologyassistant/internal/app/config"
	"oncologyassistant/internal/app/repository"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Println("Application start!")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.ConfigureLogger(); err != nil {
		log.Fatalf("invalid log level %q: %v", cfg.LogLevel, err)
	}
	gin.SetMode(cfg.GinMode)

	seed, err := repository.LoadSeed(cfg.SeedFile)
	if err != nil {
		log.Fatalf("failed to load seed data: %v", err)
	}
	repo := repository.New(seed)
	log.WithFields(log.Fields{
		"patients":        repo.Patients.Len(),
		"treatment_plans": repo.Treatments.Len(),
	}).Info("seed data loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.NewServer(cfg, repo).Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
	log.Println("Application terminated!")
}
