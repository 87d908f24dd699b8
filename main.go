package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"payroll_management/config"
	"payroll_management/database"
	"payroll_management/handlers"
	"payroll_management/middleware"
	"payroll_management/repository"
	"payroll_management/services"
	"payroll_management/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	if err := utils.InitLogger(cfg.LogLevel, cfg.IsDevelopment()); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer utils.SyncLogger()

	db, err := database.Open(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.SeedAdmin(context.Background(), db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		utils.Logger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	store := repository.NewStore(db)
	auth := &middleware.Auth{
		Sessions:    middleware.NewSessionStore(cfg.SessionExpiry, !cfg.IsDevelopment()),
		JWTSecret:   []byte(cfg.JWTSecret),
		TokenExpiry: cfg.TokenExpiry,
	}
	handlers.InitHandlers(store, services.NewPayrollService(store), auth)

	app := handlers.NewApp(cfg.CORSOrigin)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		utils.Logger.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			utils.Logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	utils.Logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := app.Listen(":" + cfg.Port); err != nil {
		utils.Logger.Fatal("Server stopped", zap.Error(err))
	}
}
