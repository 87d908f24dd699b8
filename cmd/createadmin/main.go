package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"payroll_management/config"
	"payroll_management/database"
	"payroll_management/repository"
	"payroll_management/services"
	"payroll_management/utils"

	"go.uber.org/zap"
)

func main() {
	username := flag.String("username", "", "Login name of the account")
	password := flag.String("password", "", "Password to set")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: createadmin -username <name> -password <password>")
		os.Exit(1)
	}

	config.LoadConfig()
	cfg := config.AppConfig
	if err := utils.InitLogger(cfg.LogLevel, cfg.IsDevelopment()); err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer utils.SyncLogger()

	db, err := database.Open(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to open database", zap.Error(err))
	}

	store := repository.NewStore(db)
	created, err := services.SetPassword(context.Background(), store.Users, *username, *password)
	if err != nil {
		utils.Logger.Fatal("Failed to save user", zap.Error(err))
	}

	if created {
		utils.Logger.Info("User created", zap.String("username", *username))
	} else {
		utils.Logger.Info("User already existed, password updated", zap.String("username", *username))
	}
}
