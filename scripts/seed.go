//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/praveennqumar/blood-bridge/internal/auth"
	"github.com/praveennqumar/blood-bridge/internal/database"
	"github.com/praveennqumar/blood-bridge/internal/database/models"
	"github.com/praveennqumar/blood-bridge/pkg/config"
	"github.com/praveennqumar/blood-bridge/pkg/util"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Create admin account
	authService := auth.NewService(db, auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry()))

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")

	if email == "" {
		email = "admin@example.com"
	}
	if password == "" {
		password = "admin123!"
	}
	if name == "" {
		name = "Admin"
	}

	user, err := authService.Register(context.Background(), auth.RegisterInput{
		Email:    email,
		Password: password,
		Role:     models.RoleAdmin,
		Name:     name,
	})

	if err != nil {
		if err == auth.ErrUserExists {
			fmt.Printf("Admin account already exists: %s\n", email)
			return
		}
		log.Fatalf("failed to create admin account: %v", err)
	}

	fmt.Printf("Admin account created successfully!\n")
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Role: %s\n", user.Role)
}
