package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/bookstore/core/internal/adapters/repository"
	"github.com/bookstore/core/internal/application/services"
	"github.com/bookstore/core/internal/domain/entities"
	"github.com/bookstore/core/internal/infrastructure/config"
	"github.com/bookstore/core/internal/infrastructure/logger"
	"github.com/bookstore/core/internal/infrastructure/seed"
	"github.com/bookstore/core/internal/infrastructure/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the BookStore API server",
		Long:  "Start the BookStore API server, seeding the starter catalog and admin account when the store is empty",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the starter catalog and admin account",
		Long:  "Write the 200-book starter catalog and the default admin account. Existing data is never overwritten.",
		Run: func(cmd *cobra.Command, args []string) {
			runSeed()
		},
	}
}

// NewUserCommand creates the user management command
func NewUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
		Long:  "Create and manage accounts in the user document",
	}

	createAdminCmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			email, _ := cmd.Flags().GetString("email")

			if username == "" || password == "" {
				log.Fatal("Username and password are required")
			}

			createAdmin(username, password, email)
		},
	}

	createAdminCmd.Flags().String("username", "", "Account username (required)")
	createAdminCmd.Flags().String("password", "", "Account password (required)")
	createAdminCmd.Flags().String("email", "", "Account email")

	userCmd.AddCommand(createAdminCmd)
	return userCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print BookStore version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("BookStore Core v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	bookRepo := repository.NewBookRepository(cfg.Storage.BooksPath())
	userRepo := repository.NewUserRepository(cfg.Storage.UsersPath())

	seeded, err := seed.Run(context.Background(), bookRepo, userRepo, services.HashPassword)
	if err != nil {
		appLogger.Fatal("Failed to seed store", "error", err)
	}
	if seeded > 0 {
		appLogger.Info("Starter catalog seeded", "books", seeded)
	}

	srv, err := server.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting BookStore API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
	)

	if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		appLogger.Fatal("Server failed to start", "error", err)
	}
}

func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bookRepo := repository.NewBookRepository(cfg.Storage.BooksPath())
	userRepo := repository.NewUserRepository(cfg.Storage.UsersPath())

	seeded, err := seed.Run(context.Background(), bookRepo, userRepo, services.HashPassword)
	if err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	if seeded == 0 {
		fmt.Println("Catalog already populated, nothing to do")
	} else {
		fmt.Printf("Seeded %d books and the default admin account\n", seeded)
	}
}

func createAdmin(username, password, email string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	userRepo := repository.NewUserRepository(cfg.Storage.UsersPath())

	user := &entities.User{
		Username:     username,
		PasswordHash: services.HashPassword(password),
		Email:        email,
		IsAdmin:      true,
	}

	if err := userRepo.Create(context.Background(), user); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin created successfully:\n")
	fmt.Printf("  Username: %s\n", username)
	if email != "" {
		fmt.Printf("  Email: %s\n", email)
	}
}
