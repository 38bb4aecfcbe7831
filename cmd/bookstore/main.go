package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookstore/core/cmd/bookstore/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bookstore",
		Short: "BookStore API Server",
		Long:  `BookStore is a self-contained online bookstore backend keeping all of its state in three flat JSON documents.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
