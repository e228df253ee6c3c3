package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/tradeport/config"
	"github.com/shashiranjanraj/tradeport/database/seeders"
	"github.com/shashiranjanraj/tradeport/pkg/database"
)

// bootDB loads config and opens the Mongo connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// tradeport db:indexes — create every collection index.
var indexesCmd = &cobra.Command{
	Use:   "db:indexes",
	Short: "Create all collection indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		fmt.Println("Creating indexes…")
		if err := database.EnsureIndexes(ctx); err != nil {
			return err
		}
		fmt.Println("✅  Indexes in place")
		return nil
	},
}

// tradeport seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx)
	},
}
