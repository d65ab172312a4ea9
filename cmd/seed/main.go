// Command seed creates the trivia tables if they are missing and loads
// categories and questions into them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/seed"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func main() {
	schema := flag.Bool("schema", true, "create the categories and questions tables when missing (postgres and sqlite only)")
	file := flag.String("file", "", "JSON seed file; the bundled set is used when empty")
	force := flag.Bool("force", false, "seed even when categories already exist")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Failed to load configuration:"), err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Failed to initialize logger:"), err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	db, err := database.NewSQLXDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	if *schema {
		if err := database.EnsureSchema(ctx, db); err != nil {
			log.Fatal("Failed to create schema", zap.Error(err))
		}
	}

	data, err := loadSeedData(*file)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.String("file", *file), zap.Error(err))
	}

	result, err := seed.Apply(ctx, db, data, *force)
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}

	printSummary(cfg.DB.Driver, result)
}

func loadSeedData(path string) ([]seed.Category, error) {
	if path == "" {
		return seed.Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return seed.Parse(raw)
}

func printSummary(driver string, result *seed.Result) {
	if result.Skipped {
		fmt.Printf("%s store already has categories, nothing seeded (use -force to add anyway)\n",
			color.YellowString("skipped:"))
		return
	}
	fmt.Printf("%s %s categories, %s questions into %s\n",
		color.GreenString("seeded:"),
		color.CyanString("%d", result.Categories),
		color.CyanString("%d", result.Questions),
		color.HiBlueString(driver),
	)
}
