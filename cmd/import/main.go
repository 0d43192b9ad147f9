package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"workout-plan-bot/internal/importer"
	"workout-plan-bot/internal/models/config"
	"workout-plan-bot/internal/repository/program"
	catalog_service "workout-plan-bot/internal/service/catalog"
	database "workout-plan-bot/pkg"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "path to programs .xlsx or .csv (required)")
	sheet := flag.String("sheet", "", "Excel sheet name (default: CATALOG_SHEET)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintf(os.Stderr, "Usage: import -file programs.xlsx [-sheet amina]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.LoadStorage()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}
	if *sheet == "" {
		*sheet = cfg.Catalog.Sheet
	}

	db, err := database.New(cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	catalog := catalog_service.NewCatalogService(program.NewProgramRepository(db))
	result, err := importer.New(catalog, log).Import(context.Background(), importer.ImportConfig{
		FilePath:  *file,
		SheetName: *sheet,
	})
	if err != nil {
		log.Error("import failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("rows: %d, programs: %d, skipped: %d\n", result.TotalRows, result.Programs, result.Skipped)
	for _, e := range result.Errors {
		fmt.Printf("  %s\n", e)
	}
}
