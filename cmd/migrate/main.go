package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/portfolio-studio/showcase/internal/api/validators"
	"github.com/portfolio-studio/showcase/internal/repository"
	"github.com/portfolio-studio/showcase/internal/services"
	"github.com/portfolio-studio/showcase/pkg/config"
	"github.com/portfolio-studio/showcase/pkg/database"
	"github.com/portfolio-studio/showcase/pkg/logger"
)

var (
	app    = kingpin.New("migrate", "Create the projects schema and seed an empty table.")
	dbPath = app.Flag("database", "SQLite file to migrate (defaults to DATABASE_PATH).").Short('d').String()
	noSeed = app.Flag("no-seed", "Create the schema without inserting demonstration rows.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	path := cfg.DatabasePath
	if *dbPath != "" {
		path = *dbPath
	}

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, path, cfg.AppEnv)
	if err != nil {
		log.Fatal("failed to open database", zap.String("path", path), zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	seeded := 0
	if !*noSeed {
		svc := services.NewProjectService(repository.NewProjectRepository(db), validators.New())
		if seeded, err = svc.Bootstrap(ctx); err != nil {
			log.Fatal("seeding failed", zap.Error(err))
		}
	}

	fmt.Fprintf(os.Stdout, "migrations completed (%s, %d seed rows inserted)\n", path, seeded)
}
