package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/tahaxtrex/Scolay/pkg/config"
	"github.com/tahaxtrex/Scolay/pkg/db"
	"github.com/tahaxtrex/Scolay/pkg/logger"
	"github.com/tahaxtrex/Scolay/pkg/migrate"
)

// Applies goose migrations for the storefront schema. create and
// validate run offline; everything else needs the configured database.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	var (
		cmd    = flag.String("cmd", "up", "one of: up, down, status, to, create, validate")
		dir    = flag.String("dir", migrate.DefaultDir, "migrations directory")
		name   = flag.String("name", "", "new migration name (create)")
		target = flag.Int64("to", 0, "target schema version, YYYYMMDDHHMMSS (to)")
	)
	flag.Parse()

	switch *cmd {
	case "create":
		if *name == "" {
			fail(ctx, logg, "create needs -name", nil)
		}
		path, err := migrate.CreateSQLMigration(*dir, *name)
		if err != nil {
			fail(ctx, logg, "create migration", err)
		}
		logg.Info(ctx, "created "+path)
		return
	case "validate":
		if err := migrate.ValidateDir(*dir); err != nil {
			fail(ctx, logg, "validate migrations", err)
		}
		logg.Info(ctx, "migrations valid")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fail(ctx, logg, "load config", err)
	}
	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "cmd": *cmd, "dir": *dir})

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		fail(ctx, logg, "connect database", err)
	}
	defer client.Close()

	sqlDB, err := client.DB().DB()
	if err != nil {
		fail(ctx, logg, "unwrap sql database", err)
	}

	switch *cmd {
	case "up":
		err = migrate.Up(ctx, sqlDB, *dir)
	case "down":
		err = migrate.Down(ctx, sqlDB, *dir)
	case "status":
		err = migrate.Status(ctx, sqlDB, *dir)
	case "to":
		if *target == 0 {
			fail(ctx, logg, "to needs -to version", nil)
		}
		err = migrate.To(ctx, sqlDB, *dir, *target)
	default:
		fail(ctx, logg, "unknown -cmd "+*cmd, nil)
	}
	if err != nil {
		fail(ctx, logg, "migration "+*cmd, err)
	}
	logg.Info(ctx, "migration "+*cmd+" complete")
}

func fail(ctx context.Context, logg *logger.Logger, msg string, err error) {
	logg.Error(ctx, msg, err)
	os.Exit(1)
}
