package main

import (
	"StudyHub/config"
	"StudyHub/pkg/database"
	"StudyHub/pkg/log"
	"StudyHub/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "StudyHub notes, likes and credits service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
				Usage:   "config file path",
				EnvVars: []string{"APP_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "auto-migrate",
						Usage: "migrate database schema before serving",
					},
				},
				Action: func(ctx *cli.Context) error {
					cfg := config.New(ctx.String("config"))
					appProvider := InitServer(cfg)
					if ctx.Bool("auto-migrate") {
						if err := migrate(cfg); err != nil {
							return err
						}
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					return migrate(config.New(ctx.String("config")))
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func migrate(cfg *config.Config) error {
	db := database.NewDB(cfg)
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.L.Info("database migrated", zap.String("driver", cfg.Database.Driver))
	return nil
}
