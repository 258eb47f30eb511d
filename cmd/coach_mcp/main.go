// Package main runs the coaching MCP server over stdio (for local assistant use).
// The same MCP server is also mounted on the main service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/squashcoach/internal/coaching"
	"github.com/2beens/squashcoach/internal/coaching/analytics"
	coachmcp "github.com/2beens/squashcoach/internal/coaching/mcp"
	"github.com/2beens/squashcoach/internal/coaching/messages"
	"github.com/2beens/squashcoach/internal/coaching/store"
	"github.com/2beens/squashcoach/internal/config"
	"github.com/2beens/squashcoach/internal/db"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	envFile := flag.String("env-file", ".env", "optional .env file with secrets")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Fatalf("load env file: %s", err)
	}
	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx := context.Background()
	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         secrets.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	service := coaching.NewService(coaching.ServiceParams{
		Store:        store.NewRepo(dbPool),
		Engine:       analytics.NewEngine(analytics.WithThresholds(cfg.Thresholds)),
		HistoryLimit: cfg.HistoryLimit,
		MemoLimit:    cfg.MemoLimit,
	})
	server := coachmcp.NewServer(service, messages.NewCatalog(messages.Language(cfg.DefaultLanguage)))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
