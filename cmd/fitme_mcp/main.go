// Package main runs the FitMe progress MCP server over stdio for local MCP clients.
// The backend serves the same tools over HTTP at /mcp.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fitme-app/fitme/internal/aggregation"
	"github.com/fitme-app/fitme/internal/config"
	"github.com/fitme-app/fitme/internal/db"
	fitmemcp "github.com/fitme-app/fitme/internal/mcp"
	"github.com/fitme-app/fitme/internal/nutrition"
	"github.com/fitme-app/fitme/internal/workouts"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Fatalf("load secrets: %v", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	engine := aggregation.NewEngine(
		nutrition.NewRepo(dbPool),
		workouts.NewRepo(dbPool),
		aggregation.Options{Location: cfg.DayBoundaryLocation()},
	)

	server := fitmemcp.NewServer(engine)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Printf("mcp server: %v", err)
	}
}
