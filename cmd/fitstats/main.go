// Package main prints a user's daily summary or workout stats straight from
// the database, and hashes MCP secrets for the FITME_MCP_SECRET_HASH env var.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/fitme-app/fitme/internal/aggregation"
	"github.com/fitme-app/fitme/internal/config"
	"github.com/fitme-app/fitme/internal/db"
	"github.com/fitme-app/fitme/internal/nutrition"
	"github.com/fitme-app/fitme/internal/workouts"
	"github.com/fitme-app/fitme/pkg"
)

const (
	exitFailure      = 1
	exitInvalidInput = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	userID := flag.String("user", "", "user id (uuid)")
	date := flag.String("date", "", "day to summarize, YYYY-MM-DD (defaults to today)")
	workoutStats := flag.Bool("workouts", false, "print workout stats instead of the daily summary")
	hashSecret := flag.String("hash-secret", "", "print the bcrypt hash of the given MCP secret and exit")
	flag.Parse()

	if *hashSecret != "" {
		hash, err := pkg.HashSecret(*hashSecret)
		if err != nil {
			log.Errorf("hash secret: %s", err)
			return exitFailure
		}
		fmt.Println(hash)
		return 0
	}

	_ = godotenv.Load()
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Errorf("load config: %s", err)
		return exitFailure
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Errorf("load secrets: %s", err)
		return exitFailure
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Errorf("db pool: %s", err)
		return exitFailure
	}
	defer dbPool.Close()

	loc := cfg.DayBoundaryLocation()
	engine := aggregation.NewEngine(
		nutrition.NewRepo(dbPool),
		workouts.NewRepo(dbPool),
		aggregation.Options{Location: loc},
	)

	var result any
	if *workoutStats {
		result, err = engine.WorkoutStats(ctx, *userID)
	} else {
		day := *date
		if day == "" {
			day = time.Now().In(loc).Format(time.DateOnly)
		}
		result, err = engine.DailySummary(ctx, *userID, day)
	}
	if err != nil {
		log.Errorf("%s", err)
		if aggregation.IsInvalidInput(err) {
			return exitInvalidInput
		}
		return exitFailure
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Errorf("marshal result: %s", err)
		return exitFailure
	}
	fmt.Println(string(out))
	return 0
}
