// Package main exports one user's workout logs and memos from postgres into a
// snapshot file that coachctl can analyse offline.
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/store"
	"github.com/2beens/squashcoach/internal/config"
	"github.com/2beens/squashcoach/internal/db"

	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	envFile := flag.String("env-file", ".env", "optional .env file with secrets")
	userID := flag.String("user", "", "user id to export")
	from := flag.String("from", "", "first log date (YYYY-MM-DD), empty for all")
	to := flag.String("to", "", "last log date (YYYY-MM-DD), empty for all")
	out := flag.String("out", "", "output file, defaults to <user>.snapshot.json")
	logsPath := flag.String("logs-path", "", "log file path (empty for stdout)")
	flag.Parse()

	loggingSetup(*logsPath)

	if *userID == "" {
		log.Fatalln("user not specified")
	}
	fromDate, err := parseDate(*from)
	if err != nil {
		log.Fatalf("invalid from date: %s", err)
	}
	toDate, err := parseDate(*to)
	if err != nil {
		log.Fatalf("invalid to date: %s", err)
	}
	if !toDate.IsZero() {
		// include the whole last day
		toDate = toDate.Add(24*time.Hour - time.Nanosecond)
	}

	outPath := *out
	if outPath == "" {
		outPath = *userID + ".snapshot.json"
	}

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Fatalf("load env file: %s", err)
	}
	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     secrets.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	log.Printf("exporting [%s] ...", *userID)
	snapshot, err := store.NewRepo(dbPool).Export(ctx, *userID, fromDate, toDate)
	if err != nil {
		log.Fatalf("export: %s", err)
	}
	if err := snapshot.WriteFile(outPath); err != nil {
		log.Fatalf("%s", err)
	}

	log.Printf("exported %d logs and %d memos to %s", len(snapshot.Logs), len(snapshot.Memos), outPath)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func loggingSetup(logFileName string) {
	if logFileName == "" {
		log.SetOutput(os.Stdout)
		return
	}

	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	logFile, err := os.OpenFile(logFileName, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		log.Panicf("failed to open log file %q: %s", logFileName, err)
	}

	log.SetOutput(logFile)
}
