package main

// Small CLI tool used to backfill the database with a user's history from a snapshot file.

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/coaching/store"
	"github.com/2beens/squashcoach/internal/db"
	"github.com/2beens/squashcoach/pkg"
)

func init() {
	log.SetOutput(os.Stdout)
}

type input struct {
	host     string
	port     string
	dbName   string
	dbUser   string
	userID   string
	jsonPath string
	verbose  bool
}

type recorder interface {
	AddLog(ctx context.Context, userID string, l analytics.WorkoutLog) (analytics.WorkoutLog, error)
	AddMemo(ctx context.Context, userID string, m analytics.Memo) (analytics.Memo, error)
}

type importResult struct {
	Imported    int                    `json:"imported"`
	Skipped     int                    `json:"skipped"`
	FailedLogs  []analytics.WorkoutLog `json:"failedLogs,omitempty"`
	FailedMemos []analytics.Memo       `json:"failedMemos,omitempty"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in, err := parseAndValidateInput()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	log.Printf("PostgreSQL Host: %s\n", in.host)
	log.Printf("PostgreSQL Port: %s\n", in.port)
	log.Printf("PostgreSQL DB Name: %s\n", in.dbName)
	log.Printf("User: %s\n", in.userID)
	log.Printf("JSON Path: %s\n", in.jsonPath)

	repo, err := getRepo(ctx, in)
	if err != nil {
		log.Fatalf("Failed to get repo: %v\n", err)
	}

	snapshot, err := store.LoadSnapshot(in.jsonPath)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v\n", err)
	}

	res := importSnapshot(ctx, repo, in.userID, snapshot, in.verbose)
	log.Printf("Imported %d entries, skipped %d already recorded logs\n", res.Imported, res.Skipped)

	// print the failed inserts as json so we can investigate them separately and fix them
	if len(res.FailedLogs) > 0 || len(res.FailedMemos) > 0 {
		failedJSON, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal failed inserts: %v\n", err)
		}
		log.Println("----------------------------------------------------")
		log.Printf("Failed inserts below: \n")
		log.Println(string(failedJSON))
		os.Exit(2)
	}
}

// importSnapshot inserts every log and memo, ids from the file are not kept.
// Logs already recorded for the user are skipped so a snapshot can be imported twice.
func importSnapshot(ctx context.Context, r recorder, userID string, snapshot *store.Snapshot, verbose bool) importResult {
	var res importResult
	for _, l := range snapshot.Logs {
		l.ID = 0
		added, err := r.AddLog(ctx, userID, l)
		if errors.Is(err, store.ErrDuplicateLog) {
			res.Skipped++
			continue
		}
		if err != nil {
			log.Printf("--- Failed to insert log [%s]: %v\n", l.Date.Format("2006-01-02"), err)
			res.FailedLogs = append(res.FailedLogs, l)
			continue
		}
		res.Imported++
		if verbose {
			log.Printf("+++ Inserted log: %+v", added)
		}
	}
	for _, m := range snapshot.Memos {
		m.ID = 0
		added, err := r.AddMemo(ctx, userID, m)
		if err != nil {
			log.Printf("--- Failed to insert memo [%s]: %v\n", m.Date.Format("2006-01-02"), err)
			res.FailedMemos = append(res.FailedMemos, m)
			continue
		}
		res.Imported++
		if verbose {
			log.Printf("+++ Inserted memo: %+v", added)
		}
	}
	return res
}

func getRepo(ctx context.Context, in input) (*store.Repo, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         in.host,
		DBPort:         in.port,
		DBName:         in.dbName,
		DBUser:         in.dbUser,
		DBPassword:     os.Getenv("COACH_PG_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return store.NewRepo(dbPool), nil
}

func parseAndValidateInput() (input, error) {
	host := flag.String("host", "", "PostgreSQL host (e.g., localhost or IP address)")
	port := flag.String("port", "5432", "PostgreSQL port")
	dbName := flag.String("dbname", "", "PostgreSQL database name")
	dbUser := flag.String("dbuser", "postgres", "PostgreSQL user, password is read from COACH_PG_PASS")
	userID := flag.String("user", "", "User id the history is imported for")
	jsonPath := flag.String("json", "", "Path to the snapshot JSON file")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	in := input{
		host:     *host,
		port:     *port,
		dbName:   *dbName,
		dbUser:   *dbUser,
		userID:   *userID,
		jsonPath: *jsonPath,
		verbose:  *verbose,
	}
	return in, in.validate()
}

func (in input) validate() error {
	switch {
	case in.host == "":
		return errors.New("PostgreSQL host is required (use -host)")
	case in.dbName == "":
		return errors.New("PostgreSQL database name is required (use -dbname)")
	case in.userID == "":
		return errors.New("user id is required (use -user)")
	case in.jsonPath == "":
		return errors.New("path to JSON file is required (use -json)")
	}
	exists, err := pkg.PathExists(in.jsonPath, false)
	if err != nil {
		return fmt.Errorf("check JSON file: %w", err)
	}
	if !exists {
		return fmt.Errorf("JSON file does not exist at path: %s", in.jsonPath)
	}
	return nil
}
