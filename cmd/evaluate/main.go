// cmd/evaluate/main.go
// Prints the ranking of the current round without going through the web UI.
//
// Usage:
//
//	go run ./cmd/evaluate -winner "Tomáš Horák" -speed 71.5
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/text/language"

	"github.com/padraicbc/speedtip/auth"
	"github.com/padraicbc/speedtip/config"
	"github.com/padraicbc/speedtip/contest"
	bundb "github.com/padraicbc/speedtip/db"
	"github.com/padraicbc/speedtip/roster"
	"github.com/padraicbc/speedtip/scoring"
	"github.com/padraicbc/speedtip/store"
)

func main() {
	winner := flag.String("winner", "", "name of the actual winner (required)")
	speed := flag.Float64("speed", -1, "actual speed (required)")
	password := flag.String("password", "", "admin password (defaults to ADMIN_PASSWORD)")
	lang := flag.String("lang", "cs", "number formatting locale")
	flag.Parse()

	if *winner == "" || *speed < 0 {
		log.Fatal("both -winner and -speed are required")
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("lang: %v", err)
	}

	cfg := config.LoadStore()
	credential := *password
	if credential == "" {
		credential = cfg.AdminPassword
	}
	verifier, err := auth.NewVerifier(cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}
	r, err := roster.Load(cfg.RosterFile)
	if err != nil {
		log.Fatalf("roster: %v", err)
	}

	db := bundb.Setup(cfg)
	defer db.Close()

	svc := contest.New(store.New(db), verifier, r, contest.WithTimeout(cfg.StoreTimeout))
	out := scoring.Outcome{Winner: *winner, Speed: *speed}
	results, err := svc.Evaluate(context.Background(), credential, out)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	fmt.Print(renderTable(results, tag))
	fmt.Fprintf(os.Stderr, "%d tips, winner %s at %v\n", len(results), out.Winner, out.Speed)
}
