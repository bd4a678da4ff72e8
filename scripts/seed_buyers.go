// seed_buyers.go loads buyer profiles from a YAML file into the buyer_profiles table.
//
// Usage:
//
//	go run scripts/seed_buyers.go -profiles buyers.yaml -database postgres://localhost/tender
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/MikeSquared-Agency/Tender/internal/store"
)

func main() {
	profilesPath := flag.String("profiles", "buyers.yaml", "path to buyer profiles YAML")
	databaseURL := flag.String("database", os.Getenv("TENDER_DATABASE_URL"), "Postgres connection URL")
	dryRun := flag.Bool("dry-run", false, "print profiles without writing")
	flag.Parse()

	buyers, err := store.LoadProfiles(*profilesPath)
	if err != nil {
		log.Fatalf("load profiles: %v", err)
	}

	if *dryRun {
		for _, b := range buyers {
			fmt.Printf("%-20s focus=%-14s price=%.2f quality=%.0f delivery=%.0f payment=%.0f carbon=%.1f incoterms=%s\n",
				b.Name, b.Focus, b.Baseline.Price, b.Baseline.Quality, b.Baseline.DeliveryTime,
				b.Baseline.PaymentTerms, b.Baseline.CarbonFootprint, b.Incoterms)
		}
		fmt.Printf("\n%d profiles (dry run)\n", len(buyers))
		return
	}

	if *databaseURL == "" {
		log.Fatal("database URL required (-database or TENDER_DATABASE_URL)")
	}

	ctx := context.Background()
	db, err := store.NewPostgresStore(ctx, *databaseURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	var failed int
	for _, b := range buyers {
		if err := db.UpsertBuyer(ctx, b); err != nil {
			log.Printf("FAIL %s: %v", b.Name, err)
			failed++
			continue
		}
		fmt.Printf("OK   %s\n", b.Name)
	}
	fmt.Printf("\n%d seeded, %d failed\n", len(buyers)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
