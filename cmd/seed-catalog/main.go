package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cardvault/catalog-api/internal/business/collection"
	"github.com/cardvault/catalog-api/internal/platform/config"
	"github.com/cardvault/catalog-api/internal/platform/storage"
	"github.com/cardvault/catalog-api/pkg/model"
	"github.com/cardvault/catalog-api/pkg/util"
	"github.com/joho/godotenv"
)

func main() {
	force := flag.Bool("force", false, "Upsert the default catalog even if the store already has cards")
	dryRun := flag.Bool("dry-run", false, "Validate the default catalog and print its stats without writing")
	refresh := flag.Bool("refresh-stats", true, "Persist a fresh stats snapshot after seeding")
	flag.Parse()

	ctx := context.Background()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cards := collection.DefaultCatalog()
	if err := collection.ValidateCatalog(cards); err != nil {
		log.Fatalf("Default catalog is invalid: %v", err)
	}

	money := util.NewMoneyFormatter(cfg.DisplayLocale)

	if *dryRun {
		fmt.Println("Dry run: nothing will be written")
		printStats(collection.Aggregate(cards), money)
		return
	}

	stores, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer stores.Close()

	fmt.Printf("Seeding %d cards into %s storage...\n", len(cards), stores.Driver)
	fmt.Println("========================================")

	if *force {
		if err := stores.Seeder.BatchUpsert(ctx, cards); err != nil {
			log.Fatalf("Failed to upsert catalog: %v", err)
		}
		fmt.Printf("✓ Upserted %d cards\n", len(cards))
	} else {
		seeded, err := collection.SeedIfEmpty(ctx, stores.Seeder, cards)
		if err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		if seeded == 0 {
			fmt.Println("Store already has cards, skipped (use -force to overwrite)")
		} else {
			fmt.Printf("✓ Seeded %d cards\n", seeded)
		}
	}

	svc := collection.NewService(stores.Cards, stores.Stats)
	var stats model.CollectionStats
	if *refresh {
		stats, err = svc.RefreshStats(ctx)
	} else {
		stats, err = svc.Stats(ctx)
	}
	if err != nil {
		log.Fatalf("Failed to compute stats: %v", err)
	}

	fmt.Println("========================================")
	printStats(stats, money)
}

func printStats(stats model.CollectionStats, money util.MoneyFormatter) {
	fmt.Printf("Owned: %d / %d (%.0f%%)\n", stats.OwnedCards, stats.TotalCards, stats.Completion)
	fmt.Printf("Owned value: %s of %s\n", money.Format(stats.OwnedValue), money.Format(stats.CatalogValue))
	for _, r := range model.AllRarities() {
		rs := stats.ByRarity[r]
		fmt.Printf("  %-12s %d / %d (%.0f%%)\n", r.Label(), rs.Owned, rs.Total, rs.Completion)
	}
}
