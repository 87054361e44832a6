package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardvault/catalog-api/internal/business/collection"
	"github.com/cardvault/catalog-api/internal/platform/config"
	apirouter "github.com/cardvault/catalog-api/internal/platform/http"
	"github.com/cardvault/catalog-api/internal/platform/storage"
	"github.com/cardvault/catalog-api/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	stores, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}
	defer stores.Close()

	if cfg.SeedCatalog {
		seeded, err := collection.SeedIfEmpty(ctx, stores.Seeder, collection.DefaultCatalog())
		if err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
		if seeded > 0 {
			log.Printf("seeded %d cards into %s storage", seeded, stores.Driver)
		}
	}

	svc := collection.NewService(stores.Cards, stores.Stats)
	router := apirouter.NewRouter(svc, util.NewMoneyFormatter(cfg.DisplayLocale), cfg.AllowedOrigins)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on :%s (storage=%s)", cfg.Port, stores.Driver)

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	log.Println("server exited")
}
