package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bondwise/bond-advisor-backend/internal/api"
	"github.com/bondwise/bond-advisor-backend/internal/catalog"
	"github.com/bondwise/bond-advisor-backend/internal/config"
	"github.com/bondwise/bond-advisor-backend/internal/database"
	"github.com/bondwise/bond-advisor-backend/internal/repository"
	"github.com/bondwise/bond-advisor-backend/internal/scoring"
	"github.com/bondwise/bond-advisor-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Bring the schema up to date
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	bondRepo := repository.NewBondRepository(db)
	advisorConfigRepo := repository.NewAdvisorConfigRepository(db)

	// Seed the catalog from the feed file when the table is empty
	if cfg.Catalog.SeedFile != "" {
		count, err := bondRepo.Count()
		if err != nil {
			log.Fatalf("Failed to inspect bond catalog: %v", err)
		}
		if count == 0 {
			records, err := catalog.FileSource{Path: cfg.Catalog.SeedFile}.Records(context.Background())
			if err != nil {
				log.Fatalf("Failed to read catalog seed file: %v", err)
			}
			imported, err := bondRepo.ImportRecords(records)
			if err != nil {
				log.Fatalf("Failed to seed bond catalog: %v", err)
			}
			log.Printf("Seeded bond catalog with %d records from %s", imported, cfg.Catalog.SeedFile)
		}
	}

	// Load the initial catalog snapshot; without one the service cannot
	// recommend anything, so a failure here is fatal.
	store := catalog.NewStore(bondRepo)
	snap, err := store.Reload(context.Background(), time.Now().UTC())
	if err != nil {
		log.Fatalf("Failed to load catalog snapshot: %v", err)
	}
	log.Printf("Loaded catalog snapshot: %d active bonds", len(snap.Bonds))

	// Create services
	systemService := service.NewSystemService(db)
	catalogService := service.NewCatalogService(store)
	recommendationService := service.NewRecommendationService(
		store,
		scoring.NewEngine(scoring.DefaultWeights()),
	)
	payoutService := service.NewPayoutService()
	advisorService := service.NewAdvisorService(advisorConfigRepo, cfg.Advisor.SecretKey)

	// Scheduled catalog refresh; a failed refresh keeps the old snapshot.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Catalog.ReloadSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		count, err := catalogService.Reload(ctx, time.Now().UTC())
		if err != nil {
			log.Printf("Scheduled catalog reload failed: %v", err)
			return
		}
		log.Printf("Scheduled catalog reload complete: %d active bonds", count)
	})
	if err != nil {
		log.Fatalf("Failed to schedule catalog reload: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, catalogService, recommendationService, payoutService, advisorService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
