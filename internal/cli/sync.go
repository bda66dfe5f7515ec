package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrlokans/pawdopt/internal/adoptapet"
	"github.com/mrlokans/pawdopt/internal/config"
	"github.com/mrlokans/pawdopt/internal/database"
	"github.com/mrlokans/pawdopt/internal/database/animals"
	"github.com/mrlokans/pawdopt/internal/database/settings"
	"github.com/mrlokans/pawdopt/internal/mockfeed"
	"github.com/mrlokans/pawdopt/internal/settingsstore"
	"github.com/mrlokans/pawdopt/internal/sync"
)

// SyncCommand runs one sync of the local animal store from the remote
// sources, without starting the server.
type SyncCommand struct {
	Species      string
	Force        bool
	DatabasePath string
	Verbose      bool
}

func NewSyncCommand() *SyncCommand {
	return &SyncCommand{}
}

func (cmd *SyncCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)

	fs.StringVar(&cmd.Species, "species", "", "Species to sync (dog, cat, ...); empty syncs all species")
	fs.BoolVar(&cmd.Force, "force", false, "Sync even if the cached data is still fresh")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sync [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Fetch adoptable animals from the remote sources into the local database.\n")
		fmt.Fprintf(os.Stderr, "The primary search API is tried first, then the fallback feed.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Sync all species:\n")
		fmt.Fprintf(os.Stderr, "  %s sync\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Force a dog-only sync:\n")
		fmt.Fprintf(os.Stderr, "  %s sync -species dog -force\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SyncCommand) Run() error {
	fmt.Println("Animal Sync")
	fmt.Println("===========")

	cfg := config.NewConfig()

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	fmt.Printf("Database: %s\n", cmd.DatabasePath)
	if cmd.Species != "" {
		fmt.Printf("Species: %s\n", cmd.Species)
	} else {
		fmt.Println("Species: all")
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	animalsRepo := animals.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)
	settingsStore := settingsstore.New(settingsRepo, cfg)

	primary := adoptapet.NewClient(adoptapet.Config{
		BaseURL:     cfg.AdoptAPet.BaseURL,
		APIKey:      cfg.AdoptAPet.APIKey,
		CityOrZip:   cfg.AdoptAPet.CityOrZip,
		GeoRange:    cfg.AdoptAPet.GeoRange,
		StartNumber: cfg.AdoptAPet.StartNumber,
		EndNumber:   cfg.AdoptAPet.EndNumber,
		Timeout:     cfg.Sync.FetchTimeout,
	})
	fallback := mockfeed.NewClient(cfg.MockFeed.URL, cfg.Sync.FetchTimeout)

	engine := sync.NewEngine(animalsRepo, []sync.Source{primary, fallback}, settingsStore.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Println("\nSyncing...")
	result, err := engine.Sync(ctx, sync.Scope{Species: cmd.Species, ForceRefresh: cmd.Force})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Println("\n=== Sync Summary ===")
	if result.Skipped != sync.SkipNone {
		fmt.Printf("Skipped: %s\n", result.Skipped)
	} else {
		fmt.Printf("Source: %s\n", result.Source)
		fmt.Printf("New animals: %d\n", result.Inserted)
		fmt.Printf("Updated animals: %d\n", result.Updated)
	}
	fmt.Printf("Animals in scope: %d\n", len(result.Animals))

	if cmd.Verbose {
		fmt.Println("\n=== Animals ===")
		for i, animal := range result.Animals {
			city := animal.City
			if city == "" {
				city = "(no city)"
			}
			fmt.Printf("%d. %s (%s, %s)\n", i+1, animal.Name, animal.Species, city)
		}
	}

	fmt.Println("\nSync complete!")
	return nil
}
